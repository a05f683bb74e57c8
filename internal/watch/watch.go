// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package watch reruns an action whenever one of a set of files changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

const changeOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename

// Run watches paths until ctx is done and calls fn after each change.
// Parent directories are watched so that editors replacing a file on save
// are still noticed. Errors returned by fn are logged and watching continues.
func Run(ctx context.Context, paths []string, logger *slog.Logger, fn func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	files := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		files[abs] = true

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
		logger.Debug("watching", "dir", dir)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&changeOps == 0 {
				continue
			}
			if !files[filepath.Clean(event.Name)] {
				continue
			}
			logger.Info("file changed", "file", event.Name, "op", event.Op.String())
			if err := fn(); err != nil {
				logger.Error("regeneration failed", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}
