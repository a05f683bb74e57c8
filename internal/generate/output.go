// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrOutputExists indicates the output directory exists and force was not set.
var ErrOutputExists = errors.New("output directory already exists")

// PrepareOutputDir creates dir. An existing dir is an error unless force is
// set, in which case it is removed first.
func PrepareOutputDir(dir string, force bool) error {
	if _, err := os.Stat(dir); err == nil {
		if !force {
			return fmt.Errorf("%w: %s", ErrOutputExists, dir)
		}
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to remove output directory: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat output directory: %w", err)
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// OutputDirSink is a DirSink that prepares its directory with
// PrepareOutputDir before the first file is written. A run that fails
// before writing leaves an existing directory untouched.
type OutputDirSink struct {
	DirSink
	Force bool

	once sync.Once
	err  error
}

// NewOutputDirSink returns a sink writing into dir.
func NewOutputDirSink(dir string, force bool) *OutputDirSink {
	return &OutputDirSink{DirSink: DirSink{Dir: dir}, Force: force}
}

// WriteFile prepares the directory on first use, then writes data to it.
func (s *OutputDirSink) WriteFile(name string, data []byte) error {
	s.once.Do(func() {
		s.err = PrepareOutputDir(s.Dir, s.Force)
	})
	if s.err != nil {
		return s.err
	}
	return s.DirSink.WriteFile(name, data)
}
