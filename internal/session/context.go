// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides configuration and logger loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dacolabs/pyclassgen/internal/config"
	"github.com/dacolabs/pyclassgen/internal/logging"
)

var (
	// ErrConfigNotFound indicates an explicitly requested config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved configuration and the diagnostic logger.
type Context struct {
	// Config is the file configuration, or the defaults when no file was found.
	Config *config.Config

	// ConfigPath is the file Config was read from; empty when defaults are used.
	ConfigPath string

	Logger *slog.Logger
}

// Options controls where Load looks for configuration.
type Options struct {
	// ConfigPath is the --config flag value.
	ConfigPath string

	// Getenv looks up environment variables.
	Getenv func(string) string

	Verbosity int
	LogOutput io.Writer
}

// ResolveConfigPath picks the config file location: the flag, then the
// environment, then the default file name. explicit reports whether the
// location was requested rather than defaulted.
func ResolveConfigPath(flag string, getenv func(string) string) (path string, explicit bool) {
	if flag != "" {
		return flag, true
	}
	if getenv != nil {
		if env := getenv(config.EnvConfigPath); env != "" {
			return env, true
		}
	}
	return config.FileName, false
}

// Load resolves the configuration and logger and returns a new
// context.Context carrying them.
func Load(ctx context.Context, opts Options) (context.Context, error) {
	path, explicit := ResolveConfigPath(opts.ConfigPath, opts.Getenv)

	cfg := config.Default()
	loadedFrom := ""

	if _, statErr := os.Stat(path); statErr == nil {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		cfg = loaded
		loadedFrom = path
	} else if explicit {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	logOutput := opts.LogOutput
	if logOutput == nil {
		logOutput = os.Stderr
	}
	logger := logging.New(logOutput, opts.Verbosity)
	if loadedFrom != "" {
		logger.Debug("loaded configuration", "path", loadedFrom)
	}

	return context.WithValue(ctx, contextKey{}, &Context{
		Config:     cfg,
		ConfigPath: loadedFrom,
		Logger:     logger,
	}), nil
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sessCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sessCtx
	}
	return nil
}
