// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"errors"

	"github.com/spf13/cobra"
)

// FromCommand extracts the session Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the session Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("session not loaded")
	}
	return ctx, nil
}

// PreRunLoad returns a PersistentPreRunE function that loads the session
// and stores it in the command's context. It reads the persistent
// "config" and "verbose" flags.
func PreRunLoad(getenv func(string) string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		verbosity, _ := cmd.Flags().GetCount("verbose")

		ctx, err := Load(cmd.Context(), Options{
			ConfigPath: configPath,
			Getenv:     getenv,
			Verbosity:  verbosity,
			LogOutput:  cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		cmd.SetContext(ctx)
		return nil
	}
}
