// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/dacolabs/pyclassgen/internal/session"
	"github.com/dacolabs/pyclassgen/internal/translate"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register, getenv func(string) string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pyclassgen",
		Short: "Generate Python classes from a JSON schema",
		Long: `Generate source code for a set of Python classes from a JSON schema.

One class is generated for the root schema and one for each entry under
"definitions", together with an __init__.py that imports them all.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: session.PreRunLoad(getenv),
	}

	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ./pyclassgen.yaml, or $PYCLASSGEN_CONFIG)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (may be specified up to two times)")

	rootCmd.AddCommand(newInitCmd(translators, getenv))
	rootCmd.AddCommand(newGenerateCmd(translators))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
