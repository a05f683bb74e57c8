// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/pyclassgen/internal/commands"
	"github.com/dacolabs/pyclassgen/internal/translate"
	"github.com/dacolabs/pyclassgen/internal/translate/attrs"
	"github.com/dacolabs/pyclassgen/internal/translate/dataclasses"
)

// RegisterTranslators returns the emitters selectable with --library.
func RegisterTranslators() translate.Register {
	translators := make(translate.Register)
	translators["attrs"] = &attrs.Translator{}
	translators["dataclasses"] = &dataclasses.Translator{}
	return translators
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	rootCmd := commands.NewRootCmd(RegisterTranslators(), getenv)
	return rootCmd.ExecuteContext(ctx)
}
