// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/dacolabs/pyclassgen/internal/schema"

// NoneLiteral is the Python "no value" token.
const NoneLiteral = "None"

// Default is the synthesized default of an optional property.
type Default struct {
	// Expr is the Python expression. For a factory it is the body of the
	// zero-argument lambda that rebuilds the value.
	Expr string

	// Factory is set for mutable containers, which must be rebuilt for
	// every instance instead of being shared.
	Factory bool
}

// SynthesizeDefault returns the default for an optional property.
//
// A missing default and a falsy one (0, false, "", [], {}, null) both yield
// None, so a declared default of 0 or false is lost.
func SynthesizeDefault(p *schema.Property) Default {
	if !p.HasDefault || isFalsy(p.Default) {
		return Default{Expr: NoneLiteral}
	}

	switch {
	case p.Type == schema.TypeString:
		return Default{Expr: PyQuote(pyText(p.Default))}
	case p.Type == schema.TypeArray:
		return Default{Expr: PyRepr(p.Default), Factory: true}
	case p.Type == "" && len(p.Enum) > 0:
		return Default{Expr: PyQuote(pyText(p.Default))}
	default:
		return Default{Expr: PyRepr(p.Default)}
	}
}
