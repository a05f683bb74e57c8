// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate compiles typed schema objects into Python classes.
//
// The naming, type and default resolvers in this package are shared by the
// emission styles in the attrs and dataclasses subpackages.
package translate

import (
	"fmt"
	"sort"

	"github.com/dacolabs/pyclassgen/internal/version"
)

// Translator defines the interface all emission styles must implement.
type Translator interface {
	// Name returns the style identifier (e.g., "attrs", "dataclasses")
	Name() string

	// Translate compiles one schema object and renders its source.
	Translate(req Request) (*GeneratedClass, error)
}

// Register maps style names to translators.
type Register map[string]Translator

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown library: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names in sorted order.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GenerationComment returns the comment placed at the top of every generated file.
func GenerationComment() string {
	return "# This file was generated by pyclassgen version " + version.Short() + "."
}
