// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"sort"
	"strings"
)

const (
	typingModule     = "typing"
	extensionsModule = "typing_extensions"
	futureImport     = "from __future__ import annotations"
)

// Imports accumulates the distinct import statements needed by one class.
// Each category renders as a single line and empty categories are omitted.
type Imports struct {
	base       map[string]struct{}
	typing     map[string]struct{}
	extensions map[string]struct{}
	modules    map[string]map[string]struct{} // package -> class modules
}

// NewImports returns an empty accumulator.
func NewImports() *Imports {
	return &Imports{
		base:       make(map[string]struct{}),
		typing:     make(map[string]struct{}),
		extensions: make(map[string]struct{}),
		modules:    make(map[string]map[string]struct{}),
	}
}

// AddBase records a complete import statement such as "import attr".
func (im *Imports) AddBase(stmt string) {
	im.base[stmt] = struct{}{}
}

// AddTyping records a name imported from the typing module.
func (im *Imports) AddTyping(name string) {
	im.typing[name] = struct{}{}
}

// AddExtension records a name imported from typing_extensions.
func (im *Imports) AddExtension(name string) {
	im.extensions[name] = struct{}{}
}

// AddModule records a generated class module imported from pkg.
// An empty pkg means the package currently being generated.
func (im *Imports) AddModule(pkg, module string) {
	set, ok := im.modules[pkg]
	if !ok {
		set = make(map[string]struct{})
		im.modules[pkg] = set
	}
	set[module] = struct{}{}
}

// Merge adds every import of other to im.
func (im *Imports) Merge(other *Imports) {
	if other == nil {
		return
	}
	for k := range other.base {
		im.AddBase(k)
	}
	for k := range other.typing {
		im.AddTyping(k)
	}
	for k := range other.extensions {
		im.AddExtension(k)
	}
	for pkg, set := range other.modules {
		for m := range set {
			im.AddModule(pkg, m)
		}
	}
}

// Modules returns the sorted class modules imported from pkg.
func (im *Imports) Modules(pkg string) []string {
	return sortedKeys(im.modules[pkg])
}

// BaseLines renders only the base statements, with the __future__ import first.
func (im *Imports) BaseLines() []string {
	lines := sortedKeys(im.base)
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i] == futureImport && lines[j] != futureImport
	})
	return lines
}

// Lines renders every category in order: base, typing, typing_extensions,
// then generated class modules.
func (im *Imports) Lines() []string {
	lines := im.BaseLines()

	if names := sortedKeys(im.typing); len(names) > 0 {
		lines = append(lines, fromImport(typingModule, names))
	}
	if names := sortedKeys(im.extensions); len(names) > 0 {
		lines = append(lines, fromImport(extensionsModule, names))
	}
	for _, pkg := range sortedKeys(im.modules) {
		if pkg == "" {
			lines = append(lines, fromImport(".", im.Modules(pkg)))
		} else {
			lines = append(lines, fromImport(pkg, im.Modules(pkg)))
		}
	}
	return lines
}

// String returns the rendered import block.
func (im *Imports) String() string {
	return strings.Join(im.Lines(), "\n")
}

func fromImport(pkg string, names []string) string {
	return "from " + pkg + " import " + strings.Join(names, ", ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
