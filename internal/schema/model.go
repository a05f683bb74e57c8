// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema provides the typed JSON Schema model consumed by the class compiler.
//
// Documents are parsed into *jsonschema.Schema, validated once and converted to
// Object and Property values. Nothing downstream inspects raw schema maps.
package schema

import (
	"errors"
	"sort"
)

// ErrMalformed indicates the schema or hints document violates a structural rule.
var ErrMalformed = errors.New("malformed schema")

// Primitive JSON Schema types understood by the type resolver.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
)

// Object describes one class: its properties, the required subset and,
// on the root only, the named definitions.
type Object struct {
	Description string

	// Properties is nil when the document had no "properties" key at all.
	// An empty, non-nil map is a valid class without fields.
	Properties map[string]*Property

	Required    []string
	Definitions map[string]*Object
}

// Property describes a single field of an Object.
type Property struct {
	Type        string
	Items       *Property
	Ref         string
	Enum        []any
	Default     any
	HasDefault  bool
	Description string
}

// DefinitionNames returns definition keys in lexicographic order.
func (o *Object) DefinitionNames() []string {
	names := make([]string, 0, len(o.Definitions))
	for name := range o.Definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
