// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dacolabs/pyclassgen/internal/schema"
)

// ErrMissingProperties indicates a schema object without a "properties" mapping.
var ErrMissingProperties = errors.New(`schema object has no "properties"`)

// Request describes one class to compile.
type Request struct {
	Schema    *schema.Object
	ClassName string
	Module    string // package that holds the generated class modules
	Hints     schema.Hints
}

// Property is a resolved property declaration.
type Property struct {
	Name       string // generated Python identifier
	SchemaName string // original schema property name, kept as metadata
	Type       string
	Optional   bool
	Default    Default // zero for required properties
}

// GeneratedClass is the compiled form of one schema object.
type GeneratedClass struct {
	Name        string
	ModuleName  string // file stem, e.g. "_test_class"
	Description string
	Properties  []Property // required first, then optional; each group sorted
	Imports     *Imports
	Source      []byte
}

// FileName returns the name of the file holding the class.
func (c *GeneratedClass) FileName() string {
	return c.ModuleName + ".py"
}

// Compile resolves every property of req.Schema and returns the class model.
// base is the set of import statements the emitting style always needs.
// Source is left empty for the caller to render.
func Compile(req Request, base ...string) (*GeneratedClass, error) {
	obj := req.Schema
	if obj == nil || obj.Properties == nil {
		return nil, fmt.Errorf("class %s: %w", req.ClassName, ErrMissingProperties)
	}

	required, optional, err := partition(obj)
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", req.ClassName, err)
	}

	class := &GeneratedClass{
		Name:        req.ClassName,
		ModuleName:  ClassModuleName(req.ClassName),
		Description: obj.Description,
		Properties:  make([]Property, 0, len(obj.Properties)),
		Imports:     NewImports(),
	}
	for _, stmt := range base {
		class.Imports.AddBase(stmt)
	}

	add := func(schemaName string, isOptional bool) {
		ps := obj.Properties[schemaName]
		typ, imports := ResolveType(ps, isOptional, req.Module)
		class.Imports.Merge(imports)

		prop := Property{
			Name:       PropertyName(req.ClassName, schemaName, req.Hints),
			SchemaName: schemaName,
			Type:       typ,
			Optional:   isOptional,
		}
		if isOptional {
			prop.Default = SynthesizeDefault(ps)
		}
		class.Properties = append(class.Properties, prop)
	}

	// Fields with defaults must follow every field without one.
	for _, name := range required {
		add(name, false)
	}
	for _, name := range optional {
		add(name, true)
	}

	return class, nil
}

// partition splits property names into sorted required and optional lists.
func partition(obj *schema.Object) (required, optional []string, err error) {
	seen := make(map[string]bool, len(obj.Required))
	for _, name := range obj.Required {
		if _, ok := obj.Properties[name]; !ok {
			return nil, nil, fmt.Errorf("%w: required property %q is not declared", schema.ErrMalformed, name)
		}
		if !seen[name] {
			seen[name] = true
			required = append(required, name)
		}
	}
	for name := range obj.Properties {
		if !seen[name] {
			optional = append(optional, name)
		}
	}
	sort.Strings(required)
	sort.Strings(optional)
	return required, optional, nil
}

// Metadata renders the attribute metadata that maps the generated name back
// to the schema property name.
func (p Property) Metadata() string {
	return `{"schema_property_name": ` + PyQuote(p.SchemaName) + `}`
}
