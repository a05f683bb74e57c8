// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
)

// FromJSONSchema validates a parsed root schema and converts it to the typed model.
// Both "definitions" and "$defs" are accepted on the root.
//
// doc is the same document decoded with json.Number values. Enum values are
// taken from it so that numbers keep their literal spelling, as defaults do.
// A nil doc falls back to the values parsed into s.
func FromJSONSchema(s *jsonschema.Schema, doc any) (*Object, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: schema is empty", ErrMalformed)
	}

	c := converter{doc: doc}
	root, err := c.object(s, nil)
	if err != nil {
		return nil, err
	}

	if len(s.Definitions) > 0 || len(s.Defs) > 0 {
		root.Definitions = make(map[string]*Object, len(s.Definitions)+len(s.Defs))
	}
	for _, defs := range []struct {
		keyword string
		schemas map[string]*jsonschema.Schema
	}{
		{"definitions", s.Definitions},
		{"$defs", s.Defs},
	} {
		for name, def := range defs.schemas {
			if _, dup := root.Definitions[name]; dup {
				return nil, fmt.Errorf("%w: definition %q declared in both definitions and $defs", ErrMalformed, name)
			}
			obj, err := c.object(def, []string{defs.keyword, name})
			if err != nil {
				return nil, err
			}
			root.Definitions[name] = obj
		}
	}

	return root, nil
}

type converter struct {
	doc any
}

func (c converter) object(s *jsonschema.Schema, path []string) (*Object, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: %s: schema is empty", ErrMalformed, pointer(path))
	}

	obj := &Object{
		Description: s.Description,
		Required:    append([]string(nil), s.Required...),
	}

	if s.Properties != nil {
		obj.Properties = make(map[string]*Property, len(s.Properties))
		for name, ps := range s.Properties {
			p, err := c.property(ps, appendPath(path, "properties", name))
			if err != nil {
				return nil, err
			}
			obj.Properties[name] = p
		}
	}

	for _, name := range obj.Required {
		if _, ok := obj.Properties[name]; !ok {
			return nil, fmt.Errorf("%w: %s: required property %q is not declared in properties", ErrMalformed, pointer(path), name)
		}
	}

	return obj, nil
}

func (c converter) property(s *jsonschema.Schema, path []string) (*Property, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: %s: property schema is empty", ErrMalformed, pointer(path))
	}

	p := &Property{
		Type:        s.Type,
		Ref:         s.Ref,
		Description: s.Description,
	}

	if len(s.Enum) > 0 {
		p.Enum = c.enum(path, s.Enum)
	}

	if len(s.Default) > 0 {
		v, err := decodeValue(s.Default)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: invalid default: %v", ErrMalformed, pointer(path), err)
		}
		p.Default = v
		p.HasDefault = true
	}

	if p.Type == TypeArray {
		if s.Items == nil {
			return nil, fmt.Errorf("%w: %s: array property has no items", ErrMalformed, pointer(path))
		}
		items, err := c.property(s.Items, appendPath(path, "items"))
		if err != nil {
			return nil, err
		}
		p.Items = items
	}

	return p, nil
}

// enum returns the enum array found at path in the number-preserving
// document, or a copy of parsed when the document has no matching array.
func (c converter) enum(path []string, parsed []any) []any {
	node := c.doc
	for _, seg := range path {
		m, ok := node.(map[string]any)
		if !ok {
			node = nil
			break
		}
		node = m[seg]
	}
	if m, ok := node.(map[string]any); ok {
		if values, ok := m["enum"].([]any); ok && len(values) == len(parsed) {
			return append([]any(nil), values...)
		}
	}
	return append([]any(nil), parsed...)
}

func appendPath(path []string, segs ...string) []string {
	return append(append([]string(nil), path...), segs...)
}

// pointer renders path as a JSON pointer fragment for error messages.
func pointer(path []string) string {
	if len(path) == 0 {
		return "#"
	}
	return "#/" + strings.Join(path, "/")
}

// decodeValue decodes a raw JSON value keeping numbers as json.Number,
// so integers and floats retain their original spelling.
func decodeValue(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
