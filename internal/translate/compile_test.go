// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"testing"

	"github.com/dacolabs/pyclassgen/internal/schema"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testObject() *schema.Object {
	return &schema.Object{
		Description: "A run.",
		Properties: map[string]*schema.Property{
			"zeta":       {Type: schema.TypeString},
			"alpha":      {Type: schema.TypeInteger, Default: json.Number("3"), HasDefault: true},
			"tool":       {Ref: "#/definitions/tool"},
			"language":   {Type: schema.TypeString},
			"lineNumber": {Type: schema.TypeInteger},
		},
		Required: []string{"tool", "lineNumber"},
	}
}

func propNames(c *GeneratedClass) []string {
	names := make([]string, len(c.Properties))
	for i, p := range c.Properties {
		names[i] = p.SchemaName
	}
	return names
}

func TestCompile_RequiredBeforeOptional(t *testing.T) {
	class, err := Compile(Request{Schema: testObject(), ClassName: "Run", Module: "sarif"})
	require.NoError(t, err)

	assert.Equal(t, []string{"lineNumber", "tool", "alpha", "language", "zeta"}, propNames(class))

	for i, p := range class.Properties {
		assert.Equal(t, i >= 2, p.Optional, p.SchemaName)
	}
}

func TestCompile_DeclarationOrderDoesNotMatter(t *testing.T) {
	a := testObject()
	b := testObject()
	b.Required = []string{"lineNumber", "tool", "tool"}

	ca, err := Compile(Request{Schema: a, ClassName: "Run"})
	require.NoError(t, err)
	cb, err := Compile(Request{Schema: b, ClassName: "Run"})
	require.NoError(t, err)

	assert.Equal(t, ca.Properties, cb.Properties)
	assert.Equal(t, ca.Imports.Lines(), cb.Imports.Lines())
}

func TestCompile_ResolvesEachProperty(t *testing.T) {
	hints := schema.Hints{
		"Run.language": {{Kind: schema.PropertyNameHint, Arguments: map[string]any{"pythonPropertyName": "langCode"}}},
	}

	class, err := Compile(Request{Schema: testObject(), ClassName: "Run", Module: "sarif", Hints: hints}, "import attr")
	require.NoError(t, err)

	assert.Equal(t, "Run", class.Name)
	assert.Equal(t, "_run", class.ModuleName)
	assert.Equal(t, "_run.py", class.FileName())
	assert.Equal(t, "A run.", class.Description)

	byName := make(map[string]Property)
	for _, p := range class.Properties {
		byName[p.SchemaName] = p
	}

	assert.Equal(t, Property{Name: "line_number", SchemaName: "lineNumber", Type: "int"}, byName["lineNumber"])
	assert.Equal(t, Property{Name: "tool", SchemaName: "tool", Type: "_tool.Tool"}, byName["tool"])
	assert.Equal(t, Property{
		Name: "alpha", SchemaName: "alpha", Type: "Optional[int]", Optional: true,
		Default: Default{Expr: "3"},
	}, byName["alpha"])
	assert.Equal(t, "langCode", byName["language"].Name)

	assert.Equal(t, []string{
		"import attr",
		"from typing import Optional",
		"from sarif import _tool",
	}, class.Imports.Lines())
}

func TestCompile_ProvenanceRecoversSchemaName(t *testing.T) {
	obj := testObject()
	class, err := Compile(Request{Schema: obj, ClassName: "Run"})
	require.NoError(t, err)

	for _, p := range class.Properties {
		_, ok := obj.Properties[p.SchemaName]
		assert.True(t, ok, p.SchemaName)
		assert.Equal(t, p.Name, PropertyName("Run", p.SchemaName, nil))
	}
}

func TestCompile_Idempotent(t *testing.T) {
	first, err := Compile(Request{Schema: testObject(), ClassName: "Run", Module: "m"})
	require.NoError(t, err)
	second, err := Compile(Request{Schema: testObject(), ClassName: "Run", Module: "m"})
	require.NoError(t, err)

	assert.Equal(t, first.Properties, second.Properties)
	assert.Equal(t, first.Imports.String(), second.Imports.String())
}

func TestCompile_EmptyProperties(t *testing.T) {
	class, err := Compile(Request{Schema: &schema.Object{Properties: map[string]*schema.Property{}}, ClassName: "Empty"})
	require.NoError(t, err)
	assert.Empty(t, class.Properties)
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		obj     *schema.Object
		wantErr error
	}{
		{
			name:    "missing properties",
			obj:     &schema.Object{Description: "no properties"},
			wantErr: ErrMissingProperties,
		},
		{
			name:    "nil schema",
			obj:     nil,
			wantErr: ErrMissingProperties,
		},
		{
			name: "required not declared",
			obj: &schema.Object{
				Properties: map[string]*schema.Property{"a": {}},
				Required:   []string{"b"},
			},
			wantErr: schema.ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(Request{Schema: tt.obj, ClassName: "Bad"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "class Bad")
		})
	}
}

func TestRegister(t *testing.T) {
	r := Register{"b": nil, "a": nil}
	assert.Equal(t, []string{"a", "b"}, r.Available())

	_, err := r.Get("missing")
	assert.EqualError(t, err, "unknown library: missing")
}
