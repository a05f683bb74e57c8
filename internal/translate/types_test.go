// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"testing"
	"testing/fstest"

	"github.com/dacolabs/pyclassgen/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveType(t *testing.T) {
	tests := []struct {
		name      string
		prop      *schema.Property
		optional  bool
		wantType  string
		wantLines []string
	}{
		{
			name:     "required integer",
			prop:     &schema.Property{Type: schema.TypeInteger},
			wantType: "int",
		},
		{
			name:      "optional string",
			prop:      &schema.Property{Type: schema.TypeString},
			optional:  true,
			wantType:  "Optional[str]",
			wantLines: []string{"from typing import Optional"},
		},
		{
			name:     "number and boolean",
			prop:     &schema.Property{Type: schema.TypeNumber},
			wantType: "float",
		},
		{
			name: "nested list",
			prop: &schema.Property{
				Type: schema.TypeArray,
				Items: &schema.Property{
					Type:  schema.TypeArray,
					Items: &schema.Property{Type: schema.TypeInteger},
				},
			},
			optional:  true,
			wantType:  "Optional[List[List[int]]]",
			wantLines: []string{"from typing import List, Optional"},
		},
		{
			name: "array of refs keeps elements required",
			prop: &schema.Property{
				Type:  schema.TypeArray,
				Items: &schema.Property{Ref: "#/definitions/run"},
			},
			wantType: "List[_run.Run]",
			wantLines: []string{
				"from typing import List",
				"from module_name import _run",
			},
		},
		{
			name:     "optional reference",
			prop:     &schema.Property{Ref: "#/definitions/ReferenceObject"},
			optional: true,
			wantType: "Optional[_reference_object.ReferenceObject]",
			wantLines: []string{
				"from typing import Optional",
				"from module_name import _reference_object",
			},
		},
		{
			name:      "enum",
			prop:      &schema.Property{Enum: []any{"error", "warning", 1.0}},
			wantType:  `Literal["error", "warning", "1"]`,
			wantLines: []string{"from typing_extensions import Literal"},
		},
		{
			name:      "unrecognized type falls back to Any",
			prop:      &schema.Property{Type: "object"},
			optional:  true,
			wantType:  "Any",
			wantLines: []string{"from typing import Any"},
		},
		{
			name:      "empty schema is Any",
			prop:      &schema.Property{},
			wantType:  "Any",
			wantLines: []string{"from typing import Any"},
		},
		{
			name:     "type wins over enum",
			prop:     &schema.Property{Type: schema.TypeString, Enum: []any{"a"}},
			wantType: "str",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, imports := ResolveType(tt.prop, tt.optional, "module_name")
			assert.Equal(t, tt.wantType, typ)
			if tt.wantLines == nil {
				assert.Empty(t, imports.Lines())
			} else {
				assert.Equal(t, tt.wantLines, imports.Lines())
			}
		})
	}
}

func TestResolveType_LoadedNumericEnumContainsDefault(t *testing.T) {
	fsys := fstest.MapFS{"s.json": {Data: []byte(
		`{"properties": {"level": {"enum": [12345678901234567890, 1.50, 10], "default": 1.50}}}`)}}
	root, err := schema.NewLoader(fsys).LoadSchema("s.json")
	require.NoError(t, err)

	level := root.Properties["level"]
	typ, _ := ResolveType(level, true, "")
	assert.Equal(t, `Optional[Literal["12345678901234567890", "1.50", "10"]]`, typ)
	assert.Equal(t, Default{Expr: `"1.50"`}, SynthesizeDefault(level))
}
