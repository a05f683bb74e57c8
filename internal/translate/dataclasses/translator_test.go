// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package dataclasses

import (
	"testing"

	"github.com/dacolabs/pyclassgen/internal/schema"
	"github.com/dacolabs/pyclassgen/internal/translate"
	"github.com/dacolabs/pyclassgen/internal/version"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClassSchema() *schema.Object {
	return &schema.Object{
		Description: "This is a test class.",
		Properties: map[string]*schema.Property{
			"requiredProperty": {Type: schema.TypeInteger},
			"optionalProperty": {Type: schema.TypeInteger, Default: json.Number("42"), HasDefault: true},
		},
		Required: []string{"requiredProperty"},
	}
}

func translateOne(t *testing.T, obj *schema.Object, hints schema.Hints) *translate.GeneratedClass {
	t.Helper()
	class, err := (&Translator{}).Translate(translate.Request{
		Schema:    obj,
		ClassName: "TestClass",
		Module:    "module_name",
		Hints:     hints,
	})
	require.NoError(t, err)
	return class
}

func TestTranslate_TestClass(t *testing.T) {
	class := translateOne(t, testClassSchema(), nil)

	want := `# This file was generated by pyclassgen version ` + version.Short() + `.

from __future__ import annotations
import dataclasses
from typing import Optional


@dataclasses.dataclass
class TestClass(object):
    """This is a test class."""

    required_property: int = dataclasses.field(metadata={"schema_property_name": "requiredProperty"})
    optional_property: Optional[int] = dataclasses.field(default=42, metadata={"schema_property_name": "optionalProperty"})
`
	assert.Equal(t, want, string(class.Source))
	assert.Equal(t, "_test_class.py", class.FileName())
}

func TestTranslate_Properties(t *testing.T) {
	tests := []struct {
		name     string
		prop     *schema.Property
		required bool
		wantLine string
		wantImps []string
	}{
		{
			name: "nested list default uses factory",
			prop: &schema.Property{
				Type: schema.TypeArray,
				Items: &schema.Property{
					Type:  schema.TypeArray,
					Items: &schema.Property{Type: schema.TypeInteger},
				},
				Default:    []any{[]any{}},
				HasDefault: true,
			},
			wantLine: `    nested_list: Optional[List[List[int]]] = dataclasses.field(default_factory=lambda: [[]], metadata={"schema_property_name": "nestedList"})`,
			wantImps: []string{"from typing import List, Optional"},
		},
		{
			name:     "optional reference",
			prop:     &schema.Property{Ref: "#/definitions/ReferenceObject"},
			wantLine: `    nested_list: Optional[_reference_object.ReferenceObject] = dataclasses.field(default=None, metadata={"schema_property_name": "nestedList"})`,
			wantImps: []string{"from typing import Optional", "from module_name import _reference_object"},
		},
		{
			name:     "fallback any",
			prop:     &schema.Property{Type: "object"},
			wantLine: `    nested_list: Any = dataclasses.field(default=None, metadata={"schema_property_name": "nestedList"})`,
			wantImps: []string{"from typing import Any"},
		},
		{
			name:     "required integer",
			prop:     &schema.Property{Type: schema.TypeInteger},
			required: true,
			wantLine: `    nested_list: int = dataclasses.field(metadata={"schema_property_name": "nestedList"})`,
		},
		{
			name:     "enum default",
			prop:     &schema.Property{Enum: []any{"none", "error"}, Default: "error", HasDefault: true},
			wantLine: `    nested_list: Optional[Literal["none", "error"]] = dataclasses.field(default="error", metadata={"schema_property_name": "nestedList"})`,
			wantImps: []string{"from typing import Optional", "from typing_extensions import Literal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := &schema.Object{Properties: map[string]*schema.Property{"nestedList": tt.prop}}
			if tt.required {
				obj.Required = []string{"nestedList"}
			}

			class := translateOne(t, obj, nil)

			assert.Contains(t, string(class.Source), tt.wantLine+"\n")
			wantImports := append([]string{"from __future__ import annotations", "import dataclasses"}, tt.wantImps...)
			assert.Equal(t, wantImports, class.Imports.Lines())
		})
	}
}

func TestTranslate_ArrayDefaultsAreNeverShared(t *testing.T) {
	obj := &schema.Object{Properties: map[string]*schema.Property{
		"tags": {
			Type:       schema.TypeArray,
			Items:      &schema.Property{Type: schema.TypeString},
			Default:    []any{"a"},
			HasDefault: true,
		},
	}}

	result := string(translateOne(t, obj, nil).Source)

	assert.Contains(t, result, "default_factory=lambda: ['a']")
	assert.NotContains(t, result, "default=['a']")
}

func TestTranslate_HintOverridesName(t *testing.T) {
	hints := schema.Hints{
		"TestClass.requiredProperty": {
			{Kind: schema.PropertyNameHint, Arguments: map[string]any{"targetPropertyName": "reqProp"}},
		},
	}

	result := string(translateOne(t, testClassSchema(), hints).Source)

	assert.Contains(t, result, `    reqProp: int = dataclasses.field(metadata={"schema_property_name": "requiredProperty"})`)
	assert.NotContains(t, result, "required_property")
}

func TestTranslate_EmptyClass(t *testing.T) {
	class := translateOne(t, &schema.Object{Properties: map[string]*schema.Property{}}, nil)

	assert.Contains(t, string(class.Source), "class TestClass(object):\n    pass\n")
}

func TestTranslate_EmptyClassWithDescription(t *testing.T) {
	class := translateOne(t, &schema.Object{Description: "Nothing here.", Properties: map[string]*schema.Property{}}, nil)

	assert.Contains(t, string(class.Source), "class TestClass(object):\n    \"\"\"Nothing here.\"\"\"\n\n    pass\n")
}

func TestTranslate_MissingProperties(t *testing.T) {
	_, err := (&Translator{}).Translate(translate.Request{Schema: &schema.Object{}, ClassName: "TestClass"})
	assert.ErrorIs(t, err, translate.ErrMissingProperties)
}

func TestTranslate_Idempotent(t *testing.T) {
	first := translateOne(t, testClassSchema(), nil)
	second := translateOne(t, testClassSchema(), nil)
	assert.Equal(t, first.Source, second.Source)
}
