// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObject_Refs(t *testing.T) {
	root := &Object{
		Properties: map[string]*Property{
			"runs":  {Type: TypeArray, Items: &Property{Ref: "#/definitions/run"}},
			"first": {Ref: "#/definitions/run"},
			"name":  {Type: TypeString},
		},
		Definitions: map[string]*Object{
			"run": {
				Properties: map[string]*Property{
					"tool": {Ref: "#/definitions/tool"},
				},
			},
		},
	}

	refs := slices.Collect(root.Refs())
	assert.Equal(t, []string{"#/definitions/run", "#/definitions/tool"}, refs)
}

func TestRefName(t *testing.T) {
	assert.Equal(t, "Address", RefName("#/definitions/Address"))
	assert.Equal(t, "Address", RefName("#/$defs/Address"))
	assert.Equal(t, "Address", RefName("Address"))
	assert.True(t, IsLocalRef("#/definitions/Address"))
	assert.False(t, IsLocalRef("other.json#/definitions/Address"))
}
