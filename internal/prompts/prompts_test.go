// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateClassName(t *testing.T) {
	tests := []struct {
		in      string
		wantErr string
	}{
		{in: "SarifLog"},
		{in: "_Private2"},
		{in: "", wantErr: "name is required"},
		{in: "2Fast", wantErr: "must start with letter or underscore"},
		{in: "Sarif-Log", wantErr: "must contain only letters, numbers, underscores"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := ValidateClassName(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateModuleName(t *testing.T) {
	tests := []struct {
		in      string
		wantErr string
	}{
		{in: "sarif_om"},
		{in: "sarif.om"},
		{in: "", wantErr: "name is required"},
		{in: ".", wantErr: "must not contain empty segments"},
		{in: "sarif..om", wantErr: "must not contain empty segments"},
		{in: "sarif-om", wantErr: "must contain only letters, numbers, underscores"},
		{in: "2sarif", wantErr: "must start with letter or underscore"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := ValidateModuleName(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestGenerateValues_Missing(t *testing.T) {
	full := GenerateValues{SchemaPath: "s.json", OutputDir: "out", RootClass: "Root", Library: "attrs"}
	assert.False(t, full.Missing())

	partial := full
	partial.RootClass = ""
	assert.True(t, partial.Missing())

	noLibrary := full
	noLibrary.Library = ""
	assert.True(t, noLibrary.Missing())
}

func TestRunGenerateForm_NothingMissing(t *testing.T) {
	v := GenerateValues{SchemaPath: "s.json", OutputDir: "out", RootClass: "Root", Library: "attrs"}
	require.NoError(t, RunGenerateForm(&v, []string{"attrs", "dataclasses"}))
	assert.Equal(t, "Root", v.RootClass)
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, []ResultField{{Label: "Classes", Value: "3"}}, "Done")

	assert.Contains(t, buf.String(), "Classes:")
	assert.Contains(t, buf.String(), "3")
	assert.Contains(t, buf.String(), "Done")
}
