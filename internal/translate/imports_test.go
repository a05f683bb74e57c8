// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImports_Lines(t *testing.T) {
	im := NewImports()
	im.AddBase("import dataclasses")
	im.AddBase(futureImport)
	im.AddTyping("Optional")
	im.AddTyping("List")
	im.AddTyping("Optional")
	im.AddExtension("Literal")
	im.AddModule("sarif", "_run")
	im.AddModule("sarif", "_artifact")
	im.AddModule("sarif", "_run")

	assert.Equal(t, []string{
		"from __future__ import annotations",
		"import dataclasses",
		"from typing import List, Optional",
		"from typing_extensions import Literal",
		"from sarif import _artifact, _run",
	}, im.Lines())
}

func TestImports_EmptyCategoriesOmitted(t *testing.T) {
	im := NewImports()
	assert.Empty(t, im.Lines())

	im.AddBase("import attr")
	assert.Equal(t, "import attr", im.String())
}

func TestImports_RelativeModule(t *testing.T) {
	im := NewImports()
	im.AddModule("", "_tool")

	assert.Equal(t, []string{"from . import _tool"}, im.Lines())
}

func TestImports_Merge(t *testing.T) {
	a := NewImports()
	a.AddTyping("List")
	a.AddModule("m", "_a")

	b := NewImports()
	b.AddTyping("List")
	b.AddTyping("Any")
	b.AddModule("m", "_b")

	a.Merge(b)
	a.Merge(nil)

	assert.Equal(t, []string{
		"from typing import Any, List",
		"from m import _a, _b",
	}, a.Lines())
	assert.Equal(t, []string{"_a", "_b"}, a.Modules("m"))
}
