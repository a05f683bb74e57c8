// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package dataclasses emits classes decorated with @dataclasses.dataclass.
package dataclasses

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/dacolabs/pyclassgen/internal/translate"
)

//go:embed dataclasses.py.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("dataclasses.py.tmpl").
	Funcs(template.FuncMap{"field": field}).
	ParseFS(tmplFS, "dataclasses.py.tmpl"))

// Translator emits annotated dataclass definitions.
type Translator struct{}

// Name returns the library name selected on the command line.
func (t *Translator) Name() string {
	return "dataclasses"
}

// Translate compiles the schema object and renders its dataclass.
func (t *Translator) Translate(req translate.Request) (*translate.GeneratedClass, error) {
	class, err := translate.Compile(req, "from __future__ import annotations", "import dataclasses")
	if err != nil {
		return nil, err
	}

	data := struct {
		Header  string
		Imports []string
		Class   *translate.GeneratedClass
	}{
		Header:  translate.GenerationComment(),
		Imports: class.Imports.Lines(),
		Class:   class,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "dataclasses.py.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	class.Source = buf.Bytes()

	return class, nil
}

// field renders the dataclasses.field(...) call of a property.
func field(p translate.Property) string {
	args := ""
	if p.Optional {
		if p.Default.Factory {
			args = "default_factory=lambda: " + p.Default.Expr + ", "
		} else {
			args = "default=" + p.Default.Expr + ", "
		}
	}
	return "dataclasses.field(" + args + "metadata=" + p.Metadata() + ")"
}
