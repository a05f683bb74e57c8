// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package attrs emits classes declared with the attrs library.
package attrs

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/dacolabs/pyclassgen/internal/translate"
)

//go:embed attrs.py.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("attrs.py.tmpl").
	Funcs(template.FuncMap{"attrib": attrib}).
	ParseFS(tmplFS, "attrs.py.tmpl"))

// Translator emits @attr.s classes with attr.ib() attributes.
type Translator struct{}

// Name returns the library name selected on the command line.
func (t *Translator) Name() string {
	return "attrs"
}

// Translate compiles the schema object and renders its attrs class.
// attr.ib() attributes carry no annotations, so only the base import is written.
func (t *Translator) Translate(req translate.Request) (*translate.GeneratedClass, error) {
	class, err := translate.Compile(req, "import attr")
	if err != nil {
		return nil, err
	}

	data := struct {
		Header  string
		Imports []string
		Class   *translate.GeneratedClass
	}{
		Header:  translate.GenerationComment(),
		Imports: class.Imports.BaseLines(),
		Class:   class,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "attrs.py.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	class.Source = buf.Bytes()

	return class, nil
}

func attrib(p translate.Property) string {
	args := ""
	if p.Optional {
		if p.Default.Factory {
			args = "default=attr.Factory(lambda: " + p.Default.Expr + "), "
		} else {
			args = "default=" + p.Default.Expr + ", "
		}
	}
	return "attr.ib(" + args + "metadata=" + p.Metadata() + ")"
}
