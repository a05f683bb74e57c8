// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/dacolabs/pyclassgen/internal/translate"
)

// IndexFileName is the package file re-exporting every generated class.
const IndexFileName = "__init__.py"

//go:embed index.py.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "index.py.tmpl"))

type indexEntry struct {
	Package string
	Module  string
	Class   string
}

// renderIndex renders the __init__.py importing each class in the given order.
func renderIndex(module string, classNames []string) ([]byte, error) {
	pkg := module
	if pkg == "" {
		pkg = "."
	} else {
		pkg += "."
	}

	entries := make([]indexEntry, len(classNames))
	for i, name := range classNames {
		entries[i] = indexEntry{
			Package: pkg,
			Module:  translate.ClassModuleName(name),
			Class:   name,
		}
	}

	data := struct {
		Header  string
		Entries []indexEntry
	}{
		Header:  translate.GenerationComment(),
		Entries: entries,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "index.py.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}
