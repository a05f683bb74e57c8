// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dacolabs/pyclassgen/internal/schema"
)

// ToUnderscoreSeparated converts a camelCase identifier to snake_case.
// Lowercase runes are copied; every other rune is lowercased and, unless it
// is the first rune, preceded by an underscore. There is no acronym handling:
// "URL" becomes "u_r_l" and "item2" becomes "item_2".
func ToUnderscoreSeparated(name string) string {
	var sb strings.Builder
	sb.Grow(len(name) + 4)

	for i, r := range name {
		if unicode.IsLower(r) {
			sb.WriteRune(r)
			continue
		}
		if i > 0 {
			sb.WriteByte('_')
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}

// ClassModuleName returns the private module name backing a class,
// e.g. "_reporting_descriptor" for "ReportingDescriptor".
func ClassModuleName(className string) string {
	return "_" + ToUnderscoreSeparated(className)
}

// CapitalizeFirst uppercases the first rune of s and leaves the rest unchanged.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// PropertyName resolves the Python identifier for a schema property.
// A PropertyNameHint registered under "<className>.<schemaName>" wins and is
// used verbatim; otherwise the schema name is converted to snake_case.
func PropertyName(className, schemaName string, hints schema.Hints) string {
	if hint, ok := hints.Lookup(schema.HintKey(className, schemaName), schema.PropertyNameHint); ok {
		if name, ok := hint.PropertyName(); ok {
			return name
		}
	}
	return ToUnderscoreSeparated(schemaName)
}
