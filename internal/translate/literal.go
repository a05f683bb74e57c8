// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// PyRepr renders a decoded JSON value as a Python literal.
// Numbers keep their JSON spelling. Dict keys are sorted so output is stable.
func PyRepr(v any) string {
	switch v := v.(type) {
	case nil:
		return "None"
	case bool:
		if v {
			return "True"
		}
		return "False"
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int:
		return strconv.Itoa(v)
	case string:
		return pyStringRepr(v)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = PyRepr(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = pyStringRepr(k) + ": " + PyRepr(v[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprint(v)
	}
}

// PyQuote renders s as a double-quoted Python string literal.
func PyQuote(s string) string {
	return `"` + escapePy(s, '"') + `"`
}

// pyStringRepr follows Python's repr: single quotes unless the string
// contains a single quote and no double quote.
func pyStringRepr(s string) string {
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		return PyQuote(s)
	}
	return "'" + escapePy(s, '\'') + "'"
}

func escapePy(s string, quote rune) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case quote:
			sb.WriteRune('\\')
			sb.WriteRune(r)
		default:
			if r < 0x20 || (r >= 0x7f && r <= 0x9f) {
				_, _ = fmt.Fprintf(&sb, `\x%02x`, r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// pyText returns the text of a value for embedding in a string literal:
// strings as-is, everything else in repr form.
func pyText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return PyRepr(v)
}

// isFalsy applies Python truthiness to a decoded JSON value.
func isFalsy(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case bool:
		return !v
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 0
	case float64:
		return v == 0
	case int:
		return v == 0
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}
