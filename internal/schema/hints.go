// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"fmt"
	"sort"
	"strings"
)

// PropertyNameHint overrides the generated identifier of a property.
const PropertyNameHint = "PropertyNameHint"

// Argument names accepted by PropertyNameHint, in lookup order.
var propertyNameArguments = []string{"targetPropertyName", "pythonPropertyName"}

var knownHintKinds = map[string]bool{
	PropertyNameHint: true,
}

// Hint is a single code generation hint record.
type Hint struct {
	Kind      string         `json:"kind" yaml:"kind"`
	Arguments map[string]any `json:"arguments,omitempty" yaml:"arguments,omitempty"`
}

// Hints maps "<ClassName>.<schemaPropertyName>" to an ordered list of hints.
type Hints map[string][]Hint

// HintKey builds the lookup key for a property of a class.
func HintKey(className, schemaPropertyName string) string {
	return className + "." + schemaPropertyName
}

// Lookup returns the first hint of the given kind stored under key.
// A nil Hints, a missing key or no record of that kind all report false.
func (h Hints) Lookup(key, kind string) (Hint, bool) {
	if h == nil {
		return Hint{}, false
	}
	for _, hint := range h[key] {
		if hint.Kind == kind {
			return hint, true
		}
	}
	return Hint{}, false
}

// PropertyName returns the identifier declared by a PropertyNameHint.
func (h Hint) PropertyName() (string, bool) {
	for _, arg := range propertyNameArguments {
		if v, ok := h.Arguments[arg].(string); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// Validate checks every hint key and record. It is called once after loading.
func (h Hints) Validate() error {
	keys := make([]string, 0, len(h))
	for key := range h {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		class, prop, ok := strings.Cut(key, ".")
		if !ok || class == "" || prop == "" {
			return fmt.Errorf("%w: hint key %q is not of the form Class.property", ErrMalformed, key)
		}
		for i, hint := range h[key] {
			if !knownHintKinds[hint.Kind] {
				return fmt.Errorf("%w: hint %s[%d] has unknown kind %q", ErrMalformed, key, i, hint.Kind)
			}
			if hint.Kind == PropertyNameHint {
				if _, ok := hint.PropertyName(); !ok {
					return fmt.Errorf("%w: hint %s[%d] is missing argument %q",
						ErrMalformed, key, i, propertyNameArguments[0])
				}
			}
		}
	}
	return nil
}
