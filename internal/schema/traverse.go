// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"iter"
	"sort"
	"strings"
)

// AllProperties returns an iterator over every property schema reachable from
// the object, including array items, in a stable order.
func (o *Object) AllProperties() iter.Seq[*Property] {
	return func(yield func(*Property) bool) {
		names := make([]string, 0, len(o.Properties))
		for name := range o.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			for p := o.Properties[name]; p != nil; p = p.Items {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// Refs returns an iterator over all $ref values used by the root object
// and its definitions. Duplicates are reported once.
func (o *Object) Refs() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		objects := []*Object{o}
		for _, name := range o.DefinitionNames() {
			objects = append(objects, o.Definitions[name])
		}
		for _, obj := range objects {
			for p := range obj.AllProperties() {
				if p.Ref == "" {
					continue
				}
				if _, ok := seen[p.Ref]; ok {
					continue
				}
				seen[p.Ref] = struct{}{}
				if !yield(p.Ref) {
					return
				}
			}
		}
	}
}

// RefName returns the last path segment of a $ref, e.g. "Address" for
// "#/definitions/Address".
func RefName(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// IsLocalRef reports whether ref points inside the current document.
func IsLocalRef(ref string) bool {
	return strings.HasPrefix(ref, "#/")
}
