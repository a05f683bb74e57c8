// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strings"

	"github.com/dacolabs/pyclassgen/internal/schema"
)

// AnyType is the dynamic type used when a property's shape is not recognized.
const AnyType = "Any"

var primitiveTypes = map[string]string{
	schema.TypeString:  "str",
	schema.TypeInteger: "int",
	schema.TypeNumber:  "float",
	schema.TypeBoolean: "bool",
}

// ResolveType maps a property schema to a Python type annotation and the
// imports it needs. module is the package generated class modules live in.
//
// Precedence: primitive type, array, $ref, enum, then Any. Optional
// properties are wrapped in Optional[...] unless the type is already Any.
func ResolveType(p *schema.Property, optional bool, module string) (string, *Imports) {
	imports := NewImports()
	expr := resolveBaseType(p, module, imports)

	if optional && expr != AnyType {
		expr = "Optional[" + expr + "]"
		imports.AddTyping("Optional")
	}
	return expr, imports
}

func resolveBaseType(p *schema.Property, module string, imports *Imports) string {
	if t, ok := primitiveTypes[p.Type]; ok {
		return t
	}

	if p.Type == schema.TypeArray && p.Items != nil {
		// Array elements are never individually optional.
		elem, elemImports := ResolveType(p.Items, false, module)
		imports.Merge(elemImports)
		imports.AddTyping("List")
		return "List[" + elem + "]"
	}

	if p.Ref != "" {
		className := CapitalizeFirst(schema.RefName(p.Ref))
		classModule := ClassModuleName(className)
		imports.AddModule(module, classModule)
		return classModule + "." + className
	}

	if len(p.Enum) > 0 {
		values := make([]string, len(p.Enum))
		for i, v := range p.Enum {
			values[i] = PyQuote(pyText(v))
		}
		imports.AddExtension("Literal")
		return "Literal[" + strings.Join(values, ", ") + "]"
	}

	imports.AddTyping(AnyType)
	return AnyType
}
