// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

// Loader loads schema and hints documents from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadSchema reads, parses and validates a root schema document.
// The format is determined from the file extension.
func (l *Loader) LoadSchema(filePath string) (*Object, error) {
	data, err := l.read(filePath)
	if err != nil {
		return nil, err
	}

	raw, doc, err := decodeDocument(data, filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, filePath, err)
	}

	var s jsonschema.Schema
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, filePath, err)
	}

	obj, err := FromJSONSchema(&s, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return obj, nil
}

// LoadHints reads and validates a code generation hints document.
func (l *Loader) LoadHints(filePath string) (Hints, error) {
	data, err := l.read(filePath)
	if err != nil {
		return nil, err
	}

	raw, _, err := decodeDocument(data, filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, filePath, err)
	}

	var hints Hints
	if err := json.Unmarshal(raw, &hints); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, filePath, err)
	}
	if err := hints.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return hints, nil
}

func (l *Loader) read(filePath string) ([]byte, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	return io.ReadAll(f)
}

// decodeDocument returns the document as JSON together with its generic
// form, in which numbers are json.Number. YAML is walked node by node so
// that mapping keys of any scalar type become strings and numbers keep
// their spelling.
func decodeDocument(data []byte, filePath string) ([]byte, any, error) {
	switch {
	case strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml"):
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, nil, err
		}
		doc, err := yamlValue(&node)
		if err != nil {
			return nil, nil, err
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, nil, err
		}
		return raw, doc, nil
	case strings.HasSuffix(filePath, ".json"):
		doc, err := decodeValue(data)
		if err != nil {
			return nil, nil, err
		}
		return data, doc, nil
	default:
		return nil, nil, fmt.Errorf("format not supported")
	}
}

func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlValue(n.Content[0])
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.SequenceNode:
		values := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return values, nil
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		if err := yamlMerge(m, n); err != nil {
			return nil, err
		}
		return m, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!int", "!!float":
			if isJSONNumber(n.Value) {
				return json.Number(n.Value), nil
			}
		case "!!str":
			return n.Value, nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node", n.Line)
	}
}

// yamlMerge copies the pairs of mapping n into m. "<<" merge keys are
// expanded before the explicit keys so that explicit keys win.
func yamlMerge(m map[string]any, n *yaml.Node) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.ShortTag() != "!!merge" {
			continue
		}
		if v.Kind == yaml.AliasNode {
			v = v.Alias
		}
		sources := []*yaml.Node{v}
		if v.Kind == yaml.SequenceNode {
			sources = v.Content
		}
		for _, src := range sources {
			if src.Kind == yaml.AliasNode {
				src = src.Alias
			}
			if src.Kind != yaml.MappingNode {
				return fmt.Errorf("line %d: merge value is not a mapping", src.Line)
			}
			if err := yamlMerge(m, src); err != nil {
				return err
			}
		}
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.ShortTag() == "!!merge" {
			continue
		}
		if k.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: mapping key must be a scalar", k.Line)
		}
		val, err := yamlValue(v)
		if err != nil {
			return err
		}
		m[k.Value] = val
	}
	return nil
}

// isJSONNumber reports whether s is spelled as a JSON number, which rules
// out YAML-only forms such as 0x1F, 1_000 or .inf.
func isJSONNumber(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	return json.Valid([]byte(s))
}
