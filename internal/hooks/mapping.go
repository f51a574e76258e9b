package hooks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadMapping reads a metadata file (JSON or YAML) of the form
//
//	{ "<value>": [ { "name": "--hook", "properties": ["color"], "group": "surface" } ] }
//
// Key order is preserved. A missing, unreadable or empty file is an error.
func LoadMapping(path string) (*Mapping, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	m, err := ParseMapping(data)
	if err != nil {
		return nil, fmt.Errorf("parse metadata %s: %w", path, err)
	}
	return m, nil
}

// ParseMapping decodes metadata bytes. yaml.v3 is used for both JSON and YAML
// input because its node tree keeps mapping keys in document order.
func ParseMapping(data []byte) (*Mapping, error) {
	root, err := decodeRootMapping(data)
	if err != nil {
		return nil, err
	}

	m := NewMapping()
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		var entries []Entry
		if err := val.Decode(&entries); err != nil {
			return nil, fmt.Errorf("value %q (line %d): %w", key.Value, key.Line, err)
		}
		for _, e := range entries {
			if e.Name == "" {
				return nil, fmt.Errorf("value %q (line %d): hook without name", key.Value, key.Line)
			}
		}
		m.Add(key.Value, entries...)
	}

	if m.Len() == 0 {
		return nil, ErrEmptyMapping
	}
	return m, nil
}

func decodeRootMapping(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyMapping
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected an object at the top level, got %s", kindName(root.Kind))
	}
	return root, nil
}

// WriteJSON writes m as indented JSON, keeping value order.
func (m *Mapping) WriteJSON(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, k := range m.keys {
		key, err := json.Marshal(k)
		if err != nil {
			return err
		}
		val, err := json.MarshalIndent(m.entries[k], "  ", "  ")
		if err != nil {
			return err
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
		if i < len(m.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	_, err := w.Write(buf.Bytes())
	return err
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "array"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
