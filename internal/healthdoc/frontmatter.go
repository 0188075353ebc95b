package healthdoc

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Delimiter fences the frontmatter block.
const Delimiter = "---"

// Field is a single frontmatter key and its value.
type Field struct {
	Key   string
	Value any
}

// Overrides are per-document frontmatter values layered over the derived
// defaults. Order matters: keys not present in the defaults are emitted in
// the order given, and a repeated key keeps the last value.
type Overrides []Field

// Node encodes the overrides as an ordered YAML mapping. Repeated keys
// collapse to their last value.
func (o Overrides) Node() (*yaml.Node, error) {
	return mappingNode(NewFrontmatter(o...).fields)
}

func mappingNode(fields []Field) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range fields {
		value, err := encodeValue(f.Value)
		if err != nil {
			return nil, &SerializationError{Key: f.Key, Err: err}
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}

// encodeValue converts v to a YAML node. yaml.v3 panics on kinds it cannot
// represent (funcs, channels); that is reported as an error instead.
func encodeValue(v any) (node *yaml.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	node = &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	return node, nil
}

// OverridesFromNode reads an ordered mapping node back into Overrides.
// A nil or zero node yields no overrides.
func OverridesFromNode(node *yaml.Node) (Overrides, error) {
	if node == nil || node.Kind == 0 {
		return nil, nil
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("overrides must be a mapping (line %d)", node.Line)
	}

	out := make(Overrides, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		var v any
		if err := value.Decode(&v); err != nil {
			return nil, fmt.Errorf("override %q: %w", key.Value, err)
		}
		out = append(out, Field{Key: key.Value, Value: v})
	}
	return out, nil
}

// Frontmatter is an insertion-ordered metadata mapping.
type Frontmatter struct {
	fields []Field
}

// NewFrontmatter builds frontmatter from fields in order.
func NewFrontmatter(fields ...Field) *Frontmatter {
	fm := &Frontmatter{}
	for _, f := range fields {
		fm.Set(f.Key, f.Value)
	}
	return fm
}

// Set replaces the value of an existing key in place, or appends a new key.
func (fm *Frontmatter) Set(key string, value any) {
	for i := range fm.fields {
		if fm.fields[i].Key == key {
			fm.fields[i].Value = value
			return
		}
	}
	fm.fields = append(fm.fields, Field{Key: key, Value: value})
}

// Get returns the value stored for key.
func (fm *Frontmatter) Get(key string) (any, bool) {
	for _, f := range fm.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in emission order.
func (fm *Frontmatter) Keys() []string {
	keys := make([]string, len(fm.fields))
	for i, f := range fm.fields {
		keys[i] = f.Key
	}
	return keys
}

// Merge applies overrides on top of the current values. A key in the
// overrides fully replaces the existing value; nested values are not merged.
func (fm *Frontmatter) Merge(o Overrides) {
	for _, f := range o {
		fm.Set(f.Key, f.Value)
	}
}

// Marshal serializes the frontmatter as a YAML block ending in a newline.
func (fm *Frontmatter) Marshal() ([]byte, error) {
	node, err := mappingNode(fm.fields)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, &SerializationError{Err: err}
	}
	if err := enc.Close(); err != nil {
		return nil, &SerializationError{Err: err}
	}
	return buf.Bytes(), nil
}
