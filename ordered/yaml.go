package ordered

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders the map as a YAML mapping node with keys in insertion
// order.
func (m *Map) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.keys {
		kn := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		vn := &yaml.Node{}
		if err := vn.Encode(m.values[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, kn, vn)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping into the map, preserving input key
// order at every nesting level (nested mappings become *Map).
func (m *Map) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("ordered: expected YAML mapping, got kind %d", value.Kind)
	}
	if m.values == nil {
		m.values = map[string]any{}
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		v, err := decodeYAMLNode(value.Content[i+1])
		if err != nil {
			return err
		}
		m.Set(value.Content[i].Value, v)
	}
	return nil
}

func decodeYAMLNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		child := New()
		if err := child.UnmarshalYAML(n); err != nil {
			return nil, err
		}
		return child, nil
	case yaml.SequenceNode:
		var arr []any
		for _, c := range n.Content {
			v, err := decodeYAMLNode(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.AliasNode:
		return decodeYAMLNode(n.Alias)
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}
