package node

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrUnsupportedYAML = errors.New("unsupported yaml node")

// FromYAML converts a parsed yaml tree. Sequences become lists, scalars and
// mappings become scalar nodes holding the decoded Go value, and null
// becomes an empty node.
func FromYAML(y *yaml.Node) (*Node, error) {
	if y == nil {
		return Empty(), nil
	}

	switch y.Kind {
	default:
		return nil, fmt.Errorf("%w: kind %d at line %d", ErrUnsupportedYAML, y.Kind, y.Line)

	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return Empty(), nil
		}
		return FromYAML(y.Content[0])

	case yaml.AliasNode:
		return FromYAML(y.Alias)

	case yaml.SequenceNode:
		n := List(len(y.Content))
		for i, c := range y.Content {
			child, err := FromYAML(c)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			n.children[i] = child
		}
		return n, nil

	case yaml.ScalarNode, yaml.MappingNode:
		var v any
		if err := y.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", y.Line, err)
		}
		return Scalar(v), nil
	}
}

// YAML converts the tree back into a yaml tree ready for yaml.Marshal.
func (n *Node) YAML() (*yaml.Node, error) {
	switch {
	case n.IsEmpty():
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil

	case n.IsList():
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: make([]*yaml.Node, 0, len(n.children))}
		for i, c := range n.children {
			y, err := c.YAML()
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out.Content = append(out.Content, y)
		}
		return out, nil
	}

	var out yaml.Node
	if err := out.Encode(n.value); err != nil {
		return nil, err
	}

	return &out, nil
}
