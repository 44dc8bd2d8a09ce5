package serialize

import (
	"fmt"
	"reflect"

	"github.com/ItsTehBrian/Configurate/node"
)

// deserializeList builds a container from the children of n. The element
// type is resolved before n is looked at, so an unresolvable type fails
// without reading any node. No container is returned on failure.
func deserializeList[C any](c *Collections, s strategy[C], t Type, n *node.Node) (C, error) {
	var zero C

	elem, err := s.elementType(t)
	if err != nil {
		return zero, &ConversionError{Type: t, Index: -1, Err: err}
	}

	ser, err := c.elementSerializer(elem)
	if err != nil {
		return zero, &ConversionError{Type: t, Index: -1, Err: err}
	}

	// an absent value reads as an empty list
	if !n.IsList() && !n.IsEmpty() {
		return zero, &ConversionError{Type: t, Index: -1, Err: ErrNotList}
	}

	length := n.Len()
	container := s.createNew(length, elem)

	for i := 0; i < length; i++ {
		v, err := ser.ToValue(n.Child(i))
		if err == nil {
			err = s.deserializeSingle(i, container, v, c.allowed)
		}

		if err != nil {
			return zero, &ConversionError{Type: t, Index: i, Err: err}
		}
	}

	return container, nil
}

// serializeList writes one child per element, in the strategy's storage
// order. A nil element becomes an empty child; any other element must be
// assignable to the element type. No node is returned on failure.
func serializeList[C any](c *Collections, s strategy[C], t Type, container C) (*node.Node, error) {
	elem, err := s.elementType(t)
	if err != nil {
		return nil, &ConversionError{Type: t, Index: -1, Err: err}
	}

	ser, err := c.elementSerializer(elem)
	if err != nil {
		return nil, &ConversionError{Type: t, Index: -1, Err: err}
	}

	out := node.List(0)
	index := 0

	err = s.forEachElement(container, func(v any) error {
		child := node.Empty()
		if v != nil {
			if !reflect.TypeOf(v).AssignableTo(elem) {
				return &ConversionError{Type: t, Index: index, Err: fmt.Errorf("%w: %T into %s", ErrElementType, v, elem)}
			}

			var err error
			if child, err = ser.ToNode(v); err != nil {
				return &ConversionError{Type: t, Index: index, Err: err}
			}
		}

		out.Append(child)
		index++
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
