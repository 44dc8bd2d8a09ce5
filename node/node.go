package node

import "fmt"

type Node struct {
	value    any
	children []*Node
	list     bool
}

// Empty returns a node holding no value.
func Empty() *Node {
	return &Node{}
}

// Scalar returns a node holding v. A nil v yields an empty node.
func Scalar(v any) *Node {
	return &Node{value: v}
}

// List returns a list node with n empty children, each replaceable with SetChild.
func List(n int) *Node {
	children := make([]*Node, n)
	for i := range children {
		children[i] = Empty()
	}

	return &Node{children: children, list: true}
}

// Of returns a list node with one child per value; nil values become empty children.
func Of(values ...any) *Node {
	n := List(len(values))
	for i, v := range values {
		n.children[i] = Scalar(v)
	}

	return n
}

func (n *Node) IsEmpty() bool {
	return n == nil || (!n.list && n.value == nil)
}

func (n *Node) IsList() bool {
	return n != nil && n.list
}

func (n *Node) IsScalar() bool {
	return n != nil && !n.list && n.value != nil
}

// Len returns the number of children, zero for anything but a list.
func (n *Node) Len() int {
	if !n.IsList() {
		return 0
	}

	return len(n.children)
}

// Child returns the i-th child. It panics if i is out of range, like a slice index.
func (n *Node) Child(i int) *Node {
	if !n.IsList() {
		panic(fmt.Sprintf("node: Child(%d) on a non-list node", i))
	}

	return n.children[i]
}

// SetChild replaces the i-th child. A nil child is stored as an empty node.
func (n *Node) SetChild(i int, child *Node) {
	if !n.IsList() {
		panic(fmt.Sprintf("node: SetChild(%d) on a non-list node", i))
	}

	if child == nil {
		child = Empty()
	}
	n.children[i] = child
}

// Append adds child to the end of the list, turning an empty node into a list first.
func (n *Node) Append(child *Node) {
	if !n.list {
		if n.value != nil {
			panic("node: Append on a scalar node")
		}
		n.list = true
	}

	if child == nil {
		child = Empty()
	}
	n.children = append(n.children, child)
}

// Value returns the scalar value, nil for empty and list nodes.
func (n *Node) Value() any {
	if n == nil || n.list {
		return nil
	}

	return n.value
}

// Set replaces the node content with the scalar v.
func (n *Node) Set(v any) {
	n.value, n.children, n.list = v, nil, false
}

// Interface returns the tree as plain Go values: lists become []any.
func (n *Node) Interface() any {
	if !n.IsList() {
		return n.Value()
	}

	out := make([]any, len(n.children))
	for i, c := range n.children {
		out[i] = c.Interface()
	}

	return out
}

func (n *Node) String() string {
	switch {
	case n.IsList():
		return fmt.Sprint(n.Interface())
	case n.IsEmpty():
		return "<empty>"
	default:
		return fmt.Sprintf("%v", n.value)
	}
}
