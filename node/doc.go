// Package node implements the configuration value tree that collections are
// converted to and from.
//
// A Node is in exactly one of three shapes:
//
//   - empty: no value at all (a nil *Node reads as empty too),
//   - scalar: a single Go value such as int, float64, string or bool,
//   - list: an ordered sequence of child nodes.
//
// Nodes are plain values without synchronization; a tree must not be mutated
// by more than one goroutine at a time.
//
// FromYAML and (*Node).YAML adapt already parsed gopkg.in/yaml.v3 trees.
// Turning bytes into a yaml.Node, and back, is left to the caller.
package node
