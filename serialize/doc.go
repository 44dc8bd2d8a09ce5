// Package serialize converts collection values to and from list nodes of the
// configuration tree.
//
// One generic algorithm handles every container. Deserializing resolves the
// element type, allocates a container sized by the node's child count,
// converts each child with the element serializer bound to the element type
// and hands the result to the container strategy for placement.
// Serializing walks the container in storage order and appends one child per
// element.
//
// # Container kinds
//
// Dispatch maps a Type to one of a closed set of kinds, each with its own
// strategy:
//
//	KindObjectArray             []E for any E that is not a primitive kind
//	KindBoolArray ... Float64   []bool, []int8, []rune, []int16, []int, []int64, []float32, []float64
//	KindSet                     *linkedhashset.Set, insertion ordered
//
// # Absent elements
//
// An empty child node converts to nil. Object arrays and sets can hold that
// nil (object arrays store the element's zero value, which is nil for
// pointers, interfaces, maps and slices); primitive arrays store the kind's
// zero value instead: false, 0 or 0.0.
//
// # Narrowing
//
// []int8 and []int16 elements are parsed as int and truncated like a Go
// conversion, so 300 becomes 44 in an []int8.
//
// # Element types
//
// Go sets are untyped, so a set's element type lives in its Type only. A set
// Type without one (RawSet, or TypeOf on the set type) fails with ErrRawType
// before any node is read. Serializing a set checks each element against
// that type and fails with ErrElementType on the first mismatch.
//
// Set membership is Go equality, except that NaN values of the same type
// collapse into one element.
//
// # Errors
//
// Every failure is a *ConversionError naming the declared type and the
// offending element index; the partially built container is discarded.
package serialize
