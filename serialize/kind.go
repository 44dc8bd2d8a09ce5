package serialize

//go:generate go tool stringer -type=ContainerKind -output=kind_string.go

// ContainerKind is the closed set of container shapes a collection
// conversion can produce. Each kind has exactly one strategy.
type ContainerKind int

const (
	KindUnknown ContainerKind = iota

	KindObjectArray
	KindBoolArray
	KindInt8Array
	KindRuneArray
	KindInt16Array
	KindIntArray
	KindInt64Array
	KindFloat32Array
	KindFloat64Array
	KindSet

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsArray reports whether the kind is a fixed-length slice container.
func (k ContainerKind) IsArray() bool {
	return k >= KindObjectArray && k <= KindFloat64Array
}
