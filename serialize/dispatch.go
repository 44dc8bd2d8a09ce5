package serialize

import (
	"reflect"

	"github.com/ItsTehBrian/Configurate/primitive"
)

var primitiveArrays = [primitive.KindTotal]ContainerKind{
	primitive.KindBool:    KindBoolArray,
	primitive.KindInt8:    KindInt8Array,
	primitive.KindRune:    KindRuneArray,
	primitive.KindInt16:   KindInt16Array,
	primitive.KindInt:     KindIntArray,
	primitive.KindInt64:   KindInt64Array,
	primitive.KindFloat32: KindFloat32Array,
	primitive.KindFloat64: KindFloat64Array,
}

// Dispatch selects the container kind for t by its shape: sets, arrays of
// a primitive kind, and arrays of anything else.
func Dispatch(t Type) ContainerKind {
	switch {
	case t.IsSet():
		return KindSet
	case !t.IsArray():
		return KindUnknown
	}

	if k := primitive.FromReflectType(t.Component()); k != 0 {
		return primitiveArrays[k]
	}

	return KindObjectArray
}

// Applies reports whether the strategy of kind k handles the Go type rtype.
func Applies(k ContainerKind, rtype reflect.Type) bool {
	t, err := TypeOf(rtype)
	return err == nil && Dispatch(t) == k
}

// IsObjectArray reports whether rtype is a slice whose component type is
// declared and is not a primitive kind.
func IsObjectArray(rtype reflect.Type) bool {
	return Applies(KindObjectArray, rtype)
}

// IsPrimitiveArray reports whether rtype is a slice of the primitive kind k.
func IsPrimitiveArray(rtype reflect.Type, k primitive.KindEnum) bool {
	if k <= 0 || int(k) >= primitive.KindTotal {
		return false
	}

	return Applies(primitiveArrays[k], rtype)
}
