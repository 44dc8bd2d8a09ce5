package primitive

import (
	"reflect"
	"strconv"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum names the element types that are stored unboxed in a primitive
// array container. Arrays of any other element type are object arrays.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindBool
	KindInt8  // byte: signed, 8-bit narrowing
	KindRune  // char: a Unicode code point, same Go type as int32
	KindInt16 // short: 16-bit narrowing
	KindInt
	KindInt64
	KindFloat32
	KindFloat64

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt8, KindRune, KindInt16, KindInt, KindInt64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt8:
		return 8
	case KindInt16:
		return 16
	case KindRune, KindFloat32:
		return 32
	case KindInt:
		return strconv.IntSize
	case KindInt64, KindFloat64:
		return 64
	}
}

// ReflectType returns the Go element type backing the kind, nil for the invalid kind.
func (k KindEnum) ReflectType() reflect.Type {
	switch k {
	default:
		return nil
	case KindBool:
		return reflect.TypeFor[bool]()
	case KindInt8:
		return reflect.TypeFor[int8]()
	case KindRune:
		return reflect.TypeFor[rune]()
	case KindInt16:
		return reflect.TypeFor[int16]()
	case KindInt:
		return reflect.TypeFor[int]()
	case KindInt64:
		return reflect.TypeFor[int64]()
	case KindFloat32:
		return reflect.TypeFor[float32]()
	case KindFloat64:
		return reflect.TypeFor[float64]()
	}
}

// FromReflectType maps an element type to its primitive kind. Only the
// predeclared types match; named types such as time.Duration are objects.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype {
	default:
		return 0
	case reflect.TypeOf(false):
		return KindBool
	case reflect.TypeOf(int8(0)):
		return KindInt8
	case reflect.TypeOf(rune(0)):
		return KindRune
	case reflect.TypeOf(int16(0)):
		return KindInt16
	case reflect.TypeOf(int(0)):
		return KindInt
	case reflect.TypeOf(int64(0)):
		return KindInt64
	case reflect.TypeOf(float32(0)):
		return KindFloat32
	case reflect.TypeOf(float64(0)):
		return KindFloat64
	}
}
