package serialize

import (
	"fmt"
	"reflect"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// setType is the Go container behind every set. Its elements are untyped,
// so a set's element type only exists in the Type that describes it.
var setType = reflect.TypeFor[*linkedhashset.Set]()

// Type describes the container a conversion produces or consumes: either an
// array (a Go slice) with its component type, or an ordered set with its
// type argument. The zero Type describes nothing and dispatches to KindUnknown.
type Type struct {
	container reflect.Type
	elem      reflect.Type
	set       bool
}

// TypeFor describes the slice type C, or a raw set for *linkedhashset.Set.
// It panics for any other type; use TypeOf for types only known at run time.
func TypeFor[C any]() Type {
	t, err := TypeOf(reflect.TypeFor[C]())
	if err != nil {
		panic(err)
	}

	return t
}

// TypeOf describes a container type discovered at run time. Slice types,
// named or not, are arrays of their element type. A set type carries no
// element type, so it always describes a raw set.
func TypeOf(rtype reflect.Type) (Type, error) {
	switch {
	case rtype == nil:
		return Type{}, fmt.Errorf("%w: <nil>", ErrUnsupportedType)
	case rtype == setType:
		return RawSet(), nil
	case rtype.Kind() == reflect.Slice:
		return ArrayOf(rtype.Elem()), nil
	default:
		return Type{}, fmt.Errorf("%w: %s", ErrUnsupportedType, rtype)
	}
}

// ArrayOf describes []elem. elem must not be nil.
func ArrayOf(elem reflect.Type) Type {
	return Type{container: reflect.SliceOf(elem), elem: elem}
}

// SetOf describes an ordered set of E.
func SetOf[E comparable]() Type {
	return SetType(reflect.TypeFor[E]())
}

// SetType describes an ordered set of elem. A nil elem describes a raw set.
func SetType(elem reflect.Type) Type {
	return Type{container: setType, elem: elem, set: true}
}

// RawSet describes a set without a type argument; converting it always fails with ErrRawType.
func RawSet() Type {
	return SetType(nil)
}

func (t Type) IsArray() bool {
	return t.container != nil && !t.set
}

func (t Type) IsSet() bool {
	return t.set
}

// IsRaw reports whether t is a set without a type argument.
func (t Type) IsRaw() bool {
	return t.set && t.elem == nil
}

// Container returns the Go type of the container value.
func (t Type) Container() reflect.Type {
	return t.container
}

// Component returns the array component type, nil for sets.
func (t Type) Component() reflect.Type {
	if t.set {
		return nil
	}

	return t.elem
}

// TypeArgument returns the set element type, nil for arrays and raw sets.
func (t Type) TypeArgument() reflect.Type {
	if !t.set {
		return nil
	}

	return t.elem
}

func (t Type) String() string {
	switch {
	case t.IsRaw():
		return "Set"
	case t.set:
		return "Set[" + t.elem.String() + "]"
	case t.container != nil:
		return t.container.String()
	default:
		return "<unknown>"
	}
}
