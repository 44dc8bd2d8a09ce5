package serialize

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/ItsTehBrian/Configurate/node"
	"github.com/ItsTehBrian/Configurate/options"
	"github.com/ItsTehBrian/Configurate/primitive"
	"github.com/ItsTehBrian/Configurate/scalar"
)

// ElementSerializer converts a single collection element. ToValue may return
// nil for an empty node; the strategy decides what nil means for its storage.
type ElementSerializer interface {
	ToValue(n *node.Node) (any, error)
	ToNode(v any) (*node.Node, error)
}

// SerializerFuncs adapts a pair of functions to ElementSerializer.
type SerializerFuncs struct {
	Deserialize func(n *node.Node) (any, error)
	Serialize   func(v any) (*node.Node, error)
}

func (f SerializerFuncs) ToValue(n *node.Node) (any, error) { return f.Deserialize(n) }
func (f SerializerFuncs) ToNode(v any) (*node.Node, error)  { return f.Serialize(v) }

// Registry selects element serializers by element type. It is safe for
// concurrent lookups once registration is done; Register itself is not
// synchronized.
type Registry struct {
	exact map[reflect.Type]ElementSerializer
}

// NewRegistry returns a registry preloaded with serializers for the primitive
// kinds, strings, unsigned integers and interface elements, coercing scalars
// within the allowed categories.
func NewRegistry(allowed options.CategoryEnum) *Registry {
	r := &Registry{exact: make(map[reflect.Type]ElementSerializer)}

	registerPrimitive(r, primitive.Bool, allowed)
	registerPrimitive(r, primitive.Int8, allowed)
	registerPrimitive(r, primitive.Int16, allowed)
	registerPrimitive(r, primitive.Int, allowed)
	registerPrimitive(r, primitive.Int64, allowed)
	registerPrimitive(r, primitive.Float32, allowed)
	registerPrimitive(r, primitive.Float64, allowed)

	r.Register(reflect.TypeFor[rune](), runeSerializer{allowed: allowed})
	r.Register(reflect.TypeFor[string](), stringSerializer{allowed: allowed})
	r.Register(reflect.TypeFor[any](), interfaceSerializer{})

	for _, t := range []reflect.Type{
		reflect.TypeFor[uint](), reflect.TypeFor[uint8](), reflect.TypeFor[uint16](),
		reflect.TypeFor[uint32](), reflect.TypeFor[uint64](),
	} {
		r.Register(t, unsignedSerializer{rtype: t, allowed: allowed})
	}

	return r
}

// Register binds s to the element type t, replacing any previous binding.
func (r *Registry) Register(t reflect.Type, s ElementSerializer) *Registry {
	r.exact[t] = s
	return r
}

// Get returns the serializer for t. A named type without its own binding
// borrows the serializer of its predeclared underlying type, converting
// values on the way in and out. A pointer type borrows the serializer of
// its element type.
func (r *Registry) Get(t reflect.Type) (ElementSerializer, error) {
	if s, ok := r.exact[t]; ok {
		return s, nil
	}

	if t.Kind() == reflect.Pointer {
		inner, err := r.Get(t.Elem())
		if err != nil {
			return nil, err
		}
		return pointerSerializer{inner: inner, elem: t.Elem()}, nil
	}

	if base := predeclared(t); base != nil && base != t {
		if s, ok := r.exact[base]; ok {
			return convertingSerializer{inner: s, rtype: t, base: base}, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNoSerializer, t)
}

func registerPrimitive[T primitive.Value](r *Registry, desc primitive.Descriptor[T], allowed options.CategoryEnum) {
	r.Register(desc.Kind.ReflectType(), primitiveSerializer[T]{desc: desc, allowed: allowed})
}

// scalarValue reads the value of a leaf node: nil when empty, an error for lists.
func scalarValue(n *node.Node) (any, error) {
	if n.IsList() {
		return nil, ErrNotScalar
	}

	return n.Value(), nil
}

type primitiveSerializer[T primitive.Value] struct {
	desc    primitive.Descriptor[T]
	allowed options.CategoryEnum
}

func (s primitiveSerializer[T]) ToValue(n *node.Node) (any, error) {
	v, err := scalarValue(n)
	if err != nil || v == nil {
		return nil, err
	}

	value, err := s.desc.Coerce(v, s.allowed)
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (primitiveSerializer[T]) ToNode(v any) (*node.Node, error) {
	return node.Scalar(v), nil
}

// runeSerializer writes valid code points as one-character strings.
type runeSerializer struct {
	allowed options.CategoryEnum
}

func (s runeSerializer) ToValue(n *node.Node) (any, error) {
	return primitiveSerializer[rune]{desc: primitive.Rune, allowed: s.allowed}.ToValue(n)
}

func (runeSerializer) ToNode(v any) (*node.Node, error) {
	if r, ok := v.(rune); ok && utf8.ValidRune(r) {
		return node.Scalar(string(r)), nil
	}

	return node.Scalar(v), nil
}

// stringSerializer accepts numbers and booleans as text when the matching
// textual category is allowed.
type stringSerializer struct {
	allowed options.CategoryEnum
}

func (s stringSerializer) ToValue(n *node.Node) (any, error) {
	v, err := scalarValue(n)
	if err != nil || v == nil {
		return nil, err
	}

	var category options.CategoryEnum
	switch reflect.ValueOf(v).Kind() {
	default:
		return nil, fmt.Errorf("cannot convert %T to string: %w", v, scalar.ErrUnsupportedValue)
	case reflect.String:
		return reflect.ValueOf(v).String(), nil
	case reflect.Bool:
		category = options.CategoryTextualBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		category = options.CategoryTextNumber
	}

	if !s.allowed.Has(category) {
		return nil, fmt.Errorf("cannot convert %T to string: %w", v, scalar.ErrNotAllowed)
	}

	return fmt.Sprint(v), nil
}

func (stringSerializer) ToNode(v any) (*node.Node, error) {
	return node.Scalar(v), nil
}

// unsignedSerializer reads any unsigned integer type, range checked.
type unsignedSerializer struct {
	rtype   reflect.Type
	allowed options.CategoryEnum
}

func (s unsignedSerializer) ToValue(n *node.Node) (any, error) {
	v, err := scalarValue(n)
	if err != nil || v == nil {
		return nil, err
	}

	var u uint64
	if rv := reflect.ValueOf(v); rv.CanUint() {
		u = rv.Uint()
	} else {
		i, err := scalar.Int64(v, s.allowed)
		if err != nil {
			return nil, err
		}
		if i < 0 {
			return nil, fmt.Errorf("cannot convert %T(%v) to %s: %w", v, v, s.rtype, scalar.ErrOutOfRange)
		}
		u = uint64(i)
	}

	if limit := ^uint64(0) >> (64 - s.rtype.Bits()); u > limit {
		return nil, fmt.Errorf("cannot convert %T(%v) to %s: %w", v, v, s.rtype, scalar.ErrOutOfRange)
	}

	return reflect.ValueOf(u).Convert(s.rtype).Interface(), nil
}

func (unsignedSerializer) ToNode(v any) (*node.Node, error) {
	return node.Scalar(v), nil
}

// interfaceSerializer hands out plain Go values for `any` elements.
type interfaceSerializer struct{}

func (interfaceSerializer) ToValue(n *node.Node) (any, error) {
	return n.Interface(), nil
}

func (interfaceSerializer) ToNode(v any) (*node.Node, error) {
	list, ok := v.([]any)
	if !ok {
		return node.Scalar(v), nil
	}

	out := node.List(len(list))
	for i, item := range list {
		child, err := interfaceSerializer{}.ToNode(item)
		if err != nil {
			return nil, err
		}
		out.SetChild(i, child)
	}

	return out, nil
}

// pointerSerializer reads into a freshly allocated element and writes the
// pointed-to value. Empty nodes and nil pointers map to each other.
type pointerSerializer struct {
	inner ElementSerializer
	elem  reflect.Type
}

func (s pointerSerializer) ToValue(n *node.Node) (any, error) {
	v, err := s.inner.ToValue(n)
	if err != nil || v == nil {
		return nil, err
	}

	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(s.elem) {
		return nil, fmt.Errorf("%w: %T into %s", ErrElementType, v, s.elem)
	}

	p := reflect.New(s.elem)
	p.Elem().Set(rv)
	return p.Interface(), nil
}

func (s pointerSerializer) ToNode(v any) (*node.Node, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return s.inner.ToNode(v)
	}

	if rv.IsNil() {
		return node.Empty(), nil
	}

	return s.inner.ToNode(rv.Elem().Interface())
}

// convertingSerializer serves a named type through the serializer of its
// underlying predeclared type.
type convertingSerializer struct {
	inner ElementSerializer
	rtype reflect.Type
	base  reflect.Type
}

func (s convertingSerializer) ToValue(n *node.Node) (any, error) {
	v, err := s.inner.ToValue(n)
	if err != nil || v == nil {
		return nil, err
	}

	return reflect.ValueOf(v).Convert(s.rtype).Interface(), nil
}

func (s convertingSerializer) ToNode(v any) (*node.Node, error) {
	rv := reflect.ValueOf(v)
	if rv.Type().ConvertibleTo(s.base) {
		v = rv.Convert(s.base).Interface()
	}

	return s.inner.ToNode(v)
}

var basics = map[reflect.Kind]reflect.Type{
	reflect.Bool:    reflect.TypeFor[bool](),
	reflect.Int:     reflect.TypeFor[int](),
	reflect.Int8:    reflect.TypeFor[int8](),
	reflect.Int16:   reflect.TypeFor[int16](),
	reflect.Int32:   reflect.TypeFor[int32](),
	reflect.Int64:   reflect.TypeFor[int64](),
	reflect.Uint:    reflect.TypeFor[uint](),
	reflect.Uint8:   reflect.TypeFor[uint8](),
	reflect.Uint16:  reflect.TypeFor[uint16](),
	reflect.Uint32:  reflect.TypeFor[uint32](),
	reflect.Uint64:  reflect.TypeFor[uint64](),
	reflect.Float32: reflect.TypeFor[float32](),
	reflect.Float64: reflect.TypeFor[float64](),
	reflect.String:  reflect.TypeFor[string](),
}

// predeclared returns the predeclared type sharing t's kind, nil for composite kinds.
func predeclared(t reflect.Type) reflect.Type {
	return basics[t.Kind()]
}
