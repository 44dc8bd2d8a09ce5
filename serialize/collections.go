package serialize

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/ItsTehBrian/Configurate/node"
	"github.com/ItsTehBrian/Configurate/options"
	"github.com/ItsTehBrian/Configurate/primitive"
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Collections converts between list nodes and collection containers. It is
// immutable after New and may be shared by concurrent conversions, as long
// as no two of them touch the same node or container.
type Collections struct {
	registry *Registry
	allowed  options.CategoryEnum
	logger   *slog.Logger
}

type Option func(*Collections)

// WithRegistry replaces the default element serializers.
func WithRegistry(r *Registry) Option {
	return func(c *Collections) { c.registry = r }
}

// WithCategories sets the scalar coercions allowed for elements. The default
// is options.CategoryDefault. It also applies to the default registry.
func WithCategories(allowed options.CategoryEnum) Option {
	return func(c *Collections) { c.allowed = allowed }
}

// WithLogger sets the logger receiving debug records for every conversion.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collections) { c.logger = logger }
}

func New(opts ...Option) *Collections {
	c := &Collections{
		allowed: options.CategoryDefault,
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.registry == nil {
		c.registry = NewRegistry(c.allowed)
	}

	return c
}

// Deserialize converts the children of n into a new container described by
// t: a []E for arrays, a *linkedhashset.Set for sets. An empty node yields
// an empty container. Errors are *ConversionError values.
func (c *Collections) Deserialize(t Type, n *node.Node) (any, error) {
	kind := Dispatch(t)
	c.logger.Debug("deserialize collection", slog.String("type", t.String()), slog.String("kind", kind.String()), slog.Int("length", n.Len()))

	v, err := converterFor(kind).deserialize(c, t, n)
	if err != nil {
		c.logger.Debug("deserialize collection failed", slog.String("type", t.String()), slog.Any("error", err))
		return nil, err
	}

	return v, nil
}

// Serialize converts container, which must match t, into a list node. A nil
// container serializes as an empty list.
func (c *Collections) Serialize(t Type, container any) (*node.Node, error) {
	kind := Dispatch(t)
	c.logger.Debug("serialize collection", slog.String("type", t.String()), slog.String("kind", kind.String()))

	n, err := converterFor(kind).serialize(c, t, container)
	if err != nil {
		c.logger.Debug("serialize collection failed", slog.String("type", t.String()), slog.Any("error", err))
		return nil, err
	}

	return n, nil
}

// elementSerializer looks elem up in the registry, falling back to this
// Collections for elements that are collections themselves.
func (c *Collections) elementSerializer(elem reflect.Type) (ElementSerializer, error) {
	s, err := c.registry.Get(elem)
	if err == nil || !errors.Is(err, ErrNoSerializer) {
		return s, err
	}

	switch {
	case elem == setType:
		return nestedSerializer{c: c, t: RawSet()}, nil
	case elem.Kind() == reflect.Slice:
		return nestedSerializer{c: c, t: ArrayOf(elem.Elem())}, nil
	}

	return nil, err
}

type converter struct {
	deserialize func(c *Collections, t Type, n *node.Node) (any, error)
	serialize   func(c *Collections, t Type, v any) (*node.Node, error)
}

func bind[C any](s strategy[C]) converter {
	return converter{
		deserialize: func(c *Collections, t Type, n *node.Node) (any, error) {
			container, err := deserializeList(c, s, t, n)
			if err != nil {
				return nil, err
			}
			return s.unwrap(container), nil
		},
		serialize: func(c *Collections, t Type, v any) (*node.Node, error) {
			container, ok := s.wrap(v, t)
			if !ok {
				return nil, &ConversionError{Type: t, Index: -1, Err: fmt.Errorf("%w: got %T", ErrContainerMismatch, v)}
			}
			return serializeList(c, s, t, container)
		},
	}
}

func converterFor(kind ContainerKind) converter {
	switch kind {
	default:
		panic("unknown container kind: " + kind.String())
	case KindUnknown:
		return converter{
			deserialize: func(_ *Collections, t Type, _ *node.Node) (any, error) {
				return nil, &ConversionError{Type: t, Index: -1, Err: ErrUnsupportedType}
			},
			serialize: func(_ *Collections, t Type, _ any) (*node.Node, error) {
				return nil, &ConversionError{Type: t, Index: -1, Err: ErrUnsupportedType}
			},
		}
	case KindObjectArray:
		return bind[reflect.Value](objectArray{})
	case KindBoolArray:
		return bind[[]bool](primitiveArray[bool]{desc: primitive.Bool})
	case KindInt8Array:
		return bind[[]int8](primitiveArray[int8]{desc: primitive.Int8})
	case KindRuneArray:
		return bind[[]rune](primitiveArray[rune]{desc: primitive.Rune})
	case KindInt16Array:
		return bind[[]int16](primitiveArray[int16]{desc: primitive.Int16})
	case KindIntArray:
		return bind[[]int](primitiveArray[int]{desc: primitive.Int})
	case KindInt64Array:
		return bind[[]int64](primitiveArray[int64]{desc: primitive.Int64})
	case KindFloat32Array:
		return bind[[]float32](primitiveArray[float32]{desc: primitive.Float32})
	case KindFloat64Array:
		return bind[[]float64](primitiveArray[float64]{desc: primitive.Float64})
	case KindSet:
		return bind[*linkedhashset.Set](orderedSet{})
	}
}

// nestedSerializer converts elements that are collections themselves.
type nestedSerializer struct {
	c *Collections
	t Type
}

func (s nestedSerializer) ToValue(n *node.Node) (any, error) {
	return s.c.Deserialize(s.t, n)
}

func (s nestedSerializer) ToNode(v any) (*node.Node, error) {
	return s.c.Serialize(s.t, v)
}

// DeserializeSlice converts n into a []E.
func DeserializeSlice[E any](c *Collections, n *node.Node) ([]E, error) {
	v, err := c.Deserialize(ArrayOf(reflect.TypeFor[E]()), n)
	if err != nil {
		return nil, err
	}

	return v.([]E), nil
}

// SerializeSlice converts s into a list node.
func SerializeSlice[E any](c *Collections, s []E) (*node.Node, error) {
	return c.Serialize(ArrayOf(reflect.TypeFor[E]()), s)
}

// DeserializeSet converts n into an ordered set of E.
func DeserializeSet[E comparable](c *Collections, n *node.Node) (*linkedhashset.Set, error) {
	v, err := c.Deserialize(SetOf[E](), n)
	if err != nil {
		return nil, err
	}

	return v.(*linkedhashset.Set), nil
}

// SerializeSet converts an ordered set of E into a list node.
func SerializeSet[E comparable](c *Collections, s *linkedhashset.Set) (*node.Node, error) {
	return c.Serialize(SetOf[E](), s)
}
