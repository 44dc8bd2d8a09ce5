package serialize

import (
	"reflect"
	"testing"

	"github.com/ItsTehBrian/Configurate/options"
	"github.com/ItsTehBrian/Configurate/primitive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverterForIsExhaustive(t *testing.T) {
	t.Parallel()

	for k := ContainerKind(0); int(k) < KindTotal; k++ {
		assert.NotPanics(t, func() { converterFor(k) }, k.String())
	}

	assert.Panics(t, func() { converterFor(ContainerKind(KindTotal)) })
}

func TestPrimitiveArrayStrategy(t *testing.T) {
	t.Parallel()

	s := primitiveArray[int16]{desc: primitive.Int16}

	elem, err := s.elementType(TypeFor[[]int16]())
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[int16](), elem)

	c := s.createNew(3, nil)
	require.Len(t, c, 3)

	require.NoError(t, s.deserializeSingle(0, c, 70000, options.CategoryDefault))
	require.NoError(t, s.deserializeSingle(1, c, nil, options.CategoryDefault))
	require.NoError(t, s.deserializeSingle(2, c, "12", options.CategoryDefault))
	assert.Equal(t, []int16{4464, 0, 12}, c)

	var seen []any
	require.NoError(t, s.forEachElement(c, func(v any) error {
		seen = append(seen, v)
		return nil
	}))
	assert.Equal(t, []any{int16(4464), int16(0), int16(12)}, seen)

	_, err = s.elementType(SetOf[int16]())
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestObjectArrayStrategy(t *testing.T) {
	t.Parallel()

	var s objectArray

	elem, err := s.elementType(TypeFor[[]*string]())
	require.NoError(t, err)

	c := s.createNew(2, elem)
	assert.Equal(t, reflect.TypeFor[[]*string](), c.Type())

	value := "x"
	require.NoError(t, s.deserializeSingle(0, c, &value, options.CategoryNone))
	require.NoError(t, s.deserializeSingle(1, c, nil, options.CategoryNone))

	out := s.unwrap(c).([]*string)
	assert.Same(t, &value, out[0])
	assert.Nil(t, out[1])

	err = s.deserializeSingle(0, c, 12, options.CategoryNone)
	assert.ErrorIs(t, err, ErrElementType)
}

func TestOrderedSetStrategy(t *testing.T) {
	t.Parallel()

	var s orderedSet

	_, err := s.elementType(RawSet())
	require.ErrorIs(t, err, ErrRawType)

	_, err = s.elementType(SetType(reflect.TypeFor[[]int]()))
	require.ErrorIs(t, err, ErrUncomparable)

	elem, err := s.elementType(SetOf[string]())
	require.NoError(t, err)

	c := s.createNew(4, elem)

	// index is informational only
	require.NoError(t, s.deserializeSingle(7, c, "b", options.CategoryNone))
	require.NoError(t, s.deserializeSingle(7, c, "a", options.CategoryNone))
	require.NoError(t, s.deserializeSingle(7, c, "b", options.CategoryNone))
	require.NoError(t, s.deserializeSingle(7, c, nil, options.CategoryNone))
	assert.Equal(t, []any{"b", "a", nil}, c.Values())

	err = s.deserializeSingle(0, c, []int{1}, options.CategoryNone)
	assert.ErrorIs(t, err, ErrUncomparable)
}
