package serialize_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/ItsTehBrian/Configurate/primitive"
	"github.com/ItsTehBrian/Configurate/serialize"
	"github.com/stretchr/testify/assert"
)

func ExampleDispatch() {
	type Level int

	fmt.Println(serialize.Dispatch(serialize.TypeFor[[]string]()))
	fmt.Println(serialize.Dispatch(serialize.TypeFor[[]*time.Time]()))
	fmt.Println(serialize.Dispatch(serialize.TypeFor[[]Level]()))
	fmt.Println(serialize.Dispatch(serialize.TypeFor[[]bool]()))
	fmt.Println(serialize.Dispatch(serialize.TypeFor[[]int8]()))
	fmt.Println(serialize.Dispatch(serialize.TypeFor[[]rune]()))
	fmt.Println(serialize.Dispatch(serialize.TypeFor[[]int16]()))
	fmt.Println(serialize.Dispatch(serialize.TypeFor[[]int]()))
	fmt.Println(serialize.Dispatch(serialize.TypeFor[[]int64]()))
	fmt.Println(serialize.Dispatch(serialize.TypeFor[[]float32]()))
	fmt.Println(serialize.Dispatch(serialize.TypeFor[[]float64]()))
	fmt.Println(serialize.Dispatch(serialize.SetOf[string]()))
	fmt.Println(serialize.Dispatch(serialize.RawSet()))
	fmt.Println(serialize.Dispatch(serialize.Type{}))

	// Output:
	// KindObjectArray
	// KindObjectArray
	// KindObjectArray
	// KindBoolArray
	// KindInt8Array
	// KindRuneArray
	// KindInt16Array
	// KindIntArray
	// KindInt64Array
	// KindFloat32Array
	// KindFloat64Array
	// KindSet
	// KindSet
	// KindUnknown
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, serialize.IsObjectArray(reflect.TypeFor[[]string]()))
	assert.True(t, serialize.IsObjectArray(reflect.TypeFor[[]uint8]()))
	assert.True(t, serialize.IsObjectArray(reflect.TypeFor[[][]int]()))
	assert.False(t, serialize.IsObjectArray(reflect.TypeFor[[]int]()))
	assert.False(t, serialize.IsObjectArray(reflect.TypeFor[string]()))

	assert.True(t, serialize.IsPrimitiveArray(reflect.TypeFor[[]float32](), primitive.KindFloat32))
	assert.True(t, serialize.IsPrimitiveArray(reflect.TypeFor[[]int32](), primitive.KindRune))
	assert.False(t, serialize.IsPrimitiveArray(reflect.TypeFor[[]int32](), primitive.KindInt))
	assert.False(t, serialize.IsPrimitiveArray(reflect.TypeFor[[]any](), primitive.KindInt))
	assert.False(t, serialize.IsPrimitiveArray(reflect.TypeFor[map[int]int](), primitive.KindInt))
	assert.False(t, serialize.IsPrimitiveArray(reflect.TypeFor[[]int](), 0))

	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		slice := reflect.SliceOf(k.ReflectType())
		assert.True(t, serialize.IsPrimitiveArray(slice, k), k.String())
		assert.False(t, serialize.IsObjectArray(slice), k.String())
	}

	assert.True(t, serialize.Applies(serialize.KindInt64Array, reflect.TypeFor[[]int64]()))
	assert.False(t, serialize.Applies(serialize.KindIntArray, reflect.TypeFor[[]int64]()))

	for k := serialize.ContainerKind(0); int(k) < serialize.KindTotal; k++ {
		assert.Equal(t, k >= serialize.KindObjectArray && k < serialize.KindSet, k.IsArray(), k.String())
	}
}
