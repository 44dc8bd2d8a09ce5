package serialize

import (
	"fmt"
	"math"
	"reflect"

	"github.com/ItsTehBrian/Configurate/options"
	"github.com/ItsTehBrian/Configurate/primitive"
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// strategy adapts one container kind to the generic list conversion.
// Implementations are stateless; C is the container as the strategy sees it.
type strategy[C any] interface {
	// elementType resolves the per-element type from the declared type.
	elementType(t Type) (reflect.Type, error)
	// createNew allocates an empty container for length elements.
	createNew(length int, elem reflect.Type) C
	// forEachElement visits elements in storage order and stops at the first error.
	forEachElement(c C, fn func(v any) error) error
	// deserializeSingle places the converted value of element index into c.
	deserializeSingle(index int, c C, v any, allowed options.CategoryEnum) error

	// wrap views a caller supplied value as C, ok is false if it does not fit t.
	wrap(v any, t Type) (c C, ok bool)
	// unwrap returns the container in the form handed back to callers.
	unwrap(c C) any
}

func componentType(t Type) (reflect.Type, error) {
	if t.Component() == nil {
		return nil, fmt.Errorf("%w: %s is not an array type", ErrUnsupportedType, t)
	}

	return t.Component(), nil
}

// objectArray stores elements of any non-primitive type in a []E built by reflection.
type objectArray struct{}

var _ strategy[reflect.Value] = objectArray{}

func (objectArray) elementType(t Type) (reflect.Type, error) {
	return componentType(t)
}

func (objectArray) createNew(length int, elem reflect.Type) reflect.Value {
	return reflect.MakeSlice(reflect.SliceOf(elem), length, length)
}

// forEachElement reports nil pointer, map and slice elements as nil.
func (objectArray) forEachElement(c reflect.Value, fn func(v any) error) error {
	for i := 0; i < c.Len(); i++ {
		var v any
		switch e := c.Index(i); e.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice:
			if !e.IsNil() {
				v = e.Interface()
			}
		default:
			v = e.Interface()
		}

		if err := fn(v); err != nil {
			return err
		}
	}

	return nil
}

// deserializeSingle stores nil as the element zero value, which is nil for
// pointer, interface, map and slice elements.
func (objectArray) deserializeSingle(index int, c reflect.Value, v any, _ options.CategoryEnum) error {
	slot := c.Index(index)
	if v == nil {
		slot.SetZero()
		return nil
	}

	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(slot.Type()) {
		return fmt.Errorf("%w: %T into %s", ErrElementType, v, slot.Type())
	}

	slot.Set(rv)
	return nil
}

func (objectArray) wrap(v any, t Type) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	switch {
	case !rv.IsValid():
		return reflect.MakeSlice(t.Container(), 0, 0), true
	case rv.Kind() == reflect.Slice && rv.Type().Elem() == t.Component():
		return rv, true
	default:
		return reflect.Value{}, false
	}
}

func (objectArray) unwrap(c reflect.Value) any {
	return c.Interface()
}

// primitiveArray stores elements unboxed in a []T. Every primitive kind is
// one instance, parameterized by its descriptor.
type primitiveArray[T primitive.Value] struct {
	desc primitive.Descriptor[T]
}

func (primitiveArray[T]) elementType(t Type) (reflect.Type, error) {
	return componentType(t)
}

// createNew ignores elem: the component type is fixed by T.
func (primitiveArray[T]) createNew(length int, _ reflect.Type) []T {
	return make([]T, length)
}

func (primitiveArray[T]) forEachElement(c []T, fn func(v any) error) error {
	for _, v := range c {
		if err := fn(v); err != nil {
			return err
		}
	}

	return nil
}

func (s primitiveArray[T]) deserializeSingle(index int, c []T, v any, allowed options.CategoryEnum) error {
	value, err := s.desc.Coerce(v, allowed)
	if err != nil {
		return err
	}

	c[index] = value
	return nil
}

func (primitiveArray[T]) wrap(v any, _ Type) ([]T, bool) {
	switch c := v.(type) {
	case []T:
		return c, true
	case nil:
		return nil, true
	}

	// named slice types such as `type Ports []int`
	target := reflect.TypeFor[[]T]()
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice && rv.Type().ConvertibleTo(target) {
		return rv.Convert(target).Interface().([]T), true
	}

	return nil, false
}

func (primitiveArray[T]) unwrap(c []T) any {
	return c
}

// orderedSet appends elements to an insertion-ordered set; duplicates keep
// the position of their first occurrence.
type orderedSet struct{}

var _ strategy[*linkedhashset.Set] = orderedSet{}

func (orderedSet) elementType(t Type) (reflect.Type, error) {
	elem := t.TypeArgument()
	switch {
	case !t.IsSet():
		return nil, fmt.Errorf("%w: %s is not a set type", ErrUnsupportedType, t)
	case elem == nil:
		return nil, ErrRawType
	case !elem.Comparable():
		return nil, fmt.Errorf("%w: %s", ErrUncomparable, elem)
	}

	return elem, nil
}

// createNew ignores length: linkedhashset takes no capacity hint.
func (orderedSet) createNew(_ int, _ reflect.Type) *linkedhashset.Set {
	return linkedhashset.New()
}

func (orderedSet) forEachElement(c *linkedhashset.Set, fn func(v any) error) error {
	it := c.Iterator()
	for it.Next() {
		if err := fn(it.Value()); err != nil {
			return err
		}
	}

	return nil
}

// deserializeSingle always appends; index does not address storage. NaN is
// equal to itself here, so repeated NaNs of one type keep a single entry.
func (orderedSet) deserializeSingle(_ int, c *linkedhashset.Set, v any, _ options.CategoryEnum) error {
	if v != nil && !reflect.TypeOf(v).Comparable() {
		return fmt.Errorf("%w: %T", ErrUncomparable, v)
	}

	if isNaN(v) && containsNaN(c, reflect.TypeOf(v)) {
		return nil
	}

	c.Add(v)
	return nil
}

func isNaN(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.CanFloat() && math.IsNaN(rv.Float())
}

func containsNaN(c *linkedhashset.Set, t reflect.Type) bool {
	it := c.Iterator()
	for it.Next() {
		if reflect.TypeOf(it.Value()) == t && isNaN(it.Value()) {
			return true
		}
	}

	return false
}

func (orderedSet) wrap(v any, _ Type) (*linkedhashset.Set, bool) {
	switch c := v.(type) {
	case *linkedhashset.Set:
		if c == nil {
			return linkedhashset.New(), true
		}
		return c, true
	case nil:
		return linkedhashset.New(), true
	default:
		return nil, false
	}
}

func (orderedSet) unwrap(c *linkedhashset.Set) any {
	return c
}
