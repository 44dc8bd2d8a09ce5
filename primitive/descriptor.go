package primitive

import (
	"github.com/ItsTehBrian/Configurate/options"
	"github.com/ItsTehBrian/Configurate/scalar"
)

// Value is the set of Go types backing the primitive kinds.
type Value interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int | ~int64 | ~float32 | ~float64
}

// Descriptor carries everything that differs between primitive array kinds:
// the zero value stored for absent elements and the parser, narrowing
// included, applied to present ones.
type Descriptor[T Value] struct {
	Kind  KindEnum
	Zero  T
	Parse func(v any, allowed options.CategoryEnum) (T, error)
}

// Coerce places an element value into primitive storage. A nil value cannot
// be represented, so it becomes Zero instead of an error. A value already of
// type T is stored as is, whatever the allowed categories.
func (d Descriptor[T]) Coerce(v any, allowed options.CategoryEnum) (T, error) {
	if v == nil {
		return d.Zero, nil
	}

	if t, ok := v.(T); ok {
		return t, nil
	}

	return d.Parse(v, allowed)
}

var (
	Bool    = Descriptor[bool]{Kind: KindBool, Parse: scalar.Bool}
	Int8    = Descriptor[int8]{Kind: KindInt8, Parse: narrow[int8]}
	Rune    = Descriptor[rune]{Kind: KindRune, Parse: scalar.Rune}
	Int16   = Descriptor[int16]{Kind: KindInt16, Parse: narrow[int16]}
	Int     = Descriptor[int]{Kind: KindInt, Parse: scalar.Int}
	Int64   = Descriptor[int64]{Kind: KindInt64, Parse: scalar.Int64}
	Float32 = Descriptor[float32]{Kind: KindFloat32, Parse: scalar.Float32}
	Float64 = Descriptor[float64]{Kind: KindFloat64, Parse: scalar.Float64}
)

// narrow parses an int and truncates it to T exactly like a Go conversion:
// 300 becomes int8(44), 40000 becomes int16(-25536).
func narrow[T ~int8 | ~int16](v any, allowed options.CategoryEnum) (T, error) {
	i, err := scalar.Int(v, allowed)
	if err != nil {
		return 0, err
	}

	return T(i), nil
}
