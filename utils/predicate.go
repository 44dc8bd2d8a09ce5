package utils

import "math"

// Integer matches every Go integer type, signed or unsigned.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float matches both Go floating-point types.
type Float interface {
	~float32 | ~float64
}

// Number matches every Go numeric type.
type Number interface {
	Integer | Float
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T Number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// IsWhole reports whether f has no fractional part. NaN and infinities are not whole.
func IsWhole[T Float](f T) bool {
	g := float64(f)
	return !math.IsInf(g, 0) && g == math.Trunc(g)
}
