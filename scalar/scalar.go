package scalar

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ItsTehBrian/Configurate/options"
	"github.com/ItsTehBrian/Configurate/utils"
)

var (
	ErrUnsupportedValue = errors.New("unsupported value")
	ErrOutOfRange       = errors.New("value out of range")
	ErrFractional       = errors.New("value has a fractional part")
	ErrNotAllowed       = errors.New("conversion category not allowed")
)

func fail(v any, target string, err error) error {
	return fmt.Errorf("cannot convert %T(%v) to %s: %w", v, v, target, err)
}

// Bool converts v to a boolean.
func Bool(v any, allowed options.CategoryEnum) (bool, error) {
	const target = "bool"

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	default:
		return false, fail(v, target, ErrUnsupportedValue)

	case reflect.Bool:
		return rv.Bool(), nil

	case reflect.String:
		if !allowed.Has(options.CategoryTextualBool) {
			return false, fail(v, target, ErrNotAllowed)
		}

		switch strings.ToLower(strings.TrimSpace(rv.String())) {
		default:
			return false, fail(v, target, ErrUnsupportedValue)
		case "true", "yes", "on", "t", "y", "1":
			return true, nil
		case "false", "no", "off", "f", "n", "0":
			return false, nil
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !allowed.Has(options.CategoryNumericBool) {
			return false, fail(v, target, ErrNotAllowed)
		}

		// 0, 1 - valid, other numbers is error
		switch i, ok := integral(rv); {
		case ok && i == 0:
			return false, nil
		case ok && i == 1:
			return true, nil
		default:
			return false, fail(v, target, ErrOutOfRange)
		}
	}
}

// Int converts v to a platform sized int.
func Int(v any, allowed options.CategoryEnum) (int, error) {
	i, err := integer(v, allowed, strconv.IntSize, "int")
	return int(i), err
}

// Int64 converts v to an int64.
func Int64(v any, allowed options.CategoryEnum) (int64, error) {
	return integer(v, allowed, 64, "int64")
}

// Float64 converts v to a float64.
func Float64(v any, allowed options.CategoryEnum) (float64, error) {
	return floating(v, allowed, 64, "float64")
}

// Float32 converts v to a float32. Finite values beyond the float32 range are rejected.
func Float32(v any, allowed options.CategoryEnum) (float32, error) {
	f, err := floating(v, allowed, 32, "float32")
	if err != nil {
		return 0, err
	}

	if !math.IsInf(f, 0) && !math.IsNaN(f) && !utils.IsInRange(-math.MaxFloat32, f, math.MaxFloat32) {
		return 0, fail(v, "float32", ErrOutOfRange)
	}

	return float32(f), nil
}

// Rune converts v to a single Unicode code point.
func Rune(v any, allowed options.CategoryEnum) (rune, error) {
	const target = "rune"

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	default:
		return 0, fail(v, target, ErrUnsupportedValue)

	case reflect.String:
		s := rv.String()
		if utf8.RuneCountInString(s) != 1 {
			return 0, fail(v, target, ErrUnsupportedValue)
		}

		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size < 2 {
			return 0, fail(v, target, ErrUnsupportedValue)
		}
		return r, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !allowed.Has(options.CategoryNumericChar) {
			return 0, fail(v, target, ErrNotAllowed)
		}

		i, ok := integral(rv)
		if !ok || !utils.IsInRange(0, i, unicode.MaxRune) {
			return 0, fail(v, target, ErrOutOfRange)
		}
		return rune(i), nil
	}
}

// integer converts v to a signed integer of the given width, returned widened to int64.
func integer(v any, allowed options.CategoryEnum, bits int, target string) (int64, error) {
	lo, hi := int64(math.MinInt64)>>(64-bits), int64(math.MaxInt64)>>(64-bits)

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	default:
		return 0, fail(v, target, ErrUnsupportedValue)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if !utils.IsInRange(lo, i, hi) {
			return 0, fail(v, target, ErrOutOfRange)
		}
		return i, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > uint64(hi) {
			return 0, fail(v, target, ErrOutOfRange)
		}
		return int64(u), nil

	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		switch {
		case math.IsNaN(f):
			return 0, fail(v, target, ErrUnsupportedValue)
		case !math.IsInf(f, 0) && !utils.IsWhole(f):
			if !allowed.Has(options.CategoryUnsafeNumber) {
				return 0, fail(v, target, ErrFractional)
			}
			f = math.Trunc(f)
		}

		// -lo is 2^(bits-1) and exactly representable, hi is not
		if f < float64(lo) || f >= -float64(lo) {
			return 0, fail(v, target, ErrOutOfRange)
		}
		return int64(f), nil

	case reflect.String:
		if !allowed.Has(options.CategoryTextNumber) {
			return 0, fail(v, target, ErrNotAllowed)
		}

		i, err := strconv.ParseInt(strings.TrimSpace(rv.String()), 0, bits)
		if err != nil {
			return 0, fail(v, target, err)
		}
		return i, nil
	}
}

func floating(v any, allowed options.CategoryEnum, bits int, target string) (float64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	default:
		return 0, fail(v, target, ErrUnsupportedValue)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil

	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil

	case reflect.String:
		if !allowed.Has(options.CategoryTextNumber) {
			return 0, fail(v, target, ErrNotAllowed)
		}

		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), bits)
		if err != nil {
			return 0, fail(v, target, err)
		}
		return f, nil
	}
}

// integral reads an integer of any kind as int64; ok is false when an unsigned value does not fit.
func integral(rv reflect.Value) (int64, bool) {
	if rv.CanInt() {
		return rv.Int(), true
	}

	u := rv.Uint()
	return int64(u), u <= math.MaxInt64
}
