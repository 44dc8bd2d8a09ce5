// Package scalar converts loosely typed configuration values into Go
// primitives.
//
// Configuration sources rarely agree on how a scalar is spelled: YAML hands
// out int and float64, environment-style sources hand out strings, and
// callers may store any named numeric type. Each parser accepts the exact
// target representation unconditionally and everything else only when the
// matching options.CategoryEnum flag is allowed:
//
//	CategoryTextNumber   "42", "0x2a", "1.5"   -> int, int64, float32, float64
//	CategoryUnsafeNumber 2.7                    -> int 2 (otherwise ErrFractional)
//	CategoryNumericBool  0, 1                   -> bool
//	CategoryTextualBool  "yes", "off", "t"      -> bool
//	CategoryNumericChar  97                     -> rune 'a'
//
// Parsers never substitute defaults: every rejected value is reported as an
// error wrapping one of the sentinel errors below.
package scalar
