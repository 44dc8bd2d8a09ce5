package options

// CategoryEnum is a set of scalar coercions a conversion is allowed to perform
// beyond reading a value of the exact target type.
type CategoryEnum int

const (
	CategoryUnsafeNumber CategoryEnum = 1 << iota // float -> int with truncation of the fractional part
	CategoryTextNumber                            // string -> int, float: textual number representation
	CategoryNumericBool                           // int -> bool: 0, 1 representation of boolean values
	CategoryTextualBool                           // string -> bool: yes, no, on, off, true, false representation of boolean values
	CategoryNumericChar                           // int -> rune: code point representation of characters

	CategoryAll     CategoryEnum = (1 << iota) - 1                      // all categories combined
	CategoryNone    CategoryEnum = 0                                    // no categories selected
	CategoryDefault              = CategoryAll &^ CategoryUnsafeNumber // everything lossless
)

// Has reports whether every category in c is allowed.
func (e CategoryEnum) Has(c CategoryEnum) bool {
	return e&c == c
}
