package serialize

import (
	"errors"
	"fmt"
)

var (
	ErrRawType           = errors.New("raw types are not supported for collections")
	ErrNotList           = errors.New("node is not a list")
	ErrNotScalar         = errors.New("node is not a scalar")
	ErrNoSerializer      = errors.New("no serializer for element type")
	ErrUnsupportedType   = errors.New("type is not a supported collection")
	ErrContainerMismatch = errors.New("value does not match the declared container type")
	ErrElementType       = errors.New("value is not assignable to the element type")
	ErrUncomparable      = errors.New("set elements must be comparable")
)

// ConversionError reports a failed collection conversion. Index is the
// offending element, or -1 when the collection as a whole was rejected.
type ConversionError struct {
	Type  Type
	Index int
	Err   error
}

func (e *ConversionError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", e.Type, e.Err)
	}

	return fmt.Sprintf("%s: element %d: %v", e.Type, e.Index, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
