package mapper

import (
	"fmt"

	"github.com/gnames/moviedb/pkg/schema"
)

// CardinalityError means that a tuple has a different number of fields
// than the table has columns.
type CardinalityError struct {
	Line int
	Raw  string
	Want int
	Got  int
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("line %d: expected %d fields, got %d",
		e.Line, e.Want, e.Got)
}

// CoercionError means that a field cannot be converted to the type of
// its column.
type CoercionError struct {
	Line   int
	Column string
	Kind   schema.Kind
	Value  string
	Err    error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("line %d: cannot convert %q of column '%s' to %s: %s",
		e.Line, e.Value, e.Column, e.Kind, e.Err)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}
