package dump

import "fmt"

// StructureError means that a line does not have the shape its
// grammar expects.
type StructureError struct {
	Line   int
	Raw    string
	Reason string
}

func (e *StructureError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return e.Reason
}

// EncodingError is returned for an encoding the scanner cannot decode.
type EncodingError struct {
	Encoding string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("unsupported encoding %q", e.Encoding)
}

func structureError(format string, args ...any) error {
	return &StructureError{Reason: fmt.Sprintf(format, args...)}
}
