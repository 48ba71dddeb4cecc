package attr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the attr package.
var (
	// ErrInvalidRange is returned for an attribute whose start is negative
	// or greater than its end.
	ErrInvalidRange = errors.New("attr: invalid range")

	// ErrUnknownKind is returned for an attribute kind outside the known set.
	ErrUnknownKind = errors.New("attr: unknown kind")

	// ErrInvalidValue is returned when an attribute value has the wrong
	// type for its kind.
	ErrInvalidValue = errors.New("attr: invalid value")
)

// ParseError reports a malformed line in the textual form of an
// attribute list or tab array.
type ParseError struct {
	Line int // 1-based
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("attr: line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }
