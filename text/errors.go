package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrNoLines is returned by geometry queries on an empty Lines.
	ErrNoLines = errors.New("text: no lines")

	// ErrLineNotInLines is returned when a query names a line that was
	// not added to the Lines it is asked of.
	ErrLineNotInLines = errors.New("text: line does not belong to lines")

	// ErrNoShaper is returned by TextShaper implementations that cannot
	// shape after all; the caller then maps characters to glyphs itself.
	ErrNoShaper = errors.New("text: font has no shaper")

	// ErrInvalidIndex is matched by every IndexError.
	ErrInvalidIndex = errors.New("text: invalid index")
)

// IndexError reports a byte index outside [Start, End] or not on a
// character boundary.
type IndexError struct {
	Index      int
	Start, End int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("text: index %d outside [%d, %d] or not on a character boundary", e.Index, e.Start, e.End)
}

// Is makes errors.Is(err, ErrInvalidIndex) hold for every IndexError.
func (e *IndexError) Is(target error) bool {
	return target == ErrInvalidIndex
}
