package text

import (
	"golang.org/x/image/math/fixed"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies text direction.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
	// DirectionTTB is top-to-bottom text (traditional Chinese, Japanese)
	DirectionTTB
	// DirectionBTT is bottom-to-top text (rare)
	DirectionBTT
	// DirectionWeakLTR is left-to-right unless the paragraph starts
	// with a strong right-to-left character.
	DirectionWeakLTR
	// DirectionWeakRTL is right-to-left unless the paragraph starts
	// with a strong left-to-right character.
	DirectionWeakRTL
	// DirectionNeutral asks for the direction to be detected from the
	// first strong character, falling back to left-to-right.
	DirectionNeutral
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	case DirectionTTB:
		return "TTB"
	case DirectionBTT:
		return "BTT"
	case DirectionWeakLTR:
		return "WeakLTR"
	case DirectionWeakRTL:
		return "WeakRTL"
	case DirectionNeutral:
		return "Neutral"
	default:
		return unknownStr
	}
}

// IsHorizontal returns true if the direction is horizontal.
func (d Direction) IsHorizontal() bool {
	return !d.IsVertical()
}

// IsVertical returns true if the direction is vertical (TTB or BTT).
func (d Direction) IsVertical() bool {
	return d == DirectionTTB || d == DirectionBTT
}

// strong maps weak and neutral directions to LTR or RTL.
func (d Direction) strong() Direction {
	if d == DirectionRTL || d == DirectionWeakRTL {
		return DirectionRTL
	}
	return DirectionLTR
}

// Rect is an axis aligned rectangle in device units, y growing down.
// Width may be negative for carets inside right-to-left runs.
type Rect struct {
	X, Y          fixed.Int26_6
	Width, Height fixed.Int26_6
}

// Empty reports whether r covers no area.
func (r Rect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// Union returns the smallest rectangle containing r and o. Empty
// rectangles do not contribute.
func (r Rect) Union(o Rect) Rect {
	if o.Empty() {
		return r
	}
	if r.Empty() {
		return o
	}
	r, o = r.normalized(), o.normalized()
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1 := max(r.X+r.Width, o.X+o.Width)
	y1 := max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy fixed.Int26_6) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains reports whether r contains o. Empty rectangles are contained
// everywhere.
func (r Rect) Contains(o Rect) bool {
	if o.Empty() {
		return true
	}
	r, o = r.normalized(), o.normalized()
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.Width <= r.X+r.Width && o.Y+o.Height <= r.Y+r.Height
}

func (r Rect) normalized() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// WrapMode specifies how text is wrapped when it exceeds the available width.
type WrapMode uint8

const (
	// WrapWord breaks at word boundaries. A line with no usable word
	// boundary falls back to character boundaries for that line only.
	WrapWord WrapMode = iota

	// WrapChar breaks at any line break opportunity, including inside words.
	WrapChar

	// WrapWordChar breaks at word boundaries first,
	// then falls back to character boundaries when the line would be empty.
	WrapWordChar

	// WrapNone disables wrapping; each paragraph becomes one line.
	WrapNone
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "None"
	case WrapWord:
		return "Word"
	case WrapChar:
		return "Char"
	case WrapWordChar:
		return "WordChar"
	default:
		return unknownStr
	}
}

// EllipsizeMode says where text is removed when a line does not fit.
type EllipsizeMode uint8

const (
	// EllipsizeNone never removes text.
	EllipsizeNone EllipsizeMode = iota
	// EllipsizeStart removes text from the start of the line.
	EllipsizeStart
	// EllipsizeMiddle removes text from the middle of the line.
	EllipsizeMiddle
	// EllipsizeEnd removes text from the end of the line.
	EllipsizeEnd
)

// String returns the string representation of the ellipsize mode.
func (m EllipsizeMode) String() string {
	switch m {
	case EllipsizeNone:
		return "None"
	case EllipsizeStart:
		return "Start"
	case EllipsizeMiddle:
		return "Middle"
	case EllipsizeEnd:
		return "End"
	default:
		return unknownStr
	}
}
