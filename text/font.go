package text

import (
	"golang.org/x/image/math/fixed"
)

// GlyphID is an index into a font's glyphs, or one of the special
// values below.
type GlyphID uint32

const (
	// GlyphEmpty draws nothing. It is used for tabs, line separators and
	// inline objects.
	GlyphEmpty GlyphID = 0x0FFFFFFF

	// GlyphUnknownFlag marks a glyph standing for a character that no
	// font can render. The low bits hold the character; renderers draw a
	// box, typically showing its code point.
	GlyphUnknownFlag GlyphID = 0x10000000
)

// UnknownGlyph returns the missing glyph for r.
func UnknownGlyph(r rune) GlyphID {
	return GlyphUnknownFlag | GlyphID(r)
}

// IsUnknown reports whether g is a missing glyph.
func (g GlyphID) IsUnknown() bool {
	return g&GlyphUnknownFlag != 0
}

// Rune returns the character of a missing glyph.
func (g GlyphID) Rune() rune {
	return rune(g &^ GlyphUnknownFlag)
}

// FontMetrics are the line metrics of a font at one size, in device units.
// Ascent and Descent are both positive distances from the baseline.
// Positions are measured upward from the baseline.
type FontMetrics struct {
	Ascent, Descent, LineGap fixed.Int26_6

	UnderlinePosition, UnderlineThickness         fixed.Int26_6
	StrikethroughPosition, StrikethroughThickness fixed.Int26_6
}

// Height returns the distance between two consecutive baselines.
func (m FontMetrics) Height() fixed.Int26_6 {
	return m.Ascent + m.Descent + m.LineGap
}

// Font is a font handle as used by layout. It reports metrics and maps
// characters to glyphs; implementations that can also shape or draw
// glyphs implement TextShaper and GlyphRenderer.
//
// All sizes are in device units. Implementations must be safe for
// concurrent use.
type Font interface {
	// Metrics returns the line metrics at size.
	Metrics(size fixed.Int26_6) FontMetrics

	// GlyphForRune returns the nominal glyph of r and whether the font
	// has one.
	GlyphForRune(r rune) (GlyphID, bool)

	// GlyphExtents returns the ink rectangle of g, relative to its
	// origin on the baseline with y growing down, and its advance.
	GlyphExtents(g GlyphID, size fixed.Int26_6) (ink Rect, advance fixed.Int26_6)
}

// FontFeature is an OpenType feature setting such as liga=0.
type FontFeature struct {
	Tag   string
	Value uint32
}

// ShapeParams describe one shaping request. Text is the whole paragraph
// so that shaping sees the context around the item; only the bytes
// [Start, End) are shaped.
type ShapeParams struct {
	Text       string
	Start, End int
	Script     Script
	Language   Language
	Direction  Direction
	Size       fixed.Int26_6
	Features   []FontFeature
}

// TextShaper is implemented by fonts with their own shaping engine.
// The returned glyphs are in visual order and their clusters are byte
// offsets relative to Start.
type TextShaper interface {
	ShapeText(p ShapeParams) (*GlyphString, error)
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo moves to a new point without drawing.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return unknownStr
	}
}

// OutlineSegment is one path segment of a glyph outline.
//   - MoveTo, LineTo: Points[0] is the target point
//   - QuadTo: Points[0] is control, Points[1] is target
//   - CubicTo: Points[0], Points[1] are controls, Points[2] is target
type OutlineSegment struct {
	Op     OutlineOp
	Points [3]fixed.Point26_6
}

// Outline is a glyph outline in device units relative to the glyph
// origin, y growing down.
type Outline struct {
	Segments []OutlineSegment
}

// GlyphRenderer is implemented by fonts that can provide glyph outlines
// to a renderer.
type GlyphRenderer interface {
	GlyphOutline(g GlyphID, size fixed.Int26_6) (Outline, bool)
}
