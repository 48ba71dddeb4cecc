package text

import (
	"golang.org/x/image/math/fixed"
)

// UserFont is a font whose metrics, glyphs and optionally shaping and
// outlines come from caller supplied functions. It suits inline icon
// fonts and deterministic test fonts.
//
// Extents, GlyphForRune and GlyphInfo are required. When Shape is nil,
// text is shaped one glyph per character through GlyphForRune; when
// Outline is nil, glyphs have no outline.
type UserFont struct {
	// Extents returns the line metrics at size.
	Extents func(size fixed.Int26_6) FontMetrics

	// RuneToGlyph maps a character to its glyph.
	RuneToGlyph func(r rune) (GlyphID, bool)

	// GlyphInfo returns the ink rectangle and advance of a glyph.
	GlyphInfo func(g GlyphID, size fixed.Int26_6) (ink Rect, advance fixed.Int26_6)

	// Shape, if set, shapes text itself.
	Shape func(p ShapeParams) (*GlyphString, error)

	// Outline, if set, returns glyph outlines.
	Outline func(g GlyphID, size fixed.Int26_6) (Outline, bool)
}

// Metrics implements Font.
func (f *UserFont) Metrics(size fixed.Int26_6) FontMetrics {
	return f.Extents(size)
}

// GlyphForRune implements Font.
func (f *UserFont) GlyphForRune(r rune) (GlyphID, bool) {
	return f.RuneToGlyph(r)
}

// GlyphExtents implements Font.
func (f *UserFont) GlyphExtents(g GlyphID, size fixed.Int26_6) (Rect, fixed.Int26_6) {
	return f.GlyphInfo(g, size)
}

// ShapeText implements TextShaper. It returns ErrNoShaper when Shape is
// nil.
func (f *UserFont) ShapeText(p ShapeParams) (*GlyphString, error) {
	if f.Shape == nil {
		return nil, ErrNoShaper
	}
	return f.Shape(p)
}

// GlyphOutline implements GlyphRenderer.
func (f *UserFont) GlyphOutline(g GlyphID, size fixed.Int26_6) (Outline, bool) {
	if f.Outline == nil {
		return Outline{}, false
	}
	return f.Outline(g, size)
}
