package draw

import (
	"image/color"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textlayout/attr"
	"github.com/gogpu/textlayout/text"
)

// Backend is a renderer a Recording can be replayed to. Positions are
// in the coordinate space of the recorded Lines, y growing down.
type Backend interface {
	// Begin starts a playback covering bounds.
	Begin(bounds text.Rect) error

	// End finishes the playback.
	End() error

	// SetColor sets the color of the drawing calls that follow.
	SetColor(c color.RGBA64)

	// FillRect fills r.
	FillRect(r text.Rect)

	// DrawGlyphs draws glyphs of font at size. font is nil for text no
	// font covers; glyphs are then unknown glyphs.
	DrawGlyphs(font text.Font, size fixed.Int26_6, gravity attr.Gravity, glyphs []Glyph)

	// DrawUnderline draws an underline of the given style in the band r.
	DrawUnderline(style attr.Underline, r text.Rect, thickness fixed.Int26_6)

	// DrawStrikethrough draws a strikethrough line filling r.
	DrawStrikethrough(r text.Rect)
}
