package draw

import (
	"image/color"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textlayout/attr"
	"github.com/gogpu/textlayout/text"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdSetColor      CommandType = iota // Set the current color
	CmdFillRect                         // Fill a run background
	CmdGlyphs                           // Draw a run of glyphs
	CmdUnderline                        // Draw an underline
	CmdStrikethrough                    // Draw a strikethrough
)

var commandTypeNames = [...]string{
	CmdSetColor:      "SetColor",
	CmdFillRect:      "FillRect",
	CmdGlyphs:        "Glyphs",
	CmdUnderline:     "Underline",
	CmdStrikethrough: "Strikethrough",
}

// String returns the name of the command type.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return "Unknown"
}

// Command is a recorded drawing operation.
type Command interface {
	Type() CommandType
}

// SetColorCommand sets the color used by the commands that follow.
type SetColorCommand struct {
	Color color.RGBA64
}

// Type implements Command.
func (SetColorCommand) Type() CommandType { return CmdSetColor }

// FillRectCommand fills a rectangle with the current color.
type FillRectCommand struct {
	Rect text.Rect
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// Glyph is a glyph placed at an absolute position: the origin of the
// glyph on the baseline, y growing down.
type Glyph struct {
	ID   text.GlyphID
	X, Y fixed.Int26_6
}

// GlyphsCommand draws glyphs of one font with the current color.
// Empty glyphs are never recorded; unknown glyphs are, so renderers can
// draw their missing-glyph boxes.
type GlyphsCommand struct {
	Font    FontRef
	Size    fixed.Int26_6
	Gravity attr.Gravity
	Glyphs  []Glyph
}

// Type implements Command.
func (GlyphsCommand) Type() CommandType { return CmdGlyphs }

// UnderlineCommand draws an underline with the current color. Rect is
// the band the decoration occupies: one line for single and low
// underlines, two lines one thickness apart for double underlines, and
// the extent of the squiggle for error underlines.
type UnderlineCommand struct {
	Style     attr.Underline
	Rect      text.Rect
	Thickness fixed.Int26_6
}

// Type implements Command.
func (UnderlineCommand) Type() CommandType { return CmdUnderline }

// StrikethroughCommand draws a strikethrough line with the current
// color.
type StrikethroughCommand struct {
	Rect text.Rect
}

// Type implements Command.
func (StrikethroughCommand) Type() CommandType { return CmdStrikethrough }
