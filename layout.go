package textlayout

import (
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textlayout/attr"
	"github.com/gogpu/textlayout/draw"
	"github.com/gogpu/textlayout/text"
)

// Layout is a text laid out into a box. It is immutable.
type Layout struct {
	text  string
	attrs *attr.List
	opts  options

	lines      *text.Lines
	wrapped    bool
	ellipsized bool
}

// New lays out s, styled by attrs, which may be nil.
func New(s string, attrs *attr.List, opts ...Option) *Layout {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	l := &Layout{text: s, attrs: attrs, opts: o}
	l.layout()
	return l
}

// Text returns the text of the layout.
func (l *Layout) Text() string {
	return l.text
}

// Attrs returns the attribute list of the layout, possibly nil.
func (l *Layout) Attrs() *attr.List {
	return l.attrs
}

// Lines returns the placed lines.
func (l *Layout) Lines() *text.Lines {
	return l.lines
}

// IsWrapped reports whether a line was broken because it did not fit.
func (l *Layout) IsWrapped() bool {
	return l.wrapped
}

// IsEllipsized reports whether text was removed to fit.
func (l *Layout) IsEllipsized() bool {
	return l.ellipsized
}

// Draw records the drawing commands of the layout.
func (l *Layout) Draw() *draw.Recording {
	return draw.Record(l.lines)
}

func (l *Layout) layout() {
	o := &l.opts
	b := text.NewBreaker(o.breaker...)
	b.AddText(l.text, l.attrs)
	l.lines = text.NewLines()

	limited := o.height > 0 && o.ellipsize != text.EllipsizeNone
	ellipsize := o.ellipsize
	if limited {
		ellipsize = text.EllipsizeNone
	}

	var y fixed.Int26_6
	paraStart := true
	for b.HasLine() {
		x, width := l.indent(paraStart)
		line := b.NextLine(x, width, o.wrap, ellipsize)
		last := false
		if limited && b.HasLine() {
			h := l.lineHeight(line)
			if y+2*h+o.spacing > o.height {
				b.UndoLine(line)
				line = b.NextLine(x, width, o.wrap, o.ellipsize)
				last = true
			}
		}
		paraStart = line.IsParagraphEnd

		if o.justify && width > 0 && !line.IsEllipsized && (!line.IsParagraphEnd || o.justifyLastLine) {
			line = line.Justify(width)
		}
		l.wrapped = l.wrapped || line.IsWrapped
		l.ellipsized = l.ellipsized || line.IsEllipsized

		_, logical := line.Extents()
		h := l.lineHeight(line)
		top := (h - logical.Height) / 2
		l.lines.AddLine(line, x+l.alignOffset(line, width), y+top-logical.Y)
		y += h + o.spacing

		if last {
			l.ellipsized = l.ellipsized || b.HasLine()
			break
		}
	}
	Logger().Debug("textlayout: laid out",
		"bytes", len(l.text), "lines", l.lines.Len(), "height", y-o.spacing)
}

// indent returns the x position and the width available to a line.
func (l *Layout) indent(paraStart bool) (x, width fixed.Int26_6) {
	o := &l.opts
	width = o.width
	switch {
	case o.indent > 0 && paraStart:
		x = o.indent
	case o.indent < 0 && !paraStart:
		x = -o.indent
	}
	if width > 0 {
		width = max(width-x, 1)
	}
	return x, width
}

// lineHeight returns the distance from the top of line to the top of
// the next one, without spacing.
func (l *Layout) lineHeight(line *text.Line) fixed.Int26_6 {
	_, logical := line.Extents()
	if l.opts.lineHeight > 0 {
		return fixed.Int26_6(float64(logical.Height) * l.opts.lineHeight)
	}
	return logical.Height
}

// alignOffset returns how far line is shifted right within width.
func (l *Layout) alignOffset(line *text.Line, width fixed.Int26_6) fixed.Int26_6 {
	if width <= 0 {
		return 0
	}
	space := max(width-line.Width(), 0)
	align := l.opts.align
	if align == AlignNatural {
		align = AlignLeft
		if line.Direction == text.DirectionRTL {
			align = AlignRight
		}
	}
	switch align {
	case AlignCenter:
		return space / 2
	case AlignRight:
		return space
	}
	return 0
}
