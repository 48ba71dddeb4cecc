package draw

import (
	"image/color"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textlayout/attr"
	"github.com/gogpu/textlayout/text"
)

// DefaultForeground is the text color of runs without a foreground
// attribute.
var DefaultForeground = color.RGBA64{A: 0xffff}

// Recording is an immutable sequence of drawing commands.
type Recording struct {
	bounds    text.Rect
	commands  []Command
	resources *ResourcePool
}

// Bounds returns the logical extents of the recorded lines, which
// contain their ink.
func (r *Recording) Bounds() text.Rect {
	return r.bounds
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Playback replays the recording to backend.
func (r *Recording) Playback(backend Backend) error {
	if backend == nil {
		return ErrNilBackend
	}
	if err := backend.Begin(r.bounds); err != nil {
		return err
	}
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SetColorCommand:
			backend.SetColor(c.Color)
		case FillRectCommand:
			backend.FillRect(c.Rect)
		case GlyphsCommand:
			backend.DrawGlyphs(r.resources.GetFont(c.Font), c.Size, c.Gravity, c.Glyphs)
		case UnderlineCommand:
			backend.DrawUnderline(c.Style, c.Rect, c.Thickness)
		case StrikethroughCommand:
			backend.DrawStrikethrough(c.Rect)
		}
	}
	return backend.End()
}

// recorder accumulates commands, dropping color changes that change
// nothing.
type recorder struct {
	commands  []Command
	resources *ResourcePool
	color     color.RGBA64
	hasColor  bool
}

func (rc *recorder) setColor(c color.RGBA64) {
	if rc.hasColor && rc.color == c {
		return
	}
	rc.color, rc.hasColor = c, true
	rc.commands = append(rc.commands, SetColorCommand{Color: c})
}

func (rc *recorder) add(c color.RGBA64, cmd Command) {
	rc.setColor(c)
	rc.commands = append(rc.commands, cmd)
}

// decoration is an underline or strikethrough waiting to be merged with
// the same decoration of the next run.
type decoration struct {
	color     color.RGBA64
	underline attr.Underline // UnderlineNone for strikethroughs
	rect      text.Rect
	thickness fixed.Int26_6
}

func (d decoration) command() Command {
	if d.underline == attr.UnderlineNone {
		return StrikethroughCommand{Rect: d.rect}
	}
	return UnderlineCommand{Style: d.underline, Rect: d.rect, Thickness: d.thickness}
}

// extends reports whether next continues d on the right.
func (d decoration) extends(next decoration) bool {
	return d.color == next.color && d.underline == next.underline &&
		d.rect.Y == next.rect.Y && d.rect.Height == next.rect.Height &&
		d.rect.X+d.rect.Width == next.rect.X
}

// Record captures the drawing commands of every line of lines, in line
// order. For each line it records the run backgrounds, then the glyphs,
// then the underlines and then the strikethroughs, visiting runs left
// to right. Adjacent runs with the same decoration share one command.
func Record(lines *text.Lines) *Recording {
	rc := &recorder{resources: NewResourcePool()}
	_, logical := lines.Extents()
	for i, n := 0, lines.Len(); i < n; i++ {
		line, pos := lines.Line(i)
		recordLine(rc, line, pos)
	}
	return &Recording{
		bounds:    logical,
		commands:  rc.commands,
		resources: rc.resources,
	}
}

func recordLine(rc *recorder, line *text.Line, pos fixed.Point26_6) {
	_, lineLogical := line.Extents()

	x := pos.X
	for _, run := range line.Runs {
		w := run.Width()
		if c, ok := colorAttr(run, attr.KindBackground); ok {
			rc.add(c, FillRectCommand{Rect: text.Rect{
				X:      x,
				Y:      pos.Y + lineLogical.Y,
				Width:  w,
				Height: lineLogical.Height,
			}})
		}
		x += w
	}

	x = pos.X
	for _, run := range line.Runs {
		fg := foreground(run)
		if glyphs := placeGlyphs(run, x, pos.Y); len(glyphs) > 0 {
			a := &run.Item.Analysis
			rc.add(fg, GlyphsCommand{
				Font:    rc.resources.AddFont(a.Font),
				Size:    a.Size,
				Gravity: run.Gravity,
				Glyphs:  glyphs,
			})
		}
		x += run.Width()
	}

	var underlines, strikes []decoration
	x = pos.X
	for _, run := range line.Runs {
		for _, d := range runDecorations(run, x, pos.Y) {
			if d.underline == attr.UnderlineNone {
				strikes = merge(strikes, d)
			} else {
				underlines = merge(underlines, d)
			}
		}
		x += run.Width()
	}
	for _, d := range append(underlines, strikes...) {
		rc.add(d.color, d.command())
	}
}

// merge appends d to ds, extending the last decoration instead when d
// continues it.
func merge(ds []decoration, d decoration) []decoration {
	if n := len(ds); n > 0 && ds[n-1].extends(d) {
		ds[n-1].rect.Width += d.rect.Width
		return ds
	}
	return append(ds, d)
}

// placeGlyphs returns the visible glyphs of run with absolute positions,
// the run starting at x on the baseline y.
func placeGlyphs(run *text.Run, x, y fixed.Int26_6) []Glyph {
	var out []Glyph
	for _, g := range run.Glyphs.Glyphs {
		if g.Glyph != text.GlyphEmpty {
			out = append(out, Glyph{ID: g.Glyph, X: x + g.XOffset, Y: y + g.YOffset})
		}
		x += g.XAdvance
	}
	return out
}

// runDecorations returns the underline and strikethrough of run.
func runDecorations(run *text.Run, x, baseline fixed.Int26_6) []decoration {
	a := &run.Item.Analysis
	m := run.Metrics()
	origin := baseline
	if at, ok := a.Attr(attr.KindRise); ok {
		baseline -= at.Value.(fixed.Int26_6)
	}
	w := run.Width()
	fg := foreground(run)

	var out []decoration
	if at, ok := a.Attr(attr.KindUnderline); ok {
		if style := at.Value.(attr.Underline); style != attr.UnderlineNone {
			c, ok := colorAttr(run, attr.KindUnderlineColor)
			if !ok {
				c = fg
			}
			out = append(out, underline(run, style, m, c, x, w, baseline, origin))
		}
	}
	if at, ok := a.Attr(attr.KindStrikethrough); ok && at.Value.(bool) {
		c, ok := colorAttr(run, attr.KindStrikethroughColor)
		if !ok {
			c = fg
		}
		thickness := m.StrikethroughThickness
		if thickness <= 0 {
			thickness = fixed.I(1)
		}
		position := m.StrikethroughPosition
		if position <= 0 {
			position = m.Ascent * 3 / 8
		}
		out = append(out, decoration{
			color:     c,
			rect:      text.Rect{X: x, Y: baseline - position, Width: w, Height: thickness},
			thickness: thickness,
		})
	}
	return out
}

// underline returns the underline of run. baseline is raised by the
// rise of the run, origin is not.
func underline(run *text.Run, style attr.Underline, m text.FontMetrics, c color.RGBA64, x, w, baseline, origin fixed.Int26_6) decoration {
	thickness := m.UnderlineThickness
	if thickness <= 0 {
		thickness = fixed.I(1)
	}
	top := baseline - m.UnderlinePosition
	height := thickness
	switch style {
	case attr.UnderlineDouble, attr.UnderlineError:
		height = 3 * thickness
	case attr.UnderlineLow:
		if ink, _ := run.Extents(); !ink.Empty() {
			top = max(top, origin+ink.Y+ink.Height+thickness)
		}
	}
	return decoration{
		color:     c,
		underline: style,
		rect:      text.Rect{X: x, Y: top, Width: w, Height: height},
		thickness: thickness,
	}
}

func foreground(run *text.Run) color.RGBA64 {
	if c, ok := colorAttr(run, attr.KindForeground); ok {
		return c
	}
	return DefaultForeground
}

func colorAttr(run *text.Run, k attr.Kind) (color.RGBA64, bool) {
	at, ok := run.Item.Analysis.Attr(k)
	if !ok {
		return color.RGBA64{}, false
	}
	c, ok := at.Value.(color.RGBA64)
	return c, ok
}
