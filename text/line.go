package text

import (
	"github.com/gogpu/textlayout/attr"
	"golang.org/x/image/math/fixed"
)

// Run is an item placed on a line with its glyphs.
type Run struct {
	Item   *Item
	Glyphs *GlyphString

	// Gravity is the resolved gravity of the item. Geometry is always
	// horizontal; renderers rotate glyphs accordingly.
	Gravity attr.Gravity
}

// Width returns the advance of the run.
func (r *Run) Width() fixed.Int26_6 {
	return r.Glyphs.Width()
}

// Extents returns the ink and logical rectangles of the run relative to
// its origin on the baseline.
func (r *Run) Extents() (ink, logical Rect) {
	a := &r.Item.Analysis
	if at, ok := a.Attr(attr.KindShape); ok {
		return shapeExtents(r.Glyphs, at.Value.(attr.Shape))
	}
	ink, logical = r.Glyphs.Extents(a.Font, a.Size)
	if at, ok := a.Attr(attr.KindRise); ok {
		logical.Y -= at.Value.(fixed.Int26_6)
	}
	return ink, logical
}

// shapeExtents measures the glyphs of an inline object.
func shapeExtents(gs *GlyphString, shape attr.Shape) (ink, logical Rect) {
	logical = Rect{
		Y:      shape.Logical.Min.Y,
		Width:  gs.Width(),
		Height: shape.Logical.Max.Y - shape.Logical.Min.Y,
	}
	box := Rect{
		X:      shape.Ink.Min.X,
		Y:      shape.Ink.Min.Y,
		Width:  shape.Ink.Max.X - shape.Ink.Min.X,
		Height: shape.Ink.Max.Y - shape.Ink.Min.Y,
	}
	var x fixed.Int26_6
	for _, g := range gs.Glyphs {
		ink = ink.Union(box.Translate(x, g.YOffset))
		x += g.XAdvance
	}
	return ink, logical
}

// Metrics returns the font metrics of the run, box metrics when the
// run has no font.
func (r *Run) Metrics() FontMetrics {
	return metricsOf(r.Item.Analysis.Font, r.Item.Analysis.Size)
}

// Line is one line of text as produced by a Breaker. Runs are in visual
// order, left to right. Start and Length give the byte range of the
// line in the text it was broken from; the paragraph separator ending a
// paragraph belongs to no line.
//
// A line is immutable once returned; Justify returns a new line.
type Line struct {
	Runs []*Run

	Start, Length int

	IsWrapped        bool // broken because the text did not fit
	IsEllipsized     bool
	IsHyphenated     bool
	IsJustified      bool
	IsParagraphStart bool
	IsParagraphEnd   bool

	// Direction is the resolved direction of the paragraph, DirectionLTR
	// or DirectionRTL.
	Direction Direction

	src     *source
	metrics FontMetrics
}

// End returns the byte offset just past the line.
func (l *Line) End() int {
	return l.Start + l.Length
}

// Text returns the whole text the line was broken from. Indices taken
// and returned by line geometry are byte offsets into it.
func (l *Line) Text() string {
	return l.src.text
}

// LogAttrs returns the break attributes of the characters of the line
// and of the position after its last character.
func (l *Line) LogAttrs() []LogAttr {
	return l.src.logAttrs[l.src.charIndex(l.Start) : l.src.charIndex(l.End())+1]
}

// Width returns the advance of the line.
func (l *Line) Width() fixed.Int26_6 {
	return runsWidth(l.Runs)
}

// Metrics returns the largest ascent and descent of the fonts on the
// line. An empty line uses the font it would have had.
func (l *Line) Metrics() FontMetrics {
	if len(l.Runs) == 0 {
		return l.metrics
	}
	var m FontMetrics
	for i, r := range l.Runs {
		rm := r.Metrics()
		if i == 0 {
			m = rm
			continue
		}
		m.Ascent = max(m.Ascent, rm.Ascent)
		m.Descent = max(m.Descent, rm.Descent)
		m.LineGap = max(m.LineGap, rm.LineGap)
	}
	return m
}

// Extents returns the ink and logical rectangles of the line relative to
// its origin: the left end of the baseline. The logical rectangle spans
// the width of the line, even an empty one, and the union of the run
// heights.
func (l *Line) Extents() (ink, logical Rect) {
	m := l.Metrics()
	top, bottom := -m.Ascent, m.Descent
	var x fixed.Int26_6
	for _, r := range l.Runs {
		ri, rl := r.Extents()
		ink = ink.Union(ri.Translate(x, 0))
		top = min(top, rl.Y)
		bottom = max(bottom, rl.Y+rl.Height)
		x += r.Width()
	}
	return ink, Rect{Y: top, Width: x, Height: bottom - top}
}

func (l *Line) runText(r *Run) string {
	return l.src.text[r.Item.Offset:r.Item.End()]
}

// runAt returns the run holding the character at byte index and the x
// position of the run.
func (l *Line) runAt(index int) (*Run, fixed.Int26_6) {
	var x fixed.Int26_6
	for _, r := range l.Runs {
		if r.Item.Offset <= index && index < r.Item.End() {
			return r, x
		}
		x += r.Width()
	}
	return nil, 0
}

// validIndex reports whether index is a character boundary inside the
// line or its end.
func (l *Line) validIndex(index int) bool {
	if index < l.Start || index > l.End() {
		return false
	}
	return l.src.offsets[l.src.charIndex(index)] == index
}

// IndexToX returns the x position, relative to the line origin, of the
// leading edge of the character at byte index, or of its trailing edge
// with trailing. An index at the line end maps to the trailing edge of
// the logically last character.
func (l *Line) IndexToX(index int, trailing bool) (fixed.Int26_6, error) {
	if !l.validIndex(index) {
		return 0, &IndexError{Index: index, Start: l.Start, End: l.End()}
	}
	if index == l.End() {
		if l.Length == 0 {
			return l.edge(l.Direction), nil
		}
		prev := l.prevChar(index)
		return l.indexToX(prev, true), nil
	}
	return l.indexToX(index, trailing), nil
}

func (l *Line) indexToX(index int, trailing bool) fixed.Int26_6 {
	r, x := l.runAt(index)
	if r == nil {
		return l.edge(l.Direction)
	}
	rtl := r.Item.Analysis.Direction() == DirectionRTL
	return x + r.Glyphs.IndexToX(l.runText(r), index-r.Item.Offset, trailing, rtl)
}

// edge returns the x position where text of direction d starts.
func (l *Line) edge(d Direction) fixed.Int26_6 {
	if d == DirectionRTL {
		return l.Width()
	}
	return 0
}

// prevChar returns the start of the character before byte index.
func (l *Line) prevChar(index int) int {
	return l.src.offsets[l.src.charIndex(index)-1]
}

// dirAt returns the direction of the run holding byte index.
func (l *Line) dirAt(index int) Direction {
	if r, _ := l.runAt(index); r != nil {
		return r.Item.Analysis.Direction()
	}
	return l.Direction
}

// XToIndex returns the character under x, relative to the line origin,
// and whether x is in its trailing half. Positions outside the line map
// to its visually first or last character.
func (l *Line) XToIndex(x fixed.Int26_6) (index int, trailing bool) {
	if len(l.Runs) == 0 {
		return l.Start, false
	}
	var acc fixed.Int26_6
	for i, r := range l.Runs {
		w := r.Width()
		if x < acc+w || i == len(l.Runs)-1 {
			rtl := r.Item.Analysis.Direction() == DirectionRTL
			idx, tr := r.Glyphs.XToIndex(l.runText(r), x-acc, rtl)
			return r.Item.Offset + idx, tr
		}
		acc += w
	}
	return l.Start, false
}

// CursorPos returns the strong and weak caret rectangles at byte index,
// relative to the line origin. Both have zero width and span the line
// height. At a direction boundary the strong caret sits against text of
// the paragraph direction, the weak one against the other text; they
// coincide elsewhere.
func (l *Line) CursorPos(index int) (strong, weak Rect, err error) {
	if !l.validIndex(index) {
		return Rect{}, Rect{}, &IndexError{Index: index, Start: l.Start, End: l.End()}
	}
	sx, wx := l.caretX(index)
	m := l.Metrics()
	caret := Rect{Y: -m.Ascent, Height: m.Ascent + m.Descent}
	strong, weak = caret, caret
	strong.X, weak.X = sx, wx
	return strong, weak, nil
}

// caretX returns the strong and weak caret positions at a valid index.
func (l *Line) caretX(index int) (strong, weak fixed.Int26_6) {
	base := l.Direction.strong()

	dir1, x1 := base, l.edge(base)
	if index > l.Start {
		prev := l.prevChar(index)
		dir1, x1 = l.dirAt(prev), l.indexToX(prev, true)
	}
	x2 := l.Width() - l.edge(base)
	if index < l.End() {
		x2 = l.indexToX(index, false)
	}
	if dir1 == base {
		return x1, x2
	}
	return x2, x1
}

// Justify returns a copy of the line stretched to width. The extra
// space goes to the expandable spaces of the line, trailing white space
// excepted, or between clusters when there is none; leftmost gaps take
// the remainder so the width comes out exact. A line already at least
// width wide, or with nowhere to put space, is copied unchanged.
func (l *Line) Justify(width fixed.Int26_6) *Line {
	cp := *l
	cp.Runs = make([]*Run, len(l.Runs))
	for i, r := range l.Runs {
		rc := *r
		rc.Glyphs = r.Glyphs.Copy()
		cp.Runs[i] = &rc
	}
	extra := width - l.Width()
	if extra <= 0 {
		return &cp
	}
	gaps := cp.justifyGaps(true)
	if len(gaps) == 0 {
		gaps = cp.justifyGaps(false)
	}
	if len(gaps) == 0 {
		return &cp
	}
	n := fixed.Int26_6(len(gaps))
	each, rem := extra/n, extra%n
	for i, g := range gaps {
		add := each
		if fixed.Int26_6(i) < rem {
			add++
		}
		g.XAdvance += add
	}
	cp.IsJustified = true
	return &cp
}

// justifyGaps returns, in visual order, the glyphs whose advance
// justification widens: the last glyph of every expandable space, or
// with spaces false the last glyph of every cluster that is followed by
// another one.
func (l *Line) justifyGaps(spaces bool) []*GlyphInfo {
	attrs := l.src.logAttrs
	trailing := l.End()
	for trailing > l.Start && attrs[l.src.charIndex(l.prevChar(trailing))].IsWhiteSpace {
		trailing = l.prevChar(trailing)
	}

	var out []*GlyphInfo
	var prev *GlyphInfo
	for _, r := range l.Runs {
		gs := r.Glyphs.Glyphs
		for i := range gs {
			g := &gs[i]
			pos := r.Item.Offset + g.Cluster
			inText := pos < trailing && pos >= l.Start
			lastOfCluster := i+1 == len(gs) || gs[i+1].ClusterStart
			if spaces {
				if lastOfCluster && inText && attrs[l.src.charIndex(pos)].IsExpandableSpace {
					out = append(out, g)
				}
				continue
			}
			if g.ClusterStart && prev != nil && inText {
				out = append(out, prev)
			}
			if lastOfCluster {
				prev = g
				if !inText {
					prev = nil
				}
			}
		}
	}
	return out
}
