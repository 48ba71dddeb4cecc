package text

import (
	"sort"
	"unicode/utf8"

	"golang.org/x/image/math/fixed"
)

// GlyphInfo is one positioned glyph.
type GlyphInfo struct {
	Glyph GlyphID

	// Cluster is the byte offset, relative to the start of the item, of
	// the first character of the cluster this glyph belongs to.
	Cluster int

	XAdvance, YAdvance fixed.Int26_6

	// XOffset and YOffset move the glyph from its pen position; y grows down.
	XOffset, YOffset fixed.Int26_6

	// ClusterStart is set on the first glyph, in visual order, of every cluster.
	ClusterStart bool
}

// GlyphString holds the glyphs of one item in visual order. Cluster
// offsets ascend for left-to-right items and descend for right-to-left
// ones.
type GlyphString struct {
	Glyphs []GlyphInfo
}

// Len returns the number of glyphs.
func (gs *GlyphString) Len() int {
	if gs == nil {
		return 0
	}
	return len(gs.Glyphs)
}

// Width returns the sum of the horizontal advances.
func (gs *GlyphString) Width() fixed.Int26_6 {
	var w fixed.Int26_6
	for _, g := range gs.Glyphs {
		w += g.XAdvance
	}
	return w
}

// Copy returns a deep copy of gs.
func (gs *GlyphString) Copy() *GlyphString {
	if gs == nil {
		return nil
	}
	return &GlyphString{Glyphs: append([]GlyphInfo(nil), gs.Glyphs...)}
}

// Extents computes the ink and logical rectangles of the glyphs drawn
// with font at size, relative to the origin of the first glyph on the
// baseline. A nil font measures every glyph as a missing glyph box.
func (gs *GlyphString) Extents(font Font, size fixed.Int26_6) (ink, logical Rect) {
	m := metricsOf(font, size)
	logical = Rect{Y: -m.Ascent, Width: gs.Width(), Height: m.Ascent + m.Descent}
	var x fixed.Int26_6
	for _, g := range gs.Glyphs {
		var gi Rect
		switch {
		case g.Glyph == GlyphEmpty:
		case g.Glyph.IsUnknown() || font == nil:
			gi = unknownBoxInk(m, g.XAdvance)
		default:
			gi, _ = font.GlyphExtents(g.Glyph, size)
		}
		ink = ink.Union(gi.Translate(x+g.XOffset, g.YOffset))
		x += g.XAdvance
	}
	return ink, logical
}

// unknownBoxInk is the ink of a missing glyph box with advance adv.
func unknownBoxInk(m FontMetrics, adv fixed.Int26_6) Rect {
	pad := adv / 10
	return Rect{X: pad, Y: -m.Ascent + pad, Width: adv - 2*pad, Height: m.Ascent - pad}
}

// metricsOf returns the metrics of font, or box metrics derived from
// size when font is nil.
func metricsOf(font Font, size fixed.Int26_6) FontMetrics {
	if font != nil {
		return font.Metrics(size)
	}
	return boxMetrics(size)
}

func boxMetrics(size fixed.Int26_6) FontMetrics {
	return FontMetrics{
		Ascent:                 size * 4 / 5,
		Descent:                size / 5,
		UnderlinePosition:      -size / 10,
		UnderlineThickness:     max(size/20, 1),
		StrikethroughPosition:  size * 3 / 10,
		StrikethroughThickness: max(size/20, 1),
	}
}

// cluster is the visual span of one cluster.
type cluster struct {
	start, end  int // byte range in the item text
	first, last int // glyph range [first, last)
	x, width    fixed.Int26_6
}

// clusters groups the glyphs into clusters in visual order. n is the
// length of the item text.
func (gs *GlyphString) clusters(n int) []cluster {
	var out []cluster
	var x fixed.Int26_6
	for i := 0; i < len(gs.Glyphs); {
		c := cluster{start: gs.Glyphs[i].Cluster, first: i, x: x}
		for i < len(gs.Glyphs) && gs.Glyphs[i].Cluster == c.start {
			c.width += gs.Glyphs[i].XAdvance
			i++
		}
		c.last = i
		x += c.width
		out = append(out, c)
	}
	starts := make([]int, len(out))
	for i, c := range out {
		starts[i] = c.start
	}
	sort.Ints(starts)
	for i := range out {
		j := sort.SearchInts(starts, out[i].start)
		for j < len(starts) && starts[j] == out[i].start {
			j++
		}
		out[i].end = n
		if j < len(starts) {
			out[i].end = starts[j]
		}
	}
	return out
}

// LogicalWidths returns the advance of every rune of text, the item
// text gs was shaped from, in logical order. The width of a cluster is
// shared equally by its characters.
func (gs *GlyphString) LogicalWidths(text string) []fixed.Int26_6 {
	widths := make([]fixed.Int26_6, utf8.RuneCountInString(text))
	runeIndex := runeIndexer(text)
	for _, c := range gs.clusters(len(text)) {
		first, last := runeIndex(c.start), runeIndex(c.end)
		if last <= first {
			continue
		}
		n := fixed.Int26_6(last - first)
		for k := first; k < last; k++ {
			widths[k] = c.width / n
		}
		widths[first] += c.width - c.width/n*n
	}
	return widths
}

// runeIndexer returns a function mapping byte offsets of text to rune
// indices.
func runeIndexer(text string) func(int) int {
	return func(b int) int {
		if b >= len(text) {
			return utf8.RuneCountInString(text)
		}
		return utf8.RuneCountInString(text[:b])
	}
}

// IndexToX returns the x position of the leading (or, with trailing,
// the trailing) edge of the character at byte index of text.
func (gs *GlyphString) IndexToX(text string, index int, trailing, rtl bool) fixed.Int26_6 {
	width := gs.Width()
	if index >= len(text) {
		if rtl {
			return 0
		}
		return width
	}
	for _, c := range gs.clusters(len(text)) {
		if index < c.start || index >= c.end {
			continue
		}
		n := utf8.RuneCountInString(text[c.start:c.end])
		k := utf8.RuneCountInString(text[c.start:index])
		if trailing {
			k++
		}
		off := c.width * fixed.Int26_6(k) / fixed.Int26_6(max(n, 1))
		if rtl {
			return c.x + c.width - off
		}
		return c.x + off
	}
	if rtl {
		return width
	}
	return 0
}

// XToIndex maps an x position to the character of text under it and
// whether x is in its trailing half. Positions left of the glyphs map
// to the visually first character, positions right of them to the last.
func (gs *GlyphString) XToIndex(text string, x fixed.Int26_6, rtl bool) (index int, trailing bool) {
	cs := gs.clusters(len(text))
	if len(cs) == 0 {
		return 0, false
	}
	if x < 0 {
		c := cs[0]
		if rtl {
			return lastRuneStart(text, c.start, c.end), true
		}
		return c.start, false
	}
	for _, c := range cs {
		if x >= c.x+c.width {
			continue
		}
		n := utf8.RuneCountInString(text[c.start:c.end])
		if n == 0 || c.width == 0 {
			return c.start, false
		}
		d := x - c.x
		if rtl {
			d = c.width - d
		}
		k := int(d * fixed.Int26_6(n) / c.width)
		k = min(k, n-1)
		charW := c.width / fixed.Int26_6(n)
		rest := d - charW*fixed.Int26_6(k)
		return nthRuneStart(text, c.start, k), rest*2 >= charW
	}
	c := cs[len(cs)-1]
	if rtl {
		return c.start, false
	}
	return lastRuneStart(text, c.start, c.end), true
}

func nthRuneStart(text string, start, k int) int {
	i := start
	for ; k > 0 && i < len(text); k-- {
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return i
}

func lastRuneStart(text string, start, end int) int {
	if end <= start {
		return start
	}
	_, size := utf8.DecodeLastRuneInString(text[start:end])
	return end - size
}
