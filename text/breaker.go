package text

import (
	"unicode/utf8"

	"github.com/gogpu/textlayout/attr"
	"golang.org/x/image/math/fixed"
)

// paragraph is a paragraph of a source text.
type paragraph struct {
	start, end int // content bytes; end excludes the separator
	next       int // start of the following paragraph
	dir        Direction
}

// source is a text handed to AddText, with its analysis.
type source struct {
	text       string
	offsets    []int // byte offset of every character, then len(text)
	logAttrs   []LogAttr
	paragraphs []paragraph
	items      []*Item
}

// charIndex returns the index of the character starting at byte b.
func (s *source) charIndex(b int) int {
	return runeAt(s.offsets, b)
}

// breakerState is what UndoLine restores.
type breakerState struct {
	sources []*source
	para    int
	pos     int
	items   []*Item
}

// Breaker breaks text into lines. Add texts with AddText, then call
// NextLine while HasLine reports true:
//
//	b := text.NewBreaker(text.WithFontLookup(lookup))
//	b.AddText(s, attrs)
//	for b.HasLine() {
//		line := b.NextLine(0, width, text.WrapWord, text.EllipsizeNone)
//		...
//	}
//
// Every paragraph yields at least one line, so an empty text yields one
// empty line. A text ending with a paragraph separator yields an empty
// last line.
//
// A Breaker is not safe for concurrent use. Breakers on different
// goroutines must not share a shaper or font lookup that is not safe
// for concurrent use.
type Breaker struct {
	cfg breakerConfig

	sources []*source // pending texts, the first is being broken
	para    int       // current paragraph of sources[0]
	pos     int       // next byte of sources[0] to place
	items   []*Item   // unplaced items of the current paragraph and after

	shaped map[*Item]*GlyphString

	last *Line
	undo breakerState
}

// NewBreaker returns a breaker with no text.
func NewBreaker(opts ...BreakerOption) *Breaker {
	cfg := defaultBreakerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Breaker{cfg: cfg, shaped: make(map[*Item]*GlyphString)}
}

// AddText queues text, styled by attrs, for breaking. attrs may be nil.
// Text is analyzed immediately; shaping happens as lines are produced.
func (b *Breaker) AddText(text string, attrs *attr.List) {
	src := b.analyze(text, attrs)
	b.sources = append(b.sources, src)
	if len(b.sources) == 1 {
		b.startSource()
	}
}

// HasLine reports whether NextLine has a line to return.
func (b *Breaker) HasLine() bool {
	return len(b.sources) > 0
}

func (b *Breaker) startSource() {
	src := b.sources[0]
	b.para = 0
	b.pos = src.paragraphs[0].start
	b.items = src.items
	clear(b.shaped)
}

func (b *Breaker) analyze(text string, attrs *attr.List) *source {
	src := &source{text: text, paragraphs: splitParagraphs(text)}
	_, src.offsets = decodeRunes(text)

	overrides := directionOverrides(attrs)
	levels := make([]uint8, 0, len(src.offsets))
	for i := range src.paragraphs {
		p := &src.paragraphs[i]
		lv, dir := ResolveLevels(text[p.start:p.next], b.cfg.direction, clipOverrides(overrides, p.start, p.next)...)
		p.dir = dir
		levels = append(levels, lv...)
	}

	src.items = Itemize(text, attrs, levels, ItemizeParams{
		Lookup:      b.cfg.lookup,
		Font:        b.cfg.font,
		Language:    b.cfg.language,
		Gravity:     b.cfg.gravity,
		GravityHint: b.cfg.gravityHint,
	})
	src.logAttrs = ComputeLogAttrs(text, b.cfg.language, src.items, b.cfg.dict)

	Logger().Debug("text: breaker added text",
		"bytes", len(text), "paragraphs", len(src.paragraphs), "items", len(src.items))
	return src
}

// splitParagraphs splits text at paragraph separators. There is always
// a last paragraph, empty when text is empty or ends with a separator.
func splitParagraphs(text string) []paragraph {
	var paras []paragraph
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isParagraphSeparator(r) {
			i += size
			continue
		}
		next := i + size
		if r == '\r' && next < len(text) && text[next] == '\n' {
			next++
		}
		paras = append(paras, paragraph{start: start, end: i, next: next})
		start, i = next, next
	}
	return append(paras, paragraph{start: start, end: len(text), next: len(text)})
}

// isParagraphSeparator reports whether r ends a paragraph.
func isParagraphSeparator(r rune) bool {
	switch r {
	case '\n', '\r', 0x85, 0x2029:
		return true
	}
	return false
}

// directionOverrides converts the direction attributes of attrs.
func directionOverrides(attrs *attr.List) []DirectionOverride {
	var out []DirectionOverride
	for _, a := range attrs.Attributes() {
		if a.Kind != attr.KindDirection {
			continue
		}
		out = append(out, DirectionOverride{
			Start: a.Start,
			End:   a.End,
			RTL:   a.Value.(attr.BidiOverride) == attr.OverrideRTL,
		})
	}
	return out
}

// clipOverrides restricts overrides to [start, end) and makes them
// relative to start.
func clipOverrides(overrides []DirectionOverride, start, end int) []DirectionOverride {
	var out []DirectionOverride
	for _, o := range overrides {
		s, e := max(o.Start, start), min(o.End, end)
		if s < e {
			out = append(out, DirectionOverride{Start: s - start, End: e - start, RTL: o.RTL})
		}
	}
	return out
}

func (b *Breaker) state() breakerState {
	return breakerState{sources: b.sources, para: b.para, pos: b.pos, items: b.items}
}

// glyphs returns the shaped glyphs of item, shaping it on first use.
func (b *Breaker) glyphs(src *source, item *Item) *GlyphString {
	gs, ok := b.shaped[item]
	if !ok {
		gs = b.cfg.shaper.Shape(src.text, item)
		b.shaped[item] = gs
	}
	return gs
}

// NextLine breaks the next line. x is the position the line will be
// placed at, used for tab stops. width is the space available; zero or
// less means unlimited. With an ellipsize mode other than
// EllipsizeNone, the rest of the paragraph is placed on the line and
// text is removed until it fits.
//
// Every line of a non-empty paragraph holds at least one character,
// however narrow width is. NextLine returns nil when HasLine is false.
func (b *Breaker) NextLine(x, width fixed.Int26_6, wrap WrapMode, ellipsize EllipsizeMode) *Line {
	if !b.HasLine() {
		return nil
	}
	b.undo = b.state()
	src := b.sources[0]
	para := src.paragraphs[b.para]

	line := &Line{
		src:              src,
		Start:            b.pos,
		Direction:        para.dir,
		IsParagraphStart: b.pos == para.start,
	}

	var items []*Item
	for _, it := range b.items {
		if it.Offset >= para.end {
			break
		}
		items = append(items, it)
	}

	end := para.end
	if len(items) > 0 {
		end = b.breakPoint(src, items, para, x, width, wrap, ellipsize, line)
	}
	line.Length = end - line.Start
	line.IsParagraphEnd = end == para.end

	runs, rest := b.takeRuns(src, items, end)
	if line.IsWrapped {
		runs = b.resetTrailingLevels(src, runs, para)
	}
	b.placeTabs(src, runs, x)
	if line.IsHyphenated {
		appendHyphen(runs[len(runs)-1])
	}
	if ellipsize != EllipsizeNone && width > 0 && runsWidth(runs) > width {
		runs = b.ellipsize(src, runs, width, ellipsize)
		line.IsEllipsized = true
	}
	line.Runs = reorderRuns(runs)
	line.metrics = b.lineMetrics(src, para)

	if line.IsParagraphEnd {
		b.nextParagraph()
	} else {
		b.pos = end
		b.items = append(rest, b.items[len(items):]...)
	}
	b.last = line

	Logger().Debug("text: line broken",
		"start", line.Start, "length", line.Length, "wrapped", line.IsWrapped,
		"hyphenated", line.IsHyphenated, "ellipsized", line.IsEllipsized)
	return line
}

// nextParagraph moves past the current paragraph, and past the current
// source after its last paragraph.
func (b *Breaker) nextParagraph() {
	src := b.sources[0]
	next := src.paragraphs[b.para].next
	b.para++
	if b.para == len(src.paragraphs) {
		b.sources = b.sources[1:]
		if len(b.sources) > 0 {
			b.startSource()
		}
		return
	}
	i := 0
	for i < len(b.items) && b.items[i].Offset < next {
		i++
	}
	b.items = b.items[i:]
	b.pos = next
}

// UndoLine returns the content of line to the breaker so it can be
// broken again, for instance with another width. Only the line returned
// by the latest NextLine call can be undone, and only once; UndoLine
// reports false for any other line.
func (b *Breaker) UndoLine(line *Line) bool {
	if line == nil || line != b.last {
		return false
	}
	b.sources = b.undo.sources
	b.para = b.undo.para
	b.pos = b.undo.pos
	b.items = b.undo.items
	b.last = nil
	Logger().Debug("text: line undone", "start", line.Start)
	return true
}

// breakPoint decides where the line starting at b.pos ends, setting the
// wrap and hyphen flags of line.
func (b *Breaker) breakPoint(src *source, items []*Item, para paragraph, x, width fixed.Int26_6,
	wrap WrapMode, ellipsize EllipsizeMode, line *Line) int {
	first := src.charIndex(b.pos)
	last := src.charIndex(para.end)

	// Character widths up to the paragraph end or the first mandatory
	// break inside it.
	widths := make([]fixed.Int26_6, 0, last-first)
	itemOf := make([]*Item, 0, last-first)
	var acc fixed.Int26_6
	for _, it := range items {
		gs := b.glyphs(src, it)
		ws := gs.LogicalWidths(src.text[it.Offset:it.End()])
		for k := range ws {
			if src.text[src.offsets[it.CharOffset+k]] == '\t' {
				ws[k] = b.tabWidth(it, x+acc)
			}
			widths = append(widths, ws[k])
			itemOf = append(itemOf, it)
			acc += ws[k]
		}
	}
	n := len(widths)
	for k := 1; k < n; k++ {
		if src.logAttrs[first+k].IsMandatoryBreak {
			n = k
			break
		}
	}

	prefix := make([]fixed.Int26_6, n+1)
	trailing := make([]fixed.Int26_6, n+1) // width of the white space run ending at k
	for k := 0; k < n; k++ {
		prefix[k+1] = prefix[k] + widths[k]
		if src.logAttrs[first+k].IsWhiteSpace {
			trailing[k+1] = trailing[k] + widths[k]
		}
	}
	end := func(k int) int { return src.offsets[first+k] }

	if width <= 0 || wrap == WrapNone || ellipsize != EllipsizeNone || prefix[n]-trailing[n] <= width {
		return end(n)
	}

	hyphenates := func(k int) bool {
		return src.logAttrs[first+k].BreakInsertsHyphen && insertsHyphens(itemOf[k-1])
	}
	fits := func(k int) bool {
		w := prefix[k] - trailing[k]
		if hyphenates(k) {
			w += hyphenGlyph(&itemOf[k-1].Analysis).XAdvance
		}
		return w <= width
	}
	pick := func(allowed func(a *LogAttr) bool) int {
		for k := n - 1; k >= 1; k-- {
			if allowed(&src.logAttrs[first+k]) && fits(k) {
				return k
			}
		}
		return 0
	}
	lineBreak := func(a *LogAttr) bool { return a.IsLineBreak }
	charBreak := func(a *LogAttr) bool { return a.IsCharBreak }

	k := 0
	if wrap != WrapChar {
		k = pick(lineBreak)
	}
	if k == 0 {
		k = pick(charBreak)
	}
	if k == 0 {
		// Nothing fits: take one cluster.
		k = 1
		for k < n && !src.logAttrs[first+k].IsCharBreak {
			k++
		}
	}
	if k < n {
		line.IsWrapped = true
		line.IsHyphenated = hyphenates(k)
	}
	return end(k)
}

// takeRuns turns the items before byte end into runs, splitting the
// item that crosses end. It returns the runs and the unplaced rest of
// the split item.
func (b *Breaker) takeRuns(src *source, items []*Item, end int) (runs []*Run, rest []*Item) {
	for i, it := range items {
		if it.Offset >= end {
			return runs, items[i:]
		}
		if it.End() > end {
			head, tail := splitItem(src.text, it, end)
			runs = append(runs, b.newRun(src, head))
			return runs, append([]*Item{tail}, items[i+1:]...)
		}
		runs = append(runs, b.newRun(src, it))
	}
	return runs, nil
}

func (b *Breaker) newRun(src *source, it *Item) *Run {
	return &Run{Item: it, Glyphs: b.glyphs(src, it).Copy(), Gravity: it.Analysis.Gravity}
}

// splitItem splits it at byte offset at of text.
func splitItem(text string, it *Item, at int) (head, tail *Item) {
	return it.Split(at-it.Offset, utf8.RuneCountInString(text[it.Offset:at]))
}

// resetTrailingLevels gives the white space at the end of a wrapped
// line the paragraph level.
func (b *Breaker) resetTrailingLevels(src *source, runs []*Run, para paragraph) []*Run {
	base := uint8(0)
	if para.dir == DirectionRTL {
		base = 1
	}
	lastRun := runs[len(runs)-1]
	it := lastRun.Item
	if it.Analysis.Level == base {
		return runs
	}
	ws := it.End()
	for ws > it.Offset {
		_, size := utf8.DecodeLastRuneInString(src.text[it.Offset:ws])
		if !src.logAttrs[src.charIndex(ws-size)].IsWhiteSpace {
			break
		}
		ws -= size
	}
	if ws == it.End() {
		return runs
	}
	runs = runs[:len(runs)-1]
	if ws > it.Offset {
		head, tail := splitItem(src.text, it, ws)
		runs = append(runs, b.newRun(src, head))
		it = tail
	} else {
		cp := *it
		it = &cp
	}
	it.Analysis.Level = base
	return append(runs, b.newRun(src, it))
}

// placeTabs sets the advance of every tab so that the text after it
// starts at the next tab stop.
func (b *Breaker) placeTabs(src *source, runs []*Run, x fixed.Int26_6) {
	var acc fixed.Int26_6
	for _, run := range runs {
		it := run.Item
		if it.Length == 0 || src.text[it.Offset] != '\t' {
			acc += run.Glyphs.Width()
			continue
		}
		for i := range run.Glyphs.Glyphs {
			g := &run.Glyphs.Glyphs[i]
			g.XAdvance = b.tabWidth(it, x+acc)
			acc += g.XAdvance
		}
	}
}

// tabWidth returns the advance of a tab at position x.
func (b *Breaker) tabWidth(it *Item, x fixed.Int26_6) fixed.Int26_6 {
	tabs := b.cfg.tabs
	if tabs.Len() == 0 {
		tabs = attr.NewTabArray(attr.Tab{Position: 8 * spaceWidth(&it.Analysis)})
	}
	if t, ok := tabs.Next(x); ok {
		return t.Position - x
	}
	return 0
}

// spaceWidth returns the advance of a space in the font of a.
func spaceWidth(a *Analysis) fixed.Int26_6 {
	if a.Font != nil {
		if g, ok := a.Font.GlyphForRune(' '); ok {
			_, adv := a.Font.GlyphExtents(g, a.Size)
			if adv > 0 {
				return adv
			}
		}
	}
	return max(a.Size/4, 1)
}

// insertsHyphens reports whether breaks at soft hyphens in it show a
// hyphen.
func insertsHyphens(it *Item) bool {
	if a, ok := it.Analysis.Attr(attr.KindInsertHyphens); ok {
		return a.Value.(bool)
	}
	return true
}

// hyphenGlyph returns the hyphen glyph of the font of a: U+2010, else
// U+002D, else a missing glyph box.
func hyphenGlyph(a *Analysis) GlyphInfo {
	if a.Font != nil {
		for _, r := range [...]rune{0x2010, '-'} {
			if g, ok := a.Font.GlyphForRune(r); ok {
				_, adv := a.Font.GlyphExtents(g, a.Size)
				return GlyphInfo{Glyph: g, XAdvance: adv}
			}
		}
	}
	return GlyphInfo{Glyph: UnknownGlyph(0x2010), XAdvance: a.Size}
}

// appendHyphen adds a hyphen glyph after the logically last character
// of run, in its cluster.
func appendHyphen(run *Run) {
	h := hyphenGlyph(&run.Item.Analysis)
	gs := run.Glyphs
	if len(gs.Glyphs) == 0 {
		gs.Glyphs = append(gs.Glyphs, h)
	} else if run.Item.Analysis.Direction() == DirectionRTL {
		h.Cluster = gs.Glyphs[0].Cluster
		gs.Glyphs = append([]GlyphInfo{h}, gs.Glyphs...)
	} else {
		h.Cluster = gs.Glyphs[len(gs.Glyphs)-1].Cluster
		gs.Glyphs = append(gs.Glyphs, h)
	}
	markClusterStarts(gs)
}

// lineMetrics returns the metrics used for lines without runs: those of
// the paragraph separator's font, else of the base font.
func (b *Breaker) lineMetrics(src *source, para paragraph) FontMetrics {
	for _, it := range src.items {
		if it.Offset <= para.end && para.end < it.End() {
			return metricsOf(it.Analysis.Font, it.Analysis.Size)
		}
	}
	var font Font
	if b.cfg.lookup != nil {
		font = b.cfg.lookup.FindFont(FontRequest{
			Rune:        ' ',
			Script:      ScriptCommon,
			Language:    b.cfg.language,
			Description: b.cfg.font,
		})
	}
	return metricsOf(font, b.cfg.font.Size)
}

func runsWidth(runs []*Run) fixed.Int26_6 {
	var w fixed.Int26_6
	for _, r := range runs {
		w += r.Glyphs.Width()
	}
	return w
}
