package text

import (
	"unicode/utf8"

	"golang.org/x/image/math/fixed"
)

// ellipsisRune is drawn in place of removed text.
const ellipsisRune = 0x2026

// atom is the smallest piece of a line ellipsization removes: a
// grapheme cluster that does not split a glyph cluster.
type atom struct {
	start, end int // bytes
	width      fixed.Int26_6
	run        int // logical run index
}

// lineAtoms splits runs, in logical order, into atoms.
func lineAtoms(src *source, runs []*Run) []atom {
	var atoms []atom
	for ri, r := range runs {
		it := r.Item
		starts := make(map[int]bool, len(r.Glyphs.Glyphs))
		for _, g := range r.Glyphs.Glyphs {
			starts[it.Offset+g.Cluster] = true
		}
		widths := r.Glyphs.LogicalWidths(src.text[it.Offset:it.End()])
		for k, w := range widths {
			c := it.CharOffset + k
			start, end := src.offsets[c], src.offsets[c+1]
			n := len(atoms)
			if k > 0 && !(src.logAttrs[c].IsCursorPosition && starts[start]) {
				atoms[n-1].end = end
				atoms[n-1].width += w
				continue
			}
			atoms = append(atoms, atom{start: start, end: end, width: w, run: ri})
		}
	}
	return atoms
}

// ellipsisGlyph returns the ellipsis glyph of the font of a, or a
// missing glyph box one em wide.
func ellipsisGlyph(a *Analysis) GlyphInfo {
	if a.Font != nil {
		if g, ok := a.Font.GlyphForRune(ellipsisRune); ok {
			_, adv := a.Font.GlyphExtents(g, a.Size)
			return GlyphInfo{Glyph: g, XAdvance: adv, ClusterStart: true}
		}
	}
	return GlyphInfo{Glyph: UnknownGlyph(ellipsisRune), XAdvance: a.Size, ClusterStart: true}
}

// ellipsisGap returns the atoms [first, last) to remove so that the
// others and an ellipsis of width e fit in width.
func ellipsisGap(atoms []atom, width, e fixed.Int26_6, mode EllipsizeMode) (first, last int) {
	m := len(atoms)
	avail := width - e
	prefix := make([]fixed.Int26_6, m+1)
	suffix := make([]fixed.Int26_6, m+1)
	for i := 0; i < m; i++ {
		prefix[i+1] = prefix[i] + atoms[i].width
		suffix[i+1] = suffix[i] + atoms[m-1-i].width
	}
	largest := func(fits func(k int) bool) int {
		lo, hi := 0, m-1
		if !fits(0) {
			return 0
		}
		for lo < hi {
			mid := (lo + hi + 1) / 2
			if fits(mid) {
				lo = mid
			} else {
				hi = mid - 1
			}
		}
		return lo
	}
	switch mode {
	case EllipsizeStart:
		k := largest(func(k int) bool { return suffix[k] <= avail })
		return 0, m - k
	case EllipsizeMiddle:
		k := largest(func(k int) bool { return prefix[(k+1)/2]+suffix[k/2] <= avail })
		return (k + 1) / 2, m - k/2
	default:
		k := largest(func(k int) bool { return prefix[k] <= avail })
		return k, m
	}
}

// ellipsize removes whole clusters from runs, given in logical order,
// and puts an ellipsis in their place so the line fits width. The
// ellipsis run covers the removed text and takes the attributes of its
// first character.
func (b *Breaker) ellipsize(src *source, runs []*Run, width fixed.Int26_6, mode EllipsizeMode) []*Run {
	atoms := lineAtoms(src, runs)
	if len(atoms) == 0 {
		return runs
	}

	// The ellipsis takes the font at the gap, which moves with the
	// ellipsis width; a few rounds settle it.
	var first, last int
	var e fixed.Int26_6
	for round := 0; ; round++ {
		first, last = ellipsisGap(atoms, width, e, mode)
		w := ellipsisGlyph(&runs[atoms[first].run].Item.Analysis).XAdvance
		if w <= e || round == 2 {
			break
		}
		e = w
	}
	gapStart, gapEnd := atoms[first].start, atoms[last-1].end

	var out []*Run
	var ellipsis *Run
	for _, r := range runs {
		it := r.Item
		if lo, hi := it.Offset, min(it.End(), gapStart); lo < hi {
			out = append(out, slicePiece(src, r, lo, hi))
		}
		if it.Offset <= gapStart && gapStart < it.End() && ellipsis == nil {
			ellipsis = ellipsisRun(src, it, gapStart, gapEnd)
			out = append(out, ellipsis)
		}
		if lo, hi := max(it.Offset, gapEnd), it.End(); lo < hi {
			out = append(out, slicePiece(src, r, lo, hi))
		}
	}

	Logger().Debug("text: line ellipsized",
		"mode", mode.String(), "removedStart", gapStart, "removedEnd", gapEnd)
	return out
}

// ellipsisRun returns the run standing for the bytes [start, end),
// styled like item.
func ellipsisRun(src *source, item *Item, start, end int) *Run {
	it := &Item{
		Offset:     start,
		Length:     end - start,
		NumChars:   utf8.RuneCountInString(src.text[start:end]),
		CharOffset: src.charIndex(start),
		Analysis:   item.Analysis,
	}
	return &Run{
		Item:    it,
		Glyphs:  &GlyphString{Glyphs: []GlyphInfo{ellipsisGlyph(&it.Analysis)}},
		Gravity: it.Analysis.Gravity,
	}
}

// slicePiece returns the part of r covering the bytes [start, end),
// which must fall on cluster boundaries.
func slicePiece(src *source, r *Run, start, end int) *Run {
	it := r.Item
	if start == it.Offset && end == it.End() {
		return r
	}
	piece := &Item{
		Offset:     start,
		Length:     end - start,
		NumChars:   utf8.RuneCountInString(src.text[start:end]),
		CharOffset: src.charIndex(start),
		Analysis:   it.Analysis,
	}
	gs := &GlyphString{}
	for _, g := range r.Glyphs.Glyphs {
		if pos := it.Offset + g.Cluster; start <= pos && pos < end {
			g.Cluster = pos - start
			gs.Glyphs = append(gs.Glyphs, g)
		}
	}
	markClusterStarts(gs)
	return &Run{Item: piece, Glyphs: gs, Gravity: r.Gravity}
}
