package text

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gogpu/textlayout/attr"
	"github.com/gogpu/textlayout/internal/ucd"
	"golang.org/x/image/math/fixed"
)

// Shaper converts an item of text into glyphs.
//
// Shape never fails: when the font is missing or cannot shape the item,
// every character gets a missing glyph box one em wide. The clusters of
// the result cover the item without gaps and the total advance is never
// negative.
//
// Implementations need not be safe for concurrent use; a Breaker uses
// its shaper from one goroutine.
type Shaper interface {
	Shape(text string, item *Item) *GlyphString
}

// DefaultShaper shapes with the item's font: through the font's own
// TextShaper when it has one, otherwise one glyph per character from its
// character map.
type DefaultShaper struct{}

// Shape implements Shaper.
func (DefaultShaper) Shape(text string, item *Item) *GlyphString {
	a := &item.Analysis
	s := text[item.Offset:item.End()]

	var gs *GlyphString
	switch {
	case s == "":
		gs = &GlyphString{}
	case isTabOrBreak(firstRune(s)):
		gs = emptyGlyphs(s, 0)
	case a.Font == nil:
		Logger().Warn("text: no font for item, using missing glyph boxes",
			"offset", item.Offset, "script", a.Script.String())
		gs = boxGlyphs(s, a.Size)
	default:
		gs = shapeWithFont(text, item)
	}

	if at, ok := a.Attr(attr.KindShape); ok {
		gs = shapeInlineObject(s, at.Value.(attr.Shape))
	}
	if at, ok := a.Attr(attr.KindLetterSpacing); ok {
		applyLetterSpacing(gs, at.Value.(fixed.Int26_6))
	}
	if at, ok := a.Attr(attr.KindRise); ok {
		rise := at.Value.(fixed.Int26_6)
		for i := range gs.Glyphs {
			gs.Glyphs[i].YOffset -= rise
		}
	}
	return gs
}

func shapeWithFont(text string, item *Item) *GlyphString {
	a := &item.Analysis
	s := text[item.Offset:item.End()]
	if ts, ok := a.Font.(TextShaper); ok {
		gs, err := ts.ShapeText(ShapeParams{
			Text:      text,
			Start:     item.Offset,
			End:       item.End(),
			Script:    a.Script,
			Language:  a.Language,
			Direction: a.Direction(),
			Size:      a.Size,
			Features:  itemFeatures(a),
		})
		switch {
		case err == nil && validClusters(gs, s, a.Direction() == DirectionRTL):
			return gs
		case err == nil:
			Logger().Warn("text: shaper returned invalid clusters, using missing glyph boxes",
				"offset", item.Offset)
			return boxGlyphs(s, a.Size)
		case !errors.Is(err, ErrNoShaper):
			Logger().Warn("text: shaping failed, using missing glyph boxes",
				"offset", item.Offset, "err", err)
			return boxGlyphs(s, a.Size)
		}
	}
	return shapeWithCmap(s, a.Font, a.Size, a.Direction() == DirectionRTL)
}

// validClusters checks that the clusters of gs are monotonic in the
// direction of the item, start at a character boundary inside s, cover
// its start and that the total advance is not negative.
func validClusters(gs *GlyphString, s string, rtl bool) bool {
	if gs == nil {
		return false
	}
	if len(gs.Glyphs) == 0 {
		return s == ""
	}
	if gs.Width() < 0 {
		return false
	}
	seenStart := false
	for i, g := range gs.Glyphs {
		if g.Cluster < 0 || g.Cluster >= len(s) || !utf8.RuneStart(s[g.Cluster]) {
			return false
		}
		seenStart = seenStart || g.Cluster == 0
		if i == 0 {
			continue
		}
		prev := gs.Glyphs[i-1].Cluster
		if (!rtl && g.Cluster < prev) || (rtl && g.Cluster > prev) {
			return false
		}
	}
	return seenStart
}

// pendingFixup records a pre-base matra glyph that must be drawn before
// the glyph of the consonant it follows in logical order.
type pendingFixup struct {
	base, matra int // glyph indices
}

// shapeWithCmap maps every character to its nominal glyph. Marks join
// the cluster of the character before them, default ignorable
// characters get empty glyphs and right-to-left text uses mirrored
// glyphs. Pre-base matras are moved before their consonant in a final
// rotate pass.
func shapeWithCmap(s string, font Font, size fixed.Int26_6, rtl bool) *GlyphString {
	gs := &GlyphString{Glyphs: make([]GlyphInfo, 0, len(s))}
	var fixups []pendingFixup
	lastBase := -1
	for i, r := range s {
		g := GlyphInfo{Cluster: i}
		if n := len(gs.Glyphs); n > 0 && unicode.Is(unicode.Mn, r) {
			g.Cluster = gs.Glyphs[n-1].Cluster
		}
		switch {
		case ucd.DefaultIgnorable.Contains(r):
			g.Glyph = GlyphEmpty
		default:
			if rtl {
				if m, ok := ucd.Mirror(r); ok {
					if _, has := font.GlyphForRune(m); has {
						r = m
					}
				}
			}
			if id, ok := font.GlyphForRune(r); ok {
				g.Glyph = id
				_, g.XAdvance = font.GlyphExtents(id, size)
			} else {
				g.Glyph = UnknownGlyph(r)
				g.XAdvance = size
			}
		}
		if ucd.PreBaseMatra.Contains(r) && lastBase >= 0 {
			g.Cluster = gs.Glyphs[lastBase].Cluster
			fixups = append(fixups, pendingFixup{base: lastBase, matra: len(gs.Glyphs)})
		}
		if unicode.IsLetter(r) {
			lastBase = len(gs.Glyphs)
		}
		gs.Glyphs = append(gs.Glyphs, g)
	}
	applyFixups(gs.Glyphs, fixups)
	if rtl {
		reverseGlyphs(gs.Glyphs)
	}
	markClusterStarts(gs)
	return gs
}

// applyFixups rotates every recorded matra glyph to the position of its
// base glyph. Indices refer to the glyphs as they were before any
// rotation; a rotation only moves glyphs inside [base, matra], so
// processing the fixups in order keeps later indices valid.
func applyFixups(glyphs []GlyphInfo, fixups []pendingFixup) {
	for _, f := range fixups {
		if f.base < 0 || f.matra <= f.base || f.matra >= len(glyphs) {
			continue
		}
		m := glyphs[f.matra]
		copy(glyphs[f.base+1:f.matra+1], glyphs[f.base:f.matra])
		glyphs[f.base] = m
	}
}

func reverseGlyphs(glyphs []GlyphInfo) {
	for i, j := 0, len(glyphs)-1; i < j; i, j = i+1, j-1 {
		glyphs[i], glyphs[j] = glyphs[j], glyphs[i]
	}
}

// boxGlyphs gives every character a missing glyph box one em wide,
// except default ignorable characters, which get empty glyphs.
func boxGlyphs(s string, size fixed.Int26_6) *GlyphString {
	gs := &GlyphString{}
	for i, r := range s {
		g := GlyphInfo{Cluster: i, ClusterStart: true, Glyph: UnknownGlyph(r), XAdvance: size}
		if ucd.DefaultIgnorable.Contains(r) {
			g.Glyph, g.XAdvance = GlyphEmpty, 0
		}
		gs.Glyphs = append(gs.Glyphs, g)
	}
	return gs
}

// emptyGlyphs gives every character an empty glyph of the given advance.
func emptyGlyphs(s string, advance fixed.Int26_6) *GlyphString {
	gs := &GlyphString{}
	for i := range s {
		gs.Glyphs = append(gs.Glyphs, GlyphInfo{Glyph: GlyphEmpty, Cluster: i, XAdvance: advance, ClusterStart: true})
	}
	return gs
}

// shapeInlineObject replaces the glyphs of s by one empty glyph per
// character with the logical width of shape.
func shapeInlineObject(s string, shape attr.Shape) *GlyphString {
	gs := emptyGlyphs(s, shape.Logical.Max.X-shape.Logical.Min.X)
	for i := range gs.Glyphs {
		gs.Glyphs[i].XOffset = shape.Logical.Min.X
	}
	return gs
}

// applyLetterSpacing adds spacing around every cluster, half before and
// half after it. A cluster whose advance would turn negative is clamped
// to zero width.
func applyLetterSpacing(gs *GlyphString, spacing fixed.Int26_6) {
	if spacing == 0 {
		return
	}
	before := spacing / 2
	after := spacing - before
	var advance fixed.Int26_6
	for i := range gs.Glyphs {
		g := &gs.Glyphs[i]
		if g.ClusterStart {
			g.XOffset += before
			g.XAdvance += before
			advance = 0
		}
		advance += g.XAdvance
		if i+1 == len(gs.Glyphs) || gs.Glyphs[i+1].ClusterStart {
			g.XAdvance += after
			if advance += after; advance < 0 {
				g.XAdvance -= advance
			}
		}
	}
}

// itemFeatures collects the OpenType features requested for an item.
func itemFeatures(a *Analysis) []FontFeature {
	var out []FontFeature
	for _, at := range a.Attrs {
		if at.Kind == attr.KindFontFeatures {
			out = append(out, ParseFeatures(at.Value.(string))...)
		}
	}
	return out
}

// ParseFeatures parses a comma separated feature list such as
// "liga=0, smcp, -kern, +dlig". Malformed entries are skipped.
func ParseFeatures(s string) []FontFeature {
	var out []FontFeature
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		value := uint32(1)
		switch {
		case strings.HasPrefix(f, "-"):
			value, f = 0, f[1:]
		case strings.HasPrefix(f, "+"):
			f = f[1:]
		}
		if tag, v, ok := strings.Cut(f, "="); ok {
			n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
			if err != nil {
				continue
			}
			f, value = strings.TrimSpace(tag), uint32(n)
		}
		if len(f) != 4 {
			continue
		}
		out = append(out, FontFeature{Tag: f, Value: value})
	}
	return out
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
