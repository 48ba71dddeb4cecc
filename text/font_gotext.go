package text

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// GoTextFont is a native font shaped by go-text/typesetting's HarfBuzz
// port. It implements Font, TextShaper and GlyphRenderer.
//
// GoTextFont is safe for concurrent use. It keeps the parsed font.Font
// (which is read-only) and pools font.Face and HarfbuzzShaper instances,
// neither of which is safe for concurrent use.
type GoTextFont struct {
	font *font.Font

	faces   sync.Pool
	shapers sync.Pool
}

// NewGoTextFont wraps a parsed font.
func NewGoTextFont(f *font.Font) *GoTextFont {
	g := &GoTextFont{font: f}
	g.faces.New = func() any { return font.NewFace(f) }
	g.shapers.New = func() any { return &shaping.HarfbuzzShaper{} }
	return g
}

// LoadGoTextFont parses TrueType or OpenType font data.
func LoadGoTextFont(data []byte) (*GoTextFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parsing font: %w", err)
	}
	return NewGoTextFont(face.Font), nil
}

// Font returns the underlying go-text font.
func (f *GoTextFont) Font() *font.Font {
	return f.font
}

func (f *GoTextFont) withFace(fn func(face *font.Face)) {
	face := f.faces.Get().(*font.Face)
	fn(face)
	f.faces.Put(face)
}

// scale converts font units at size to device units.
func (f *GoTextFont) scale(size fixed.Int26_6) float64 {
	return float64(size) / 64 / float64(f.font.Upem())
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// Metrics implements Font.
func (f *GoTextFont) Metrics(size fixed.Int26_6) FontMetrics {
	s := f.scale(size)
	var m FontMetrics
	f.withFace(func(face *font.Face) {
		if ext, ok := face.FontHExtents(); ok {
			m.Ascent = toFixed(float64(ext.Ascender) * s)
			m.Descent = toFixed(-float64(ext.Descender) * s)
			m.LineGap = toFixed(float64(ext.LineGap) * s)
		} else {
			m = boxMetrics(size)
		}
		m.UnderlinePosition = toFixed(float64(face.LineMetric(font.UnderlinePosition)) * s)
		m.UnderlineThickness = toFixed(float64(face.LineMetric(font.UnderlineThickness)) * s)
		m.StrikethroughPosition = toFixed(float64(face.LineMetric(font.StrikethroughPosition)) * s)
		m.StrikethroughThickness = toFixed(float64(face.LineMetric(font.StrikethroughThickness)) * s)
	})
	return m
}

// GlyphForRune implements Font.
func (f *GoTextFont) GlyphForRune(r rune) (GlyphID, bool) {
	g, ok := f.font.NominalGlyph(r)
	return GlyphID(g), ok
}

// GlyphExtents implements Font.
func (f *GoTextFont) GlyphExtents(g GlyphID, size fixed.Int26_6) (ink Rect, advance fixed.Int26_6) {
	s := f.scale(size)
	f.withFace(func(face *font.Face) {
		gid := font.GID(g)
		if ext, ok := face.GlyphExtents(gid); ok {
			ink = Rect{
				X:      toFixed(float64(ext.XBearing) * s),
				Y:      toFixed(-float64(ext.YBearing) * s),
				Width:  toFixed(float64(ext.Width) * s),
				Height: toFixed(-float64(ext.Height) * s),
			}
		}
		advance = toFixed(float64(face.HorizontalAdvance(gid)) * s)
	})
	return ink, advance
}

// ShapeText implements TextShaper.
func (f *GoTextFont) ShapeText(p ShapeParams) (*GlyphString, error) {
	if p.Start < 0 || p.End > len(p.Text) || p.Start > p.End {
		return nil, &IndexError{Index: p.End, Start: 0, End: len(p.Text)}
	}
	runes, offsets := decodeRunes(p.Text)
	runStart, runEnd := runeAt(offsets, p.Start), runeAt(offsets, p.End)

	face := f.faces.Get().(*font.Face)
	defer f.faces.Put(face)

	input := shaping.Input{
		Text:         runes,
		RunStart:     runStart,
		RunEnd:       runEnd,
		Direction:    mapDirection(p.Direction),
		Face:         face,
		FontFeatures: goTextFeatures(p.Features),
		Size:         p.Size,
		Script:       p.Script,
		Language:     p.Language.goText(),
	}

	// HarfbuzzShaper has internal mutable state and is not safe for
	// concurrent use, so each call takes one from the pool.
	hb := f.shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	f.shapers.Put(hb)

	gs := &GlyphString{Glyphs: make([]GlyphInfo, len(out.Glyphs))}
	vertical := p.Direction.IsVertical()
	for i, g := range out.Glyphs {
		cluster := offsets[g.TextIndex()]
		info := GlyphInfo{
			Glyph:   GlyphID(g.GlyphID),
			Cluster: cluster - p.Start,
			XOffset: g.XOffset,
			YOffset: -g.YOffset,
		}
		if vertical {
			info.YAdvance = -g.Advance
		} else {
			info.XAdvance = g.Advance
		}
		if g.GlyphID == 0 {
			info.Glyph = UnknownGlyph(runes[g.TextIndex()])
		}
		gs.Glyphs[i] = info
	}
	markClusterStarts(gs)
	return gs, nil
}

// GlyphOutline implements GlyphRenderer.
func (f *GoTextFont) GlyphOutline(g GlyphID, size fixed.Int26_6) (Outline, bool) {
	if g == GlyphEmpty || g.IsUnknown() || g > math.MaxUint16 {
		return Outline{}, false
	}
	s := f.scale(size)
	var (
		data font.GlyphOutline
		ok   bool
	)
	f.withFace(func(face *font.Face) {
		data, ok = face.GlyphDataOutline(uint16(g))
	})
	if !ok {
		return Outline{}, false
	}
	out := Outline{Segments: make([]OutlineSegment, 0, len(data.Segments))}
	for _, seg := range data.Segments {
		segment := OutlineSegment{Op: outlineOps[seg.Op]}
		for i, pt := range seg.ArgsSlice() {
			segment.Points[i] = fixed.Point26_6{
				X: toFixed(float64(pt.X) * s),
				Y: toFixed(-float64(pt.Y) * s),
			}
		}
		out.Segments = append(out.Segments, segment)
	}
	return out, true
}

var outlineOps = [...]OutlineOp{
	ot.SegmentOpMoveTo: OutlineOpMoveTo,
	ot.SegmentOpLineTo: OutlineOpLineTo,
	ot.SegmentOpQuadTo: OutlineOpQuadTo,
	ot.SegmentOpCubeTo: OutlineOpCubicTo,
}

// mapDirection converts our text.Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	switch d {
	case DirectionRTL:
		return di.DirectionRTL
	case DirectionTTB:
		return di.DirectionTTB
	case DirectionBTT:
		return di.DirectionBTT
	default:
		return di.DirectionLTR
	}
}

func goTextFeatures(features []FontFeature) []shaping.FontFeature {
	var out []shaping.FontFeature
	for _, ft := range features {
		if len(ft.Tag) != 4 {
			continue
		}
		out = append(out, shaping.FontFeature{Tag: ot.MustNewTag(ft.Tag), Value: ft.Value})
	}
	return out
}

// decodeRunes returns the runes of text, invalid bytes read as U+FFFD,
// and the byte offset of each rune plus a final len(text).
func decodeRunes(text string) ([]rune, []int) {
	runes := make([]rune, 0, len(text))
	offsets := make([]int, 0, len(text)+1)
	for i, r := range text {
		runes = append(runes, r)
		offsets = append(offsets, i)
	}
	return runes, append(offsets, len(text))
}

// runeAt returns the index of the rune starting at byte b.
func runeAt(offsets []int, b int) int {
	lo, hi := 0, len(offsets)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if offsets[mid] < b {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// markClusterStarts sets ClusterStart on the first glyph of every
// cluster in visual order.
func markClusterStarts(gs *GlyphString) {
	for i := range gs.Glyphs {
		gs.Glyphs[i].ClusterStart = i == 0 || gs.Glyphs[i].Cluster != gs.Glyphs[i-1].Cluster
	}
}
