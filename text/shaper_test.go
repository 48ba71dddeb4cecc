package text

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textlayout/attr"
)

func shapeAll(text string, font Font, level uint8, attrs ...attr.Attribute) *GlyphString {
	item := &Item{
		Length:   len(text),
		NumChars: charCount(text),
		Analysis: Analysis{Font: font, Size: fixed.I(12), Level: level, Attrs: attrs},
	}
	return DefaultShaper{}.Shape(text, item)
}

func glyphIDs(gs *GlyphString) []GlyphID {
	out := make([]GlyphID, len(gs.Glyphs))
	for i, g := range gs.Glyphs {
		out[i] = g.Glyph
	}
	return out
}

func glyphClusters(gs *GlyphString) []int {
	out := make([]int, len(gs.Glyphs))
	for i, g := range gs.Glyphs {
		out[i] = g.Cluster
	}
	return out
}

func TestDefaultShaper(t *testing.T) {
	font := newTestFont(allRunes)
	tests := []struct {
		name     string
		text     string
		level    uint8
		glyphs   []GlyphID
		clusters []int
		width    fixed.Int26_6
	}{
		{"ltr", "ab", 0, []GlyphID{'a', 'b'}, []int{0, 1}, fixed.I(20)},
		{"rtl", "אב", 1, []GlyphID{'ב', 'א'}, []int{2, 0}, fixed.I(20)},
		{"mark", "e\u0301x", 0, []GlyphID{'e', 0x0301, 'x'}, []int{0, 0, 3}, fixed.I(20)},
		{"mirrored", "(", 1, []GlyphID{')'}, []int{0}, fixed.I(10)},
		{"ignorable", "a\u200Db", 0, []GlyphID{'a', GlyphEmpty, 'b'}, []int{0, 1, 4}, fixed.I(20)},
		{"pre-base matra", "\u0915\u093F", 0, []GlyphID{0x093F, 0x0915}, []int{0, 0}, fixed.I(20)},
		{"tab", "\t", 0, []GlyphID{GlyphEmpty}, []int{0}, 0},
		{"empty", "", 0, []GlyphID{}, []int{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := shapeAll(tt.text, font, tt.level)
			assert.Equal(t, tt.glyphs, glyphIDs(gs))
			assert.Equal(t, tt.clusters, glyphClusters(gs))
			assert.Equal(t, tt.width, gs.Width())
		})
	}
}

func TestDefaultShaperClusterStarts(t *testing.T) {
	gs := shapeAll("e\u0301x", newTestFont(allRunes), 0)
	require.Len(t, gs.Glyphs, 3)
	assert.True(t, gs.Glyphs[0].ClusterStart)
	assert.False(t, gs.Glyphs[1].ClusterStart)
	assert.True(t, gs.Glyphs[2].ClusterStart)
}

func TestDefaultShaperMissingGlyphs(t *testing.T) {
	ascii := newTestFont(func(r rune) bool { return r < 0x80 })
	gs := shapeAll("aж", ascii, 0)
	require.Len(t, gs.Glyphs, 2)
	assert.Equal(t, GlyphID('a'), gs.Glyphs[0].Glyph)
	assert.Equal(t, UnknownGlyph('ж'), gs.Glyphs[1].Glyph)
	assert.Equal(t, fixed.I(12), gs.Glyphs[1].XAdvance, "missing glyphs are one em wide")

	gs = shapeAll("ab", nil, 0)
	assert.Equal(t, []GlyphID{UnknownGlyph('a'), UnknownGlyph('b')}, glyphIDs(gs))
	assert.Equal(t, fixed.I(24), gs.Width())
}

func TestDefaultShaperFontShaper(t *testing.T) {
	base := newTestFont(allRunes)

	t.Run("used", func(t *testing.T) {
		f := *base
		f.Shape = func(p ShapeParams) (*GlyphString, error) {
			assert.Equal(t, "xab", p.Text)
			assert.Equal(t, 1, p.Start)
			assert.Equal(t, 3, p.End)
			return &GlyphString{Glyphs: []GlyphInfo{{Glyph: 7, Cluster: 0, XAdvance: fixed.I(15), ClusterStart: true}}}, nil
		}
		item := &Item{Offset: 1, Length: 2, NumChars: 2, Analysis: Analysis{Font: &f, Size: fixed.I(12)}}
		gs := DefaultShaper{}.Shape("xab", item)
		assert.Equal(t, []GlyphID{7}, glyphIDs(gs))
	})

	t.Run("invalid clusters", func(t *testing.T) {
		f := *base
		f.Shape = func(ShapeParams) (*GlyphString, error) {
			return &GlyphString{Glyphs: []GlyphInfo{{Glyph: 7, Cluster: 5}}}, nil
		}
		gs := shapeAll("ab", &f, 0)
		assert.Equal(t, []GlyphID{UnknownGlyph('a'), UnknownGlyph('b')}, glyphIDs(gs))
	})

	t.Run("error", func(t *testing.T) {
		f := *base
		f.Shape = func(ShapeParams) (*GlyphString, error) {
			return nil, errors.New("broken font")
		}
		gs := shapeAll("ab", &f, 0)
		assert.Equal(t, fixed.I(24), gs.Width())
	})

	t.Run("no shaper", func(t *testing.T) {
		f := *base
		f.Shape = func(ShapeParams) (*GlyphString, error) {
			return nil, ErrNoShaper
		}
		gs := shapeAll("ab", &f, 0)
		assert.Equal(t, []GlyphID{'a', 'b'}, glyphIDs(gs))
	})
}

func TestDefaultShaperAttributes(t *testing.T) {
	font := newTestFont(allRunes)

	gs := shapeAll("ab", font, 0, attr.NewLetterSpacing(fixed.I(4)))
	assert.Equal(t, fixed.I(28), gs.Width())
	assert.Equal(t, fixed.I(2), gs.Glyphs[0].XOffset)
	assert.Equal(t, fixed.I(14), gs.Glyphs[1].XAdvance)

	gs = shapeAll("ab", font, 0, attr.NewLetterSpacing(-fixed.I(30)))
	assert.Equal(t, fixed.I(0), gs.Width(), "negative spacing clamps each cluster at zero")
	for i, g := range gs.Glyphs {
		if g.XAdvance < 0 {
			t.Errorf("glyph %d advance = %v, want >= 0", i, g.XAdvance)
		}
	}

	gs = shapeAll("ab", font, 0, attr.NewRise(fixed.I(3)))
	assert.Equal(t, -fixed.I(3), gs.Glyphs[0].YOffset)

	logical := fixed.R(-2, -20, 30, 5)
	gs = shapeAll("\uFFFC", font, 0, attr.NewShape(logical, logical))
	require.Len(t, gs.Glyphs, 1)
	assert.Equal(t, GlyphEmpty, gs.Glyphs[0].Glyph)
	assert.Equal(t, fixed.I(32), gs.Width())
	assert.Equal(t, -fixed.I(2), gs.Glyphs[0].XOffset)
}

func TestParseFeatures(t *testing.T) {
	tests := []struct {
		in   string
		want []FontFeature
	}{
		{"", nil},
		{"liga", []FontFeature{{Tag: "liga", Value: 1}}},
		{"liga=0, smcp, -kern, +dlig", []FontFeature{
			{Tag: "liga", Value: 0},
			{Tag: "smcp", Value: 1},
			{Tag: "kern", Value: 0},
			{Tag: "dlig", Value: 1},
		}},
		{"salt=3", []FontFeature{{Tag: "salt", Value: 3}}},
		{"toolong, xx, ss01=x, onum", []FontFeature{{Tag: "onum", Value: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFeatures(tt.in))
		})
	}
}

func TestReorderRuns(t *testing.T) {
	mk := func(levels ...uint8) []*Run {
		runs := make([]*Run, len(levels))
		for i, lv := range levels {
			runs[i] = &Run{Item: &Item{Offset: i, Analysis: Analysis{Level: lv}}}
		}
		return runs
	}
	order := func(runs []*Run) []int {
		out := make([]int, len(runs))
		for i, r := range runs {
			out[i] = r.Item.Offset
		}
		return out
	}

	tests := []struct {
		name   string
		levels []uint8
		want   []int
	}{
		{"ltr", []uint8{0, 0, 0}, []int{0, 1, 2}},
		{"rtl", []uint8{1, 1, 1}, []int{2, 1, 0}},
		{"embedded rtl", []uint8{0, 1, 1, 0}, []int{0, 2, 1, 3}},
		{"numbers in rtl", []uint8{1, 2, 2, 1}, []int{3, 1, 2, 0}},
		{"nested", []uint8{0, 1, 2, 1}, []int{0, 3, 2, 1}},
		{"even only", []uint8{0, 2, 2}, []int{0, 1, 2}},
		{"empty", nil, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := mk(tt.levels...)
			got := reorderRuns(runs)
			assert.Equal(t, tt.want, order(got))
			for i, r := range runs {
				assert.Equal(t, i, r.Item.Offset, "input reordered")
			}
		})
	}
}
