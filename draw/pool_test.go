package draw

import (
	"testing"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textlayout/text"
)

func TestResourcePoolFonts(t *testing.T) {
	p := NewResourcePool()
	a := newFont(allRunes)
	b := newFont(allRunes)

	refA := p.AddFont(a)
	refB := p.AddFont(b)
	if refA == refB {
		t.Errorf("distinct fonts share ref %d", refA)
	}
	if got := p.AddFont(a); got != refA {
		t.Errorf("AddFont(a) again = %d, want %d", got, refA)
	}
	refNil := p.AddFont(nil)
	if got := p.AddFont(nil); got != refNil {
		t.Errorf("AddFont(nil) again = %d, want %d", got, refNil)
	}
	if p.FontCount() != 3 {
		t.Errorf("FontCount() = %d, want 3", p.FontCount())
	}
	if p.GetFont(refA) != a || p.GetFont(refB) != b {
		t.Error("GetFont returned the wrong font")
	}
	if p.GetFont(refNil) != nil || p.GetFont(FontRef(99)) != nil {
		t.Error("GetFont of nil or unknown ref is not nil")
	}
}

// sliceFont is a font of an incomparable type.
type sliceFont []*text.UserFont

func (f sliceFont) Metrics(size fixed.Int26_6) text.FontMetrics { return f[0].Metrics(size) }

func (f sliceFont) GlyphForRune(r rune) (text.GlyphID, bool) { return f[0].GlyphForRune(r) }

func (f sliceFont) GlyphExtents(g text.GlyphID, size fixed.Int26_6) (text.Rect, fixed.Int26_6) {
	return f[0].GlyphExtents(g, size)
}

func TestResourcePoolIncomparableFont(t *testing.T) {
	p := NewResourcePool()
	f := sliceFont{newFont(allRunes)}
	p.AddFont(f)
	p.AddFont(f)
	if p.FontCount() != 2 {
		t.Errorf("FontCount() = %d, want 2", p.FontCount())
	}
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		typ  CommandType
		want string
	}{
		{CmdSetColor, "SetColor"},
		{CmdFillRect, "FillRect"},
		{CmdGlyphs, "Glyphs"},
		{CmdUnderline, "Underline"},
		{CmdStrikethrough, "Strikethrough"},
		{CommandType(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
