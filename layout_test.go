package textlayout

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textlayout/attr"
	"github.com/gogpu/textlayout/draw"
	"github.com/gogpu/textlayout/text"
)

// newTestFont returns a font covering every character with 10 unit
// advances, ascent 8 and descent 2.
func newTestFont() *text.UserFont {
	return &text.UserFont{
		Extents: func(fixed.Int26_6) text.FontMetrics {
			return text.FontMetrics{Ascent: fixed.I(8), Descent: fixed.I(2)}
		},
		RuneToGlyph: func(r rune) (text.GlyphID, bool) {
			return text.GlyphID(r), true
		},
		GlyphInfo: func(g text.GlyphID, _ fixed.Int26_6) (text.Rect, fixed.Int26_6) {
			if unicode.IsSpace(rune(g)) {
				return text.Rect{}, fixed.I(10)
			}
			return text.Rect{X: fixed.I(1), Y: -fixed.I(7), Width: fixed.I(8), Height: fixed.I(7)}, fixed.I(10)
		},
	}
}

func newTestLayout(s string, opts ...Option) *Layout {
	opts = append([]Option{WithBreakerOptions(text.WithFontLookup(text.NewStaticLookup(newTestFont())))}, opts...)
	return New(s, nil, opts...)
}

type placed struct {
	text string
	x, y fixed.Int26_6
}

func placedLines(l *Layout) []placed {
	ls := l.Lines()
	out := make([]placed, ls.Len())
	for i := range out {
		line, pos := ls.Line(i)
		out[i] = placed{l.Text()[line.Start:line.End()], pos.X, pos.Y}
	}
	return out
}

func TestLayoutUnlimited(t *testing.T) {
	l := newTestLayout("hello world\nbye")
	assert.Equal(t, []placed{
		{"hello world", 0, fixed.I(8)},
		{"bye", 0, fixed.I(18)},
	}, placedLines(l))
	assert.False(t, l.IsWrapped())
	assert.False(t, l.IsEllipsized())
	assert.Equal(t, "hello world\nbye", l.Text())
	assert.Nil(t, l.Attrs())
}

func TestLayoutEmpty(t *testing.T) {
	l := newTestLayout("")
	require.Equal(t, 1, l.Lines().Len())
	line, pos := l.Lines().Line(0)
	assert.Equal(t, 0, line.Length)
	assert.Equal(t, fixed.I(8), pos.Y)
}

func TestLayoutWrap(t *testing.T) {
	l := newTestLayout("aa bb cc", WithWidth(fixed.I(50)))
	assert.Equal(t, []placed{
		{"aa bb ", 0, fixed.I(8)},
		{"cc", 0, fixed.I(18)},
	}, placedLines(l))
	assert.True(t, l.IsWrapped())

	l = newTestLayout("aa bb cc", WithWidth(fixed.I(50)), WithWrap(text.WrapNone))
	assert.Equal(t, 1, l.Lines().Len())
	assert.False(t, l.IsWrapped())
}

func TestLayoutAlignment(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		align Alignment
		want  fixed.Int26_6
	}{
		{"left", "ab", AlignLeft, 0},
		{"center", "ab", AlignCenter, fixed.I(40)},
		{"right", "ab", AlignRight, fixed.I(80)},
		{"natural ltr", "ab", AlignNatural, 0},
		{"natural rtl", "אב", AlignNatural, fixed.I(80)},
		{"left rtl", "אב", AlignLeft, 0},
		{"overflow", "abcdefghijkl", AlignRight, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLayout(tt.text, WithWidth(fixed.I(100)), WithAlignment(tt.align), WithWrap(text.WrapNone))
			_, pos := l.Lines().Line(0)
			assert.Equal(t, tt.want, pos.X)
		})
	}

	// Without a width there is nothing to align to.
	l := newTestLayout("ab", WithAlignment(AlignRight))
	_, pos := l.Lines().Line(0)
	assert.Equal(t, fixed.Int26_6(0), pos.X)
}

func TestLayoutJustify(t *testing.T) {
	l := newTestLayout("aa bb cc", WithWidth(fixed.I(70)), WithJustify(true))
	require.Equal(t, 2, l.Lines().Len())
	first, _ := l.Lines().Line(0)
	last, _ := l.Lines().Line(1)
	assert.True(t, first.IsJustified)
	assert.Equal(t, fixed.I(70), first.Width())
	assert.False(t, last.IsJustified)
	assert.Equal(t, fixed.I(20), last.Width())

	l = newTestLayout("aa bb cc", WithWidth(fixed.I(70)), WithJustify(true), WithJustifyLastLine(true))
	last, _ = l.Lines().Line(1)
	assert.True(t, last.IsJustified)
	assert.Equal(t, fixed.I(70), last.Width())
}

func TestLayoutIndent(t *testing.T) {
	l := newTestLayout("aa bb cc", WithWidth(fixed.I(50)), WithIndent(fixed.I(20)))
	assert.Equal(t, []placed{
		{"aa ", fixed.I(20), fixed.I(8)},
		{"bb cc", 0, fixed.I(18)},
	}, placedLines(l))

	l = newTestLayout("aa bb cc", WithWidth(fixed.I(50)), WithIndent(-fixed.I(20)))
	assert.Equal(t, []placed{
		{"aa bb ", 0, fixed.I(8)},
		{"cc", fixed.I(20), fixed.I(18)},
	}, placedLines(l))

	l = newTestLayout("ab\ncd", WithIndent(fixed.I(20)))
	assert.Equal(t, []placed{
		{"ab", fixed.I(20), fixed.I(8)},
		{"cd", fixed.I(20), fixed.I(18)},
	}, placedLines(l))
}

func TestLayoutSpacing(t *testing.T) {
	l := newTestLayout("a\nb", WithSpacing(fixed.I(4)))
	assert.Equal(t, []placed{
		{"a", 0, fixed.I(8)},
		{"b", 0, fixed.I(22)},
	}, placedLines(l))

	l = newTestLayout("a\nb", WithLineHeight(2))
	assert.Equal(t, []placed{
		{"a", 0, fixed.I(13)},
		{"b", 0, fixed.I(33)},
	}, placedLines(l))
}

func TestLayoutEllipsize(t *testing.T) {
	l := newTestLayout("aa bb cc dd", WithWidth(fixed.I(50)), WithEllipsize(text.EllipsizeEnd))
	require.Equal(t, 1, l.Lines().Len())
	line, _ := l.Lines().Line(0)
	assert.True(t, line.IsEllipsized)
	assert.LessOrEqual(t, int(line.Width()), int(fixed.I(50)))
	assert.True(t, l.IsEllipsized())
}

func TestLayoutHeight(t *testing.T) {
	tests := []struct {
		name       string
		height     fixed.Int26_6
		lines      int
		ellipsized bool
	}{
		{"room for all", fixed.I(100), 3, false},
		{"room for two", fixed.I(25), 2, true},
		{"room for one", fixed.I(15), 1, true},
		{"too low for one", fixed.I(5), 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLayout("aa bb cc dd ee", WithWidth(fixed.I(50)),
				WithHeight(tt.height), WithEllipsize(text.EllipsizeEnd))
			require.Equal(t, tt.lines, l.Lines().Len())
			assert.Equal(t, tt.ellipsized, l.IsEllipsized())

			last, _ := l.Lines().Line(tt.lines - 1)
			assert.Equal(t, tt.ellipsized, last.IsEllipsized)
			assert.LessOrEqual(t, int(last.Width()), int(fixed.I(50)))
		})
	}

	// Without an ellipsize mode the height is ignored.
	l := newTestLayout("aa bb cc dd ee", WithWidth(fixed.I(50)), WithHeight(fixed.I(5)))
	assert.Equal(t, 3, l.Lines().Len())
}

func TestLayoutHeightStopsAtEllipsizedLine(t *testing.T) {
	l := newTestLayout("aa bb cc\nnext", WithWidth(fixed.I(50)),
		WithHeight(fixed.I(15)), WithEllipsize(text.EllipsizeEnd))
	require.Equal(t, 1, l.Lines().Len())
	line, _ := l.Lines().Line(0)
	assert.True(t, line.IsEllipsized)
}

func TestLayoutHeightDropsParagraphs(t *testing.T) {
	l := newTestLayout("a\nb\nc", WithHeight(fixed.I(15)), WithEllipsize(text.EllipsizeEnd))
	require.Equal(t, 1, l.Lines().Len())
	line, _ := l.Lines().Line(0)
	assert.False(t, line.IsEllipsized, "the kept line fits")
	assert.True(t, l.IsEllipsized(), "later paragraphs were removed")
}

func TestLayoutAttributes(t *testing.T) {
	attrs, err := attr.NewList(attr.NewSize(fixed.I(20)).WithRange(0, 1))
	require.NoError(t, err)
	l := New("ab", attrs, WithBreakerOptions(text.WithFontLookup(text.NewStaticLookup(newTestFont()))))
	assert.Same(t, attrs, l.Attrs())
	require.Equal(t, 1, l.Lines().Len())
	line, _ := l.Lines().Line(0)
	assert.Len(t, line.Runs, 2)
}

func TestLayoutDraw(t *testing.T) {
	rec := newTestLayout("ab\ncd").Draw()
	var glyphs int
	for _, c := range rec.Commands() {
		if c.Type() == draw.CmdGlyphs {
			glyphs++
		}
	}
	assert.Equal(t, 2, glyphs)
	assert.Equal(t, fixed.I(20), rec.Bounds().Height)
}
