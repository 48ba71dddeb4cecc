package text

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestLinesEmpty(t *testing.T) {
	ls := NewLines()

	if _, err := ls.IndexToPos(nil, 0); !errors.Is(err, ErrNoLines) {
		t.Errorf("IndexToPos() err = %v, want ErrNoLines", err)
	}
	if _, _, _, err := ls.PosToIndex(0, 0); !errors.Is(err, ErrNoLines) {
		t.Errorf("PosToIndex() err = %v, want ErrNoLines", err)
	}
	if _, _, err := ls.CursorPos(nil, 0); !errors.Is(err, ErrNoLines) {
		t.Errorf("CursorPos() err = %v, want ErrNoLines", err)
	}
	ink, logical := ls.Extents()
	if ink != (Rect{}) || logical != (Rect{}) {
		t.Errorf("Extents() = %v, %v, want zero", ink, logical)
	}
	if ls.Baseline() != 0 {
		t.Errorf("Baseline() = %v, want 0", ls.Baseline())
	}
	if ls.Serial() == 0 {
		t.Error("Serial() = 0")
	}
}

func TestLinesSerial(t *testing.T) {
	ls := NewLines()
	lines := breakAll(newTestBreaker("a\nb"), 0, WrapWord, EllipsizeNone)

	seen := map[uint32]bool{ls.Serial(): true}
	for _, l := range lines {
		ls.AddLine(l, 0, 0)
		s := ls.Serial()
		if s == 0 || seen[s] {
			t.Fatalf("Serial() = %d after AddLine, want a new non-zero value", s)
		}
		seen[s] = true
	}
}

func TestLinesExtents(t *testing.T) {
	lines := breakAll(newTestBreaker("ab\ncde"), 0, WrapWord, EllipsizeNone)
	ls := placeAll(lines)

	ink, logical := ls.Extents()
	assert.Equal(t, Rect{X: 0, Y: 0, Width: fixed.I(30), Height: fixed.I(20)}, logical)
	assert.True(t, logical.Contains(ink), "logical %v does not contain ink %v", logical, ink)
	assert.Equal(t, fixed.I(1), ink.X)
	assert.Equal(t, fixed.I(8), ls.Baseline())
}

func TestLinesExtentsEmptyLine(t *testing.T) {
	ls := placeAll(breakAll(newTestBreaker(""), 0, WrapWord, EllipsizeNone))
	ink, logical := ls.Extents()
	assert.True(t, ink.Empty())
	assert.Equal(t, fixed.I(10), logical.Height)
}

func TestLinesIndexToPos(t *testing.T) {
	text := "ab\nשל"
	lines := breakAll(newTestBreaker(text, WithBaseDirection(DirectionWeakLTR)), 0, WrapWord, EllipsizeNone)
	require.Len(t, lines, 2)
	ls := NewLines()
	ls.AddLine(lines[0], fixed.I(5), fixed.I(8))
	ls.AddLine(lines[1], fixed.I(5), fixed.I(18))

	tests := []struct {
		name  string
		line  int
		index int
		want  Rect
	}{
		{"first char", 0, 0, Rect{X: fixed.I(5), Y: 0, Width: fixed.I(10), Height: fixed.I(10)}},
		{"second char", 0, 1, Rect{X: fixed.I(15), Y: 0, Width: fixed.I(10), Height: fixed.I(10)}},
		{"line end", 0, 2, Rect{X: fixed.I(25), Y: 0, Width: 0, Height: fixed.I(10)}},
		{"rtl first char", 1, 3, Rect{X: fixed.I(25), Y: fixed.I(10), Width: -fixed.I(10), Height: fixed.I(10)}},
		{"rtl second char", 1, 5, Rect{X: fixed.I(15), Y: fixed.I(10), Width: -fixed.I(10), Height: fixed.I(10)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ls.IndexToPos(lines[tt.line], tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("errors", func(t *testing.T) {
		_, err := ls.IndexToPos(lines[0], 4)
		var ie *IndexError
		assert.ErrorAs(t, err, &ie)
		assert.ErrorIs(t, err, ErrInvalidIndex)

		_, err = ls.IndexToPos(lines[1], 4)
		assert.ErrorIs(t, err, ErrInvalidIndex, "not a character boundary")

		other := breakAll(newTestBreaker("x"), 0, WrapWord, EllipsizeNone)[0]
		_, err = ls.IndexToPos(other, 0)
		assert.ErrorIs(t, err, ErrLineNotInLines)
	})
}

func TestLinesRoundTripPlacement(t *testing.T) {
	lines := breakAll(newTestBreaker("one two three four five"), fixed.I(60), WrapWord, EllipsizeNone)
	ls := NewLines()
	for i, l := range lines {
		ls.AddLine(l, fixed.I(3*i), fixed.I(8+10*i))
	}
	for i, l := range lines {
		r, err := ls.IndexToPos(l, l.Start)
		require.NoError(t, err)
		assert.Equal(t, fixed.I(3*i), r.X, "line %d", i)
	}
}

func TestLinesPosToIndex(t *testing.T) {
	lines := breakAll(newTestBreaker("ab\ncd"), 0, WrapWord, EllipsizeNone)
	ls := placeAll(lines)

	tests := []struct {
		name         string
		x, y         fixed.Int26_6
		line         int
		index        int
		wantTrailing bool
	}{
		{"leading half", fixed.I(12), fixed.I(5), 0, 1, false},
		{"trailing half", fixed.I(17), fixed.I(5), 0, 1, true},
		{"second line", fixed.I(2), fixed.I(15), 1, 3, false},
		{"above", fixed.I(2), -fixed.I(50), 0, 0, false},
		{"below", fixed.I(2), fixed.I(500), 1, 3, false},
		{"left", -fixed.I(20), fixed.I(5), 0, 0, false},
		{"right", fixed.I(500), fixed.I(5), 0, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, index, trailing, err := ls.PosToIndex(tt.x, tt.y)
			require.NoError(t, err)
			assert.Same(t, lines[tt.line], line)
			assert.Equal(t, tt.index, index)
			assert.Equal(t, tt.wantTrailing, trailing)
		})
	}
}

func TestLineCursorPos(t *testing.T) {
	// Base LTR: "ab" then Hebrew "של" at x 20..40.
	text := "abשל"
	lines := breakAll(newTestBreaker(text, WithBaseDirection(DirectionLTR)), 0, WrapWord, EllipsizeNone)
	require.Len(t, lines, 1)
	l := lines[0]

	tests := []struct {
		name         string
		index        int
		strong, weak fixed.Int26_6
	}{
		{"start", 0, 0, 0},
		{"inside ltr", 1, fixed.I(10), fixed.I(10)},
		// After "ab": the strong caret follows the LTR text, the weak one
		// sits at the leading edge of the Hebrew run.
		{"boundary", 2, fixed.I(20), fixed.I(40)},
		{"inside rtl", 4, fixed.I(30), fixed.I(30)},
		{"end", 6, fixed.I(40), fixed.I(20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strong, weak, err := l.CursorPos(tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.strong, strong.X, "strong")
			assert.Equal(t, tt.weak, weak.X, "weak")
			assert.Equal(t, fixed.I(10), strong.Height)
			assert.Zero(t, strong.Width)
		})
	}
}

// cursorPositions returns the byte offsets of the cursor positions of
// text.
func cursorPositions(text string) []int {
	_, offsets := decodeRunes(text)
	var out []int
	for i, a := range ComputeLogAttrs(text, Language{}, nil, nil) {
		if a.IsCursorPosition {
			out = append(out, offsets[i])
		}
	}
	return out
}

func TestMoveCursorVisitsEveryPosition(t *testing.T) {
	texts := []string{
		"abc",
		"hello world",
		"abc אבג def",
		"אבג abc",
		"ab\ncd\n",
		"e\u0301x\u0301",
		"",
	}
	for _, text := range texts {
		for _, width := range []fixed.Int26_6{0, fixed.I(40)} {
			for _, strong := range []bool{true, false} {
				t.Run(text, func(t *testing.T) {
					lines := breakAll(newTestBreaker(text), width, WrapWord, EllipsizeNone)
					ls := placeAll(lines)

					seen := map[int]int{}
					line, index := lines[0], 0
					for steps := 0; line != nil; steps++ {
						require.Less(t, steps, 100, "no end of text")
						seen[index]++
						line, index, _ = ls.MoveCursor(strong, line, index, false, 1)
					}
					assert.Equal(t, math.MaxInt, index)

					want := cursorPositions(text)
					assert.Len(t, seen, len(want))
					for _, p := range want {
						assert.Equal(t, 1, seen[p], "position %d (strong=%v, width=%v)", p, strong, width)
					}
				})
			}
		}
	}
}

func TestMoveCursorBackward(t *testing.T) {
	lines := breakAll(newTestBreaker("ab\ncd"), 0, WrapWord, EllipsizeNone)
	ls := placeAll(lines)

	line, index := lines[1], 5
	var got []int
	for line != nil {
		got = append(got, index)
		line, index, _ = ls.MoveCursor(true, line, index, false, -1)
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1, 0}, got)
	assert.Equal(t, -1, index)
}

func TestMoveCursorRTL(t *testing.T) {
	text := "אבג"
	lines := breakAll(newTestBreaker(text), 0, WrapWord, EllipsizeNone)
	ls := placeAll(lines)

	// Forward on a right-to-left line moves left, in logical order here.
	line, index, trailing := ls.MoveCursor(true, lines[0], 0, false, 1)
	assert.Same(t, lines[0], line)
	assert.Equal(t, 2, index)
	assert.False(t, trailing)

	_, index, _ = ls.MoveCursor(true, lines[0], 0, true, 1)
	assert.Equal(t, 4, index, "trailing starts after the character")
}

func TestLineJustify(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width fixed.Int26_6
	}{
		{"spaces", "hello world", fixed.I(150)},
		{"two spaces", "a b c", fixed.I(80)},
		{"letters", "abc", fixed.I(50)},
		{"odd remainder", "abc", fixed.I(50) + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := breakAll(newTestBreaker(tt.text), 0, WrapWord, EllipsizeNone)[0]
			before := l.Width()
			j := l.Justify(tt.width)

			assert.True(t, j.IsJustified)
			assert.Equal(t, tt.width, j.Width())
			assert.False(t, l.IsJustified, "original changed")
			assert.Equal(t, before, l.Width(), "original changed")
		})
	}

	t.Run("spaces take the extra", func(t *testing.T) {
		l := breakAll(newTestBreaker("a b"), 0, WrapWord, EllipsizeNone)[0]
		j := l.Justify(fixed.I(50))
		gs := j.Runs[0].Glyphs.Glyphs
		assert.Equal(t, fixed.I(10), gs[0].XAdvance)
		assert.Equal(t, fixed.I(30), gs[1].XAdvance)
		assert.Equal(t, fixed.I(10), gs[2].XAdvance)
	})

	t.Run("wide enough", func(t *testing.T) {
		l := breakAll(newTestBreaker("abc"), 0, WrapWord, EllipsizeNone)[0]
		j := l.Justify(fixed.I(20))
		assert.False(t, j.IsJustified)
		assert.Equal(t, fixed.I(30), j.Width())
	})

	t.Run("trailing spaces excluded", func(t *testing.T) {
		b := newTestBreaker("ab cd ef")
		l := b.NextLine(0, fixed.I(60), WrapWord, EllipsizeNone)
		require.Equal(t, "ab cd ", l.Text()[l.Start:l.End()])
		j := l.Justify(fixed.I(70))
		gs := j.Runs[0].Glyphs.Glyphs
		assert.Equal(t, fixed.I(20), gs[2].XAdvance)
		assert.Equal(t, fixed.I(10), gs[5].XAdvance)
	})
}

func TestLineIndexToXErrors(t *testing.T) {
	l := breakAll(newTestBreaker("ab\ncd"), 0, WrapWord, EllipsizeNone)[0]
	for _, index := range []int{-1, 3, 4} {
		if _, err := l.IndexToX(index, false); !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("IndexToX(%d) err = %v, want ErrInvalidIndex", index, err)
		}
	}
}
