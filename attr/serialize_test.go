package attr

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestListStringRoundTrip(t *testing.T) {
	desc, err := ParseFontDescription("Sans, Serif, bold 12.5px")
	require.NoError(t, err)
	shape := Shape{
		Ink:     rect(0, -640, 640, 640),
		Logical: rect(0, -704, 768, 896),
	}
	l, err := NewList(
		NewLanguage("sr-Latn").WithRange(0, 10),
		NewFamily("Cantarell"),
		NewStyle(StyleItalic).WithRange(1, 2),
		NewWeight(WeightSemibold).WithRange(1, 2),
		NewVariant(VariantSmallCaps),
		NewStretch(StretchCondensed),
		NewSize(fixed.I(14)),
		NewFontDesc(desc),
		NewForeground(color.RGBA{R: 0xff, A: 0xff}),
		NewBackground(color.White),
		NewUnderline(UnderlineDouble),
		NewUnderlineColor(color.Black),
		NewStrikethrough(true),
		NewStrikethroughColor(color.RGBA64{R: 0x1234, G: 0x5678, B: 0x9abc, A: 0xffff}),
		NewRise(-128),
		NewLetterSpacing(256),
		NewDirection(OverrideRTL).WithRange(3, 4),
		NewShape(shape.Ink, shape.Logical).WithRange(5, 6),
		NewFontFeatures("liga=0, kern"),
		NewGravity(GravityEast),
		NewGravityHint(GravityHintStrong),
		NewInsertHyphens(false),
	)
	require.NoError(t, err)

	parsed, err := Parse(l.String())
	require.NoError(t, err)
	assert.True(t, l.Equal(parsed), "got:\n%s\nwant:\n%s", parsed, l)
	assert.Equal(t, l.String(), parsed.String())
}

func TestAttributeString(t *testing.T) {
	tests := []struct {
		a    Attribute
		want string
	}{
		{NewWeight(WeightBold).WithRange(0, 5), "0 5 weight 700"},
		{NewStyle(StyleItalic).WithRange(2, 3), "2 3 style italic"},
		{NewFamily("DejaVu Sans").WithRange(0, 1), `0 1 family "DejaVu Sans"`},
		{NewForeground(color.RGBA{R: 0xff, A: 0xff}).WithRange(0, 1), "0 1 foreground #ffff00000000"},
		{NewUnderline(UnderlineError).WithRange(1, 4), "1 4 underline error"},
		{NewInsertHyphens(false).WithRange(0, 2), "0 2 insert-hyphens false"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.String())
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA64
		ok   bool
	}{
		{"#fff", color.RGBA64{0xffff, 0xffff, 0xffff, 0xffff}, true},
		{"#f00", color.RGBA64{0xffff, 0, 0, 0xffff}, true},
		{"#808080", color.RGBA64{0x8080, 0x8080, 0x8080, 0xffff}, true},
		{"#123456789abc", color.RGBA64{0x1234, 0x5678, 0x9abc, 0xffff}, true},
		{"fff", color.RGBA64{}, false},
		{"#ff", color.RGBA64{}, false},
		{"#ggg", color.RGBA64{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if !tt.ok {
				assert.True(t, errors.Is(err, ErrInvalidValue))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line int
		want error
	}{
		{"unknown kind", "0 1 sparkle 3", 1, ErrUnknownKind},
		{"bad start", "\nx 1 weight 700", 2, ErrInvalidRange},
		{"bad value", "0 1 weight 700\n0 1 style wobbly", 2, ErrInvalidValue},
		{"reversed range", "4 1 weight 700", 1, ErrInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "got %v", err)
			assert.Equal(t, tt.line, pe.Line)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	t.Run("too few fields", func(t *testing.T) {
		_, err := Parse("0 1 weight")
		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 1, pe.Line)
	})
}

func TestParseSkipsBlankLines(t *testing.T) {
	l, err := Parse("\n0 4 weight 700\n\n   \n2 3 style italic\n")
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())
}
