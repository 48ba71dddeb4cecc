package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textlayout/attr"
)

func itemize(t *testing.T, text string, attrs *attr.List, lookup FontLookup) []*Item {
	t.Helper()
	levels, _ := ResolveLevels(text, DirectionWeakLTR)
	return Itemize(text, attrs, levels, ItemizeParams{
		Lookup: lookup,
		Font:   attr.DefaultFontDescription(fixed.I(12)),
	})
}

func itemTexts(text string, items []*Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = text[it.Offset:it.End()]
	}
	return out
}

func TestItemizeCoversText(t *testing.T) {
	texts := []string{
		"Hello, world",
		"Hello שלום world 123",
		"a\tb\nc d",
		"αβγ abc مرحبا",
		"e\u0301\u0301x",
		"日本語テキスト",
	}
	lookup := NewStaticLookup(newTestFont(allRunes))
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			items := itemize(t, text, nil, lookup)
			require.NotEmpty(t, items)

			off, chars := 0, 0
			for _, it := range items {
				assert.Equal(t, off, it.Offset)
				assert.Equal(t, chars, it.CharOffset)
				assert.Positive(t, it.Length)
				assert.Equal(t, charCount(text[it.Offset:it.End()]), it.NumChars)
				off, chars = it.End(), chars+it.NumChars
			}
			assert.Equal(t, len(text), off)
		})
	}
}

func TestItemizeEmpty(t *testing.T) {
	assert.Nil(t, Itemize("", nil, nil, ItemizeParams{}))
}

func TestItemizeScripts(t *testing.T) {
	lookup := NewStaticLookup(newTestFont(allRunes))
	tests := []struct {
		name    string
		text    string
		want    []string
		scripts []Script
	}{
		{"common follows", "abc αβγ", []string{"abc ", "αβγ"}, []Script{ScriptLatin, LookupScript('α')}},
		{"leading common", "123abc", []string{"123abc"}, []Script{ScriptLatin}},
		{"brackets", "αβ (abc) γ", []string{"αβ (", "abc", ") γ"},
			[]Script{LookupScript('α'), ScriptLatin, LookupScript('α')}},
		{"marks", "e\u0301x", []string{"e\u0301x"}, []Script{ScriptLatin}},
		{"levels", "abc אבג", []string{"abc ", "אבג"}, []Script{ScriptLatin, ScriptHebrew}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := itemize(t, tt.text, nil, lookup)
			assert.Equal(t, tt.want, itemTexts(tt.text, items))
			for i, it := range items {
				if i < len(tt.scripts) {
					assert.Equal(t, tt.scripts[i], it.Analysis.Script, "item %d", i)
				}
			}
		})
	}
}

func TestItemizeSpecialCharacters(t *testing.T) {
	lookup := NewStaticLookup(newTestFont(allRunes))
	tests := []struct {
		text string
		want []string
	}{
		{"a\tb", []string{"a", "\t", "b"}},
		{"a\t\tb", []string{"a", "\t", "\t", "b"}},
		{"ab\ncd", []string{"ab", "\n", "cd"}},
		{"ab\u2028cd", []string{"ab", "\u2028", "cd"}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, itemTexts(tt.text, itemize(t, tt.text, nil, lookup)))
		})
	}
}

func TestItemizeLevels(t *testing.T) {
	text := "abc אבג"
	items := itemize(t, text, nil, NewStaticLookup(newTestFont(allRunes)))
	require.Len(t, items, 2)
	assert.Equal(t, DirectionLTR, items[0].Analysis.Direction())
	assert.Equal(t, DirectionRTL, items[1].Analysis.Direction())
}

func TestItemizeFonts(t *testing.T) {
	ascii := newTestFont(func(r rune) bool { return r < 0x80 })
	full := newTestFont(allRunes)
	text := "a\u00e9b"
	items := itemize(t, text, nil, NewStaticLookup(ascii, full))

	require.Equal(t, []string{"a", "\u00e9b"}, itemTexts(text, items))
	assert.Same(t, ascii, items[0].Analysis.Font)
	assert.Same(t, full, items[1].Analysis.Font, "the fallback font is kept while it covers")
}

func TestItemizeNoFont(t *testing.T) {
	ascii := newTestFont(func(r rune) bool { return r < 0x80 })
	text := "ab日"
	items := itemize(t, text, nil, NewStaticLookup(ascii))
	require.Len(t, items, 2)
	assert.False(t, items[0].Analysis.Unshapeable())
	assert.True(t, items[1].Analysis.Unshapeable())

	items = itemize(t, text, nil, nil)
	for _, it := range items {
		assert.True(t, it.Analysis.Unshapeable())
	}
}

func TestItemizeAttributes(t *testing.T) {
	lookup := NewStaticLookup(newTestFont(allRunes))
	text := "abcdef"
	attrs, err := attr.NewList(
		attr.NewLetterSpacing(fixed.I(2)).WithRange(1, 3),
		attr.NewLanguage("fr").WithRange(3, 5),
		attr.NewSize(fixed.I(20)).WithRange(5, 6),
	)
	require.NoError(t, err)

	items := itemize(t, text, attrs, lookup)
	require.Equal(t, []string{"a", "bc", "de", "f"}, itemTexts(text, items))

	_, ok := items[0].Analysis.Attr(attr.KindLetterSpacing)
	assert.False(t, ok)
	at, ok := items[1].Analysis.Attr(attr.KindLetterSpacing)
	require.True(t, ok)
	assert.Equal(t, fixed.I(2), at.Value)

	assert.Equal(t, NewLanguage("fr"), items[2].Analysis.Language)
	assert.True(t, items[1].Analysis.Language.IsZero())

	assert.Equal(t, fixed.I(20), items[3].Analysis.Size)
	assert.Equal(t, fixed.I(12), items[0].Analysis.Size)
}

func TestItemSplit(t *testing.T) {
	it := &Item{Offset: 4, Length: 7, NumChars: 5, CharOffset: 3, Analysis: Analysis{Level: 1}}
	head, tail := it.Split(3, 2)

	assert.Equal(t, &Item{Offset: 4, Length: 3, NumChars: 2, CharOffset: 3, Analysis: Analysis{Level: 1}}, head)
	assert.Equal(t, &Item{Offset: 7, Length: 4, NumChars: 3, CharOffset: 5, Analysis: Analysis{Level: 1}}, tail)
	assert.Equal(t, it.End(), tail.End())
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"en", "en"},
		{"en_US", "en-US"},
		{"EN-us", "en-US"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			l := NewLanguage(tt.tag)
			if l.String() != tt.want {
				t.Errorf("NewLanguage(%q) = %q, want %q", tt.tag, l.String(), tt.want)
			}
			if l != NewLanguage(tt.want) {
				t.Errorf("NewLanguage(%q) is not interned", tt.tag)
			}
		})
	}
	if NewLanguage("sr-Latn").Primary() != "sr" {
		t.Errorf("Primary() = %q, want sr", NewLanguage("sr-Latn").Primary())
	}
}
