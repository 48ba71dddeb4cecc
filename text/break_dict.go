package text

import "github.com/gogpu/textlayout/internal/ucd"

// dictionaryBreaks replaces the word and line breaks inside every run
// of dictionary script characters by the positions dict reports. Breaks
// at the edges of a run are left alone.
func dictionaryBreaks(text string, runes []rune, offsets []int, lang Language, dict WordBreaker, attrs []LogAttr) {
	index := byteToRune(offsets)
	for start := 0; start < len(runes); {
		if !ucd.ComplexContext.Contains(runes[start]) {
			start++
			continue
		}
		end := start + 1
		for end < len(runes) && ucd.ComplexContext.Contains(runes[end]) {
			end++
		}
		for i := start + 1; i < end; i++ {
			a := &attrs[i]
			a.IsLineBreak = false
			a.IsWordBoundary = false
			a.IsWordStart = false
			a.IsWordEnd = false
		}
		attrs[start].IsWordStart = true
		attrs[end].IsWordEnd = true

		base := offsets[start]
		for _, b := range dict.BreakPositions(text[base:offsets[end]], lang) {
			i, ok := index[base+b]
			if !ok || i <= start || i >= end || !attrs[i].IsCursorPosition {
				continue
			}
			a := &attrs[i]
			a.IsLineBreak = true
			a.IsWordBoundary = true
			a.IsWordStart = true
			a.IsWordEnd = true
		}
		start = end
	}
}
