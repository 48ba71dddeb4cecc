package text

import (
	"unicode"

	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/clipperhouse/uax29/v2/words"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/segmenter"
	"github.com/gogpu/textlayout/text/emoji"
)

// LogAttr describes the position before one character of a text. A text
// of n characters has n+1 of them; the last describes the end of text.
type LogAttr struct {
	// IsLineBreak is set where a line may be broken.
	IsLineBreak bool
	// IsMandatoryBreak is set where a line must be broken; it implies
	// IsLineBreak.
	IsMandatoryBreak bool
	// IsCharBreak is set where a line may be broken when breaking
	// inside words.
	IsCharBreak bool
	// IsWhiteSpace is set on positions before a white space character.
	IsWhiteSpace bool
	// IsCursorPosition is set where the cursor may be placed.
	IsCursorPosition bool

	IsWordStart    bool
	IsWordEnd      bool
	IsWordBoundary bool

	IsSentenceBoundary bool
	IsSentenceStart    bool
	IsSentenceEnd      bool

	// BackspaceDeletesCharacter is set when backspace at this position
	// deletes only the character before it, not its whole cluster.
	BackspaceDeletesCharacter bool

	// IsExpandableSpace is set before spaces that justification may
	// widen.
	IsExpandableSpace bool

	// BreakInsertsHyphen is set where breaking the line shows a hyphen.
	BreakInsertsHyphen bool
}

// WordBreaker finds word boundaries in text of scripts written without
// spaces, such as Thai or Khmer. BreakPositions returns the byte offsets
// inside text, in increasing order, where words start.
type WordBreaker interface {
	BreakPositions(text string, lang Language) []int
}

// scriptRun is a run of characters sharing a script.
type scriptRun struct {
	start, end int // character range
	script     Script
}

// ComputeLogAttrs returns the break attributes of text: one per
// character plus one for the end of text. items are the items of text,
// used for their scripts; nil looks scripts up per character. dict,
// when not nil, supplies word and line breaks inside runs of dictionary
// scripts.
//
// The result depends only on its arguments.
func ComputeLogAttrs(text string, lang Language, items []*Item, dict WordBreaker) []LogAttr {
	runes, offsets := decodeRunes(text)
	attrs := make([]LogAttr, len(runes)+1)
	if len(runes) == 0 {
		attrs[0] = LogAttr{
			IsCursorPosition:   true,
			IsCharBreak:        true,
			IsWordBoundary:     true,
			IsSentenceBoundary: true,
		}
		return attrs
	}

	defaultBreaks(runes, attrs)
	wordBreaks(text, runes, offsets, attrs)
	sentenceBreaks(text, runes, offsets, attrs)

	for _, run := range scriptRuns(runes, items) {
		tailor(runes[run.start:run.end], run.script, attrs[run.start:run.end+1])
	}
	if dict != nil {
		dictionaryBreaks(text, runes, offsets, lang, dict, attrs)
	}
	return attrs
}

// defaultBreaks fills the grapheme, line break and character class
// attributes.
func defaultBreaks(runes []rune, attrs []LogAttr) {
	var seg segmenter.Segmenter
	seg.Init(runes)

	graphemes := seg.GraphemeIterator()
	var base rune
	for graphemes.Next() {
		g := graphemes.Grapheme()
		a := &attrs[g.Offset]
		a.IsCursorPosition = true
		a.IsCharBreak = true
		if g.Offset > 0 {
			a.BackspaceDeletesCharacter = backspaceDeletesCharacter(base)
		}
		base = g.Text[0]
	}
	end := &attrs[len(runes)]
	end.IsCursorPosition = true
	end.IsCharBreak = true
	end.BackspaceDeletesCharacter = backspaceDeletesCharacter(base)

	lines := seg.LineIterator()
	for lines.Next() {
		l := lines.Line()
		pos := l.Offset + len(l.Text)
		if !attrs[pos].IsCharBreak {
			continue
		}
		attrs[pos].IsLineBreak = true
		attrs[pos].IsMandatoryBreak = l.IsMandatoryBreak
	}

	for i, r := range runes {
		a := &attrs[i]
		a.IsWhiteSpace = unicode.IsSpace(r)
		a.IsExpandableSpace = r == ' ' || r == 0xA0
		if i > 0 && runes[i-1] == 0xAD && a.IsLineBreak {
			a.BreakInsertsHyphen = true
		}
	}
	attrs[0].IsLineBreak = false
	attrs[0].IsMandatoryBreak = false
}

// backspaceDeletesCharacter reports whether backspace after a cluster
// starting with base deletes a single character rather than the
// cluster.
func backspaceDeletesCharacter(base rune) bool {
	switch LookupScript(base) {
	case language.Latin, language.Cyrillic, language.Greek,
		language.Hiragana, language.Katakana, language.Hangul:
		return false
	}
	return !emoji.IsEmoji(base)
}

// wordBreaks fills the word attributes from the UAX #29 word segments.
// A segment containing a letter or digit is a word.
func wordBreaks(text string, runes []rune, offsets []int, attrs []LogAttr) {
	index := byteToRune(offsets)
	seg := words.FromString(text)
	for seg.Next() {
		start, end := index[seg.Start()], index[seg.End()]
		attrs[start].IsWordBoundary = true
		attrs[end].IsWordBoundary = true
		if isWord(runes[start:end]) {
			attrs[start].IsWordStart = true
			attrs[end].IsWordEnd = true
		}
	}
}

func isWord(rs []rune) bool {
	for _, r := range rs {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// sentenceBreaks fills the sentence attributes from the UAX #29
// sentence segments. A sentence starts at the first and ends after the
// last non-space character of its segment.
func sentenceBreaks(text string, runes []rune, offsets []int, attrs []LogAttr) {
	index := byteToRune(offsets)
	seg := sentences.FromString(text)
	for seg.Next() {
		start, end := index[seg.Start()], index[seg.End()]
		attrs[start].IsSentenceBoundary = true
		attrs[end].IsSentenceBoundary = true
		first, last := start, end
		for first < end && unicode.IsSpace(runes[first]) {
			first++
		}
		for last > first && unicode.IsSpace(runes[last-1]) {
			last--
		}
		if first < last {
			attrs[first].IsSentenceStart = true
			attrs[last].IsSentenceEnd = true
		}
	}
}

// byteToRune maps every byte offset that starts a character, and the
// end of text, to its character index.
func byteToRune(offsets []int) map[int]int {
	m := make(map[int]int, len(offsets))
	for i, off := range offsets {
		m[off] = i
	}
	return m
}

// scriptRuns splits the characters into runs of one script, taken from
// items when given.
func scriptRuns(runes []rune, items []*Item) []scriptRun {
	var runs []scriptRun
	if len(items) > 0 {
		for _, it := range items {
			start := it.CharOffset
			end := min(start+it.NumChars, len(runes))
			if k := len(runs) - 1; k >= 0 && runs[k].script == it.Analysis.Script && runs[k].end == start {
				runs[k].end = end
				continue
			}
			runs = append(runs, scriptRun{start: start, end: end, script: it.Analysis.Script})
		}
		return runs
	}
	for i, r := range runes {
		s := LookupScript(r)
		if k := len(runs) - 1; k >= 0 && (runs[k].script == s || !isRealScript(s)) {
			runs[k].end = i + 1
			continue
		}
		runs = append(runs, scriptRun{start: i, end: i + 1, script: s})
	}
	return runs
}

// tailor applies the script specific rules to one run. attrs covers the
// run and the position after it.
func tailor(runes []rune, s Script, attrs []LogAttr) {
	switch s {
	case language.Arabic:
		breakArabic(runes, attrs)
	case language.Devanagari, language.Bengali, language.Gurmukhi, language.Gujarati,
		language.Oriya, language.Tamil, language.Telugu, language.Kannada,
		language.Malayalam, language.Sinhala:
		breakIndic(runes, s, attrs)
	}
}

// notCursorPosition removes every break at a position that is not a
// mandatory break.
func notCursorPosition(a *LogAttr) {
	if a.IsMandatoryBreak {
		return
	}
	a.IsCursorPosition = false
	a.IsCharBreak = false
	a.IsLineBreak = false
	a.IsMandatoryBreak = false
}
