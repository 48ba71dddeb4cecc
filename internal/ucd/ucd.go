// Package ucd holds the small Unicode property tables used by the break
// attribute engine and the fallback shaper.
//
// Every table is a sorted slice of closed ranges searched with a binary
// search. The tables are immutable and need no initialization.
package ucd

import "sort"

// Range is a closed interval of code points.
type Range struct {
	Lo, Hi rune
}

// Table is a sorted, non-overlapping list of ranges.
type Table []Range

// Contains reports whether r falls inside one of the table's ranges.
func (t Table) Contains(r rune) bool {
	i := sort.Search(len(t), func(i int) bool { return t[i].Hi >= r })
	return i < len(t) && t[i].Lo <= r
}

// Virama lists the Indic virama (halant) signs that extend a ZWJ/ZWNJ
// conjunct over the following consonant.
var Virama = Table{
	{0x094D, 0x094D}, // Devanagari
	{0x09CD, 0x09CD}, // Bengali
	{0x0A4D, 0x0A4D}, // Gurmukhi
	{0x0ACD, 0x0ACD}, // Gujarati
	{0x0B4D, 0x0B4D}, // Oriya
	{0x0BCD, 0x0BCD}, // Tamil
	{0x0C4D, 0x0C4D}, // Telugu
	{0x0CCD, 0x0CCD}, // Kannada
	{0x0D4D, 0x0D4D}, // Malayalam
}

// NuktaComposite lists precomposed Brahmic letters and vowel signs whose
// canonical decomposition is base + nukta or a two part vowel sign.
// Backspace after one of them removes the whole character.
var NuktaComposite = Table{
	{0x0931, 0x0931},
	{0x0958, 0x095F},
	{0x09DC, 0x09DF},
	{0x0A33, 0x0A33},
	{0x0A36, 0x0A36},
	{0x0A59, 0x0A5C},
	{0x0A5E, 0x0A5E},
	{0x0B48, 0x0B48},
	{0x0B4B, 0x0B4C},
	{0x0BCA, 0x0BCC},
	{0x0C47, 0x0C48},
	{0x0CC7, 0x0CC8},
	{0x0CCA, 0x0CCB},
}

// SplitMatra lists two part dependent vowel signs whose first half is
// rendered before the base consonant.
var SplitMatra = Table{
	{0x09CB, 0x09CC},
	{0x0D4A, 0x0D4C},
}

// PreBaseMatra lists dependent vowel signs that are written to the left
// of the consonant they follow in logical order.
var PreBaseMatra = Table{
	{0x093F, 0x093F},
	{0x094E, 0x094E},
	{0x09BF, 0x09BF},
	{0x09C7, 0x09C8},
	{0x0A3F, 0x0A3F},
	{0x0ABF, 0x0ABF},
	{0x0B47, 0x0B47},
	{0x0BC6, 0x0BC8},
	{0x0D46, 0x0D48},
	{0x0DD9, 0x0DDB},
}

// ArabicComposite lists the Arabic letters with a canonical decomposition
// into a base letter and a hamza or madda mark.
var ArabicComposite = Table{
	{0x0622, 0x0626},
}

// ComplexContext approximates Line_Break=SA: scripts written without
// spaces between words whose line break opportunities come from a
// dictionary.
var ComplexContext = Table{
	{0x0E00, 0x0E7F},   // Thai
	{0x0E80, 0x0EFF},   // Lao
	{0x1000, 0x109F},   // Myanmar
	{0x1780, 0x17FF},   // Khmer
	{0x1950, 0x197F},   // Tai Le
	{0x1980, 0x19DF},   // New Tai Lue
	{0x19E0, 0x19FF},   // Khmer symbols
	{0x1A20, 0x1AAF},   // Tai Tham
	{0xA9E0, 0xA9FF},   // Myanmar Extended-B
	{0xAA60, 0xAA7F},   // Myanmar Extended-A
	{0xAA80, 0xAADF},   // Tai Viet
	{0x11700, 0x1174F}, // Ahom
}

// DefaultIgnorable lists format controls that render as nothing.
var DefaultIgnorable = Table{
	{0x00AD, 0x00AD},
	{0x034F, 0x034F},
	{0x061C, 0x061C},
	{0x115F, 0x1160},
	{0x17B4, 0x17B5},
	{0x180B, 0x180F},
	{0x200B, 0x200F},
	{0x202A, 0x202E},
	{0x2060, 0x206F},
	{0xFE00, 0xFE0F},
	{0xFEFF, 0xFEFF},
	{0xFFF0, 0xFFF8},
	{0xE0000, 0xE0FFF},
}
