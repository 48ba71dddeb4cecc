// Package emoji classifies text into emoji presentation runs.
//
// Unicode Technical Standard #51 lets a character ask for a text or an
// emoji glyph. The scanner in this package recognizes the sequences that
// carry such a request and must stay together:
//
//   - Single emoji, with an optional U+FE0E (text) or U+FE0F (emoji)
//     variation selector
//   - Skin tone modifier sequences (U+1F3FB - U+1F3FF)
//   - ZWJ (Zero-Width Joiner) sequences
//   - Regional indicator pairs forming flags
//   - Keycap sequences (digit, # or *, optional selector, U+20E3)
//   - Tag sequences for subdivision flags
//
// Each sequence is classified as PresentationText, PresentationEmoji or
// PresentationDefault, and Scan merges neighbouring sequences of the same
// class into runs:
//
//	for _, run := range emoji.Scan("Hello 😀 World") {
//		fmt.Println(run.Start, run.End, run.Presentation)
//	}
//
// Font selection consults the runs; they never change line breaking.
package emoji
