// Package text breaks attributed Unicode text into lines of positioned
// glyphs and answers geometry queries about them.
//
// The pipeline runs in stages, each usable on its own:
//
//   - ResolveLevels: bidi embedding levels of a paragraph
//   - Itemize: items of uniform script, level, style and font
//   - ComputeLogAttrs: cursor, word, sentence and line break positions
//   - Shaper: glyphs for one item
//   - Breaker: lines fitting a width, in visual order
//   - Lines: placed lines with hit testing and cursor movement
//
// # Example usage
//
//	lookup := text.NewStaticLookup(font)
//	b := text.NewBreaker(text.WithFontLookup(lookup))
//	b.AddText("Hello, world", nil)
//
//	lines := text.NewLines()
//	y := fixed.I(0)
//	for b.HasLine() {
//	    line := b.NextLine(0, fixed.I(200), text.WrapWord, text.EllipsizeNone)
//	    m := line.Metrics()
//	    y += m.Ascent
//	    lines.AddLine(line, 0, y)
//	    y += m.Descent
//	}
//
// # Fonts
//
// Layout only needs the Font capability interface. GoTextFont wraps a
// go-text font and shapes with HarfBuzz; UserFont is built from
// callbacks. Fonts without a TextShaper are shaped one glyph per
// character from their character map.
//
// All geometry is in 26.6 fixed point device units with y growing down.
// Byte offsets index the text given to Breaker.AddText.
package text
