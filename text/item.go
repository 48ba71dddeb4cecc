package text

import (
	"github.com/gogpu/textlayout/attr"
	"github.com/gogpu/textlayout/text/emoji"
	"golang.org/x/image/math/fixed"
)

// Analysis is what an item's characters have in common.
type Analysis struct {
	// Font is the font chosen for the item, nil when no font covers it.
	Font        Font
	Description attr.FontDescription
	Size        fixed.Int26_6
	Language    Language
	Script      Script
	Level       uint8
	Gravity     attr.Gravity

	// Presentation is the emoji presentation requested for the item.
	Presentation emoji.Presentation

	// Attrs holds the attributes in effect over the item that do not
	// select fonts, one per kind except for accumulating kinds.
	Attrs []attr.Attribute
}

// Direction returns the direction of the item from its level parity.
func (a *Analysis) Direction() Direction {
	if a.Level%2 == 1 {
		return DirectionRTL
	}
	return DirectionLTR
}

// Unshapeable reports whether no font covers the item.
func (a *Analysis) Unshapeable() bool {
	return a.Font == nil
}

// Attr returns the attribute of kind k applying to the item.
func (a *Analysis) Attr(k attr.Kind) (attr.Attribute, bool) {
	for _, at := range a.Attrs {
		if at.Kind == k {
			return at, true
		}
	}
	return attr.Attribute{}, false
}

// Item is a span of text whose characters share script, level, font
// and attributes.
type Item struct {
	Offset, Length int // byte range in the text
	NumChars       int

	// CharOffset is the index of the first character in the text.
	CharOffset int
	Analysis   Analysis
}

// End returns the byte offset just past the item.
func (it *Item) End() int {
	return it.Offset + it.Length
}

// Split cuts it after length bytes, covering nChars characters, and
// returns the two halves. The analysis is shared.
func (it *Item) Split(length, nChars int) (head, tail *Item) {
	head = &Item{
		Offset:     it.Offset,
		Length:     length,
		NumChars:   nChars,
		CharOffset: it.CharOffset,
		Analysis:   it.Analysis,
	}
	tail = &Item{
		Offset:     it.Offset + length,
		Length:     it.Length - length,
		NumChars:   it.NumChars - nChars,
		CharOffset: it.CharOffset + nChars,
		Analysis:   it.Analysis,
	}
	return head, tail
}
