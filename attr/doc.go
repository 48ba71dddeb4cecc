// Package attr describes styled text: attributes that apply to byte
// ranges of a string, the lists that hold them, font descriptions and
// tab stops.
//
// An [Attribute] covers the half-open byte range [Start, End) of the text
// it is applied to. [EndOfText] as End extends it to the end of any text.
// A [List] keeps attributes ordered by start offset; overlapping
// attributes of the same [Kind] are resolved when the list is iterated,
// following the kind's merge policy (see [Kind.Accumulates]).
//
// Lists and tab arrays have a line oriented textual form, produced by
// String and read back by [Parse] and [ParseTabArray]:
//
//	0 5 weight 700
//	3 9 foreground #ffff00000000
//	0 -1 language "fr"
//
// The format is meant for debugging and test fixtures.
package attr
