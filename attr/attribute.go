package attr

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/math/fixed"
)

// EndOfText as an attribute end extends the attribute to the end of the text.
const EndOfText = math.MaxInt

// Attribute applies a value of one kind to the byte range [Start, End).
//
// The dynamic type of Value depends on Kind:
//
//	KindLanguage, KindFamily, KindFontFeatures  string
//	KindStyle                                   Style
//	KindWeight                                  Weight
//	KindVariant                                 Variant
//	KindStretch                                 Stretch
//	KindSize, KindRise, KindLetterSpacing       fixed.Int26_6
//	KindFontDesc                                FontDescription
//	KindForeground, KindBackground,
//	KindUnderlineColor, KindStrikethroughColor  color.RGBA64
//	KindUnderline                               Underline
//	KindStrikethrough, KindInsertHyphens        bool
//	KindDirection                               BidiOverride
//	KindShape                                   Shape
//	KindGravity                                 Gravity
//	KindGravityHint                             GravityHint
type Attribute struct {
	Start, End int
	Kind       Kind
	Value      any
}

func newAttribute(k Kind, v any) Attribute {
	return Attribute{Start: 0, End: EndOfText, Kind: k, Value: v}
}

// WithRange returns a copy of a covering [start, end).
func (a Attribute) WithRange(start, end int) Attribute {
	a.Start, a.End = start, end
	return a
}

// Covers reports whether the byte at index pos is inside a's range.
func (a Attribute) Covers(pos int) bool {
	return a.Start <= pos && pos < a.End
}

// SameValue reports whether a and b have the same kind and value,
// ignoring their ranges.
func (a Attribute) SameValue(b Attribute) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch v := a.Value.(type) {
	case FontDescription:
		w, ok := b.Value.(FontDescription)
		return ok && v.Equal(w)
	default:
		return a.Value == b.Value
	}
}

// Equal reports whether a and b are identical, ranges included.
func (a Attribute) Equal(b Attribute) bool {
	return a.Start == b.Start && a.End == b.End && a.SameValue(b)
}

// Validate checks the range of a and the type of its value.
func (a Attribute) Validate() error {
	if !a.Kind.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, a.Kind)
	}
	if a.Start < 0 || a.End < a.Start {
		return fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, a.Start, a.End)
	}
	var ok bool
	switch a.Kind {
	case KindLanguage, KindFamily, KindFontFeatures:
		_, ok = a.Value.(string)
	case KindStyle:
		_, ok = a.Value.(Style)
	case KindWeight:
		_, ok = a.Value.(Weight)
	case KindVariant:
		_, ok = a.Value.(Variant)
	case KindStretch:
		_, ok = a.Value.(Stretch)
	case KindSize, KindRise, KindLetterSpacing:
		_, ok = a.Value.(fixed.Int26_6)
	case KindFontDesc:
		_, ok = a.Value.(FontDescription)
	case KindForeground, KindBackground, KindUnderlineColor, KindStrikethroughColor:
		_, ok = a.Value.(color.RGBA64)
	case KindUnderline:
		_, ok = a.Value.(Underline)
	case KindStrikethrough, KindInsertHyphens:
		_, ok = a.Value.(bool)
	case KindDirection:
		var o BidiOverride
		o, ok = a.Value.(BidiOverride)
		ok = ok && (o == OverrideLTR || o == OverrideRTL)
	case KindShape:
		_, ok = a.Value.(Shape)
	case KindGravity:
		_, ok = a.Value.(Gravity)
	case KindGravityHint:
		_, ok = a.Value.(GravityHint)
	}
	if !ok {
		return fmt.Errorf("%w: %T for %s", ErrInvalidValue, a.Value, a.Kind)
	}
	return nil
}

// NewLanguage returns a language attribute covering the whole text.
// tag is a BCP 47 language tag such as "en" or "sr-Latn".
func NewLanguage(tag string) Attribute { return newAttribute(KindLanguage, tag) }

// NewFamily returns a font family attribute. family may be a comma
// separated list of families in priority order.
func NewFamily(family string) Attribute { return newAttribute(KindFamily, family) }

// NewStyle returns a font style attribute.
func NewStyle(s Style) Attribute { return newAttribute(KindStyle, s) }

// NewWeight returns a font weight attribute.
func NewWeight(w Weight) Attribute { return newAttribute(KindWeight, w) }

// NewVariant returns a font variant attribute.
func NewVariant(v Variant) Attribute { return newAttribute(KindVariant, v) }

// NewStretch returns a font stretch attribute.
func NewStretch(s Stretch) Attribute { return newAttribute(KindStretch, s) }

// NewSize returns a font size attribute, in device units.
func NewSize(size fixed.Int26_6) Attribute { return newAttribute(KindSize, size) }

// NewFontDesc returns an attribute applying every field set in d.
func NewFontDesc(d FontDescription) Attribute { return newAttribute(KindFontDesc, d) }

// NewForeground returns a text color attribute.
func NewForeground(c color.Color) Attribute {
	return newAttribute(KindForeground, toRGBA64(c))
}

// NewBackground returns a background color attribute.
func NewBackground(c color.Color) Attribute {
	return newAttribute(KindBackground, toRGBA64(c))
}

// NewUnderline returns an underline style attribute.
func NewUnderline(u Underline) Attribute { return newAttribute(KindUnderline, u) }

// NewUnderlineColor returns an underline color attribute.
func NewUnderlineColor(c color.Color) Attribute {
	return newAttribute(KindUnderlineColor, toRGBA64(c))
}

// NewStrikethrough returns a strikethrough attribute.
func NewStrikethrough(on bool) Attribute { return newAttribute(KindStrikethrough, on) }

// NewStrikethroughColor returns a strikethrough color attribute.
func NewStrikethroughColor(c color.Color) Attribute {
	return newAttribute(KindStrikethroughColor, toRGBA64(c))
}

// NewRise returns an attribute shifting glyphs up by rise device units.
func NewRise(rise fixed.Int26_6) Attribute { return newAttribute(KindRise, rise) }

// NewLetterSpacing returns an attribute adding spacing between clusters.
func NewLetterSpacing(spacing fixed.Int26_6) Attribute {
	return newAttribute(KindLetterSpacing, spacing)
}

// NewDirection returns an explicit direction override attribute.
func NewDirection(o BidiOverride) Attribute { return newAttribute(KindDirection, o) }

// NewShape returns an attribute that replaces the covered characters by
// boxes with the given ink and logical rectangles.
func NewShape(ink, logical fixed.Rectangle26_6) Attribute {
	return newAttribute(KindShape, Shape{Ink: ink, Logical: logical})
}

// NewFontFeatures returns an OpenType feature attribute, in the
// comma separated "liga=0, smcp" form.
func NewFontFeatures(features string) Attribute {
	return newAttribute(KindFontFeatures, features)
}

// NewGravity returns a gravity attribute.
func NewGravity(g Gravity) Attribute { return newAttribute(KindGravity, g) }

// NewGravityHint returns a gravity hint attribute.
func NewGravityHint(h GravityHint) Attribute { return newAttribute(KindGravityHint, h) }

// NewInsertHyphens returns an attribute controlling whether a visible
// hyphen is inserted when a line is broken inside a word.
func NewInsertHyphens(on bool) Attribute { return newAttribute(KindInsertHyphens, on) }

func toRGBA64(c color.Color) color.RGBA64 {
	if c == nil {
		return color.RGBA64{}
	}
	return color.RGBA64Model.Convert(c).(color.RGBA64)
}
