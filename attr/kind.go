package attr

// Kind identifies what an attribute controls.
type Kind uint8

// Attribute kinds.
const (
	KindInvalid Kind = iota
	KindLanguage
	KindFamily
	KindStyle
	KindWeight
	KindVariant
	KindStretch
	KindSize
	KindFontDesc
	KindForeground
	KindBackground
	KindUnderline
	KindUnderlineColor
	KindStrikethrough
	KindStrikethroughColor
	KindRise
	KindLetterSpacing
	KindDirection
	KindShape
	KindFontFeatures
	KindGravity
	KindGravityHint
	KindInsertHyphens

	kindCount
)

var kindNames = [...]string{
	KindInvalid:            "invalid",
	KindLanguage:           "language",
	KindFamily:             "family",
	KindStyle:              "style",
	KindWeight:             "weight",
	KindVariant:            "variant",
	KindStretch:            "stretch",
	KindSize:               "size",
	KindFontDesc:           "font-desc",
	KindForeground:         "foreground",
	KindBackground:         "background",
	KindUnderline:          "underline",
	KindUnderlineColor:     "underline-color",
	KindStrikethrough:      "strikethrough",
	KindStrikethroughColor: "strikethrough-color",
	KindRise:               "rise",
	KindLetterSpacing:      "letter-spacing",
	KindDirection:          "direction",
	KindShape:              "shape",
	KindFontFeatures:       "font-features",
	KindGravity:            "gravity",
	KindGravityHint:        "gravity-hint",
	KindInsertHyphens:      "insert-hyphens",
}

// String returns the name used for k in the textual list format.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Valid reports whether k is a known, non-invalid kind.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < kindCount
}

// Accumulates reports the merge policy of k. When several attributes of
// an accumulating kind cover a position, all of them apply. For every
// other kind the attribute with the narrowest range wins, and among
// equally narrow ones the one inserted last.
func (k Kind) Accumulates() bool {
	return k == KindFontFeatures
}

// AffectsFont reports whether k takes part in font selection.
func (k Kind) AffectsFont() bool {
	switch k {
	case KindFamily, KindStyle, KindWeight, KindVariant, KindStretch, KindSize, KindFontDesc:
		return true
	}
	return false
}

func kindByName(name string) (Kind, bool) {
	for k := KindLanguage; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return KindInvalid, false
}
