package attr

import (
	"golang.org/x/image/math/fixed"
)

const unknownStr = "unknown"

// Style is the slant of a font.
type Style uint8

// Font styles.
const (
	StyleNormal Style = iota
	StyleOblique
	StyleItalic
)

var styleNames = []string{"normal", "oblique", "italic"}

func (s Style) String() string { return enumName(styleNames, int(s)) }

// Weight is the boldness of a font, 100 (thin) to 1000 (ultra heavy).
type Weight int

// Common font weights.
const (
	WeightThin       Weight = 100
	WeightUltraLight Weight = 200
	WeightLight      Weight = 300
	WeightBook       Weight = 380
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemibold   Weight = 600
	WeightBold       Weight = 700
	WeightUltraBold  Weight = 800
	WeightHeavy      Weight = 900
	WeightUltraHeavy Weight = 1000
)

// Variant selects small capitals.
type Variant uint8

// Font variants.
const (
	VariantNormal Variant = iota
	VariantSmallCaps
)

var variantNames = []string{"normal", "small-caps"}

func (v Variant) String() string { return enumName(variantNames, int(v)) }

// Stretch is the width of a font relative to its normal width.
type Stretch uint8

// Font stretches.
const (
	StretchUltraCondensed Stretch = iota
	StretchExtraCondensed
	StretchCondensed
	StretchSemiCondensed
	StretchNormal
	StretchSemiExpanded
	StretchExpanded
	StretchExtraExpanded
	StretchUltraExpanded
)

var stretchNames = []string{
	"ultra-condensed", "extra-condensed", "condensed", "semi-condensed",
	"normal",
	"semi-expanded", "expanded", "extra-expanded", "ultra-expanded",
}

func (s Stretch) String() string { return enumName(stretchNames, int(s)) }

// Underline is the underline style of a run.
type Underline uint8

// Underline styles.
const (
	UnderlineNone Underline = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineLow
	UnderlineError
)

var underlineNames = []string{"none", "single", "double", "low", "error"}

func (u Underline) String() string { return enumName(underlineNames, int(u)) }

// BidiOverride forces the direction of the characters it covers,
// as the LRO and RLO control characters do.
type BidiOverride uint8

// Direction overrides.
const (
	OverrideLTR BidiOverride = iota + 1
	OverrideRTL
)

var overrideNames = []string{"", "ltr", "rtl"}

func (o BidiOverride) String() string { return enumName(overrideNames, int(o)) }

// Gravity is the direction toward which the bottom of the glyphs points.
// South is the normal, upright orientation.
type Gravity uint8

// Gravities.
const (
	GravitySouth Gravity = iota
	GravityEast
	GravityNorth
	GravityWest
	GravityAuto
)

var gravityNames = []string{"south", "east", "north", "west", "auto"}

func (g Gravity) String() string { return enumName(gravityNames, int(g)) }

// IsVertical reports whether g lays text out top to bottom.
func (g Gravity) IsVertical() bool {
	return g == GravityEast || g == GravityWest
}

// GravityHint says how per-script gravity is derived from the base gravity.
type GravityHint uint8

// Gravity hints.
const (
	// GravityHintNatural rotates scripts that are not written
	// vertically, keeping upright ones at the base gravity.
	GravityHintNatural GravityHint = iota
	// GravityHintStrong keeps every script at the base gravity.
	GravityHintStrong
	// GravityHintLine behaves like natural, but rotates the other way
	// for right-to-left scripts so that they read from the line start.
	GravityHintLine
)

var gravityHintNames = []string{"natural", "strong", "line"}

func (h GravityHint) String() string { return enumName(gravityHintNames, int(h)) }

// Shape replaces the glyphs of the characters it covers with empty boxes,
// one per character, of the given logical extent. It is used for inline
// objects such as images.
type Shape struct {
	Ink     fixed.Rectangle26_6
	Logical fixed.Rectangle26_6
}

func enumName(names []string, i int) string {
	if i >= 0 && i < len(names) && names[i] != "" {
		return names[i]
	}
	return unknownStr
}

func enumValue(names []string, s string) (int, bool) {
	for i, n := range names {
		if n != "" && n == s {
			return i, true
		}
	}
	return 0, false
}
