package text

import (
	"github.com/go-text/typesetting/language"
	"github.com/gogpu/textlayout/attr"
	"golang.org/x/text/width"
)

// ResolveGravity returns the gravity of a character of script s in text
// laid out with gravity base. Only vertical bases rotate anything: wide
// characters keep the base gravity, narrow ones are turned according to
// hint.
func ResolveGravity(base attr.Gravity, hint attr.GravityHint, s Script, wide bool) attr.Gravity {
	if base == attr.GravityAuto {
		base = attr.GravitySouth
	}
	if !base.IsVertical() || wide {
		return base
	}
	switch hint {
	case attr.GravityHintStrong:
		return base
	case attr.GravityHintLine:
		if (base == attr.GravityEast) != IsRTLScript(s) {
			return attr.GravitySouth
		}
		return attr.GravityNorth
	default:
		if !hasVerticalDirection(s) {
			return attr.GravitySouth
		}
		if base == attr.GravityEast {
			return attr.GravitySouth
		}
		return attr.GravityNorth
	}
}

// hasVerticalDirection reports whether s has a native vertical writing
// direction.
func hasVerticalDirection(s Script) bool {
	return isUprightScript(s) || s == language.Mongolian || s == language.Phags_Pa
}

// isWide reports whether r is East Asian wide or fullwidth.
func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}
