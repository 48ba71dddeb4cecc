package text

import (
	"github.com/go-text/typesetting/language"
)

// Script identifies a writing system, as an ISO 15924 tag.
type Script = language.Script

// Scripts used by the break tailoring and gravity rules.
const (
	ScriptCommon    = language.Common
	ScriptInherited = language.Inherited
	ScriptUnknown   = language.Unknown
	ScriptLatin     = language.Latin
	ScriptArabic    = language.Arabic
	ScriptHebrew    = language.Hebrew
	ScriptSinhala   = language.Sinhala
	ScriptThai      = language.Thai
	ScriptHan       = language.Han
)

// LookupScript returns the Unicode script property of r.
func LookupScript(r rune) Script {
	return language.LookupScript(r)
}

// isRealScript reports whether s names a concrete writing system, as
// opposed to Common, Inherited or Unknown.
func isRealScript(s Script) bool {
	return s != language.Common && s != language.Inherited && s != language.Unknown
}

// IsRTLScript reports whether s is written right to left.
func IsRTLScript(s Script) bool {
	switch s {
	case language.Arabic, language.Hebrew, language.Syriac, language.Thaana,
		language.Nko, language.Samaritan, language.Mandaic, language.Adlam,
		language.Mende_Kikakui, language.Imperial_Aramaic, language.Phoenician,
		language.Kharoshthi, language.Avestan, language.Hanifi_Rohingya,
		language.Yezidi:
		return true
	}
	return false
}

// isUprightScript reports whether s is natively written top to bottom
// with upright glyphs.
func isUprightScript(s Script) bool {
	switch s {
	case language.Han, language.Hiragana, language.Katakana, language.Hangul,
		language.Bopomofo, language.Yi:
		return true
	}
	return false
}
