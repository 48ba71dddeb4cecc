package emoji

// IsEmoji reports whether r is an emoji character or an emoji component.
// This includes text-default emoji that only turn into emoji with U+FE0F.
func IsEmoji(r rune) bool {
	return IsEmojiPresentation(r) || isTextPresentationEmoji(r) || isEmojiComponent(r)
}

// IsEmojiPresentation reports whether r defaults to emoji presentation.
// These characters display as emoji without requiring U+FE0F.
func IsEmojiPresentation(r rune) bool {
	return emojiPresentation.Contains(r)
}

// IsEmojiModifier reports whether r is a skin tone modifier.
// Fitzpatrick scale modifiers: U+1F3FB - U+1F3FF.
func IsEmojiModifier(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF
}

// IsEmojiModifierBase reports whether a skin tone modifier can follow r.
func IsEmojiModifierBase(r rune) bool {
	return modifierBase.Contains(r)
}

// IsZWJ reports whether r is Zero-Width Joiner (U+200D).
func IsZWJ(r rune) bool {
	return r == 0x200D
}

// IsRegionalIndicator reports whether r is a Regional Indicator (A-Z).
// Two regional indicators form a flag.
func IsRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

// IsVariationSelector reports whether r is U+FE0E or U+FE0F.
func IsVariationSelector(r rune) bool {
	return r == 0xFE0E || r == 0xFE0F
}

// IsTextVariation reports whether r is the text variation selector (U+FE0E).
func IsTextVariation(r rune) bool {
	return r == 0xFE0E
}

// IsEmojiVariation reports whether r is the emoji variation selector (U+FE0F).
func IsEmojiVariation(r rune) bool {
	return r == 0xFE0F
}

// IsKeycapBase reports whether r can start a keycap sequence:
// digits 0-9, # and *.
func IsKeycapBase(r rune) bool {
	return (r >= '0' && r <= '9') || r == '#' || r == '*'
}

// IsCombiningEnclosingKeycap reports whether r is U+20E3.
func IsCombiningEnclosingKeycap(r rune) bool {
	return r == 0x20E3
}

// IsTagCharacter reports whether r is an emoji tag (U+E0020-U+E007E),
// used in subdivision flag sequences.
func IsTagCharacter(r rune) bool {
	return r >= 0xE0020 && r <= 0xE007E
}

// IsCancelTag reports whether r is the cancel tag (U+E007F) that ends a
// tag sequence.
func IsCancelTag(r rune) bool {
	return r == 0xE007F
}

// IsBlackFlag reports whether r is U+1F3F4, the base of subdivision flags.
func IsBlackFlag(r rune) bool {
	return r == 0x1F3F4
}

func isTextPresentationEmoji(r rune) bool {
	return textPresentation.Contains(r)
}

func isEmojiComponent(r rune) bool {
	return IsEmojiModifier(r) || IsRegionalIndicator(r) || IsTagCharacter(r) || IsCancelTag(r) ||
		IsZWJ(r) || IsVariationSelector(r) || IsCombiningEnclosingKeycap(r)
}
