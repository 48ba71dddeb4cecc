package text

import "github.com/gogpu/textlayout/internal/ucd"

const (
	arabicAlef        = 0x0627
	arabicWaw         = 0x0648
	arabicYeh         = 0x064A
	arabicMaddahAbove = 0x0653
	arabicHamzaAbove  = 0x0654
	arabicHamzaBelow  = 0x0655
)

// breakArabic makes backspace remove letters composed with hamza or
// madda whole, whether precomposed or written as letter and mark.
func breakArabic(runes []rune, attrs []LogAttr) {
	var prev rune
	for i, r := range runes {
		if ucd.ArabicComposite.Contains(r) ||
			(prev == arabicAlef && r >= arabicMaddahAbove && r <= arabicHamzaBelow) ||
			(r == arabicHamzaAbove && (prev == arabicWaw || prev == arabicYeh)) {
			attrs[i+1].BackspaceDeletesCharacter = false
		}
		prev = r
	}
}
