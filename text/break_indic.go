package text

import (
	"github.com/go-text/typesetting/language"
	"github.com/gogpu/textlayout/internal/ucd"
	"golang.org/x/text/unicode/norm"
)

const (
	zwj           = 0x200D
	zwnj          = 0x200C
	sinhalaVirama = 0x0DCA
)

// breakIndic keeps conjuncts formed with joiners together and marks
// precomposed nukta letters and split vowel signs so that backspace
// removes them whole.
func breakIndic(runes []rune, s Script, attrs []LogAttr) {
	isConjunct := false
	var prev rune
	for i, r := range runes {
		var next, nextNext rune
		if i+1 < len(runes) {
			next = runes[i+1]
		}
		if i+2 < len(runes) {
			nextNext = runes[i+2]
		}

		if isBrahmiComposite(r) {
			attrs[i+1].BackspaceDeletesCharacter = false
		}

		if s == language.Sinhala {
			switch {
			case (r == sinhalaVirama && next == zwj) || (r == zwj && next == sinhalaVirama):
				notCursorPosition(&attrs[i])
				notCursorPosition(&attrs[i+1])
				isConjunct = true
			case isConjunct && (prev == zwj || prev == sinhalaVirama) && r >= 0x0D9A && r <= 0x0DC6:
				notCursorPosition(&attrs[i])
				isConjunct = false
			case !isConjunct && prev == sinhalaVirama && r != zwj:
				attrs[i].IsCursorPosition = true
			}
		} else if prev != 0 && (r == zwj || r == zwnj) {
			notCursorPosition(&attrs[i])
			if next != 0 {
				notCursorPosition(&attrs[i+1])
				if nextNext != 0 && ucd.Virama.Contains(next) {
					notCursorPosition(&attrs[i+2])
				}
			}
		}
		prev = r
	}
}

// isBrahmiComposite reports whether r is a precomposed letter with a
// nukta or a two part vowel sign.
func isBrahmiComposite(r rune) bool {
	if ucd.NuktaComposite.Contains(r) || ucd.SplitMatra.Contains(r) {
		return true
	}
	if r < 0x0900 || r > 0x0DFF {
		return false
	}
	d := []rune(string(norm.NFD.PropertiesString(string(r)).Decomposition()))
	return len(d) == 2 && isNukta(d[1])
}

func isNukta(r rune) bool {
	switch r {
	case 0x093C, 0x09BC, 0x0A3C, 0x0ABC, 0x0B3C, 0x0CBC:
		return true
	}
	return false
}
