package emoji

import "unicode/utf8"

// Presentation is how a span of text asks to be displayed.
type Presentation uint8

const (
	// PresentationDefault leaves the choice to the font: plain text and
	// text-default emoji without a variation selector.
	PresentationDefault Presentation = iota
	// PresentationText asks for a monochrome text glyph.
	PresentationText
	// PresentationEmoji asks for an emoji glyph.
	PresentationEmoji
)

var presentationNames = [...]string{"default", "text", "emoji"}

// String returns the lowercase name of p.
func (p Presentation) String() string {
	if int(p) < len(presentationNames) {
		return presentationNames[p]
	}
	return "unknown"
}

// Run is a span of text with a single presentation.
type Run struct {
	Start, End   int // byte offsets, End exclusive
	Presentation Presentation
}

// category is the scanner's input alphabet.
type category uint8

const (
	catOther category = iota
	catTextDefault
	catEmojiDefault
	catModifier
	catRegional
	catKeycapBase
	catKeycap
	catZWJ
	catVS15
	catVS16
	catTagBase
	catTag
	catTagTerm
)

func categorize(r rune) category {
	switch {
	case IsZWJ(r):
		return catZWJ
	case IsTextVariation(r):
		return catVS15
	case IsEmojiVariation(r):
		return catVS16
	case IsCombiningEnclosingKeycap(r):
		return catKeycap
	case IsCancelTag(r):
		return catTagTerm
	case IsTagCharacter(r):
		return catTag
	case IsBlackFlag(r):
		return catTagBase
	case IsRegionalIndicator(r):
		return catRegional
	case IsEmojiModifier(r):
		return catModifier
	case IsKeycapBase(r):
		return catKeycapBase
	case IsEmojiPresentation(r):
		return catEmojiDefault
	case isTextPresentationEmoji(r):
		return catTextDefault
	}
	return catOther
}

// state is the position of the scanner inside an emoji sequence.
type state uint8

const (
	stateStart      state = iota
	stateKeycapBase       // digit, # or *
	stateKeycapVS         // keycap base + variation selector
	stateRegional         // first regional indicator of a flag
	stateBase             // emoji character
	stateBaseVS           // emoji + variation selector
	stateModified         // emoji + skin tone
	stateJoiner           // after ZWJ, an emoji must follow
	stateFlag             // black flag, may start a tag sequence
	stateTagSpec          // inside tag characters
	stateEnd              // sequence complete
)

// scanner recognizes one emoji sequence. After every rune it accepts,
// accept tells whether the runes so far form a complete sequence with
// presentation pres.
type scanner struct {
	state   state
	pres    Presentation
	accept  bool
	modBase bool // the current element takes a skin tone modifier
	joined  bool // a ZWJ has been seen
}

func (s *scanner) set(st state, p Presentation, accept bool) {
	s.state, s.pres, s.accept = st, p, accept
}

// base enters an emoji element.
func (s *scanner) base(r rune, c category) {
	s.modBase = IsEmojiModifierBase(r)
	p := PresentationDefault
	if c == catEmojiDefault || c == catModifier || s.joined {
		p = PresentationEmoji
	}
	s.set(stateBase, p, true)
}

// step is the transition function. It reports false when r cannot
// extend the sequence.
func (s *scanner) step(r rune) bool {
	c := categorize(r)
	switch s.state {
	case stateStart:
		switch c {
		case catKeycapBase:
			s.set(stateKeycapBase, PresentationDefault, true)
		case catRegional:
			s.set(stateRegional, PresentationEmoji, true)
		case catTagBase:
			s.set(stateFlag, PresentationEmoji, true)
		case catEmojiDefault, catTextDefault, catModifier:
			s.base(r, c)
		default:
			return false
		}
	case stateKeycapBase:
		switch c {
		case catVS15:
			s.set(stateKeycapVS, PresentationText, true)
		case catVS16:
			s.set(stateKeycapVS, PresentationEmoji, true)
		case catKeycap:
			s.set(stateEnd, PresentationEmoji, true)
		default:
			return false
		}
	case stateKeycapVS:
		if c != catKeycap {
			return false
		}
		s.set(stateEnd, s.pres, true)
	case stateRegional:
		if c != catRegional {
			return false
		}
		s.set(stateEnd, PresentationEmoji, true)
	case stateBase, stateFlag:
		switch {
		case c == catVS15 && !s.joined:
			s.set(stateBaseVS, PresentationText, true)
		case c == catVS15 || c == catVS16:
			s.set(stateBaseVS, PresentationEmoji, true)
		case c == catModifier && s.modBase:
			s.set(stateModified, PresentationEmoji, true)
		case c == catZWJ:
			s.joined = true
			s.set(stateJoiner, s.pres, false)
		case c == catTag && s.state == stateFlag:
			s.set(stateTagSpec, s.pres, false)
		default:
			return false
		}
	case stateBaseVS, stateModified:
		if c != catZWJ {
			return false
		}
		s.joined = true
		s.set(stateJoiner, s.pres, false)
	case stateJoiner:
		switch c {
		case catEmojiDefault, catTextDefault, catModifier:
			s.base(r, c)
		case catTagBase:
			s.set(stateFlag, PresentationEmoji, true)
		default:
			return false
		}
	case stateTagSpec:
		switch c {
		case catTag:
		case catTagTerm:
			s.set(stateEnd, PresentationEmoji, true)
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// scanSequence returns the length in bytes and the presentation of the
// longest emoji sequence at the start of s. Text that starts no sequence
// yields one character with PresentationDefault.
func scanSequence(s string) (int, Presentation) {
	var sc scanner
	n, pres := 0, PresentationDefault
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !sc.step(r) {
			break
		}
		i += size
		if sc.accept {
			n, pres = i, sc.pres
		}
	}
	if n == 0 {
		_, size := utf8.DecodeRuneInString(s)
		return size, PresentationDefault
	}
	return n, pres
}

// Scan splits text into runs of uniform presentation. Keycap, flag,
// modifier, tag and ZWJ sequences are never split, and adjacent
// sequences with the same presentation share a run. The runs cover text
// contiguously.
func Scan(text string) []Run {
	var runs []Run
	for pos := 0; pos < len(text); {
		n, p := scanSequence(text[pos:])
		if k := len(runs) - 1; k >= 0 && runs[k].Presentation == p {
			runs[k].End = pos + n
		} else {
			runs = append(runs, Run{Start: pos, End: pos + n, Presentation: p})
		}
		pos += n
	}
	return runs
}
