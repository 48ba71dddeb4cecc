package text

import (
	"unicode"
	"unicode/utf8"

	"github.com/gogpu/textlayout/attr"
	"github.com/gogpu/textlayout/internal/ucd"
	"github.com/gogpu/textlayout/text/emoji"
	"golang.org/x/text/unicode/bidi"
)

// ItemizeParams holds what Itemize needs besides the text.
type ItemizeParams struct {
	// Lookup finds a font for every item. Nil leaves every item
	// unshapeable.
	Lookup FontLookup

	// Font is the description that attributes are merged into.
	Font attr.FontDescription

	// Language applies where no language attribute does.
	Language Language

	// Gravity and GravityHint apply where no gravity attributes do.
	Gravity     attr.Gravity
	GravityHint attr.GravityHint
}

// style is everything the attributes decide for a range of text.
type style struct {
	desc    attr.FontDescription
	lang    Language
	gravity attr.Gravity
	hint    attr.GravityHint
	attrs   []attr.Attribute
}

func (s *style) equal(o *style) bool {
	if !s.desc.Equal(o.desc) || s.lang != o.lang || s.gravity != o.gravity ||
		s.hint != o.hint || len(s.attrs) != len(o.attrs) {
		return false
	}
	for i := range s.attrs {
		if !s.attrs[i].SameValue(o.attrs[i]) {
			return false
		}
	}
	return true
}

func styleOf(it *attr.Iterator, p *ItemizeParams) *style {
	s := &style{
		desc:    it.Font(p.Font),
		lang:    p.Language,
		gravity: p.Gravity,
		hint:    p.GravityHint,
	}
	for _, a := range it.Attrs() {
		switch {
		case a.Kind.AffectsFont():
		case a.Kind == attr.KindLanguage:
			s.lang = NewLanguage(a.Value.(string))
		case a.Kind == attr.KindGravity:
			s.gravity = a.Value.(attr.Gravity)
		case a.Kind == attr.KindGravityHint:
			s.hint = a.Value.(attr.GravityHint)
		default:
			s.attrs = append(s.attrs, a)
		}
	}
	return s
}

// Itemize splits text into items of uniform script, embedding level,
// style, emoji presentation, font and gravity. levels holds one
// embedding level per character, as returned by ResolveLevels. Tabs and
// mandatory break characters always form items of their own.
//
// The items are in logical order and cover text exactly. A character
// no font covers ends up in an item whose font is nil.
func Itemize(text string, attrs *attr.List, levels []uint8, p ItemizeParams) []*Item {
	if text == "" {
		return nil
	}
	runes, offsets := decodeRunes(text)
	levelAt := func(i int) uint8 {
		if i < len(levels) {
			return levels[i]
		}
		return 0
	}
	scripts := resolveScripts(runes, levelAt)
	presentations := emoji.Scan(text)

	ai := attrs.Iterator()
	ai.Next()
	_, styleEnd := ai.Range()
	cur := styleOf(ai, &p)

	var (
		items []*Item
		item  *Item
		pres  int
		split bool
	)
	for i, r := range runes {
		off := offsets[i]
		split = false
		for off >= styleEnd && ai.Next() {
			_, styleEnd = ai.Range()
			if next := styleOf(ai, &p); !next.equal(cur) {
				cur, split = next, true
			}
		}
		for pres < len(presentations)-1 && off >= presentations[pres].End {
			pres++
		}
		presentation := emoji.PresentationDefault
		if pres < len(presentations) {
			presentation = presentations[pres].Presentation
		}
		level := levelAt(i)
		gravity := ResolveGravity(cur.gravity, cur.hint, scripts[i], isWide(r))
		special := isTabOrBreak(r)

		var font Font
		switch {
		case item != nil && item.Analysis.Font != nil && (reusesFont(r) || covers(item.Analysis.Font, r)) &&
			item.Analysis.Script == scripts[i] && item.Analysis.Presentation == presentation:
			font = item.Analysis.Font
		case p.Lookup != nil:
			font = p.Lookup.FindFont(FontRequest{
				Rune:         r,
				Script:       scripts[i],
				Language:     cur.lang,
				Description:  cur.desc,
				Presentation: presentation,
			})
		}

		if item == nil || split || special || isTabOrBreak(runes[i-1]) ||
			item.Analysis.Level != level ||
			item.Analysis.Script != scripts[i] ||
			item.Analysis.Presentation != presentation ||
			item.Analysis.Gravity != gravity ||
			item.Analysis.Font != font {
			if item != nil {
				item.Length = off - item.Offset
				items = append(items, item)
			}
			item = &Item{
				Offset:     off,
				CharOffset: i,
				Analysis: Analysis{
					Font:         font,
					Description:  cur.desc,
					Size:         cur.desc.Size,
					Language:     cur.lang,
					Script:       scripts[i],
					Level:        level,
					Gravity:      gravity,
					Presentation: presentation,
					Attrs:        cur.attrs,
				},
			}
			if font == nil && p.Lookup != nil && !reusesFont(r) {
				Logger().Warn("text: no font covers character",
					"rune", string(r), "script", scripts[i].String(), "offset", off)
			}
		}
		item.NumChars++
	}
	item.Length = len(text) - item.Offset
	items = append(items, item)

	Logger().Debug("text: itemized", "bytes", len(text), "items", len(items))
	return items
}

// reusesFont reports whether r is drawn with the font of the text
// around it even when that font lacks a glyph: spaces, marks and
// invisible characters.
func reusesFont(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) ||
		ucd.DefaultIgnorable.Contains(r) || isTabOrBreak(r)
}

func covers(f Font, r rune) bool {
	_, ok := f.GlyphForRune(r)
	return ok
}

// isTabOrBreak reports whether r is a tab or ends a line.
func isTabOrBreak(r rune) bool {
	return r == '\t' || isMandatoryBreakChar(r)
}

// isMandatoryBreakChar reports whether r forces a line break after it.
func isMandatoryBreakChar(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

type openBracket struct {
	closing rune
	script  Script
}

// resolveScripts gives Common and Inherited characters the script of
// the character before them in the same level run. A closing bracket
// takes the script of its opening bracket. Characters that have no
// such predecessor take the script of the character after them.
func resolveScripts(runes []rune, levelAt func(int) uint8) []Script {
	scripts := make([]Script, len(runes))
	var brackets []openBracket
	for i, r := range runes {
		s := LookupScript(r)
		sameRun := i > 0 && levelAt(i) == levelAt(i-1)
		if !sameRun {
			brackets = brackets[:0]
		}
		if !isRealScript(s) {
			s = ScriptCommon
			if sameRun {
				s = scripts[i-1]
			}
			if props, _ := bidi.LookupRune(r); props.IsBracket() && !props.IsOpeningBracket() {
				for k := len(brackets) - 1; k >= 0; k-- {
					if brackets[k].closing == r {
						s = brackets[k].script
						brackets = brackets[:k]
						break
					}
				}
			}
		}
		scripts[i] = s
		if props, _ := bidi.LookupRune(r); props.IsOpeningBracket() {
			if m, ok := ucd.Mirror(r); ok {
				brackets = append(brackets, openBracket{closing: m, script: s})
			}
		}
	}
	for i := len(runes) - 2; i >= 0; i-- {
		if !isRealScript(scripts[i]) && levelAt(i) == levelAt(i+1) && isRealScript(scripts[i+1]) {
			scripts[i] = scripts[i+1]
		}
	}
	return scripts
}

// charCount returns the number of characters in text.
func charCount(text string) int {
	return utf8.RuneCountInString(text)
}
