package text

import (
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"github.com/gogpu/textlayout/attr"
	"github.com/gogpu/textlayout/text/emoji"
)

// FontRequest asks for a font able to render Rune in the given context.
type FontRequest struct {
	Rune         rune
	Script       Script
	Language     Language
	Description  attr.FontDescription
	Presentation emoji.Presentation
}

// FontLookup finds fonts for the itemizer. FindFont returns nil when no
// font covers the request; such text is laid out with missing glyph
// boxes.
type FontLookup interface {
	FindFont(req FontRequest) Font
}

// StaticLookup picks, in order, the first of a fixed list of fonts that
// has a glyph for the requested rune. It ignores the font description.
// StaticLookup is safe for concurrent use.
type StaticLookup struct {
	fonts    []Font
	coverage []*coverageMap
}

// NewStaticLookup returns a lookup over fonts, highest priority first.
func NewStaticLookup(fonts ...Font) *StaticLookup {
	l := &StaticLookup{fonts: fonts}
	for range fonts {
		l.coverage = append(l.coverage, newCoverageMap())
	}
	return l
}

// FindFont implements FontLookup.
func (l *StaticLookup) FindFont(req FontRequest) Font {
	for i, f := range l.fonts {
		if l.covers(i, req.Rune) {
			return f
		}
	}
	return nil
}

func (l *StaticLookup) covers(i int, r rune) bool {
	if has, checked := l.coverage[i].Get(r); checked {
		return has
	}
	_, has := l.fonts[i].GlyphForRune(r)
	l.coverage[i].Set(r, has)
	return has
}

// coverageMap is a memory-efficient map from rune to bool.
// Uses 2 bits per rune: (checked, hasGlyph).
//
// Each block covers 256 runes (512 bits = 64 bytes).
// Blocks are allocated on-demand only when a rune in that range is accessed.
//
// coverageMap is safe for concurrent use.
type coverageMap struct {
	mu     sync.RWMutex
	blocks map[uint32]*block // Keyed by rune >> 8 (256-rune blocks)
}

// block holds 256 runes (512 bits = 64 bytes).
// Each rune uses 2 bits: bit 0 = checked, bit 1 = hasGlyph.
type block struct {
	bits [8]uint64
}

func newCoverageMap() *coverageMap {
	return &coverageMap{blocks: make(map[uint32]*block)}
}

// Get returns (hasGlyph, checked).
// If checked is false, the rune hasn't been queried yet.
func (m *coverageMap) Get(r rune) (hasGlyph, checked bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.blocks[uint32(r)>>8]
	if !ok {
		return false, false
	}
	word, bitPos := bitIndex(r)
	w := b.bits[word]
	return (w>>(bitPos+1))&1 != 0, (w>>bitPos)&1 != 0
}

// Set stores the hasGlyph value for a rune and marks it checked.
func (m *coverageMap) Set(r rune, hasGlyph bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.blocks[uint32(r)>>8]
	if !ok {
		b = &block{}
		m.blocks[uint32(r)>>8] = b
	}
	word, bitPos := bitIndex(r)
	b.bits[word] |= 1 << bitPos
	if hasGlyph {
		b.bits[word] |= 1 << (bitPos + 1)
	} else {
		b.bits[word] &^= 1 << (bitPos + 1)
	}
}

func bitIndex(r rune) (word, bitPos uint32) {
	bit := (uint32(r) & 0xFF) * 2
	return bit / 64, bit % 64
}

// FontMapLookup finds fonts through a go-text font map, usually filled
// with the system fonts. A FontMap is not safe for concurrent use, so
// neither is FontMapLookup: give every goroutine its own.
type FontMapLookup struct {
	fm    *fontscan.FontMap
	fonts map[*font.Font]*GoTextFont
}

// NewFontMapLookup wraps fm.
func NewFontMapLookup(fm *fontscan.FontMap) *FontMapLookup {
	return &FontMapLookup{fm: fm, fonts: make(map[*font.Font]*GoTextFont)}
}

// NewSystemFontLookup returns a lookup over the fonts installed on the
// system. cacheDir holds the font index; empty selects the user cache
// directory.
func NewSystemFontLookup(cacheDir string) (*FontMapLookup, error) {
	fm := fontscan.NewFontMap(fontscanLogger{})
	if err := fm.UseSystemFonts(cacheDir); err != nil {
		return nil, fmt.Errorf("text: loading system fonts: %w", err)
	}
	return NewFontMapLookup(fm), nil
}

// FindFont implements FontLookup. It returns nil when the face the map
// resolves has no glyph for the rune.
func (l *FontMapLookup) FindFont(req FontRequest) Font {
	l.fm.SetQuery(fontscan.Query{
		Families: queryFamilies(req.Description, req.Presentation),
		Aspect:   aspectOf(req.Description),
	})
	l.fm.SetScript(req.Script)
	face := l.fm.ResolveFace(req.Rune)
	if face == nil {
		return nil
	}
	if _, ok := face.NominalGlyph(req.Rune); !ok {
		return nil
	}
	f, ok := l.fonts[face.Font]
	if !ok {
		f = NewGoTextFont(face.Font)
		l.fonts[face.Font] = f
	}
	return f
}

func queryFamilies(d attr.FontDescription, p emoji.Presentation) []string {
	families := d.Families()
	if p == emoji.PresentationEmoji {
		families = append([]string{fontscan.Emoji}, families...)
	}
	if len(families) == 0 {
		families = []string{fontscan.SansSerif}
	}
	return families
}

func aspectOf(d attr.FontDescription) font.Aspect {
	a := font.Aspect{Style: font.StyleNormal, Weight: font.WeightNormal, Stretch: font.StretchNormal}
	if d.Mask&attr.MaskStyle != 0 && d.Style != attr.StyleNormal {
		a.Style = font.StyleItalic
	}
	if d.Mask&attr.MaskWeight != 0 {
		a.Weight = font.Weight(d.Weight)
	}
	if d.Mask&attr.MaskStretch != 0 && int(d.Stretch) < len(stretches) {
		a.Stretch = stretches[d.Stretch]
	}
	return a
}

var stretches = [...]font.Stretch{
	attr.StretchUltraCondensed: font.StretchUltraCondensed,
	attr.StretchExtraCondensed: font.StretchExtraCondensed,
	attr.StretchCondensed:      font.StretchCondensed,
	attr.StretchSemiCondensed:  font.StretchSemiCondensed,
	attr.StretchNormal:         font.StretchNormal,
	attr.StretchSemiExpanded:   font.StretchSemiExpanded,
	attr.StretchExpanded:       font.StretchExpanded,
	attr.StretchExtraExpanded:  font.StretchExtraExpanded,
	attr.StretchUltraExpanded:  font.StretchUltraExpanded,
}

// fontscanLogger forwards font map diagnostics to the package logger.
type fontscanLogger struct{}

func (fontscanLogger) Printf(format string, args ...any) {
	Logger().Debug(fmt.Sprintf(format, args...))
}
