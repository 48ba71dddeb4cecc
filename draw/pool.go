package draw

import (
	"reflect"

	"github.com/gogpu/textlayout/text"
)

// FontRef is a reference to a pooled font.
type FontRef uint32

// ResourcePool stores the fonts referenced by glyph commands. Each
// distinct font is stored once.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	fonts []text.Font
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{fonts: make([]text.Font, 0, 4)}
}

// AddFont returns the reference of font, adding it to the pool if it is
// not there yet. A nil font, used by runs no font covers, is pooled
// like any other.
func (p *ResourcePool) AddFont(font text.Font) FontRef {
	for i, f := range p.fonts {
		if sameFont(f, font) {
			// #nosec G115 -- pool size is bounded by the fonts of one layout
			return FontRef(uint32(i))
		}
	}
	p.fonts = append(p.fonts, font)
	// #nosec G115 -- pool size is bounded by the fonts of one layout
	return FontRef(uint32(len(p.fonts) - 1))
}

// GetFont returns the font for ref, nil if ref is out of range.
func (p *ResourcePool) GetFont(ref FontRef) text.Font {
	if int(ref) >= len(p.fonts) {
		return nil
	}
	return p.fonts[ref]
}

// FontCount returns the number of fonts in the pool.
func (p *ResourcePool) FontCount() int {
	return len(p.fonts)
}

// sameFont reports whether a and b are the same font handle. Fonts of
// incomparable types never match.
func sameFont(a, b text.Font) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
