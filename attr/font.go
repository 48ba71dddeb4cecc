package attr

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/math/fixed"
)

// FontMask records which fields of a FontDescription are set.
type FontMask uint8

// Font description fields.
const (
	MaskFamily FontMask = 1 << iota
	MaskStyle
	MaskWeight
	MaskVariant
	MaskStretch
	MaskSize
)

// FontDescription is a request for a font. Only the fields named in Mask
// are meaningful; the others keep their defaults.
type FontDescription struct {
	Family  string // comma separated, highest priority first
	Style   Style
	Weight  Weight
	Variant Variant
	Stretch Stretch
	Size    fixed.Int26_6 // device units
	Mask    FontMask
}

// DefaultFontDescription returns a normal sans-serif description of the
// given size with every field set.
func DefaultFontDescription(size fixed.Int26_6) FontDescription {
	return FontDescription{
		Family:  "sans-serif",
		Style:   StyleNormal,
		Weight:  WeightNormal,
		Variant: VariantNormal,
		Stretch: StretchNormal,
		Size:    size,
		Mask:    MaskFamily | MaskStyle | MaskWeight | MaskVariant | MaskStretch | MaskSize,
	}
}

// Families splits Family into its trimmed, non-empty entries.
func (d FontDescription) Families() []string {
	var out []string
	for _, f := range strings.Split(d.Family, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Equal reports whether d and o set the same fields to the same values.
func (d FontDescription) Equal(o FontDescription) bool {
	if d.Mask != o.Mask {
		return false
	}
	return (d.Mask&MaskFamily == 0 || strings.EqualFold(d.Family, o.Family)) &&
		(d.Mask&MaskStyle == 0 || d.Style == o.Style) &&
		(d.Mask&MaskWeight == 0 || d.Weight == o.Weight) &&
		(d.Mask&MaskVariant == 0 || d.Variant == o.Variant) &&
		(d.Mask&MaskStretch == 0 || d.Stretch == o.Stretch) &&
		(d.Mask&MaskSize == 0 || d.Size == o.Size)
}

// Merge copies the fields set in o into d. Fields already set in d are
// only overwritten when replace is true.
func (d *FontDescription) Merge(o FontDescription, replace bool) {
	take := func(m FontMask) bool {
		return o.Mask&m != 0 && (replace || d.Mask&m == 0)
	}
	if take(MaskFamily) {
		d.Family = o.Family
	}
	if take(MaskStyle) {
		d.Style = o.Style
	}
	if take(MaskWeight) {
		d.Weight = o.Weight
	}
	if take(MaskVariant) {
		d.Variant = o.Variant
	}
	if take(MaskStretch) {
		d.Stretch = o.Stretch
	}
	if take(MaskSize) {
		d.Size = o.Size
	}
	if replace {
		d.Mask |= o.Mask
	} else {
		d.Mask |= o.Mask &^ d.Mask
	}
}

// Apply sets the field controlled by a on d. Attributes that do not
// describe a font are ignored.
func (d *FontDescription) Apply(a Attribute) {
	switch a.Kind {
	case KindFamily:
		d.Family, d.Mask = a.Value.(string), d.Mask|MaskFamily
	case KindStyle:
		d.Style, d.Mask = a.Value.(Style), d.Mask|MaskStyle
	case KindWeight:
		d.Weight, d.Mask = a.Value.(Weight), d.Mask|MaskWeight
	case KindVariant:
		d.Variant, d.Mask = a.Value.(Variant), d.Mask|MaskVariant
	case KindStretch:
		d.Stretch, d.Mask = a.Value.(Stretch), d.Mask|MaskStretch
	case KindSize:
		d.Size, d.Mask = a.Value.(fixed.Int26_6), d.Mask|MaskSize
	case KindFontDesc:
		d.Merge(a.Value.(FontDescription), true)
	}
}

var weightNames = []struct {
	name string
	w    Weight
}{
	{"thin", WeightThin},
	{"ultralight", WeightUltraLight},
	{"light", WeightLight},
	{"book", WeightBook},
	{"medium", WeightMedium},
	{"semibold", WeightSemibold},
	{"bold", WeightBold},
	{"ultrabold", WeightUltraBold},
	{"heavy", WeightHeavy},
	{"ultraheavy", WeightUltraHeavy},
}

// String formats d as "[FAMILY-LIST] [STYLE-OPTIONS] [SIZE]", for
// example "Sans, Serif Bold Italic 12px". Unset fields are omitted.
func (d FontDescription) String() string {
	var parts []string
	if d.Mask&MaskFamily != 0 && d.Family != "" {
		fam := d.Family
		if !strings.HasSuffix(fam, ",") {
			fam += ","
		}
		parts = append(parts, fam)
	}
	if d.Mask&MaskWeight != 0 && d.Weight != WeightNormal {
		name := ""
		for _, wn := range weightNames {
			if wn.w == d.Weight {
				name = wn.name
			}
		}
		if name == "" {
			name = "weight=" + strconv.Itoa(int(d.Weight))
		}
		parts = append(parts, name)
	}
	if d.Mask&MaskStyle != 0 && d.Style != StyleNormal {
		parts = append(parts, d.Style.String())
	}
	if d.Mask&MaskVariant != 0 && d.Variant != VariantNormal {
		parts = append(parts, d.Variant.String())
	}
	if d.Mask&MaskStretch != 0 && d.Stretch != StretchNormal {
		parts = append(parts, d.Stretch.String())
	}
	if d.Mask&MaskSize != 0 {
		parts = append(parts, formatFixed(d.Size)+"px")
	}
	s := strings.Join(parts, " ")
	if s == "" {
		return "normal"
	}
	return s
}

// ParseFontDescription reads the format produced by String. Words that
// name a style, weight, variant, stretch or size are taken from the end
// of the string; what remains is the family list.
func ParseFontDescription(s string) (FontDescription, error) {
	var d FontDescription
	s = strings.TrimSpace(s)
	if s == "normal" || s == "" {
		return d, nil
	}
	family := s
	if i := strings.LastIndex(s, ","); i >= 0 {
		family, s = s[:i], s[i+1:]
		d.Family, d.Mask = strings.TrimSpace(family), MaskFamily
		return parseFontOptions(d, strings.Fields(s))
	}
	words := strings.Fields(s)
	n := len(words)
	for n > 0 && isFontOption(words[n-1]) {
		n--
	}
	if n > 0 {
		d.Family, d.Mask = strings.Join(words[:n], " "), MaskFamily
	}
	return parseFontOptions(d, words[n:])
}

func isFontOption(w string) bool {
	var d FontDescription
	_, err := parseFontOptions(d, []string{w})
	return err == nil
}

func parseFontOptions(d FontDescription, words []string) (FontDescription, error) {
	for _, w := range words {
		lw := strings.ToLower(w)
		switch {
		case strings.HasSuffix(lw, "px"):
			v, err := parseFixed(strings.TrimSuffix(lw, "px"))
			if err != nil {
				return d, fmt.Errorf("%w: font size %q", ErrInvalidValue, w)
			}
			d.Size, d.Mask = v, d.Mask|MaskSize
		case strings.HasPrefix(lw, "weight="):
			v, err := strconv.Atoi(strings.TrimPrefix(lw, "weight="))
			if err != nil {
				return d, fmt.Errorf("%w: font weight %q", ErrInvalidValue, w)
			}
			d.Weight, d.Mask = Weight(v), d.Mask|MaskWeight
		case lw == "normal":
		default:
			if st, ok := enumValue(styleNames, lw); ok {
				d.Style, d.Mask = Style(st), d.Mask|MaskStyle
				continue
			}
			if v, ok := enumValue(variantNames, lw); ok {
				d.Variant, d.Mask = Variant(v), d.Mask|MaskVariant
				continue
			}
			if v, ok := enumValue(stretchNames, lw); ok {
				d.Stretch, d.Mask = Stretch(v), d.Mask|MaskStretch
				continue
			}
			found := false
			for _, wn := range weightNames {
				if wn.name == lw {
					d.Weight, d.Mask, found = wn.w, d.Mask|MaskWeight, true
				}
			}
			if !found {
				return d, fmt.Errorf("%w: font option %q", ErrInvalidValue, w)
			}
		}
	}
	return d, nil
}

// formatFixed prints v in whole and fractional device units.
func formatFixed(v fixed.Int26_6) string {
	return strconv.FormatFloat(float64(v)/64, 'f', -1, 64)
}

func parseFixed(s string) (fixed.Int26_6, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return -fixed.Int26_6(-f*64 + 0.5), nil
	}
	return fixed.Int26_6(f*64 + 0.5), nil
}
