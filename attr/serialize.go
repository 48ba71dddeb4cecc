package attr

import (
	"bufio"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/math/fixed"
)

// String returns the textual form of l: one "start end kind value" line
// per attribute, in list order.
func (l *List) String() string {
	var b strings.Builder
	for _, a := range l.Attributes() {
		b.WriteString(a.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// String formats a as a single "start end kind value" line.
func (a Attribute) String() string {
	return fmt.Sprintf("%d %d %s %s", a.Start, a.End, a.Kind, formatValue(a))
}

func formatValue(a Attribute) string {
	switch v := a.Value.(type) {
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case Weight:
		return strconv.Itoa(int(v))
	case fixed.Int26_6:
		return strconv.Itoa(int(v))
	case color.RGBA64:
		return FormatColor(v)
	case FontDescription:
		return strconv.Quote(v.String())
	case Shape:
		return formatRect(v.Ink) + " " + formatRect(v.Logical)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(a.Value)
}

func formatRect(r fixed.Rectangle26_6) string {
	return fmt.Sprintf("%d %d %d %d", r.Min.X, r.Min.Y, r.Max.X-r.Min.X, r.Max.Y-r.Min.Y)
}

// FormatColor formats c as #rrrrggggbbbb with 16 bits per channel.
// Alpha is not represented.
func FormatColor(c color.RGBA64) string {
	return fmt.Sprintf("#%04x%04x%04x", c.R, c.G, c.B)
}

// ParseColor reads #rgb, #rrggbb or #rrrrggggbbbb into an opaque color.
func ParseColor(s string) (color.RGBA64, error) {
	if !strings.HasPrefix(s, "#") {
		return color.RGBA64{}, fmt.Errorf("%w: color %q", ErrInvalidValue, s)
	}
	hex := s[1:]
	var digits int
	switch len(hex) {
	case 3, 6, 9, 12:
		digits = len(hex) / 3
	default:
		return color.RGBA64{}, fmt.Errorf("%w: color %q", ErrInvalidValue, s)
	}
	var ch [3]uint16
	for i := range ch {
		v, err := strconv.ParseUint(hex[i*digits:(i+1)*digits], 16, 16)
		if err != nil {
			return color.RGBA64{}, fmt.Errorf("%w: color %q", ErrInvalidValue, s)
		}
		ch[i] = uint16(scaleChannel(v, uint(digits*4)))
	}
	return color.RGBA64{R: ch[0], G: ch[1], B: ch[2], A: 0xffff}, nil
}

// scaleChannel maps a value of the given bit depth onto 16 bits.
func scaleChannel(v uint64, bits uint) uint64 {
	top := uint64(1)<<bits - 1
	return (v*0xffff + top/2) / top
}

// Parse reads the textual form produced by List.String. Empty lines are
// skipped.
func Parse(s string) (*List, error) {
	l := &List{}
	sc := bufio.NewScanner(strings.NewReader(s))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		a, err := parseAttribute(text)
		if err != nil {
			return nil, &ParseError{Line: line, Msg: err.Error(), Err: err}
		}
		if err := l.Insert(a); err != nil {
			return nil, &ParseError{Line: line, Msg: err.Error(), Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

func parseAttribute(text string) (Attribute, error) {
	fields := strings.SplitN(text, " ", 4)
	if len(fields) < 4 {
		return Attribute{}, fmt.Errorf("expected \"start end kind value\", got %q", text)
	}
	start, err := strconv.Atoi(fields[0])
	if err != nil {
		return Attribute{}, fmt.Errorf("%w: start %q", ErrInvalidRange, fields[0])
	}
	end, err := strconv.Atoi(fields[1])
	if err != nil {
		return Attribute{}, fmt.Errorf("%w: end %q", ErrInvalidRange, fields[1])
	}
	k, ok := kindByName(fields[2])
	if !ok {
		return Attribute{}, fmt.Errorf("%w: %q", ErrUnknownKind, fields[2])
	}
	v, err := parseValue(k, strings.TrimSpace(fields[3]))
	if err != nil {
		return Attribute{}, err
	}
	return Attribute{Start: start, End: end, Kind: k, Value: v}, nil
}

func parseValue(k Kind, s string) (any, error) {
	bad := func() error { return fmt.Errorf("%w: %s %q", ErrInvalidValue, k, s) }
	switch k {
	case KindLanguage, KindFamily, KindFontFeatures:
		v, err := strconv.Unquote(s)
		if err != nil {
			return nil, bad()
		}
		return v, nil
	case KindFontDesc:
		v, err := strconv.Unquote(s)
		if err != nil {
			return nil, bad()
		}
		return ParseFontDescription(v)
	case KindStrikethrough, KindInsertHyphens:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, bad()
		}
		return v, nil
	case KindWeight:
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, bad()
		}
		return Weight(v), nil
	case KindSize, KindRise, KindLetterSpacing:
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, bad()
		}
		return fixed.Int26_6(v), nil
	case KindForeground, KindBackground, KindUnderlineColor, KindStrikethroughColor:
		return ParseColor(s)
	case KindShape:
		var n [8]int32
		if _, err := fmt.Sscan(s, &n[0], &n[1], &n[2], &n[3], &n[4], &n[5], &n[6], &n[7]); err != nil {
			return nil, bad()
		}
		return Shape{Ink: rect(n[0], n[1], n[2], n[3]), Logical: rect(n[4], n[5], n[6], n[7])}, nil
	}
	var names []string
	switch k {
	case KindStyle:
		names = styleNames
	case KindVariant:
		names = variantNames
	case KindStretch:
		names = stretchNames
	case KindUnderline:
		names = underlineNames
	case KindDirection:
		names = overrideNames
	case KindGravity:
		names = gravityNames
	case KindGravityHint:
		names = gravityHintNames
	}
	i, ok := enumValue(names, s)
	if !ok {
		return nil, bad()
	}
	switch k {
	case KindStyle:
		return Style(i), nil
	case KindVariant:
		return Variant(i), nil
	case KindStretch:
		return Stretch(i), nil
	case KindUnderline:
		return Underline(i), nil
	case KindDirection:
		return BidiOverride(i), nil
	case KindGravity:
		return Gravity(i), nil
	default:
		return GravityHint(i), nil
	}
}

func rect(x, y, w, h int32) fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: fixed.Int26_6(x), Y: fixed.Int26_6(y)},
		Max: fixed.Point26_6{X: fixed.Int26_6(x + w), Y: fixed.Int26_6(y + h)},
	}
}
