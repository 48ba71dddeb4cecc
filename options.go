package textlayout

import (
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textlayout/text"
)

// Alignment places lines narrower than the layout width.
type Alignment uint8

const (
	// AlignNatural aligns lines to the left in left-to-right
	// paragraphs and to the right in right-to-left ones.
	AlignNatural Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

var alignmentNames = [...]string{
	AlignNatural: "natural",
	AlignLeft:    "left",
	AlignCenter:  "center",
	AlignRight:   "right",
}

func (a Alignment) String() string {
	if int(a) < len(alignmentNames) {
		return alignmentNames[a]
	}
	return "unknown"
}

// Option configures a Layout during creation.
//
// Example:
//
//	l := textlayout.New(s, attrs,
//	    textlayout.WithWidth(fixed.I(300)),
//	    textlayout.WithJustify(true),
//	)
type Option func(*options)

// options holds optional configuration for Layout creation.
type options struct {
	width, height   fixed.Int26_6
	wrap            text.WrapMode
	ellipsize       text.EllipsizeMode
	align           Alignment
	justify         bool
	justifyLastLine bool
	indent          fixed.Int26_6
	spacing         fixed.Int26_6
	lineHeight      float64
	breaker         []text.BreakerOption
}

// defaultOptions returns the default layout options: unlimited width,
// word wrapping, natural alignment.
func defaultOptions() options {
	return options{
		wrap:  text.WrapWord,
		align: AlignNatural,
	}
}

// WithWidth sets the width lines are broken to. Zero or less, the
// default, means unlimited: every paragraph is one line.
func WithWidth(w fixed.Int26_6) Option {
	return func(o *options) {
		o.width = w
	}
}

// WithHeight sets the height available to the layout. It only has an
// effect with an ellipsize mode: the last line that fits is ellipsized
// and the text after it is dropped. Zero or less means unlimited.
func WithHeight(h fixed.Int26_6) Option {
	return func(o *options) {
		o.height = h
	}
}

// WithWrap sets how lines are wrapped. The default is text.WrapWord.
func WithWrap(m text.WrapMode) Option {
	return func(o *options) {
		o.wrap = m
	}
}

// WithEllipsize sets where text is removed from lines that do not fit.
// Without a height limit every paragraph becomes one ellipsized line.
func WithEllipsize(m text.EllipsizeMode) Option {
	return func(o *options) {
		o.ellipsize = m
	}
}

// WithAlignment sets the alignment of lines narrower than the width.
func WithAlignment(a Alignment) Option {
	return func(o *options) {
		o.align = a
	}
}

// WithJustify stretches lines to the full width. The last line of a
// paragraph is only justified with WithJustifyLastLine.
func WithJustify(on bool) Option {
	return func(o *options) {
		o.justify = on
	}
}

// WithJustifyLastLine also justifies the last line of every paragraph.
func WithJustifyLastLine(on bool) Option {
	return func(o *options) {
		o.justifyLastLine = on
	}
}

// WithIndent indents the first line of every paragraph. A negative
// indent indents every other line instead (hanging indent).
func WithIndent(indent fixed.Int26_6) Option {
	return func(o *options) {
		o.indent = indent
	}
}

// WithSpacing adds space between lines.
func WithSpacing(spacing fixed.Int26_6) Option {
	return func(o *options) {
		o.spacing = spacing
	}
}

// WithLineHeight scales the height of every line by factor, the extra
// leading split evenly above and below the line. Zero or less keeps
// the natural height.
func WithLineHeight(factor float64) Option {
	return func(o *options) {
		o.lineHeight = factor
	}
}

// WithBreakerOptions passes options to the line breaker, for instance
// the font lookup or the base direction.
func WithBreakerOptions(opts ...text.BreakerOption) Option {
	return func(o *options) {
		o.breaker = append(o.breaker, opts...)
	}
}
