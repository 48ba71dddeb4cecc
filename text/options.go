package text

import (
	"github.com/gogpu/textlayout/attr"
	"golang.org/x/image/math/fixed"
)

// BreakerOption configures a Breaker.
type BreakerOption func(*breakerConfig)

// breakerConfig holds configuration for Breaker.
type breakerConfig struct {
	shaper      Shaper
	lookup      FontLookup
	direction   Direction
	tabs        *attr.TabArray
	dict        WordBreaker
	language    Language
	font        attr.FontDescription
	gravity     attr.Gravity
	gravityHint attr.GravityHint
}

// defaultBreakerConfig returns the default breaker configuration.
func defaultBreakerConfig() breakerConfig {
	return breakerConfig{
		shaper:    DefaultShaper{},
		direction: DirectionNeutral,
		language:  DefaultLanguage(),
		font:      attr.DefaultFontDescription(fixed.I(12)),
		gravity:   attr.GravitySouth,
	}
}

// WithShaper sets the shaper. The default is DefaultShaper.
func WithShaper(s Shaper) BreakerOption {
	return func(c *breakerConfig) {
		c.shaper = s
	}
}

// WithFontLookup sets how fonts are found for the text. Without one,
// every character is drawn as a missing glyph box.
func WithFontLookup(l FontLookup) BreakerOption {
	return func(c *breakerConfig) {
		c.lookup = l
	}
}

// WithBaseDirection sets the paragraph direction. The default,
// DirectionNeutral, detects it from the first strong character of each
// paragraph.
func WithBaseDirection(d Direction) BreakerOption {
	return func(c *breakerConfig) {
		c.direction = d
	}
}

// WithTabs sets the tab stops. The default places a stop every eight
// space widths.
func WithTabs(t *attr.TabArray) BreakerOption {
	return func(c *breakerConfig) {
		c.tabs = t
	}
}

// WithDictionary sets the word breaker used for scripts written without
// spaces.
func WithDictionary(d WordBreaker) BreakerOption {
	return func(c *breakerConfig) {
		c.dict = d
	}
}

// WithLanguage sets the language of text not covered by a language
// attribute. The default comes from the environment.
func WithLanguage(l Language) BreakerOption {
	return func(c *breakerConfig) {
		c.language = l
	}
}

// WithFontDescription sets the font that attributes modify. The default
// is a 12 unit sans-serif.
func WithFontDescription(d attr.FontDescription) BreakerOption {
	return func(c *breakerConfig) {
		c.font = d
	}
}

// WithBaseGravity sets the gravity of text not covered by a gravity
// attribute.
func WithBaseGravity(g attr.Gravity) BreakerOption {
	return func(c *breakerConfig) {
		c.gravity = g
	}
}

// WithGravityHint sets how narrow characters are oriented in vertical
// text.
func WithGravityHint(h attr.GravityHint) BreakerOption {
	return func(c *breakerConfig) {
		c.gravityHint = h
	}
}
