// Package textlayout lays out styled, bidirectional text into lines.
//
// # Overview
//
// textlayout turns a string and an attribute list into positioned lines
// of shaped glyphs. The work happens in the text sub-package: bidi
// resolution, itemization into runs of uniform script, direction and
// font, break attribute computation, shaping and line breaking. This
// package drives those pieces over a box of a given width and height
// and places the resulting lines.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/textlayout"
//	    "github.com/gogpu/textlayout/text"
//	    "golang.org/x/image/math/fixed"
//	)
//
//	font, _ := text.LoadGoTextFont(ttf)
//	l := textlayout.New("Hello, world", nil,
//	    textlayout.WithWidth(fixed.I(200)),
//	    textlayout.WithAlignment(textlayout.AlignCenter),
//	    textlayout.WithBreakerOptions(text.WithFontLookup(text.NewStaticLookup(font))),
//	)
//	lines := l.Lines()
//
// # Packages
//
//   - textlayout: the layout driver and logger configuration
//   - attr: attributes, attribute lists, font descriptions and tab arrays
//   - text: bidi, itemization, break attributes, shaping, line breaking
//     and line geometry
//   - text/emoji: emoji presentation scanning
//   - draw: recording of laid-out lines as drawing commands
//
// # Coordinate System
//
// All geometry is in 26.6 fixed-point device units:
//   - Origin (0,0) at the top-left of the layout box
//   - X increases right
//   - Y increases down
//   - Lines are placed by the left end of their baseline
//
// # Thread Safety
//
// A Layout is immutable once New returns and may be shared between
// goroutines. Fonts must be safe for concurrent use; see text.Font.
package textlayout
