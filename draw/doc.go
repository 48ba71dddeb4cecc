// Package draw records laid-out text as an ordered sequence of drawing
// commands.
//
// Layout never paints anything. Record walks a placed text.Lines
// collection and captures, line by line, what a renderer has to do:
// fill run backgrounds, draw glyphs at absolute positions and draw
// underlines and strikethroughs. Commands are typed structs that can
// be inspected directly or replayed to any Backend.
//
// # Example
//
//	rec := draw.Record(lines)
//	for _, cmd := range rec.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//	err := rec.Playback(myBackend)
//
// The package ships no backend and its registry starts empty. Backends
// living in other packages can register themselves by name, following
// the database/sql driver pattern:
//
//	func init() {
//	    draw.Register("svg", func() draw.Backend { return newSVGBackend() })
//	}
package draw
