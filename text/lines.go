package text

import (
	"math"
	"slices"

	"golang.org/x/image/math/fixed"
)

// Lines is an ordered collection of placed lines. Each line is placed at
// the position of its origin, the left end of its baseline.
//
// The zero value is an empty collection ready to use.
type Lines struct {
	lines  []*Line
	pos    []fixed.Point26_6
	serial uint32
}

// NewLines returns an empty collection.
func NewLines() *Lines {
	return &Lines{}
}

// AddLine appends line with its baseline origin at (x, y).
func (ls *Lines) AddLine(line *Line, x, y fixed.Int26_6) {
	ls.lines = append(ls.lines, line)
	ls.pos = append(ls.pos, fixed.Point26_6{X: x, Y: y})
	ls.serial = ls.Serial() + 1
	if ls.serial == 0 {
		ls.serial = 1
	}
}

// Len returns the number of lines.
func (ls *Lines) Len() int {
	return len(ls.lines)
}

// Line returns the i-th line and its position.
func (ls *Lines) Line(i int) (*Line, fixed.Point26_6) {
	return ls.lines[i], ls.pos[i]
}

// Serial returns a number that changes whenever lines are added. It is
// never zero, so callers can use zero for "nothing seen yet".
func (ls *Lines) Serial() uint32 {
	if ls.serial == 0 {
		return 1
	}
	return ls.serial
}

// Extents returns the union of the ink and of the logical rectangles of
// the lines, in the coordinates the lines were placed in. The logical
// rectangle also contains the ink.
func (ls *Lines) Extents() (ink, logical Rect) {
	var x0, y0, x1, y1 fixed.Int26_6
	for i, l := range ls.lines {
		p := ls.pos[i]
		li, ll := l.Extents()
		li = li.Translate(p.X, p.Y)
		ll = ll.Translate(p.X, p.Y)
		ink = ink.Union(li)
		if i == 0 {
			x0, y0, x1, y1 = ll.X, ll.Y, ll.X+ll.Width, ll.Y+ll.Height
			continue
		}
		x0, y0 = min(x0, ll.X), min(y0, ll.Y)
		x1, y1 = max(x1, ll.X+ll.Width), max(y1, ll.Y+ll.Height)
	}
	if !ink.Empty() && len(ls.lines) > 0 {
		n := ink.normalized()
		x0, y0 = min(x0, n.X), min(y0, n.Y)
		x1, y1 = max(x1, n.X+n.Width), max(y1, n.Y+n.Height)
	}
	return ink, Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Baseline returns the baseline of the first line, zero when there is
// none.
func (ls *Lines) Baseline() fixed.Int26_6 {
	if len(ls.lines) == 0 {
		return 0
	}
	return ls.pos[0].Y
}

func (ls *Lines) find(line *Line) int {
	return slices.Index(ls.lines, line)
}

// lineBox returns the logical rectangle of line i in placed coordinates.
func (ls *Lines) lineBox(i int) Rect {
	_, logical := ls.lines[i].Extents()
	return logical.Translate(ls.pos[i].X, ls.pos[i].Y)
}

// PosToIndex returns the line and character at the point (x, y) and
// whether the point is in the trailing half of the character. Points
// above the first line or below the last map to those lines; points
// left or right of a line map to its visually first or last character.
func (ls *Lines) PosToIndex(x, y fixed.Int26_6) (line *Line, index int, trailing bool, err error) {
	if len(ls.lines) == 0 {
		return nil, 0, false, ErrNoLines
	}
	i := len(ls.lines) - 1
	for k := range ls.lines {
		if box := ls.lineBox(k); y < box.Y+box.Height {
			i = k
			break
		}
	}
	line = ls.lines[i]
	index, trailing = line.XToIndex(x - ls.pos[i].X)
	return line, index, trailing, nil
}

// IndexToPos returns the logical rectangle of the character at byte
// index of line. The x position is the leading edge of the character;
// the width is negative when the character is right-to-left. An index
// at the line end yields a zero width rectangle.
func (ls *Lines) IndexToPos(line *Line, index int) (Rect, error) {
	if len(ls.lines) == 0 {
		return Rect{}, ErrNoLines
	}
	i := ls.find(line)
	if i < 0 {
		return Rect{}, ErrLineNotInLines
	}
	x, err := line.IndexToX(index, false)
	if err != nil {
		return Rect{}, err
	}
	var w fixed.Int26_6
	if index < line.End() {
		w = line.indexToX(index, true) - x
	}
	m := line.Metrics()
	p := ls.pos[i]
	return Rect{X: p.X + x, Y: p.Y - m.Ascent, Width: w, Height: m.Ascent + m.Descent}, nil
}

// CursorPos returns the strong and weak caret rectangles at byte index
// of line in placed coordinates.
func (ls *Lines) CursorPos(line *Line, index int) (strong, weak Rect, err error) {
	if len(ls.lines) == 0 {
		return Rect{}, Rect{}, ErrNoLines
	}
	i := ls.find(line)
	if i < 0 {
		return Rect{}, Rect{}, ErrLineNotInLines
	}
	strong, weak, err = line.CursorPos(index)
	if err != nil {
		return Rect{}, Rect{}, err
	}
	p := ls.pos[i]
	return strong.Translate(p.X, p.Y), weak.Translate(p.X, p.Y), nil
}

// caret is a cursor position and its caret x.
type caret struct {
	index int
	x     fixed.Int26_6
}

// cursorPositions returns the cursor positions of line ordered in the
// direction of the line: left to right, or right to left for
// right-to-left lines. The line end is included only at a paragraph
// end; otherwise it is the start of the next line. The line start comes
// first and the line end last.
func (l *Line) cursorPositions(strong bool) []caret {
	attrs := l.LogAttrs()
	first := l.src.charIndex(l.Start)
	var out []caret
	for k, a := range attrs {
		index := l.src.offsets[first+k]
		if !a.IsCursorPosition && index != l.Start {
			continue
		}
		if k > 0 && index == l.End() && !l.IsParagraphEnd {
			continue
		}
		sx, wx := l.caretX(index)
		x := sx
		if !strong {
			x = wx
		}
		out = append(out, caret{index: index, x: x})
	}
	rtl := l.Direction == DirectionRTL
	slices.SortStableFunc(out, func(a, b caret) int {
		switch {
		case a.index == b.index:
			return 0
		case a.index == l.Start || b.index == l.End():
			return -1
		case b.index == l.Start || a.index == l.End():
			return 1
		}
		d := a.x - b.x
		if rtl {
			d = -d
		}
		switch {
		case d < 0:
			return -1
		case d > 0:
			return 1
		}
		return a.index - b.index
	})
	return out
}

// MoveCursor moves the cursor at byte index of line by one cursor
// position in visual order, forward (dir > 0) or backward (dir < 0).
// Forward is the direction of the line: rightward on left-to-right
// lines, leftward on right-to-left ones. strong selects which caret
// orders positions at direction boundaries. trailing places the cursor
// after the character at index.
//
// Moving past a line end continues on the next or previous line. At
// the start of the first line the result is (nil, -1, false); past the
// end of the last line it is (nil, math.MaxInt, false). A line not in
// ls also yields (nil, -1, false).
func (ls *Lines) MoveCursor(strong bool, line *Line, index int, trailing bool, dir int) (*Line, int, bool) {
	i := ls.find(line)
	if i < 0 {
		return nil, -1, false
	}
	if trailing && index < line.End() {
		index = line.src.offsets[line.src.charIndex(index)+1]
	}

	carets := line.cursorPositions(strong)
	k := nearestCaret(carets, index)
	switch {
	case dir > 0 && k+1 < len(carets):
		return line, carets[k+1].index, false
	case dir > 0:
		if i+1 < len(ls.lines) {
			next := ls.lines[i+1]
			return next, next.cursorPositions(strong)[0].index, false
		}
		return nil, math.MaxInt, false
	case dir < 0 && k > 0:
		return line, carets[k-1].index, false
	case dir < 0:
		if i > 0 {
			prev := ls.lines[i-1].cursorPositions(strong)
			return ls.lines[i-1], prev[len(prev)-1].index, false
		}
		return nil, -1, false
	}
	return line, index, false
}

// nearestCaret returns the position in carets of index, or of the
// closest index when index is not a cursor position.
func nearestCaret(carets []caret, index int) int {
	best, dist := 0, math.MaxInt
	for k, c := range carets {
		d := c.index - index
		if d < 0 {
			d = -d
		}
		if d < dist {
			best, dist = k, d
		}
	}
	return best
}
