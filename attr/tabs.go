package attr

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/math/fixed"
)

// TabAlign is the alignment of text at a tab stop.
type TabAlign uint8

// Tab alignments. Line breaking currently places text after every stop
// as if it were TabLeft.
const (
	TabLeft TabAlign = iota
	TabRight
	TabCenter
	TabDecimal
)

var tabAlignNames = []string{"left", "right", "center", "decimal"}

func (a TabAlign) String() string { return enumName(tabAlignNames, int(a)) }

// Tab is one tab stop.
type Tab struct {
	Position fixed.Int26_6 // from the start of the line, device units
	Align    TabAlign
}

// TabArray is an ordered set of tab stops. Past the last stop, stops
// repeat at the distance between the last two (or at the last position
// if there is only one).
type TabArray struct {
	tabs []Tab
}

// NewTabArray returns a tab array holding tabs, which must be in
// increasing position order.
func NewTabArray(tabs ...Tab) *TabArray {
	return &TabArray{tabs: append([]Tab(nil), tabs...)}
}

// Len returns the number of explicit stops.
func (t *TabArray) Len() int {
	if t == nil {
		return 0
	}
	return len(t.tabs)
}

// Tab returns the i-th stop, extrapolating past the explicit ones.
// It returns false for an empty array or a negative index.
func (t *TabArray) Tab(i int) (Tab, bool) {
	n := t.Len()
	if n == 0 || i < 0 {
		return Tab{}, false
	}
	if i < n {
		return t.tabs[i], true
	}
	last := t.tabs[n-1]
	step := last.Position
	if n > 1 {
		step = last.Position - t.tabs[n-2].Position
	}
	if step <= 0 {
		return Tab{}, false
	}
	return Tab{Position: last.Position + step*fixed.Int26_6(i-n+1), Align: last.Align}, true
}

// Next returns the first stop strictly after x.
func (t *TabArray) Next(x fixed.Int26_6) (Tab, bool) {
	for i := 0; ; i++ {
		tab, ok := t.Tab(i)
		if !ok {
			return Tab{}, false
		}
		if tab.Position > x {
			return tab, true
		}
	}
}

// Append adds a stop at the end.
func (t *TabArray) Append(tab Tab) {
	t.tabs = append(t.tabs, tab)
}

// String returns one "index position alignment" line per explicit stop.
func (t *TabArray) String() string {
	var b strings.Builder
	for i := 0; i < t.Len(); i++ {
		fmt.Fprintf(&b, "%d %d %s\n", i, t.tabs[i].Position, t.tabs[i].Align)
	}
	return b.String()
}

// ParseTabArray reads the format produced by TabArray.String.
func ParseTabArray(s string) (*TabArray, error) {
	t := &TabArray{}
	sc := bufio.NewScanner(strings.NewReader(s))
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, &ParseError{Line: line, Msg: "expected \"index position alignment\""}
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil || idx != t.Len() {
			return nil, &ParseError{Line: line, Msg: fmt.Sprintf("bad tab index %q", fields[0]), Err: err}
		}
		pos, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return nil, &ParseError{Line: line, Msg: fmt.Sprintf("bad tab position %q", fields[1]), Err: err}
		}
		align, ok := enumValue(tabAlignNames, fields[2])
		if !ok {
			return nil, &ParseError{Line: line, Msg: fmt.Sprintf("bad tab alignment %q", fields[2]), Err: ErrInvalidValue}
		}
		t.Append(Tab{Position: fixed.Int26_6(pos), Align: TabAlign(align)})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
