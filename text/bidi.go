package text

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
)

// maxLevel is the deepest explicit embedding level.
const maxLevel = 61

// DirectionOverride forces the characters in the byte range [Start, End)
// to one direction, as if the range were wrapped in LRO (or RLO) and PDF.
type DirectionOverride struct {
	Start, End int
	RTL        bool
}

// ResolveLevels computes the bidi embedding level of every rune of text,
// one entry per rune, and the resolved paragraph direction.
//
// base is the requested paragraph direction. DirectionLTR and
// DirectionRTL force it; DirectionWeakLTR, DirectionWeakRTL and
// DirectionNeutral let the first strong character decide, falling back
// to the weak direction (or LTR for neutral) when there is none.
//
// Invalid UTF-8 is treated as U+FFFD. The text is handled as a single
// paragraph; callers split at paragraph separators first.
//
// The algorithm is a simplified UBA: weak and neutral types are resolved
// over level runs rather than isolating run sequences, and brackets are
// not paired (rule N0). A closing bracket after right-to-left text in a
// left-to-right paragraph therefore takes the paragraph level.
func ResolveLevels(text string, base Direction, overrides ...DirectionOverride) ([]uint8, Direction) {
	var (
		classes []bidi.Class
		starts  []int
	)
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		p, _ := bidi.LookupRune(r)
		starts = append(starts, i)
		classes = append(classes, p.Class())
		i += size
	}

	r := &resolver{
		classes:   classes,
		original:  append([]bidi.Class(nil), classes...),
		levels:    make([]uint8, len(classes)),
		removed:   make([]bool, len(classes)),
		overrides: overrideAt(starts, overrides),
	}
	r.paragraphLevel(base)
	r.explicit()
	for _, seq := range r.levelRuns() {
		r.resolveWeak(seq)
		r.resolveNeutral(seq)
		r.resolveImplicit(seq)
	}
	r.resetWhitespace()

	dir := DirectionLTR
	if r.para%2 == 1 {
		dir = DirectionRTL
	}
	return r.levels, dir
}

// overrideAt returns for every rune the override covering it: 0 for none,
// 1 for LTR, 2 for RTL. When overrides overlap the narrowest one wins.
func overrideAt(starts []int, overrides []DirectionOverride) []uint8 {
	if len(overrides) == 0 {
		return nil
	}
	out := make([]uint8, len(starts))
	width := make([]int, len(starts))
	for _, o := range overrides {
		if o.End <= o.Start {
			continue
		}
		v := uint8(1)
		if o.RTL {
			v = 2
		}
		for i, s := range starts {
			if s < o.Start || s >= o.End {
				continue
			}
			if out[i] == 0 || o.End-o.Start <= width[i] {
				out[i], width[i] = v, o.End-o.Start
			}
		}
	}
	return out
}

type resolver struct {
	classes   []bidi.Class
	original  []bidi.Class
	levels    []uint8
	removed   []bool
	overrides []uint8
	para      uint8
}

func isStrong(c bidi.Class) bool {
	return c == bidi.L || c == bidi.R || c == bidi.AL
}

func isIsolateInitiator(c bidi.Class) bool {
	return c == bidi.LRI || c == bidi.RLI || c == bidi.FSI
}

// firstStrong implements P2 over classes[from:], skipping isolates.
// It stops at a PDI closing an isolate opened before from when
// stopAtPDI is set.
func (r *resolver) firstStrong(from int, stopAtPDI bool) (bidi.Class, bool) {
	depth := 0
	for i := from; i < len(r.classes); i++ {
		c := r.original[i]
		switch {
		case isIsolateInitiator(c):
			depth++
		case c == bidi.PDI:
			if depth == 0 && stopAtPDI {
				return 0, false
			}
			if depth > 0 {
				depth--
			}
		case c == bidi.B:
			return 0, false
		case depth == 0 && isStrong(c):
			return c, true
		}
	}
	return 0, false
}

func (r *resolver) paragraphLevel(base Direction) {
	switch base {
	case DirectionLTR, DirectionTTB, DirectionBTT:
		r.para = 0
		return
	case DirectionRTL:
		r.para = 1
		return
	}
	if c, ok := r.firstStrong(0, false); ok {
		if c == bidi.L {
			r.para = 0
		} else {
			r.para = 1
		}
		return
	}
	if base == DirectionWeakRTL {
		r.para = 1
	}
}

type stackEntry struct {
	level    uint8
	override bool
	rtl      bool // direction forced by override
	isolate  bool
	virtual  bool
}

// forced returns the class an override imposes on the characters it covers.
func (e stackEntry) forced() bidi.Class {
	if e.rtl {
		return bidi.R
	}
	return bidi.L
}

func nextLevel(level uint8, rtl bool) uint8 {
	if rtl {
		return (level + 1) | 1
	}
	return (level + 2) &^ 1
}

// explicit applies rules X1 to X9, including the virtual overrides.
func (r *resolver) explicit() {
	stack := []stackEntry{{level: r.para}}
	overflowIsolate, overflowEmbed, validIsolate := 0, 0, 0
	active := uint8(0)

	push := func(e stackEntry) bool {
		if e.level > maxLevel || overflowIsolate > 0 || overflowEmbed > 0 {
			return false
		}
		stack = append(stack, e)
		return true
	}

	for i, c := range r.classes {
		if r.overrides != nil && r.overrides[i] != active {
			if active != 0 {
				for len(stack) > 1 {
					e := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					if e.virtual {
						break
					}
				}
			}
			active = r.overrides[i]
			if active != 0 {
				top := stack[len(stack)-1]
				rtl := active == 2
				push(stackEntry{level: nextLevel(top.level, rtl), override: true, rtl: rtl, virtual: true})
			}
		}

		top := stack[len(stack)-1]
		switch c {
		case bidi.RLE, bidi.LRE, bidi.RLO, bidi.LRO:
			r.levels[i] = top.level
			r.removed[i] = true
			rtl := c == bidi.RLE || c == bidi.RLO
			e := stackEntry{level: nextLevel(top.level, rtl)}
			if c == bidi.RLO || c == bidi.LRO {
				e.override, e.rtl = true, rtl
			}
			if !push(e) && overflowIsolate == 0 {
				overflowEmbed++
			}

		case bidi.RLI, bidi.LRI, bidi.FSI:
			r.levels[i] = top.level
			if top.override {
				r.classes[i] = top.forced()
			}
			rtl := c == bidi.RLI
			if c == bidi.FSI {
				first, ok := r.firstStrong(i+1, true)
				rtl = ok && first != bidi.L
			}
			if push(stackEntry{level: nextLevel(top.level, rtl), isolate: true}) {
				validIsolate++
			} else {
				overflowIsolate++
			}

		case bidi.PDI:
			switch {
			case overflowIsolate > 0:
				overflowIsolate--
			case validIsolate > 0:
				overflowEmbed = 0
				for len(stack) > 1 && !stack[len(stack)-1].isolate {
					stack = stack[:len(stack)-1]
				}
				stack = stack[:len(stack)-1]
				validIsolate--
			}
			top = stack[len(stack)-1]
			r.levels[i] = top.level
			if top.override {
				r.classes[i] = top.forced()
			}

		case bidi.PDF:
			r.levels[i] = top.level
			r.removed[i] = true
			switch {
			case overflowIsolate > 0:
			case overflowEmbed > 0:
				overflowEmbed--
			case !top.isolate && !top.virtual && len(stack) > 1:
				stack = stack[:len(stack)-1]
			}

		case bidi.B:
			r.levels[i] = r.para

		case bidi.BN:
			r.levels[i] = top.level
			r.removed[i] = true

		default:
			r.levels[i] = top.level
			if top.override {
				r.classes[i] = top.forced()
			}
		}
	}
}

// levelRun is one run of equal levels, the removed characters excluded.
type levelRun struct {
	idx      []int
	level    uint8
	sos, eos bidi.Class
}

// levelRuns splits the text into maximal runs of the same level, as a
// simplification of isolating run sequences, with their sos and eos.
func (r *resolver) levelRuns() []*levelRun {
	var runs []*levelRun
	var cur *levelRun
	for i := range r.classes {
		if r.removed[i] {
			continue
		}
		if cur == nil || r.levels[i] != cur.level {
			cur = &levelRun{level: r.levels[i]}
			runs = append(runs, cur)
		}
		cur.idx = append(cur.idx, i)
	}
	dirOf := func(l uint8) bidi.Class {
		if l%2 == 1 {
			return bidi.R
		}
		return bidi.L
	}
	for i, run := range runs {
		prev, next := r.para, r.para
		if i > 0 {
			prev = runs[i-1].level
		}
		if i+1 < len(runs) {
			next = runs[i+1].level
		}
		run.sos = dirOf(max(prev, run.level))
		run.eos = dirOf(max(next, run.level))
	}
	return runs
}

// resolveWeak applies rules W1 to W7.
func (r *resolver) resolveWeak(run *levelRun) {
	cls := r.classes
	idx := run.idx

	// W1
	prev := run.sos
	for _, i := range idx {
		if cls[i] == bidi.NSM {
			if isIsolateInitiator(prev) || prev == bidi.PDI {
				cls[i] = bidi.ON
			} else {
				cls[i] = prev
			}
		}
		prev = cls[i]
	}

	// W2, W3
	strong := run.sos
	for _, i := range idx {
		switch cls[i] {
		case bidi.L, bidi.R, bidi.AL:
			strong = cls[i]
		case bidi.EN:
			if strong == bidi.AL {
				cls[i] = bidi.AN
			}
		}
	}
	for _, i := range idx {
		if cls[i] == bidi.AL {
			cls[i] = bidi.R
		}
	}

	// W4
	for k := 1; k+1 < len(idx); k++ {
		a, c, b := cls[idx[k-1]], cls[idx[k]], cls[idx[k+1]]
		switch {
		case c == bidi.ES && a == bidi.EN && b == bidi.EN:
			cls[idx[k]] = bidi.EN
		case c == bidi.CS && a == bidi.EN && b == bidi.EN:
			cls[idx[k]] = bidi.EN
		case c == bidi.CS && a == bidi.AN && b == bidi.AN:
			cls[idx[k]] = bidi.AN
		}
	}

	// W5
	for k := 0; k < len(idx); k++ {
		if cls[idx[k]] != bidi.ET {
			continue
		}
		end := k
		for end < len(idx) && cls[idx[end]] == bidi.ET {
			end++
		}
		if (k > 0 && cls[idx[k-1]] == bidi.EN) || (end < len(idx) && cls[idx[end]] == bidi.EN) {
			for j := k; j < end; j++ {
				cls[idx[j]] = bidi.EN
			}
		}
		k = end - 1
	}

	// W6
	for _, i := range idx {
		switch cls[i] {
		case bidi.ES, bidi.ET, bidi.CS:
			cls[i] = bidi.ON
		}
	}

	// W7
	strong = run.sos
	for _, i := range idx {
		switch cls[i] {
		case bidi.L, bidi.R:
			strong = cls[i]
		case bidi.EN:
			if strong == bidi.L {
				cls[i] = bidi.L
			}
		}
	}
}

func isNeutral(c bidi.Class) bool {
	switch c {
	case bidi.B, bidi.S, bidi.WS, bidi.ON, bidi.LRI, bidi.RLI, bidi.FSI, bidi.PDI:
		return true
	}
	return false
}

// strongDir maps the classes that act as strong types in rule N1.
func strongDir(c bidi.Class) bidi.Class {
	if c == bidi.L {
		return bidi.L
	}
	return bidi.R
}

// resolveNeutral applies rules N1 and N2.
func (r *resolver) resolveNeutral(run *levelRun) {
	cls := r.classes
	idx := run.idx
	embedding := bidi.L
	if run.level%2 == 1 {
		embedding = bidi.R
	}
	for k := 0; k < len(idx); k++ {
		if !isNeutral(cls[idx[k]]) {
			continue
		}
		end := k
		for end < len(idx) && isNeutral(cls[idx[end]]) {
			end++
		}
		before := run.sos
		if k > 0 {
			before = strongDir(cls[idx[k-1]])
		}
		after := run.eos
		if end < len(idx) {
			after = strongDir(cls[idx[end]])
		}
		dir := embedding
		if before == after {
			dir = before
		}
		for j := k; j < end; j++ {
			cls[idx[j]] = dir
		}
		k = end - 1
	}
}

// resolveImplicit applies rules I1 and I2.
func (r *resolver) resolveImplicit(run *levelRun) {
	for _, i := range run.idx {
		c := r.classes[i]
		if r.levels[i]%2 == 0 {
			switch c {
			case bidi.R:
				r.levels[i]++
			case bidi.AN, bidi.EN:
				r.levels[i] += 2
			}
		} else if c == bidi.L || c == bidi.EN || c == bidi.AN {
			r.levels[i]++
		}
	}
}

// resetWhitespace gives the removed characters the level of the
// character before them, then applies rule L1 for the whole paragraph.
func (r *resolver) resetWhitespace() {
	for i := range r.levels {
		if !r.removed[i] {
			continue
		}
		if i > 0 {
			r.levels[i] = r.levels[i-1]
		} else {
			r.levels[i] = r.para
		}
	}
	trailing := true
	for i := len(r.classes) - 1; i >= 0; i-- {
		switch r.original[i] {
		case bidi.S, bidi.B:
			r.levels[i] = r.para
			trailing = true
		case bidi.WS, bidi.LRI, bidi.RLI, bidi.FSI, bidi.PDI, bidi.BN,
			bidi.LRE, bidi.RLE, bidi.LRO, bidi.RLO, bidi.PDF:
			if trailing {
				r.levels[i] = r.para
			}
		default:
			trailing = false
		}
	}
}
