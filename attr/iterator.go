package attr

import "sort"

// Iterator walks a list as a sequence of ranges over which the set of
// active attributes is constant.
//
//	it := list.Iterator()
//	for it.Next() {
//		start, end := it.Range()
//		weight, ok := it.Get(attr.KindWeight)
//		...
//	}
//
// The last range ends at EndOfText. An iterator reflects the list at the
// time it was created.
type Iterator struct {
	attrs  []Attribute
	bounds []int
	pos    int // index into bounds of the current range start; -1 before Next
	active []int
}

// Iterator returns an iterator positioned before the first range.
func (l *List) Iterator() *Iterator {
	it := &Iterator{attrs: l.Attributes(), pos: -1}
	seen := map[int]bool{0: true, EndOfText: true}
	it.bounds = []int{0, EndOfText}
	for _, a := range it.attrs {
		for _, b := range [2]int{a.Start, a.End} {
			if !seen[b] {
				seen[b] = true
				it.bounds = append(it.bounds, b)
			}
		}
	}
	sort.Ints(it.bounds)
	return it
}

// Next advances to the next range and reports whether there is one.
func (it *Iterator) Next() bool {
	if it.pos+1 >= len(it.bounds)-1 {
		it.pos = len(it.bounds) - 1
		it.active = it.active[:0]
		return false
	}
	it.pos++
	start := it.bounds[it.pos]
	it.active = it.active[:0]
	for i, a := range it.attrs {
		if a.Covers(start) {
			it.active = append(it.active, i)
		}
	}
	return true
}

// Range returns the current range [start, end).
func (it *Iterator) Range() (start, end int) {
	if it.pos < 0 || it.pos >= len(it.bounds)-1 {
		return EndOfText, EndOfText
	}
	return it.bounds[it.pos], it.bounds[it.pos+1]
}

// Get returns the attribute of kind k in effect over the current range.
// For accumulating kinds the last inserted one is returned; use Attrs to
// see all of them.
func (it *Iterator) Get(k Kind) (Attribute, bool) {
	best := -1
	for _, i := range it.active {
		a := it.attrs[i]
		if a.Kind != k {
			continue
		}
		if best < 0 || k.Accumulates() || narrower(a, it.attrs[best]) {
			best = i
		}
	}
	if best < 0 {
		return Attribute{}, false
	}
	return it.attrs[best], true
}

// narrower reports whether a wins over b, which was inserted before it.
func narrower(a, b Attribute) bool {
	return a.End-a.Start <= b.End-b.Start
}

// Attrs returns the attributes in effect over the current range, resolved
// by merge policy: one per overriding kind, all of the accumulating ones.
// The result is ordered by kind, then by list order.
func (it *Iterator) Attrs() []Attribute {
	var out []Attribute
	for k := KindLanguage; k < kindCount; k++ {
		if k.Accumulates() {
			for _, i := range it.active {
				if it.attrs[i].Kind == k {
					out = append(out, it.attrs[i])
				}
			}
			continue
		}
		if a, ok := it.Get(k); ok {
			out = append(out, a)
		}
	}
	return out
}

// Font merges the font related attributes in effect over the current
// range into base.
func (it *Iterator) Font(base FontDescription) FontDescription {
	if a, ok := it.Get(KindFontDesc); ok {
		base.Merge(a.Value.(FontDescription), true)
	}
	for _, k := range [...]Kind{KindFamily, KindStyle, KindWeight, KindVariant, KindStretch, KindSize} {
		if a, ok := it.Get(k); ok {
			base.Apply(a)
		}
	}
	return base
}
