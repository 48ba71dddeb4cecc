package attr

import "sort"

// List is an ordered collection of attributes. Attributes are kept sorted
// by start offset; attributes with equal starts keep insertion order
// unless inserted with InsertBefore.
//
// The zero value is an empty list ready to use. A List is not safe for
// concurrent mutation.
type List struct {
	attrs []Attribute
}

// NewList returns a list holding attrs, inserted in order.
func NewList(attrs ...Attribute) (*List, error) {
	l := &List{}
	for _, a := range attrs {
		if err := l.Insert(a); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Len returns the number of attributes in l.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.attrs)
}

// Attributes returns a copy of the attributes in list order.
func (l *List) Attributes() []Attribute {
	if l == nil {
		return nil
	}
	return append([]Attribute(nil), l.attrs...)
}

// Insert adds a after every attribute starting at or before a.Start.
func (l *List) Insert(a Attribute) error {
	if err := a.Validate(); err != nil {
		return err
	}
	i := sort.Search(len(l.attrs), func(i int) bool { return l.attrs[i].Start > a.Start })
	l.insertAt(i, a)
	return nil
}

// InsertBefore adds a before every attribute with the same start.
func (l *List) InsertBefore(a Attribute) error {
	if err := a.Validate(); err != nil {
		return err
	}
	i := sort.Search(len(l.attrs), func(i int) bool { return l.attrs[i].Start >= a.Start })
	l.insertAt(i, a)
	return nil
}

func (l *List) insertAt(i int, a Attribute) {
	l.attrs = append(l.attrs, Attribute{})
	copy(l.attrs[i+1:], l.attrs[i:])
	l.attrs[i] = a
}

// Change inserts a, merging it with attributes of the same kind and value
// that overlap or touch it, and cutting the range of a out of attributes
// of the same kind with a different value.
func (l *List) Change(a Attribute) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.Start == a.End {
		return nil
	}
	kept := l.attrs[:0:0]
	for _, b := range l.attrs {
		if b.Kind != a.Kind || b.End < a.Start || b.Start > a.End {
			kept = append(kept, b)
			continue
		}
		if b.SameValue(a) {
			a.Start = min(a.Start, b.Start)
			a.End = max(a.End, b.End)
			continue
		}
		if b.End == a.Start || b.Start == a.End {
			kept = append(kept, b)
			continue
		}
		if b.Start < a.Start {
			kept = append(kept, b.WithRange(b.Start, a.Start))
		}
		if b.End > a.End {
			kept = append(kept, b.WithRange(a.End, b.End))
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })
	l.attrs = kept
	return l.Insert(a)
}

// Filter removes the attributes for which match returns true from l and
// returns them as a new list, or nil if none matched.
func (l *List) Filter(match func(Attribute) bool) *List {
	if l == nil {
		return nil
	}
	var out *List
	rest := l.attrs[:0]
	for _, a := range l.attrs {
		if match(a) {
			if out == nil {
				out = &List{}
			}
			out.attrs = append(out.attrs, a)
			continue
		}
		rest = append(rest, a)
	}
	clear(l.attrs[len(rest):])
	l.attrs = rest
	return out
}

// Copy returns an independent copy of l.
func (l *List) Copy() *List {
	if l == nil {
		return nil
	}
	return &List{attrs: l.Attributes()}
}

// Equal reports whether l and o hold the same attributes. Order only
// matters between attributes with the same start.
func (l *List) Equal(o *List) bool {
	if l.Len() != o.Len() {
		return false
	}
	used := make([]bool, o.Len())
outer:
	for _, a := range l.Attributes() {
		for j, b := range o.attrs {
			if !used[j] && a.Equal(b) {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}

// Update adjusts the list after the text it applies to was edited: remove
// bytes at pos were replaced by add bytes. Attributes entirely inside the
// removed range are dropped.
func (l *List) Update(pos, remove, add int) {
	kept := l.attrs[:0]
	for _, a := range l.attrs {
		if a.Start >= pos && a.End <= pos+remove && remove > 0 && a.End != EndOfText {
			continue
		}
		a.Start = shiftOffset(a.Start, pos, remove, add)
		if a.End != EndOfText {
			a.End = shiftOffset(a.End, pos, remove, add)
		}
		if a.End < a.Start {
			a.End = a.Start
		}
		kept = append(kept, a)
	}
	clear(l.attrs[len(kept):])
	l.attrs = kept
	sort.SliceStable(l.attrs, func(i, j int) bool { return l.attrs[i].Start < l.attrs[j].Start })
}

func shiftOffset(off, pos, remove, add int) int {
	switch {
	case off >= pos+remove:
		return off - remove + add
	case off > pos:
		return pos
	}
	return off
}
