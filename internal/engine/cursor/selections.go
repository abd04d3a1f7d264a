package cursor

import "sort"

// SelectionSet manages one or more selections.
// Selections are kept sorted by start offset with no two overlapping.
// The first selection is the primary one.
type SelectionSet struct {
	selections []Selection
}

// NewSelectionSet creates a set with a single point selection at offset.
func NewSelectionSet(offset ByteOffset) *SelectionSet {
	return &SelectionSet{
		selections: []Selection{NewCursorSelection(offset)},
	}
}

// NewSelectionSetFromSlice creates a set from sels, normalizing them.
// An empty slice yields a point selection at 0.
func NewSelectionSetFromSlice(sels []Selection) *SelectionSet {
	ss := &SelectionSet{}
	ss.SetAll(sels)
	return ss
}

// Primary returns the primary (first) selection.
func (ss *SelectionSet) Primary() Selection {
	return ss.selections[0]
}

// All returns a copy of all selections.
func (ss *SelectionSet) All() []Selection {
	out := make([]Selection, len(ss.selections))
	copy(out, ss.selections)
	return out
}

// Count returns the number of selections.
func (ss *SelectionSet) Count() int {
	return len(ss.selections)
}

// Get returns the selection at index.
func (ss *SelectionSet) Get(index int) Selection {
	return ss.selections[index]
}

// Set replaces all selections with sel.
func (ss *SelectionSet) Set(sel Selection) {
	ss.selections = append(ss.selections[:0], sel)
}

// SetAll replaces all selections. An empty slice resets to a point
// selection at 0 so the set is never empty.
func (ss *SelectionSet) SetAll(sels []Selection) {
	if len(sels) == 0 {
		ss.selections = []Selection{NewCursorSelection(0)}
		return
	}
	ss.selections = make([]Selection, len(sels))
	copy(ss.selections, sels)
	ss.normalize()
}

// Map replaces every selection with f(index, selection).
func (ss *SelectionSet) Map(f func(i int, sel Selection) Selection) {
	for i, sel := range ss.selections {
		ss.selections[i] = f(i, sel)
	}
	ss.normalize()
}

// CollapseAll collapses every selection to its head.
func (ss *SelectionSet) CollapseAll() {
	ss.Map(func(_ int, sel Selection) Selection { return sel.Collapse() })
}

// FlipAll swaps anchor and head of every selection.
func (ss *SelectionSet) FlipAll() {
	ss.Map(func(_ int, sel Selection) Selection { return sel.Flip() })
}

// Clamp limits every selection to [0, limit].
func (ss *SelectionSet) Clamp(limit ByteOffset) {
	ss.Map(func(_ int, sel Selection) Selection { return sel.Clamp(limit) })
}

// normalize sorts selections and merges overlapping ones.
func (ss *SelectionSet) normalize() {
	if len(ss.selections) <= 1 {
		return
	}

	sort.SliceStable(ss.selections, func(i, j int) bool {
		si, sj := ss.selections[i].Start(), ss.selections[j].Start()
		if si != sj {
			return si < sj
		}
		return ss.selections[i].End() > ss.selections[j].End()
	})

	merged := ss.selections[:1]
	for _, sel := range ss.selections[1:] {
		last := &merged[len(merged)-1]
		if sel.Start() < last.End() || sel.Start() == last.Start() {
			*last = last.Merge(sel)
		} else {
			merged = append(merged, sel)
		}
	}
	ss.selections = merged
}
