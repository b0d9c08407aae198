package backing

import (
	"iter"

	"github.com/npillmayer/snaplist/element"
)

// Sections returns an iterator over all sections in order.
//
// The yielded sections are views for reading; mutating them bypasses the
// structure's invariant checks.
func (st *Structure[ID, Tag]) Sections() iter.Seq[*element.Section[ID, Tag]] {
	return func(yield func(*element.Section[ID, Tag]) bool) {
		if st == nil {
			return
		}
		for _, s := range st.sections {
			if !yield(s) {
				return
			}
		}
	}
}

// ForEachItem walks all items in section order, then item order.
//
// The callback receives the owning section key with each item. Iteration
// stops early if the callback returns false.
func (st *Structure[ID, Tag]) ForEachItem(fn func(sectionKey string, it element.Item[ID, Tag]) bool) {
	if st == nil || fn == nil {
		return
	}
	for _, s := range st.sections {
		for it := range s.Items() {
			if !fn(s.Key(), it) {
				return
			}
		}
	}
}

// IDsMatching returns a lazy iterator over the identifiers of all items
// whose version tag satisfies the predicate, preserving section-then-item
// order.
func (st *Structure[ID, Tag]) IDsMatching(pred func(Tag) bool) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		if st == nil || pred == nil {
			return
		}
		for _, s := range st.sections {
			for it := range s.Items() {
				if !pred(it.Tag()) {
					continue
				}
				if !yield(it.ID()) {
					return
				}
			}
		}
	}
}
