package backing

import "github.com/npillmayer/snaplist/element"

// Position locates one item within the structure at the time the index was
// built.
type Position[ID, Tag comparable] struct {
	SectionIndex int // position of the owning section
	ItemIndex    int // position within the owning section
	// Section references the owning section. It is a view for lookups only;
	// mutating it bypasses the structure's invariant checks.
	Section *element.Section[ID, Tag]
}

// Index builds the identifier→position mapping for every item.
//
// The index is derived state: it is recomputed from scratch on every call,
// O(total items), and holds only for the structure as it was at call time.
// Any mutation invalidates previously built indices; callers rebuild instead
// of patching.
func (st *Structure[ID, Tag]) Index() map[ID]Position[ID, Tag] {
	if st == nil {
		return nil
	}
	index := make(map[ID]Position[ID, Tag], st.NumItems())
	for si, s := range st.sections {
		ii := 0
		for it := range s.Items() {
			index[it.ID()] = Position[ID, Tag]{
				SectionIndex: si,
				ItemIndex:    ii,
				Section:      s,
			}
			ii++
		}
	}
	return index
}

// locate returns the owning section index and intra-section index for an
// item identifier, or (-1, -1) if absent. Single-item variant of Index that
// avoids building the full map.
func (st *Structure[ID, Tag]) locate(id ID) (int, int) {
	if st == nil {
		return -1, -1
	}
	for si, s := range st.sections {
		if ii := s.IndexOf(id); ii >= 0 {
			return si, ii
		}
	}
	return -1, -1
}
