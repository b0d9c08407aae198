package backing

import (
	"github.com/npillmayer/snaplist/element"
)

// Structure is the ordered collection of sections, each holding an ordered
// collection of items.
//
// A structure created by
//
//	&Structure[ID, Tag]{}
//
// is a valid object and behaves like an empty hierarchy. All operations are
// synchronous and single-threaded; a structure shared between goroutines must
// be serialized by the caller.
type Structure[ID, Tag comparable] struct {
	sections []*element.Section[ID, Tag]
}

// New creates an empty structure.
func New[ID, Tag comparable]() *Structure[ID, Tag] {
	return &Structure[ID, Tag]{}
}

// IsEmpty reports whether the structure has no sections.
func (st *Structure[ID, Tag]) IsEmpty() bool {
	return st == nil || len(st.sections) == 0
}

// NumSections returns the number of sections.
func (st *Structure[ID, Tag]) NumSections() int {
	if st == nil {
		return 0
	}
	return len(st.sections)
}

// NumItems returns the total number of items across all sections.
func (st *Structure[ID, Tag]) NumItems() int {
	if st == nil {
		return 0
	}
	var n int
	for _, s := range st.sections {
		n += s.Len()
	}
	return n
}

// NumItemsIn returns the number of items in the named section.
func (st *Structure[ID, Tag]) NumItemsIn(key string) (int, error) {
	s := st.section(key)
	if s == nil {
		return 0, ErrSectionNotFound
	}
	return s.Len(), nil
}

// SectionKeys returns all section keys in order.
func (st *Structure[ID, Tag]) SectionKeys() []string {
	if st.IsEmpty() {
		return nil
	}
	keys := make([]string, len(st.sections))
	for i, s := range st.sections {
		keys[i] = s.Key()
	}
	return keys
}

// ItemIDs returns all item identifiers, flattened in section order, then
// item order within each section.
func (st *Structure[ID, Tag]) ItemIDs() []ID {
	if st.IsEmpty() {
		return nil
	}
	ids := make([]ID, 0, st.NumItems())
	for _, s := range st.sections {
		ids = append(ids, s.IDs()...)
	}
	return ids
}

// ItemsIn returns the ordered item identifiers of the named section.
//
// Callers must pre-validate existence if absence of the section is an
// expected case.
func (st *Structure[ID, Tag]) ItemsIn(key string) ([]ID, error) {
	s := st.section(key)
	if s == nil {
		return nil, ErrSectionNotFound
	}
	return s.IDs(), nil
}

// SectionOf returns the key of the section containing the given item
// identifier. Absence is not an error here, only reported.
func (st *Structure[ID, Tag]) SectionOf(id ID) (string, bool) {
	if st == nil {
		return "", false
	}
	for _, s := range st.sections {
		if s.IndexOf(id) >= 0 {
			return s.Key(), true
		}
	}
	return "", false
}

// ItemTag returns the version tag of the item with the given identifier.
func (st *Structure[ID, Tag]) ItemTag(id ID) (Tag, bool) {
	var zero Tag
	if st == nil {
		return zero, false
	}
	for _, s := range st.sections {
		if i := s.IndexOf(id); i >= 0 {
			it, err := s.At(i)
			assert(err == nil, "ItemTag: index from IndexOf out of bounds")
			return it.Tag(), true
		}
	}
	return zero, false
}

// SectionTag returns the version tag of the named section.
func (st *Structure[ID, Tag]) SectionTag(key string) (Tag, bool) {
	var zero Tag
	s := st.section(key)
	if s == nil {
		return zero, false
	}
	return s.Tag(), true
}

// Clone returns a deep copy of the structure.
func (st *Structure[ID, Tag]) Clone() *Structure[ID, Tag] {
	if st == nil {
		return nil
	}
	cloned := &Structure[ID, Tag]{}
	if len(st.sections) > 0 {
		cloned.sections = make([]*element.Section[ID, Tag], len(st.sections))
		for i, s := range st.sections {
			cloned.sections[i] = s.Clone()
		}
	}
	return cloned
}

// section returns the section with the given key, or nil.
func (st *Structure[ID, Tag]) section(key string) *element.Section[ID, Tag] {
	if st == nil {
		return nil
	}
	if i := st.sectionIndex(key); i >= 0 {
		return st.sections[i]
	}
	return nil
}

// sectionIndex returns the position of the section with the given key, or -1.
func (st *Structure[ID, Tag]) sectionIndex(key string) int {
	if st == nil {
		return -1
	}
	for i, s := range st.sections {
		if s.Key() == key {
			return i
		}
	}
	return -1
}

// contains reports whether an item identifier exists anywhere in the
// structure.
func (st *Structure[ID, Tag]) contains(id ID) bool {
	_, ok := st.SectionOf(id)
	return ok
}
