package backing

import (
	"fmt"

	"github.com/npillmayer/snaplist/element"
)

// Anchor operations. All of them validate their preconditions before
// touching the structure: a non-nil error return guarantees the structure is
// unchanged. A missing anchor is a broken caller precondition, reported as
// ErrItemNotFound / ErrSectionNotFound rather than terminating the process.

// AppendItems appends an ordered run of items to the last section, stamping
// each with the given version tag.
func (st *Structure[ID, Tag]) AppendItems(ids []ID, tag Tag) error {
	if st.IsEmpty() {
		return ErrNoSections
	}
	return st.appendTo(st.sections[len(st.sections)-1], ids, tag)
}

// AppendItemsTo appends an ordered run of items to the named section,
// stamping each with the given version tag.
func (st *Structure[ID, Tag]) AppendItemsTo(key string, ids []ID, tag Tag) error {
	s := st.section(key)
	if s == nil {
		return fmt.Errorf("%w: %q", ErrSectionNotFound, key)
	}
	return st.appendTo(s, ids, tag)
}

func (st *Structure[ID, Tag]) appendTo(s *element.Section[ID, Tag], ids []ID, tag Tag) error {
	if err := st.validateNewItemIDs(ids); err != nil {
		return err
	}
	s.Append(newItems(ids, tag)...)
	return nil
}

// InsertItemsBefore inserts an ordered run of items immediately before the
// anchor item, in the anchor's section.
func (st *Structure[ID, Tag]) InsertItemsBefore(anchor ID, ids []ID, tag Tag) error {
	return st.insertItems(anchor, ids, tag, 0)
}

// InsertItemsAfter inserts an ordered run of items immediately after the
// anchor item, in the anchor's section.
func (st *Structure[ID, Tag]) InsertItemsAfter(anchor ID, ids []ID, tag Tag) error {
	return st.insertItems(anchor, ids, tag, 1)
}

func (st *Structure[ID, Tag]) insertItems(anchor ID, ids []ID, tag Tag, offset int) error {
	si, ii := st.locate(anchor)
	if si < 0 {
		return fmt.Errorf("%w: anchor %v", ErrItemNotFound, anchor)
	}
	if err := st.validateNewItemIDs(ids); err != nil {
		return err
	}
	err := st.sections[si].InsertAt(ii+offset, newItems(ids, tag)...)
	assert(err == nil, "insertItems: validated index out of bounds")
	return nil
}

// MoveItemBefore moves an existing item immediately before the anchor item,
// possibly across sections. The moved item keeps its version tag: identity
// and content are unchanged, only the position is.
func (st *Structure[ID, Tag]) MoveItemBefore(id ID, anchor ID) error {
	return st.moveItem(id, anchor, 0)
}

// MoveItemAfter moves an existing item immediately after the anchor item,
// possibly across sections. The moved item keeps its version tag.
func (st *Structure[ID, Tag]) MoveItemAfter(id ID, anchor ID) error {
	return st.moveItem(id, anchor, 1)
}

func (st *Structure[ID, Tag]) moveItem(id ID, anchor ID, offset int) error {
	if id == anchor {
		return fmt.Errorf("%w: cannot move %v relative to itself", ErrIllegalArguments, id)
	}
	si, ii := st.locate(id)
	if si < 0 {
		return fmt.Errorf("%w: %v", ErrItemNotFound, id)
	}
	if asi, _ := st.locate(anchor); asi < 0 {
		return fmt.Errorf("%w: anchor %v", ErrItemNotFound, anchor)
	}
	moved, err := st.sections[si].At(ii)
	assert(err == nil, "moveItem: located index out of bounds")
	err = st.sections[si].RemoveRange(ii, ii+1)
	assert(err == nil, "moveItem: cannot remove located item")
	// Anchor position is re-resolved after the removal; removing the moved
	// item may have shifted it.
	asi, aii := st.locate(anchor)
	assert(asi >= 0, "moveItem: anchor vanished during move")
	err = st.sections[asi].InsertAt(aii+offset, moved)
	assert(err == nil, "moveItem: cannot re-insert moved item")
	return nil
}

// AppendSections appends new empty sections in order, stamping each with the
// given version tag.
func (st *Structure[ID, Tag]) AppendSections(keys []string, tag Tag) error {
	if err := st.validateNewSectionKeys(keys); err != nil {
		return err
	}
	for _, key := range keys {
		st.sections = append(st.sections, element.NewSection[ID, Tag](key, tag))
	}
	return nil
}

// InsertSectionsBefore inserts new empty sections immediately before the
// anchor section.
func (st *Structure[ID, Tag]) InsertSectionsBefore(anchorKey string, keys []string, tag Tag) error {
	return st.insertSections(anchorKey, keys, tag, 0)
}

// InsertSectionsAfter inserts new empty sections immediately after the
// anchor section.
func (st *Structure[ID, Tag]) InsertSectionsAfter(anchorKey string, keys []string, tag Tag) error {
	return st.insertSections(anchorKey, keys, tag, 1)
}

func (st *Structure[ID, Tag]) insertSections(anchorKey string, keys []string, tag Tag, offset int) error {
	ai := st.sectionIndex(anchorKey)
	if ai < 0 {
		return fmt.Errorf("%w: anchor %q", ErrSectionNotFound, anchorKey)
	}
	if err := st.validateNewSectionKeys(keys); err != nil {
		return err
	}
	run := make([]*element.Section[ID, Tag], len(keys))
	for i, key := range keys {
		run[i] = element.NewSection[ID, Tag](key, tag)
	}
	at := ai + offset
	st.sections = append(st.sections[:at],
		append(run, st.sections[at:]...)...)
	return nil
}

// MoveSectionBefore moves an existing section (with its items) immediately
// before the anchor section. The moved section keeps its version tag.
func (st *Structure[ID, Tag]) MoveSectionBefore(key, anchorKey string) error {
	return st.moveSection(key, anchorKey, 0)
}

// MoveSectionAfter moves an existing section (with its items) immediately
// after the anchor section. The moved section keeps its version tag.
func (st *Structure[ID, Tag]) MoveSectionAfter(key, anchorKey string) error {
	return st.moveSection(key, anchorKey, 1)
}

func (st *Structure[ID, Tag]) moveSection(key, anchorKey string, offset int) error {
	if key == anchorKey {
		return fmt.Errorf("%w: cannot move %q relative to itself", ErrIllegalArguments, key)
	}
	si := st.sectionIndex(key)
	if si < 0 {
		return fmt.Errorf("%w: %q", ErrSectionNotFound, key)
	}
	if ai := st.sectionIndex(anchorKey); ai < 0 {
		return fmt.Errorf("%w: anchor %q", ErrSectionNotFound, anchorKey)
	}
	moved := st.sections[si]
	st.sections = append(st.sections[:si], st.sections[si+1:]...)
	ai := st.sectionIndex(anchorKey)
	assert(ai >= 0, "moveSection: anchor vanished during move")
	at := ai + offset
	st.sections = append(st.sections[:at],
		append([]*element.Section[ID, Tag]{moved}, st.sections[at:]...)...)
	return nil
}

// validateNewItemIDs checks that a run of identifiers is non-empty, free of
// internal duplicates, and absent from the entire structure.
func (st *Structure[ID, Tag]) validateNewItemIDs(ids []ID) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: empty identifier run", ErrIllegalArguments)
	}
	seen := make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %v repeated in run", ErrDuplicateItem, id)
		}
		seen[id] = struct{}{}
		if st.contains(id) {
			return fmt.Errorf("%w: %v", ErrDuplicateItem, id)
		}
	}
	return nil
}

// validateNewSectionKeys checks that a run of section keys is non-empty,
// free of internal duplicates, and absent from the structure.
func (st *Structure[ID, Tag]) validateNewSectionKeys(keys []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("%w: empty key run", ErrIllegalArguments)
	}
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %q repeated in run", ErrDuplicateSection, key)
		}
		seen[key] = struct{}{}
		if st.sectionIndex(key) >= 0 {
			return fmt.Errorf("%w: %q", ErrDuplicateSection, key)
		}
	}
	return nil
}

func newItems[ID, Tag comparable](ids []ID, tag Tag) []element.Item[ID, Tag] {
	items := make([]element.Item[ID, Tag], len(ids))
	for i, id := range ids {
		items[i] = element.NewItem(id, tag)
	}
	return items
}
