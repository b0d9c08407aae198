package snaplist

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"github.com/npillmayer/snaplist/backing"
	"github.com/npillmayer/snaplist/element"
)

// Snapshot is the versioned, ordered section/item hierarchy at one point in
// time.
//
// A snapshot created by
//
//	Snapshot[ID, Tag]{}
//
// is a valid object and behaves like an empty hierarchy. Snapshots are
// mutated in place on the caller's variable; to retain the previous state
// for diffing, Clone it before applying the next batch of edits.
//
// The snapshot carries two version tags as bookkeeping for the diffing side:
// the previous-state tag all elements were stamped with at construction, and
// the next-state tag that mutations stamp onto every element they touch. The
// caller mints a fresh next-state tag once per logical mutation batch via
// SetNextTag.
//
// The facade performs no validation of its own; anchor/batch failure
// policies are those of package backing.
type Snapshot[ID, Tag comparable] struct {
	back *backing.Structure[ID, Tag]
	prev Tag
	next Tag
}

// SectionData describes one section for snapshot construction: its key and
// the ordered identifiers of its items.
type SectionData[ID comparable] struct {
	Key   string
	Items []ID
}

// Empty creates an empty snapshot.
func Empty[ID, Tag comparable]() Snapshot[ID, Tag] {
	return Snapshot[ID, Tag]{back: backing.New[ID, Tag]()}
}

// From creates a snapshot from an initial ordered list of sections. All
// elements are stamped with prevTag; nextTag seeds the tag for the first
// mutation batch.
//
// Duplicate section keys or item identifiers in the input are rejected with
// the corresponding backing error.
func From[ID, Tag comparable](sections []SectionData[ID], prevTag, nextTag Tag) (Snapshot[ID, Tag], error) {
	snap := Snapshot[ID, Tag]{
		back: backing.New[ID, Tag](),
		prev: prevTag,
		next: nextTag,
	}
	for _, sec := range sections {
		if err := snap.back.AppendSections([]string{sec.Key}, prevTag); err != nil {
			return Snapshot[ID, Tag]{}, err
		}
		if len(sec.Items) == 0 {
			continue
		}
		if err := snap.back.AppendItemsTo(sec.Key, sec.Items, prevTag); err != nil {
			return Snapshot[ID, Tag]{}, err
		}
	}
	T().Debugf("snapshot created with %d sections, %d items", snap.NumSections(), snap.NumItems())
	return snap, nil
}

// Clone returns a deep copy of the snapshot. The copy shares nothing with
// the original; either side can be mutated independently.
func (snap *Snapshot[ID, Tag]) Clone() Snapshot[ID, Tag] {
	return Snapshot[ID, Tag]{
		back: snap.structure().Clone(),
		prev: snap.prev,
		next: snap.next,
	}
}

// PreviousTag returns the tag all pre-existing elements were stamped with at
// construction.
func (snap *Snapshot[ID, Tag]) PreviousTag() Tag {
	return snap.prev
}

// NextTag returns the tag the next mutation batch will stamp onto touched
// elements.
func (snap *Snapshot[ID, Tag]) NextTag() Tag {
	return snap.next
}

// SetNextTag replaces the next-state tag. Callers mint one fresh tag per
// logical mutation batch and set it before applying the batch.
func (snap *Snapshot[ID, Tag]) SetNextTag(tag Tag) {
	snap.next = tag
}

// --- Queries ---------------------------------------------------------------

// IsEmpty reports whether the snapshot has no sections.
func (snap *Snapshot[ID, Tag]) IsEmpty() bool {
	return snap.back.IsEmpty()
}

// NumSections returns the number of sections.
func (snap *Snapshot[ID, Tag]) NumSections() int {
	return snap.back.NumSections()
}

// NumItems returns the total number of items across all sections.
func (snap *Snapshot[ID, Tag]) NumItems() int {
	return snap.back.NumItems()
}

// NumItemsIn returns the number of items in the named section.
func (snap *Snapshot[ID, Tag]) NumItemsIn(key string) (int, error) {
	return snap.back.NumItemsIn(key)
}

// SectionKeys returns all section keys in order.
func (snap *Snapshot[ID, Tag]) SectionKeys() []string {
	return snap.back.SectionKeys()
}

// ItemIDs returns all item identifiers in section order, then item order.
func (snap *Snapshot[ID, Tag]) ItemIDs() []ID {
	return snap.back.ItemIDs()
}

// ItemsIn returns the ordered item identifiers of the named section.
func (snap *Snapshot[ID, Tag]) ItemsIn(key string) ([]ID, error) {
	return snap.back.ItemsIn(key)
}

// SectionOf returns the key of the section containing the given identifier.
func (snap *Snapshot[ID, Tag]) SectionOf(id ID) (string, bool) {
	return snap.back.SectionOf(id)
}

// ItemTag returns the version tag of the item with the given identifier.
func (snap *Snapshot[ID, Tag]) ItemTag(id ID) (Tag, bool) {
	return snap.back.ItemTag(id)
}

// SectionTag returns the version tag of the named section.
func (snap *Snapshot[ID, Tag]) SectionTag(key string) (Tag, bool) {
	return snap.back.SectionTag(key)
}

// ItemIDsMatching returns a lazy iterator over the identifiers of all items
// whose version tag satisfies the predicate, in section-then-item order.
func (snap *Snapshot[ID, Tag]) ItemIDsMatching(pred func(Tag) bool) iter.Seq[ID] {
	return snap.back.IDsMatching(pred)
}

// ForEachItem walks all items in section order, then item order.
func (snap *Snapshot[ID, Tag]) ForEachItem(fn func(sectionKey string, it element.Item[ID, Tag]) bool) {
	snap.back.ForEachItem(fn)
}

// Index builds the identifier→position mapping for every item. The index is
// recomputed on every call and holds only until the next mutation.
func (snap *Snapshot[ID, Tag]) Index() map[ID]backing.Position[ID, Tag] {
	return snap.back.Index()
}

// --- Mutations -------------------------------------------------------------
//
// All mutations stamp touched elements with the snapshot's next-state tag.
// Move operations do not stamp: identity and content are unchanged there.

// AppendItems appends items to the last section.
func (snap *Snapshot[ID, Tag]) AppendItems(ids []ID) error {
	return snap.structure().AppendItems(ids, snap.next)
}

// AppendItemsTo appends items to the named section.
func (snap *Snapshot[ID, Tag]) AppendItemsTo(key string, ids []ID) error {
	return snap.structure().AppendItemsTo(key, ids, snap.next)
}

// InsertItemsBefore inserts items immediately before the anchor item.
func (snap *Snapshot[ID, Tag]) InsertItemsBefore(anchor ID, ids []ID) error {
	return snap.structure().InsertItemsBefore(anchor, ids, snap.next)
}

// InsertItemsAfter inserts items immediately after the anchor item.
func (snap *Snapshot[ID, Tag]) InsertItemsAfter(anchor ID, ids []ID) error {
	return snap.structure().InsertItemsAfter(anchor, ids, snap.next)
}

// MoveItemBefore moves an existing item immediately before the anchor item.
func (snap *Snapshot[ID, Tag]) MoveItemBefore(id ID, anchor ID) error {
	return snap.structure().MoveItemBefore(id, anchor)
}

// MoveItemAfter moves an existing item immediately after the anchor item.
func (snap *Snapshot[ID, Tag]) MoveItemAfter(id ID, anchor ID) error {
	return snap.structure().MoveItemAfter(id, anchor)
}

// AppendSections appends new empty sections.
func (snap *Snapshot[ID, Tag]) AppendSections(keys []string) error {
	return snap.structure().AppendSections(keys, snap.next)
}

// InsertSectionsBefore inserts new empty sections immediately before the
// anchor section.
func (snap *Snapshot[ID, Tag]) InsertSectionsBefore(anchorKey string, keys []string) error {
	return snap.structure().InsertSectionsBefore(anchorKey, keys, snap.next)
}

// InsertSectionsAfter inserts new empty sections immediately after the
// anchor section.
func (snap *Snapshot[ID, Tag]) InsertSectionsAfter(anchorKey string, keys []string) error {
	return snap.structure().InsertSectionsAfter(anchorKey, keys, snap.next)
}

// MoveSectionBefore moves an existing section immediately before the anchor
// section.
func (snap *Snapshot[ID, Tag]) MoveSectionBefore(key, anchorKey string) error {
	return snap.structure().MoveSectionBefore(key, anchorKey)
}

// MoveSectionAfter moves an existing section immediately after the anchor
// section.
func (snap *Snapshot[ID, Tag]) MoveSectionAfter(key, anchorKey string) error {
	return snap.structure().MoveSectionAfter(key, anchorKey)
}

// RemoveItems removes the items with the given identifiers, skipping missing
// ones.
func (snap *Snapshot[ID, Tag]) RemoveItems(ids []ID) {
	snap.structure().RemoveItems(ids)
}

// RemoveAllItems empties every section, keeping the sections themselves.
func (snap *Snapshot[ID, Tag]) RemoveAllItems() {
	snap.structure().RemoveAllItems()
}

// UpdateItems reloads the items with the given identifiers: their version
// tag is replaced by the next-state tag while identity and position are
// unchanged. Missing identifiers are skipped.
func (snap *Snapshot[ID, Tag]) UpdateItems(ids []ID) {
	snap.structure().UpdateItems(ids, snap.next)
}

// RemoveSections removes the sections with the given keys, skipping missing
// ones.
func (snap *Snapshot[ID, Tag]) RemoveSections(keys []string) {
	snap.structure().RemoveSections(keys)
}

// UpdateSections reloads the sections with the given keys, skipping missing
// ones.
func (snap *Snapshot[ID, Tag]) UpdateSections(keys []string) {
	snap.structure().UpdateSections(keys, snap.next)
}

// structure returns the backing structure, materializing one for zero-value
// snapshots.
func (snap *Snapshot[ID, Tag]) structure() *backing.Structure[ID, Tag] {
	if snap.back == nil {
		snap.back = backing.New[ID, Tag]()
	}
	return snap.back
}
