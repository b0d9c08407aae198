/*
Package diff computes edit scripts between two snapshots.

The differ consumes only the public query surface of package snaplist:
ordered section keys, flattened item identifiers, per-element version tags
and the identifier→position index. Elements are matched by identity; version
tags distinguish "moved only" from "content changed". The resulting patch
lists section and item changes separately, each classified as insertion,
deletion, move or reload.

Moves are minimal: among the elements present in both snapshots, the ones
forming a longest increasing subsequence of old positions (taken in new
order) are considered stable, and only the remaining ones are reported as
moved. An element may be reported as both moved and reloaded when position
and version tag changed in the same batch.
*/
package diff

import (
	"github.com/npillmayer/snaplist"
	"github.com/npillmayer/snaplist/backing"
)

// Op classifies a single change in a patch.
type Op int

const (
	// Insert marks an element present only in the new snapshot.
	Insert Op = iota
	// Delete marks an element present only in the old snapshot.
	Delete
	// Move marks an element whose position changed but whose tag did not
	// force a reload on its own.
	Move
	// Reload marks an element whose version tag changed in place.
	Reload
)

func (op Op) String() string {
	switch op {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Move:
		return "move"
	case Reload:
		return "reload"
	}
	return "unknown"
}

// SectionChange describes one change at section granularity. From is the
// section's index in the old snapshot (Delete, Move), To its index in the
// new snapshot (Insert, Move, Reload); the unused side is -1.
type SectionChange struct {
	Op   Op
	Key  string
	From int
	To   int
}

// ItemPos addresses an item by owning section key and intra-section index.
type ItemPos struct {
	Section string
	Index   int
}

// ItemChange describes one change at item granularity. From addresses the
// item in the old snapshot (Delete, Move), To in the new snapshot (Insert,
// Move, Reload).
type ItemChange[ID comparable] struct {
	Op   Op
	ID   ID
	From ItemPos
	To   ItemPos
}

// Patch is the edit script between two snapshots: applying the section
// changes and item changes to the old snapshot's ordering yields the new
// snapshot's ordering.
//
// Deletions are listed in old order, insertions and reloads in new order,
// moves in new order.
type Patch[ID comparable] struct {
	Sections []SectionChange
	Items    []ItemChange[ID]
}

// IsEmpty reports whether the patch contains no changes.
func (p Patch[ID]) IsEmpty() bool {
	return len(p.Sections) == 0 && len(p.Items) == 0
}

// Between computes the patch that transforms the old snapshot's ordering
// into the current one's, matching sections by key and items by identifier.
func Between[ID, Tag comparable](old, cur *snaplist.Snapshot[ID, Tag]) Patch[ID] {
	var patch Patch[ID]
	patch.Sections = sectionChanges(old, cur)
	patch.Items = itemChanges(old, cur)
	return patch
}

func sectionChanges[ID, Tag comparable](old, cur *snaplist.Snapshot[ID, Tag]) []SectionChange {
	oldKeys := old.SectionKeys()
	newKeys := cur.SectionKeys()
	oldAt := make(map[string]int, len(oldKeys))
	for i, key := range oldKeys {
		oldAt[key] = i
	}
	newAt := make(map[string]int, len(newKeys))
	for i, key := range newKeys {
		newAt[key] = i
	}

	var changes []SectionChange
	for i, key := range oldKeys {
		if _, survives := newAt[key]; !survives {
			changes = append(changes, SectionChange{Op: Delete, Key: key, From: i, To: -1})
		}
	}
	// Old indices of surviving sections, in new order, for move detection.
	var oldOrder []int
	for _, key := range newKeys {
		if from, ok := oldAt[key]; ok {
			oldOrder = append(oldOrder, from)
		}
	}
	stable := longestIncreasing(oldOrder)
	pos := 0
	for i, key := range newKeys {
		from, existed := oldAt[key]
		if !existed {
			changes = append(changes, SectionChange{Op: Insert, Key: key, From: -1, To: i})
			continue
		}
		// A stable section's index may still shift when neighbors are
		// inserted or deleted; that shift is implied and not a move. The
		// reverse also happens: LIS can leave a section unstable although it
		// ends up at its old index, and such a no-op needs no instruction.
		if !stable[pos] && from != i {
			changes = append(changes, SectionChange{Op: Move, Key: key, From: from, To: i})
		}
		pos++
		oldTag, _ := old.SectionTag(key)
		curTag, _ := cur.SectionTag(key)
		if oldTag != curTag {
			changes = append(changes, SectionChange{Op: Reload, Key: key, From: -1, To: i})
		}
	}
	return changes
}

func itemChanges[ID, Tag comparable](old, cur *snaplist.Snapshot[ID, Tag]) []ItemChange[ID] {
	oldIDs := old.ItemIDs()
	newIDs := cur.ItemIDs()
	oldIndex := old.Index()
	newIndex := cur.Index()
	oldFlat := flatten(oldIDs)
	newFlat := flatten(newIDs)

	var changes []ItemChange[ID]
	for _, id := range oldIDs {
		if _, survives := newFlat[id]; !survives {
			changes = append(changes, ItemChange[ID]{
				Op:   Delete,
				ID:   id,
				From: posOf(oldIndex, id),
				To:   ItemPos{Index: -1},
			})
		}
	}
	// Old flattened positions of surviving items, in new flattened order.
	var oldOrder []int
	for _, id := range newIDs {
		if from, ok := oldFlat[id]; ok {
			oldOrder = append(oldOrder, from)
		}
	}
	stable := longestIncreasing(oldOrder)
	pos := 0
	for _, id := range newIDs {
		if _, existed := oldFlat[id]; !existed {
			changes = append(changes, ItemChange[ID]{
				Op:   Insert,
				ID:   id,
				From: ItemPos{Index: -1},
				To:   posOf(newIndex, id),
			})
			continue
		}
		from := posOf(oldIndex, id)
		to := posOf(newIndex, id)
		// An item whose coordinates are unchanged never needs a move, even
		// if LIS left it unstable. Conversely a flattened-order-stable item
		// can still have switched sections, which is a move.
		if from != to && (!stable[pos] || from.Section != to.Section) {
			changes = append(changes, ItemChange[ID]{Op: Move, ID: id, From: from, To: to})
		}
		pos++
		oldTag, _ := old.ItemTag(id)
		curTag, _ := cur.ItemTag(id)
		if oldTag != curTag {
			changes = append(changes, ItemChange[ID]{
				Op:   Reload,
				ID:   id,
				From: ItemPos{Index: -1},
				To:   to,
			})
		}
	}
	return changes
}

func posOf[ID, Tag comparable](index map[ID]backing.Position[ID, Tag], id ID) ItemPos {
	pos := index[id]
	return ItemPos{Section: pos.Section.Key(), Index: pos.ItemIndex}
}

func flatten[ID comparable](ids []ID) map[ID]int {
	flat := make(map[ID]int, len(ids))
	for i, id := range ids {
		flat[id] = i
	}
	return flat
}
