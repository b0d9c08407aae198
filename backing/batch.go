package backing

import "sort"

// Batch operations. They take identifier sets that may be stale: identifiers
// no longer present are skipped silently while the remaining entries still
// apply. Batch callers say what to affect, not where.

// RemoveItems removes the items with the given identifiers. Missing
// identifiers are skipped.
func (st *Structure[ID, Tag]) RemoveItems(ids []ID) {
	if st.IsEmpty() || len(ids) == 0 {
		return
	}
	index := st.Index()
	// Group hit indices by owning section. The batch may name an identifier
	// more than once; only the first occurrence may produce a hit index, or
	// the range arithmetic below would remove unrelated items.
	perSection := make(map[int][]int)
	seen := make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		pos, ok := index[id]
		if !ok {
			continue
		}
		perSection[pos.SectionIndex] = append(perSection[pos.SectionIndex], pos.ItemIndex)
	}
	for si, hits := range perSection {
		sort.Ints(hits)
		// Contiguous runs are removed in descending order so that earlier
		// removals cannot shift the indices of later ones.
		for end := len(hits); end > 0; {
			start := end - 1
			for start > 0 && hits[start-1] == hits[start]-1 {
				start--
			}
			err := st.sections[si].RemoveRange(hits[start], hits[end-1]+1)
			assert(err == nil, "RemoveItems: indexed range out of bounds")
			end = start
		}
	}
}

// RemoveAllItems empties every section, keeping the sections themselves.
func (st *Structure[ID, Tag]) RemoveAllItems() {
	if st == nil {
		return
	}
	for _, s := range st.sections {
		s.RemoveAll()
	}
}

// UpdateItems stamps the items with the given identifiers with a new version
// tag (a reload: identity and position are unchanged). Missing identifiers
// are skipped.
func (st *Structure[ID, Tag]) UpdateItems(ids []ID, tag Tag) {
	if st.IsEmpty() || len(ids) == 0 {
		return
	}
	for _, id := range ids {
		si, ii := st.locate(id)
		if si < 0 {
			continue
		}
		err := st.sections[si].RetagItem(ii, tag)
		assert(err == nil, "UpdateItems: located index out of bounds")
	}
}

// RemoveSections removes the sections with the given keys, including their
// items. Missing keys are skipped.
func (st *Structure[ID, Tag]) RemoveSections(keys []string) {
	if st.IsEmpty() || len(keys) == 0 {
		return
	}
	doomed := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		doomed[key] = struct{}{}
	}
	kept := st.sections[:0]
	for _, s := range st.sections {
		if _, hit := doomed[s.Key()]; hit {
			continue
		}
		kept = append(kept, s)
	}
	// Drop the filtered-out pointers from the shared array, so removed
	// sections and their items become collectable.
	clear(st.sections[len(kept):])
	st.sections = kept
}

// UpdateSections stamps the sections with the given keys with a new version
// tag. Missing keys are skipped.
func (st *Structure[ID, Tag]) UpdateSections(keys []string, tag Tag) {
	if st.IsEmpty() || len(keys) == 0 {
		return
	}
	for _, key := range keys {
		if s := st.section(key); s != nil {
			s.Retag(tag)
		}
	}
}
