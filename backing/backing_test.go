package backing

import (
	"errors"
	"slices"
	"testing"
)

// seed builds a structure with two sections:
//
//	"top"    = [a b c]
//	"bottom" = [d e]
//
// all stamped with tag 1.
func seed(t *testing.T) *Structure[string, int] {
	t.Helper()
	st := New[string, int]()
	if err := st.AppendSections([]string{"top", "bottom"}, 1); err != nil {
		t.Fatalf("seed: AppendSections: %v", err)
	}
	if err := st.AppendItemsTo("top", []string{"a", "b", "c"}, 1); err != nil {
		t.Fatalf("seed: AppendItemsTo(top): %v", err)
	}
	if err := st.AppendItemsTo("bottom", []string{"d", "e"}, 1); err != nil {
		t.Fatalf("seed: AppendItemsTo(bottom): %v", err)
	}
	if err := st.Check(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return st
}

func TestEmptyStructure(t *testing.T) {
	st := New[string, int]()
	if !st.IsEmpty() || st.NumSections() != 0 || st.NumItems() != 0 {
		t.Fatalf("new structure not empty: %d sections, %d items",
			st.NumSections(), st.NumItems())
	}
	if keys := st.SectionKeys(); keys != nil {
		t.Fatalf("expected nil keys, got %v", keys)
	}
	if err := st.Check(); err != nil {
		t.Fatalf("empty structure must be valid: %v", err)
	}
}

func TestFlattenedOrder(t *testing.T) {
	st := seed(t)
	if !slices.Equal(st.SectionKeys(), []string{"top", "bottom"}) {
		t.Errorf("unexpected section order: %v", st.SectionKeys())
	}
	if !slices.Equal(st.ItemIDs(), []string{"a", "b", "c", "d", "e"}) {
		t.Errorf("unexpected flattened item order: %v", st.ItemIDs())
	}
}

func TestItemsInUnknownSection(t *testing.T) {
	st := seed(t)
	if _, err := st.ItemsIn("nope"); !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}
	if _, err := st.NumItemsIn("nope"); !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}
}

func TestSectionOf(t *testing.T) {
	st := seed(t)
	key, ok := st.SectionOf("d")
	if !ok || key != "bottom" {
		t.Fatalf("SectionOf(d) = %q, %v", key, ok)
	}
	if _, ok := st.SectionOf("nope"); ok {
		t.Fatalf("SectionOf must report absence, not fail")
	}
}

func TestCountInvariant(t *testing.T) {
	st := seed(t)
	var sum int
	for _, key := range st.SectionKeys() {
		n, err := st.NumItemsIn(key)
		if err != nil {
			t.Fatalf("NumItemsIn(%q): %v", key, err)
		}
		sum += n
	}
	if sum != st.NumItems() {
		t.Fatalf("count invariant broken: sum=%d total=%d", sum, st.NumItems())
	}
}

func TestIDsMatching(t *testing.T) {
	st := seed(t)
	st.UpdateItems([]string{"b", "e"}, 2)
	var hits []string
	for id := range st.IDsMatching(func(tag int) bool { return tag == 2 }) {
		hits = append(hits, id)
	}
	if !slices.Equal(hits, []string{"b", "e"}) {
		t.Fatalf("unexpected filter result: %v", hits)
	}
}

func TestIDsMatchingStopsEarly(t *testing.T) {
	st := seed(t)
	var first string
	for id := range st.IDsMatching(func(int) bool { return true }) {
		first = id
		break
	}
	if first != "a" {
		t.Fatalf("expected first match 'a', got %q", first)
	}
}

func TestCloneIsDeep(t *testing.T) {
	st := seed(t)
	cloned := st.Clone()
	st.RemoveItems([]string{"a", "b", "c", "d", "e"})
	st.RemoveSections([]string{"top"})
	if cloned.NumSections() != 2 || cloned.NumItems() != 5 {
		t.Fatalf("clone mutated with original: %d sections, %d items",
			cloned.NumSections(), cloned.NumItems())
	}
	if err := cloned.Check(); err != nil {
		t.Fatalf("clone invalid: %v", err)
	}
}

func TestCheckDetectsDuplicateID(t *testing.T) {
	st := seed(t)
	// Corrupt through the section view, bypassing validation.
	for s := range st.Sections() {
		if s.Key() == "bottom" {
			s.Append(newItems([]string{"a"}, 1)...)
		}
	}
	if err := st.Check(); !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("expected ErrInvariantViolation, got %v", err)
	}
}
