package snaplist

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/snaplist/backing"
)

func fixture(t *testing.T) Snapshot[string, int] {
	t.Helper()
	snap, err := From([]SectionData[string]{
		{Key: "inbox", Items: []string{"m1", "m2", "m3"}},
		{Key: "archive", Items: []string{"m4"}},
	}, 1, 2)
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return snap
}

func TestZeroValueSnapshot(t *testing.T) {
	prevTracer := gtrace.CoreTracer
	t.Cleanup(func() { gtrace.CoreTracer = prevTracer })
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var snap Snapshot[string, int]
	if !snap.IsEmpty() || snap.NumItems() != 0 {
		t.Errorf("zero-value snapshot not empty")
	}
	if err := snap.AppendSections([]string{"S"}); err != nil {
		t.Fatalf("zero-value snapshot must accept sections: %v", err)
	}
	if !slices.Equal(snap.SectionKeys(), []string{"S"}) {
		t.Errorf("unexpected sections: %v", snap.SectionKeys())
	}
}

func TestFromStampsPreviousTag(t *testing.T) {
	prevTracer := gtrace.CoreTracer
	t.Cleanup(func() { gtrace.CoreTracer = prevTracer })
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	snap := fixture(t)
	if snap.PreviousTag() != 1 || snap.NextTag() != 2 {
		t.Fatalf("unexpected tags: prev=%d next=%d", snap.PreviousTag(), snap.NextTag())
	}
	for _, id := range snap.ItemIDs() {
		if tag, ok := snap.ItemTag(id); !ok || tag != 1 {
			t.Errorf("item %s not stamped with previous tag: %d", id, tag)
		}
	}
	if tag, _ := snap.SectionTag("inbox"); tag != 1 {
		t.Errorf("section not stamped with previous tag: %d", tag)
	}
}

func TestFromRejectsDuplicateIdentity(t *testing.T) {
	_, err := From([]SectionData[string]{
		{Key: "a", Items: []string{"x"}},
		{Key: "b", Items: []string{"x"}},
	}, 1, 2)
	if !errors.Is(err, backing.ErrDuplicateItem) {
		t.Fatalf("expected ErrDuplicateItem, got %v", err)
	}
	_, err = From([]SectionData[string]{
		{Key: "a"}, {Key: "a"},
	}, 1, 2)
	if !errors.Is(err, backing.ErrDuplicateSection) {
		t.Fatalf("expected ErrDuplicateSection, got %v", err)
	}
}

func TestFromAllowsEmptySections(t *testing.T) {
	snap, err := From([]SectionData[string]{{Key: "empty"}}, 1, 2)
	if err != nil {
		t.Fatalf("From: %v", err)
	}
	n, err := snap.NumItemsIn("empty")
	if err != nil || n != 0 {
		t.Fatalf("unexpected section contents: n=%d err=%v", n, err)
	}
}

func TestMutationBatchStampsNextTag(t *testing.T) {
	prevTracer := gtrace.CoreTracer
	t.Cleanup(func() { gtrace.CoreTracer = prevTracer })
	gtrace.CoreTracer = gotestingadapter.New(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	snap := fixture(t)
	if err := snap.AppendItemsTo("inbox", []string{"m5"}); err != nil {
		t.Fatalf("AppendItemsTo: %v", err)
	}
	if tag, _ := snap.ItemTag("m5"); tag != 2 {
		t.Errorf("new item not stamped with next tag: %d", tag)
	}
	snap.SetNextTag(3)
	snap.UpdateItems([]string{"m1"})
	if tag, _ := snap.ItemTag("m1"); tag != 3 {
		t.Errorf("reloaded item not stamped with replaced tag: %d", tag)
	}
	// Untouched elements keep their stamp.
	if tag, _ := snap.ItemTag("m2"); tag != 1 {
		t.Errorf("untouched item restamped: %d", tag)
	}
}

func TestMoveKeepsVersionTag(t *testing.T) {
	snap := fixture(t)
	if err := snap.MoveItemAfter("m1", "m3"); err != nil {
		t.Fatalf("MoveItemAfter: %v", err)
	}
	ids, err := snap.ItemsIn("inbox")
	if err != nil || !slices.Equal(ids, []string{"m2", "m3", "m1"}) {
		t.Fatalf("unexpected inbox order: %v (%v)", ids, err)
	}
	if tag, _ := snap.ItemTag("m1"); tag != 1 {
		t.Errorf("move restamped the item: %d", tag)
	}
}

func TestFailedAnchorLeavesSnapshotUnchanged(t *testing.T) {
	snap := fixture(t)
	before := snap.Clone()
	err := snap.InsertItemsBefore("missing", []string{"w"})
	if !errors.Is(err, backing.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if !slices.Equal(snap.ItemIDs(), before.ItemIDs()) ||
		!slices.Equal(snap.SectionKeys(), before.SectionKeys()) {
		t.Fatalf("aborted insert mutated the snapshot")
	}
}

func TestTolerantRemovalIsNoop(t *testing.T) {
	snap := fixture(t)
	before := snap.ItemIDs()
	snap.RemoveItems([]string{"missing"})
	if !slices.Equal(snap.ItemIDs(), before) {
		t.Fatalf("tolerant removal mutated the snapshot: %v", snap.ItemIDs())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	snap := fixture(t)
	prev := snap.Clone()
	snap.SetNextTag(3)
	if err := snap.AppendItems([]string{"m9"}); err != nil {
		t.Fatalf("AppendItems: %v", err)
	}
	snap.RemoveSections([]string{"inbox"})
	if prev.NumSections() != 2 || prev.NumItems() != 4 {
		t.Fatalf("clone mutated with original: %d/%d", prev.NumSections(), prev.NumItems())
	}
	if prev.NextTag() != 2 {
		t.Fatalf("clone tag drifted: %d", prev.NextTag())
	}
}

func TestCountInvariantOnFacade(t *testing.T) {
	snap := fixture(t)
	snap.RemoveItems([]string{"m2"})
	var sum int
	for _, key := range snap.SectionKeys() {
		n, err := snap.NumItemsIn(key)
		if err != nil {
			t.Fatalf("NumItemsIn(%q): %v", key, err)
		}
		sum += n
	}
	if sum != snap.NumItems() {
		t.Fatalf("count invariant broken: %d != %d", sum, snap.NumItems())
	}
}

func TestItemIDsMatchingOnFacade(t *testing.T) {
	snap := fixture(t)
	snap.UpdateItems([]string{"m3", "m4"})
	var touched []string
	for id := range snap.ItemIDsMatching(func(tag int) bool { return tag == 2 }) {
		touched = append(touched, id)
	}
	if !slices.Equal(touched, []string{"m3", "m4"}) {
		t.Fatalf("unexpected filter result: %v", touched)
	}
}

func TestSnapshot2Dot(t *testing.T) {
	snap := fixture(t)
	var buf bytes.Buffer
	Snapshot2Dot(&snap, &buf)
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Fatalf("unexpected DOT prefix: %q", out[:min(len(out), 40)])
	}
	for _, want := range []string{"inbox", "archive", "m1", "m4"} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT output misses %q", want)
		}
	}
}

func TestConsoleDump(t *testing.T) {
	snap := fixture(t)
	var buf bytes.Buffer
	Dump(&snap, &buf, nil)
	out := buf.String()
	if !strings.Contains(out, "inbox") || !strings.Contains(out, "m2") {
		t.Fatalf("console dump misses elements:\n%s", out)
	}
}
