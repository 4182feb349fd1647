package arena

import "testing"

func TestAllocReturnsStablePointers(t *testing.T) {
	a := New[int](8)
	p1 := a.Alloc(1)
	p2 := a.Alloc(2)
	if *p1 != 1 || *p2 != 2 {
		t.Fatalf("unexpected values: %d %d", *p1, *p2)
	}
	a.Alloc(3)
	if *p1 != 1 || *p2 != 2 {
		t.Fatalf("earlier pointers invalidated by later Alloc: %d %d", *p1, *p2)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	a := New[int](8)
	a.Alloc(1)
	snap := a.Snapshot()
	a.Alloc(2)
	a.Alloc(3)
	if a.Len() != 3 {
		t.Fatalf("expected len 3, got %d", a.Len())
	}
	a.Restore(snap)
	if a.Len() != 1 {
		t.Fatalf("expected len 1 after restore, got %d", a.Len())
	}
	p := a.Alloc(4)
	if *p != 4 || a.Len() != 2 {
		t.Fatalf("allocation after restore did not reuse freed slot correctly")
	}
}

func TestAllocPastCapacityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on overflow")
		}
	}()
	a := New[int](1)
	a.Alloc(1)
	a.Alloc(2)
}

func TestRestorePastLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic restoring past current length")
		}
	}()
	a := New[int](4)
	a.Alloc(1)
	a.Restore(5)
}
