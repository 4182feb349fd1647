package trie

import "testing"

func TestInsertLookup(t *testing.T) {
	tr := New(64)
	tr.Insert("if", 5)
	tr.Insert("import", 6)
	if got := tr.Lookup([]byte("if")); got != 5 {
		t.Fatalf("if: got %d", got)
	}
	if got := tr.Lookup([]byte("import")); got != 6 {
		t.Fatalf("import: got %d", got)
	}
	if got := tr.Lookup([]byte("imp")); got != 0 {
		t.Fatalf("imp (prefix, never inserted): got %d", got)
	}
	if got := tr.Lookup([]byte("ifx")); got != 0 {
		t.Fatalf("ifx (no such key): got %d", got)
	}
	if got := tr.Lookup([]byte("unknown")); got != 0 {
		t.Fatalf("unknown: got %d", got)
	}
}
