package ast

import "testing"

func TestMembersOrder(t *testing.T) {
	head := &Member{Name: "a", Next: &Member{Name: "b", Next: &Member{Name: "c"}}}
	got := Members(head)
	if len(got) != 3 || got[0].Name != "a" || got[1].Name != "b" || got[2].Name != "c" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestVariantsOrder(t *testing.T) {
	head := &Variant{Name: "Red", Next: &Variant{Name: "Green"}}
	got := Variants(head)
	if len(got) != 2 || got[0].Name != "Red" || got[1].Name != "Green" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestStmtsOrder(t *testing.T) {
	u := &Unit{Expr: &Break{}, Next: &Unit{Expr: &Break{}}}
	got := Stmts(u)
	if len(got) != 2 {
		t.Fatalf("expected 2 stmts, got %d", len(got))
	}
}
