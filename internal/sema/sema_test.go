package sema

import (
	"testing"

	"github.com/vovakirdan/lc/internal/arena"
	"github.com/vovakirdan/lc/internal/diag"
	"github.com/vovakirdan/lc/internal/layout"
	"github.com/vovakirdan/lc/internal/lexer"
	"github.com/vovakirdan/lc/internal/parser"
	"github.com/vovakirdan/lc/internal/source"
	"github.com/vovakirdan/lc/internal/token"
)

func checkSrc(t *testing.T, src string) *diag.Bag {
	t.Helper()
	f := source.New("t.lc", src)
	tokArena := arena.New[token.Token](4096)
	kw := lexer.NewKeywordTrie()
	bag := diag.NewBag(0)
	toks := lexer.Lex(f, tokArena, kw, bag)
	p := parser.ParseFile("t.lc", toks, bag)
	c := NewChecker(bag, layout.DefaultTarget)
	c.Check(p.File())
	return bag
}

func hasMessage(bag *diag.Bag, substr string) bool {
	for _, d := range bag.Items() {
		if containsString(d.Message, substr) {
			return true
		}
	}
	return false
}

func containsString(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

func TestS5CycleDetection(t *testing.T) {
	bag := checkSrc(t, "struct A { b: B; } struct B { a: A; }")
	if !hasMessage(bag, "cycling struct definition") {
		t.Fatalf("expected a cycling struct definition diagnostic, got %v", bag.Items())
	}
}

func TestS6RedeclarationOfVariable(t *testing.T) {
	bag := checkSrc(t, "fn f() -> void { var x: i32 = 1; var x: i32 = 2; }")
	if !hasMessage(bag, "redeclaration of variable") {
		t.Fatalf("expected redeclaration of variable, got %v", bag.Items())
	}
}

func TestS6UnknownIdentifier(t *testing.T) {
	bag := checkSrc(t, "fn g() -> void { loop x { } }")
	if !hasMessage(bag, "unknown identifier") {
		t.Fatalf("expected unknown identifier, got %v", bag.Items())
	}
}

func TestStructLayoutFinalizedByChecker(t *testing.T) {
	f := source.New("t.lc", "struct S { a: u8; b: u32; c: u8 }")
	tokArena := arena.New[token.Token](4096)
	kw := lexer.NewKeywordTrie()
	bag := diag.NewBag(0)
	toks := lexer.Lex(f, tokArena, kw, bag)
	p := parser.ParseFile("t.lc", toks, bag)
	c := NewChecker(bag, layout.DefaultTarget)
	c.Check(p.File())
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	s, ok := c.Registry.Lookup("S")
	if !ok {
		t.Fatal("expected struct S to be registered")
	}
	if s.Size != 12 || s.Align != 4 {
		t.Fatalf("expected size 12 align 4, got size %d align %d", s.Size, s.Align)
	}
}

func TestUnknownFunctionCall(t *testing.T) {
	bag := checkSrc(t, "fn f() -> void { g(); }")
	if !hasMessage(bag, "unknown function") {
		t.Fatalf("expected unknown function, got %v", bag.Items())
	}
}

func TestBreakOutsideLoop(t *testing.T) {
	bag := checkSrc(t, "fn f() -> void { break; }")
	if !hasMessage(bag, "`break` isn't in a loop") {
		t.Fatalf("expected break-outside-loop diagnostic, got %v", bag.Items())
	}
}
