package lexer

import (
	"testing"

	"github.com/vovakirdan/lc/internal/arena"
	"github.com/vovakirdan/lc/internal/diag"
	"github.com/vovakirdan/lc/internal/source"
	"github.com/vovakirdan/lc/internal/token"
)

func collect(t *testing.T, src string) ([]*token.Token, *diag.Bag) {
	t.Helper()
	f := source.New("t.lc", src)
	a := arena.New[token.Token](256)
	kw := NewKeywordTrie()
	bag := diag.NewBag(0)
	head := Lex(f, a, kw, bag)
	var toks []*token.Token
	for tk := head; tk != nil; tk = tk.Next {
		toks = append(toks, tk)
	}
	return toks, bag
}

func TestLexS1BasicSequenceAndPositions(t *testing.T) {
	toks, bag := collect(t, "a + 3.14 // tail\n\"hi\"")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	want := []token.Kind{token.Identifier, token.Plus, token.Float, token.String, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
	for i := 0; i < 3; i++ {
		if toks[i].Pos.Row != 1 {
			t.Fatalf("token %d: expected row 1, got %d", i, toks[i].Pos.Row)
		}
	}
	if toks[3].Pos.Row != 2 {
		t.Fatalf("string token: expected row 2, got %d", toks[3].Pos.Row)
	}
	if toks[3].Text() != `"hi"` {
		t.Fatalf("unexpected string lexeme: %q", toks[3].Text())
	}
}

func TestLexDeterministicAcrossRuns(t *testing.T) {
	const src = "fn main() -> i32 { return 0; }"
	toks1, _ := collect(t, src)
	toks2, _ := collect(t, src)
	if len(toks1) != len(toks2) {
		t.Fatalf("token count differs across runs")
	}
	for i := range toks1 {
		if toks1[i].Kind != toks2[i].Kind || toks1[i].Pos != toks2[i].Pos {
			t.Fatalf("token %d differs across runs", i)
		}
	}
}

func TestLexUnclosedString(t *testing.T) {
	_, bag := collect(t, "\"abc")
	if !bag.HasErrors() {
		t.Fatal("expected unclosed string literal error")
	}
}

func TestLexCharEscapesAndErrors(t *testing.T) {
	toks, bag := collect(t, `'a' '\n' '\x'`)
	if toks[0].Kind != token.Char || toks[1].Kind != token.Char {
		t.Fatalf("expected valid char tokens: %+v", toks)
	}
	if !bag.HasErrors() {
		t.Fatal("expected invalid escape code error for '\\x'")
	}
}

func TestLexKeywordsAndMaximalMunch(t *testing.T) {
	toks, bag := collect(t, "struct <<= << < a..b")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	want := []token.Kind{token.KwStruct, token.ShlEq, token.Shl, token.Lt, token.Identifier, token.DotDot, token.Identifier, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}
