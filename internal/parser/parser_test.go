package parser

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/vovakirdan/lc/internal/arena"
	"github.com/vovakirdan/lc/internal/ast"
	"github.com/vovakirdan/lc/internal/diag"
	"github.com/vovakirdan/lc/internal/lexer"
	"github.com/vovakirdan/lc/internal/source"
	"github.com/vovakirdan/lc/internal/token"
)

func parseSrc(t *testing.T, src string) (*ast.File, *diag.Bag) {
	t.Helper()
	f := source.New("t.lc", src)
	tokArena := arena.New[token.Token](1024)
	kw := lexer.NewKeywordTrie()
	bag := diag.NewBag(0)
	toks := lexer.Lex(f, tokArena, kw, bag)
	p := ParseFile("t.lc", toks, bag)
	return p.File(), bag
}

// parseOneExprStmt parses src as a single top-level expression
// statement and returns its expression.
func parseOneExprStmt(t *testing.T, src string) ast.Expr {
	t.Helper()
	file, bag := parseSrc(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if len(file.Decls) != 1 {
		t.Fatalf("expected 1 top-level decl, got %d", len(file.Decls))
	}
	es, ok := file.Decls[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected *ast.ExprStmt, got %T", file.Decls[0])
	}
	return es.X
}

func TestS2ExpressionPrecedence(t *testing.T) {
	e := parseOneExprStmt(t, "1 + 2 * 3;")
	bin, ok := e.(*ast.Binary)
	if !ok || bin.Op != token.Plus {
		t.Fatalf("expected top-level +, got %#v", e)
	}
	right, ok := bin.Right.(*ast.Binary)
	if !ok || right.Op != token.Star {
		t.Fatalf("expected right operand *, got %#v", bin.Right)
	}

	e2 := parseOneExprStmt(t, "(1 + 2) * 3;")
	bin2, ok := e2.(*ast.Binary)
	if !ok || bin2.Op != token.Star {
		t.Fatalf("expected top-level *, got %#v", e2)
	}
	left, ok := bin2.Left.(*ast.Binary)
	if !ok || left.Op != token.Plus {
		t.Fatalf("expected left operand +, got %#v", bin2.Left)
	}
}

func TestS3CastVsGroup(t *testing.T) {
	e := parseOneExprStmt(t, "(x) y;")
	cast, ok := e.(*ast.Cast)
	if !ok {
		t.Fatalf("expected *ast.Cast, got %#v", e)
	}
	typeName, ok := cast.Type.(*ast.Identifier)
	if !ok || typeName.Name != "x" {
		t.Fatalf("expected cast type 'x', got %#v", cast.Type)
	}
	val, ok := cast.Value.(*ast.Identifier)
	if !ok || val.Name != "y" {
		t.Fatalf("expected cast value 'y', got %#v", cast.Value)
	}

	e2 := parseOneExprStmt(t, "(x);")
	ident, ok := e2.(*ast.Identifier)
	if !ok || ident.Name != "x" {
		t.Fatalf("expected identifier 'x', got %#v", e2)
	}
}

func TestS4StructDecl(t *testing.T) {
	file, bag := parseSrc(t, "struct S { a: u8; b: u32; c: u8 }")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if len(file.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(file.Decls))
	}
	s, ok := file.Decls[0].(*ast.Struct)
	if !ok {
		t.Fatalf("expected *ast.Struct, got %T", file.Decls[0])
	}
	members := ast.Members(s.Members)
	if len(members) != 3 || members[0].Name != "a" || members[1].Name != "b" || members[2].Name != "c" {
		t.Fatalf("unexpected members: %+v", members)
	}
}

// memberShape strips the parser's internal linked-list/offset plumbing
// down to what a caller actually cares about, so deep.Equal reports a
// readable diff instead of tripping over *Member.Next chains.
type memberShape struct {
	Name string
	Type string
}

func memberShapes(members []*ast.Member) []memberShape {
	out := make([]memberShape, len(members))
	for i, m := range members {
		ident, _ := m.Type.(*ast.Identifier)
		typeName := ""
		if ident != nil {
			typeName = ident.Name
		}
		out[i] = memberShape{Name: m.Name, Type: typeName}
	}
	return out
}

// TestStructMembersMatchAcrossReparse parses the same struct twice and
// checks the two member lists are structurally identical, the way a
// reparse/reformat round-trip should behave.
func TestStructMembersMatchAcrossReparse(t *testing.T) {
	const src = "struct S { a: u8; b: u32; c: u8 }"

	file1, bag1 := parseSrc(t, src)
	if bag1.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag1.Items())
	}
	file2, bag2 := parseSrc(t, src)
	if bag2.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag2.Items())
	}

	s1 := file1.Decls[0].(*ast.Struct)
	s2 := file2.Decls[0].(*ast.Struct)

	want := memberShapes(ast.Members(s1.Members))
	got := memberShapes(ast.Members(s2.Members))
	if diff := deep.Equal(want, got); diff != nil {
		for _, d := range diff {
			t.Errorf("member shape mismatch: %s", d)
		}
	}
}

func TestFunctionDeclAndVarDecl(t *testing.T) {
	file, bag := parseSrc(t, "fn f(x: i32) -> i32 { var y: i32 = x; return y; }")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	fn, ok := file.Decls[0].(*ast.Function)
	if !ok {
		t.Fatalf("expected *ast.Function, got %T", file.Decls[0])
	}
	if fn.Name != "f" || len(ast.Members(fn.Params)) != 1 {
		t.Fatalf("unexpected function shape: %+v", fn)
	}
	if len(fn.Body.Stmts) != 2 {
		t.Fatalf("expected 2 body statements, got %d", len(fn.Body.Stmts))
	}
}

func TestExpressionPositionsAreSet(t *testing.T) {
	e := parseOneExprStmt(t, "f(a, b.c[1]) == 3;")
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		if n == nil {
			return
		}
		if n.Pos().IsZero() {
			t.Fatalf("node %T has an unset position", n)
		}
		switch v := n.(type) {
		case *ast.Binary:
			walk(v.Left)
			walk(v.Right)
		case *ast.Access:
			walk(v.Base)
		case *ast.Subscript:
			walk(v.Base)
			walk(v.Index)
		case *ast.Call:
			for _, a := range v.Args {
				walk(a)
			}
		}
	}
	walk(e)
}

func TestCallArgBacktrackReportsError(t *testing.T) {
	_, bag := parseSrc(t, "fn f() -> void { g(1 2); }")
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for the malformed call argument list")
	}
}
