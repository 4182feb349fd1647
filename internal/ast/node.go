// Package ast defines the syntax tree produced by the parser: a sum
// type of node kinds, each carrying the source position of its first
// token, plus the Member/Variant linked-list payloads used by
// aggregate declarations.
package ast

import "github.com/vovakirdan/lc/internal/source"

// Node is implemented by every AST node. Pos returns the position of
// the node's first token, used for diagnostics.
type Node interface {
	Pos() source.Position
	node()
}

// base embeds the shared position field; every concrete node type
// embeds base to satisfy the Node interface's Pos/node methods.
type base struct {
	At source.Position
}

func (b base) Pos() source.Position { return b.At }
func (base) node()                  {}

// Expr is a Node known to produce a value when evaluated. It is a
// pure marker: every expression node embeds base and additionally
// implements expr() so the parser's expression-producing helpers can
// be typed as returning Expr rather than the wider Node.
type Expr interface {
	Node
	expr()
}

// Stmt is a Node that appears directly in a statement position.
type Stmt interface {
	Node
	stmt()
}

type exprBase struct{ base }

func (exprBase) expr() {}

type stmtBase struct{ base }

func (stmtBase) stmt() {}
