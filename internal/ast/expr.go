package ast

import "github.com/vovakirdan/lc/internal/token"

// IntegerLit is an unsigned 64-bit integer literal.
type IntegerLit struct {
	exprBase
	Value uint64
}

// FloatLit is a 64-bit float literal.
type FloatLit struct {
	exprBase
	Value float64
}

// CharLit is a byte value after escape decoding.
type CharLit struct {
	exprBase
	Value byte
}

// StringLit references the source bytes between the quotes, with no
// escape expansion (per spec: lexeme is a pointer+length into the
// source text).
type StringLit struct {
	exprBase
	Value []byte
}

// Identifier references a name by its source bytes.
type Identifier struct {
	exprBase
	Name string
}

// Unary is a prefix operator applied to Operand: ++, --, -, *, &, !.
type Unary struct {
	exprBase
	Op      token.Kind
	Operand Expr
}

// Postfix is a postfix operator applied to Operand: ++ or --.
type Postfix struct {
	exprBase
	Op      token.Kind
	Operand Expr
}

// Binary is a two-operand operator: arithmetic, comparison, logical,
// bitwise, or assignment-family.
type Binary struct {
	exprBase
	Op          token.Kind
	Left, Right Expr
}

// Ternary is condition ? then : otherwise.
type Ternary struct {
	exprBase
	Cond, Then, Else Expr
}

// Cast reinterprets Value as the type named by Type (an Identifier or
// PtrType node).
type Cast struct {
	exprBase
	Type  Node
	Value Expr
}

// Subscript is base[index].
type Subscript struct {
	exprBase
	Base, Index Expr
}

// Access is base.member.
type Access struct {
	exprBase
	Base   Expr
	Member string
}

// Call is callee(args...).
type Call struct {
	exprBase
	Callee string
	Args   []Expr
}

// Range is start..end, both integer-valued.
type Range struct {
	exprBase
	Start, End Expr
}

// StructInit is a struct literal: { .member = value, ... }-style
// initializer holding one named expression per field, in source
// order.
type StructInit struct {
	exprBase
	Fields []StructInitField
}

// StructInitField is one member initializer inside a StructInit.
type StructInitField struct {
	Name  string
	Value Expr
}

// PtrType is a pointer-or-slice type expression: *T, []T, or with
// const/volatile qualifiers.
type PtrType struct {
	base
	Child      Node
	IsSlice    bool
	IsConst    bool
	IsVolatile bool
}
