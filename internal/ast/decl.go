package ast

// Member is one field of a struct/union/function parameter list,
// linked by Next in declaration order. Offset is populated by the
// layout engine and must not be read beforehand.
type Member struct {
	Type   Node
	Name   string
	Offset int
	Next   *Member
}

// Members collects a Member chain into a slice, in declaration order.
func Members(head *Member) []*Member {
	var out []*Member
	for m := head; m != nil; m = m.Next {
		out = append(out, m)
	}
	return out
}

// Variant is one enumerator of an enum, linked by Next in declaration
// order. HasValue distinguishes an explicit `= N` from an
// auto-numbered variant.
type Variant struct {
	Name     string
	Value    int64
	HasValue bool
	Next     *Variant
}

// Variants collects a Variant chain into a slice, in declaration order.
func Variants(head *Variant) []*Variant {
	var out []*Variant
	for v := head; v != nil; v = v.Next {
		out = append(out, v)
	}
	return out
}

// VarDecl declares a name of type Type, with an optional initializer.
type VarDecl struct {
	stmtBase
	Name string
	Type Node
	Init Expr // nil if no initializer
}

// Function declares a named function: ordered parameters, return
// type, and a body compound block.
type Function struct {
	stmtBase
	Name       string
	Params     *Member
	ReturnType Node
	Body       *Compound
}

// Struct declares a C-layout aggregate whose members do not overlap.
type Struct struct {
	stmtBase
	Name    string
	Members *Member
}

// Union declares a C-layout aggregate whose members all start at
// offset 0.
type Union struct {
	stmtBase
	Name    string
	Members *Member
}

// Enum declares a set of named integer constants.
type Enum struct {
	stmtBase
	Name     string
	Variants *Variant
}
