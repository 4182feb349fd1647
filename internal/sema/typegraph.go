package sema

import (
	"sort"

	"github.com/vovakirdan/lc/internal/ast"
	"github.com/vovakirdan/lc/internal/layout"
	"github.com/vovakirdan/lc/internal/types"
)

// aggregateDecl is the common shape registerTypes needs from either a
// *ast.Struct or a *ast.Union.
type aggregateDecl struct {
	name    string
	isUnion bool
	members *ast.Member
	node    ast.Stmt
}

// registerTypes is the analyzer's first pass: it declares a placeholder
// for every struct/union, builds a dependency graph over direct
// (non-pointer, non-slice) member types, topologically sorts it with
// Kahn's algorithm, and finalizes layout in that order. A remaining
// cycle after the sort drains is reported once as "cycling struct
// definition".
func (c *Checker) registerTypes(file *ast.File) {
	var decls []*aggregateDecl
	byName := make(map[string]*aggregateDecl)

	for _, stmt := range file.Decls {
		var d *aggregateDecl
		switch n := stmt.(type) {
		case *ast.Struct:
			d = &aggregateDecl{name: n.Name, members: n.Members, node: n}
		case *ast.Union:
			d = &aggregateDecl{name: n.Name, isUnion: true, members: n.Members, node: n}
		case *ast.Enum:
			c.registerEnum(n)
			continue
		default:
			continue
		}
		if c.Registry.Declared(d.name) {
			c.errorf(stmt.Pos(), "type `%s` already defined", d.name)
			continue
		}
		tag := types.Struct
		if d.isUnion {
			tag = types.Union
		}
		c.Registry.DeclarePlaceholder(d.name, tag)
		decls = append(decls, d)
		byName[d.name] = d
	}

	// out[x] lists decls that directly depend on x (x must be finalized
	// before them); in[x] counts x's outstanding dependencies.
	out := make(map[string][]string)
	in := make(map[string]int)
	for _, d := range decls {
		in[d.name] = 0
	}
	for _, d := range decls {
		for _, m := range ast.Members(d.members) {
			dep, ok := m.Type.(*ast.Identifier)
			if !ok {
				continue
			}
			if _, isAggregate := byName[dep.Name]; !isAggregate {
				continue
			}
			// A direct (non-pointer) self-reference is its own 1-cycle;
			// falls out of the topo sort the same as a longer cycle.
			in[d.name]++
			out[dep.Name] = append(out[dep.Name], d.name)
		}
	}

	var ready []string
	for _, d := range decls {
		if in[d.name] == 0 {
			ready = append(ready, d.name)
		}
	}
	sort.Strings(ready)

	var ordered []string
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		ordered = append(ordered, name)
		var freed []string
		for _, dependent := range out[name] {
			in[dependent]--
			if in[dependent] == 0 {
				freed = append(freed, dependent)
			}
		}
		sort.Strings(freed)
		ready = append(ready, freed...)
	}

	if len(ordered) != len(decls) {
		var stuck []string
		for _, d := range decls {
			if in[d.name] != 0 {
				stuck = append(stuck, d.name)
			}
		}
		sort.Strings(stuck)
		if len(stuck) > 0 {
			c.errorf(byName[stuck[0]].node.Pos(), "cycling struct definition")
		}
		// Finalize whatever did resolve; leave the rest with zero
		// Size/Align so later passes see a defined-but-unsized type
		// instead of crashing on a nil field.
	}

	for _, name := range ordered {
		c.finalizeAggregate(byName[name])
	}
}

func (c *Checker) registerEnum(n *ast.Enum) {
	if c.Registry.Declared(n.Name) {
		c.errorf(n.Pos(), "type `%s` already defined", n.Name)
		return
	}
	t := c.Registry.DeclarePlaceholder(n.Name, types.Enum)
	size, align := layout.Primitive(32)
	t.Size = size
	t.Align = align

	next := int64(0)
	seen := make(map[string]bool)
	for _, v := range ast.Variants(n.Variants) {
		if seen[v.Name] {
			c.errorf(n.Pos(), "enumerator `%s` already defined", v.Name)
			continue
		}
		seen[v.Name] = true
		if v.HasValue {
			next = v.Value
		} else {
			v.Value = next
		}
		next++
	}
}

func (c *Checker) finalizeAggregate(d *aggregateDecl) {
	t, _ := c.Registry.Lookup(d.name)
	members := ast.Members(d.members)
	fields := make([]*types.Field, 0, len(members))
	layoutFields := make([]layout.Field, 0, len(members))

	for _, m := range members {
		mt := c.resolveTypeNode(m.Type)
		if mt.Tag == types.Void {
			c.errorf(d.node.Pos(), "a struct member can't be of type `void`")
		}
		fields = append(fields, &types.Field{Name: m.Name, Type: mt})
		layoutFields = append(layoutFields, layout.Field{Size: mt.Size, Align: mt.Align})
	}

	var size, align int
	var offsets []int
	if d.isUnion {
		size, align = layout.Union(layoutFields)
		offsets = make([]int, len(fields))
	} else {
		size, align, offsets = layout.Struct(layoutFields)
	}

	t.Size = size
	t.Align = align
	t.Fields = fields
	t.FieldByName = make(map[string]*types.Field, len(fields))
	for i, f := range fields {
		f.Offset = offsets[i]
		t.FieldByName[f.Name] = f
	}
	for i, m := range members {
		m.Offset = offsets[i]
	}
}

// resolveTypeNode resolves a parsed type expression (bare identifier
// or PtrType) against the registry, reporting "unknown type" for a
// name that was never declared.
func (c *Checker) resolveTypeNode(node ast.Node) *types.Type {
	switch n := node.(type) {
	case *ast.Identifier:
		if t, ok := c.Registry.Lookup(n.Name); ok {
			return t
		}
		c.errorf(n.Pos(), "unknown type `%s`", n.Name)
		void, _ := c.Registry.Lookup("void")
		return void
	case *ast.PtrType:
		child := c.resolveTypeNode(n.Child)
		if n.IsSlice {
			return c.Registry.Slice(child, n.IsConst, n.IsVolatile, 0, false)
		}
		return c.Registry.Ptr(child, n.IsConst, n.IsVolatile)
	default:
		void, _ := c.Registry.Lookup("void")
		return void
	}
}
