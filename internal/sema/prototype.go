package sema

import (
	"github.com/vovakirdan/lc/internal/ast"
	"github.com/vovakirdan/lc/internal/symbols"
)

// registerPrototypes is the start of the analyzer's second pass: every
// top-level function is resolved and registered before any body is
// checked, so forward calls (a function calling one declared later in
// the file) type-check the same as backward calls.
func (c *Checker) registerPrototypes(file *ast.File) {
	for _, stmt := range file.Decls {
		fn, ok := stmt.(*ast.Function)
		if !ok {
			continue
		}
		proto := &symbols.Prototype{Name: fn.Name, ReturnType: c.resolveTypeNode(fn.ReturnType)}
		for _, m := range ast.Members(fn.Params) {
			proto.Params = append(proto.Params, c.resolveTypeNode(m.Type))
		}
		if !c.Protos.Declare(proto) {
			c.errorf(fn.Pos(), "function `%s` already defined", fn.Name)
		}
	}
}
