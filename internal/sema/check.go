package sema

import (
	"github.com/vovakirdan/lc/internal/ast"
	"github.com/vovakirdan/lc/internal/symbols"
	"github.com/vovakirdan/lc/internal/token"
	"github.com/vovakirdan/lc/internal/types"
)

// comparisonOrLogical operators always yield bool.
var comparisonOrLogical = map[token.Kind]bool{
	token.EqEq: true, token.NotEq: true,
	token.Lt: true, token.LtEq: true, token.Gt: true, token.GtEq: true,
	token.AmpAmp: true, token.PipePipe: true,
}

// assignmentFamily operators always yield void.
var assignmentFamily = map[token.Kind]bool{
	token.Eq: true, token.PlusEq: true, token.MinusEq: true, token.StarEq: true,
	token.SlashEq: true, token.PercentEq: true, token.AmpEq: true, token.PipeEq: true,
	token.CaretEq: true, token.ShlEq: true, token.ShrEq: true,
}

// checkBodies is the analyzer's final stage: every function body is
// walked against a fresh child scope seeded with its parameters.
func (c *Checker) checkBodies(file *ast.File) {
	for _, stmt := range file.Decls {
		fn, ok := stmt.(*ast.Function)
		if !ok {
			continue
		}
		proto, ok := c.Protos.Lookup(fn.Name)
		if !ok {
			continue // prototype registration already reported the error
		}
		scope := c.Global.Push()
		for _, m := range ast.Members(fn.Params) {
			scope.Declare(m.Name, c.resolveTypeNode(m.Type))
		}
		if fn.Body != nil {
			c.checkCompound(fn.Body, scope, false, proto)
		}
	}
}

func (c *Checker) checkCompound(body *ast.Compound, scope *symbols.Scope, inLoop bool, fn *symbols.Prototype) {
	for _, s := range body.Stmts {
		c.checkStmt(s, scope, inLoop, fn)
	}
}

func (c *Checker) checkStmt(stmt ast.Stmt, scope *symbols.Scope, inLoop bool, fn *symbols.Prototype) {
	switch n := stmt.(type) {
	case *ast.VarDecl:
		declType := c.resolveTypeNode(n.Type)
		if !scope.Declare(n.Name, declType) {
			c.errorf(n.Pos(), "redeclaration of variable `%s`", n.Name)
		}
		if n.Init != nil {
			initType := c.inferExpr(n.Init, scope)
			if !types.Equal(declType, initType) {
				c.errorf(n.Init.Pos(), "type mismatch")
			}
		}

	case *ast.Return:
		var valType *types.Type
		if n.Value != nil {
			valType = c.inferExpr(n.Value, scope)
		} else {
			valType, _ = c.Registry.Lookup("void")
		}
		if !types.Equal(valType, fn.ReturnType) {
			c.errorf(n.Pos(), "return type doesn't match function's one")
		}

	case *ast.Break:
		if !inLoop {
			c.errorf(n.Pos(), "`break` isn't in a loop")
		}

	case *ast.While:
		condType := c.inferExpr(n.Cond, scope)
		if boolT, _ := c.Registry.Lookup("bool"); !types.Equal(condType, boolT) {
			c.errorf(n.Cond.Pos(), "expected boolean value")
		}
		if n.Body != nil {
			c.checkCompound(n.Body, scope.Push(), true, fn)
		}

	case *ast.For:
		child := scope.Push()
		for i, sliceExpr := range n.Slices {
			sliceType := c.inferExpr(sliceExpr, scope)
			var elem *types.Type
			switch sliceType.Tag {
			case types.Ptr, types.Slice:
				elem = sliceType.Child
			default:
				c.errorf(sliceExpr.Pos(), "only pointers and slices can be indexed")
				elem, _ = c.Registry.Lookup("void")
			}
			if i < len(n.Captures) {
				child.Declare(n.Captures[i], elem)
			}
		}
		if n.Body != nil {
			c.checkCompound(n.Body, child, true, fn)
		}

	case *ast.If:
		condType := c.inferExpr(n.Cond, scope)
		if boolT, _ := c.Registry.Lookup("bool"); !types.Equal(condType, boolT) {
			c.errorf(n.Cond.Pos(), "expected boolean value")
		}
		if n.Body != nil {
			c.checkCompound(n.Body, scope.Push(), inLoop, fn)
		}
		if n.ElseBody != nil {
			c.checkCompound(n.ElseBody, scope.Push(), inLoop, fn)
		}

	case *ast.ExprStmt:
		c.inferExpr(n.X, scope)

	default:
		// Label, Goto, Import: no type obligations.
	}
}

// inferExpr implements the expression typing table: every expression
// kind resolves to a *types.Type, reporting through the bag on the way
// and returning void as the recovery value for anything malformed.
func (c *Checker) inferExpr(expr ast.Expr, scope *symbols.Scope) *types.Type {
	void, _ := c.Registry.Lookup("void")
	if expr == nil {
		return void
	}
	switch n := expr.(type) {
	case *ast.IntegerLit:
		t, _ := c.Registry.Lookup("i32")
		return t

	case *ast.FloatLit:
		t, _ := c.Registry.Lookup("f64")
		return t

	case *ast.CharLit:
		t, _ := c.Registry.Lookup("u8")
		return t

	case *ast.StringLit:
		u8, _ := c.Registry.Lookup("u8")
		return c.Registry.Slice(u8, true, false, int64(len(n.Value)), true)

	case *ast.Range:
		usize, _ := c.Registry.Lookup("usize")
		startVal := c.inferExpr(n.Start, scope)
		_ = startVal
		length := int64(0)
		if s, ok := n.Start.(*ast.IntegerLit); ok {
			if e, ok := n.End.(*ast.IntegerLit); ok {
				length = int64(e.Value) - int64(s.Value)
			}
		}
		return c.Registry.Slice(usize, true, false, length, true)

	case *ast.Identifier:
		if t, ok := scope.Lookup(n.Name); ok {
			return t
		}
		c.errorf(n.Pos(), "unknown identifier `%s`", n.Name)
		return void

	case *ast.Cast:
		return c.resolveTypeNode(n.Type)

	case *ast.Unary:
		return c.inferExpr(n.Operand, scope)

	case *ast.Postfix:
		return c.inferExpr(n.Operand, scope)

	case *ast.Binary:
		leftType := c.inferExpr(n.Left, scope)
		rightType := c.inferExpr(n.Right, scope)
		if !types.Equal(leftType, rightType) {
			c.errorf(n.Pos(), "type mismatch")
		}
		switch {
		case comparisonOrLogical[n.Op]:
			t, _ := c.Registry.Lookup("bool")
			return t
		case assignmentFamily[n.Op]:
			return void
		default:
			return leftType
		}

	case *ast.Subscript:
		baseType := c.inferExpr(n.Base, scope)
		c.inferExpr(n.Index, scope)
		switch baseType.Tag {
		case types.Ptr, types.Slice:
			return baseType.Child
		default:
			c.errorf(n.Pos(), "only pointers and slices can be indexed")
			return void
		}

	case *ast.Access:
		baseType := c.inferExpr(n.Base, scope)
		switch baseType.Tag {
		case types.Struct, types.Union:
			if f, ok := baseType.FieldByName[n.Member]; ok {
				return f.Type
			}
			c.errorf(n.Pos(), "struct doesn't have that member")
			return void
		default:
			c.errorf(n.Pos(), "struct doesn't have that member")
			return void
		}

	case *ast.Call:
		proto, ok := c.Protos.Lookup(n.Callee)
		if !ok {
			c.errorf(n.Pos(), "unknown function `%s`", n.Callee)
			return void
		}
		for _, arg := range n.Args {
			c.inferExpr(arg, scope)
		}
		return proto.ReturnType

	case *ast.StructInit:
		for _, f := range n.Fields {
			c.inferExpr(f.Value, scope)
		}
		return void

	case *ast.Ternary:
		condType := c.inferExpr(n.Cond, scope)
		if boolT, _ := c.Registry.Lookup("bool"); !types.Equal(condType, boolT) {
			c.errorf(n.Cond.Pos(), "expected boolean value")
		}
		thenType := c.inferExpr(n.Then, scope)
		elseType := c.inferExpr(n.Else, scope)
		if !types.Equal(thenType, elseType) {
			c.errorf(n.Pos(), "type mismatch")
		}
		return thenType

	default:
		return void
	}
}
