package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/lc/internal/ast"
)

// dumpFile prints file as an indented tree, one node per line, the
// way a "parse" subcommand's reader would want to eyeball a grammar
// decision without reaching for a debugger.
func dumpFile(w io.Writer, file *ast.File) {
	for _, decl := range file.Decls {
		dumpNode(w, decl, 0)
	}
}

func dumpNode(w io.Writer, n ast.Node, depth int) {
	if n == nil {
		return
	}
	pad := strings.Repeat("  ", depth)
	pos := n.Pos()

	switch v := n.(type) {
	case *ast.IntegerLit:
		fmt.Fprintf(w, "%sInteger %d @%s\n", pad, v.Value, pos)
	case *ast.FloatLit:
		fmt.Fprintf(w, "%sFloat %g @%s\n", pad, v.Value, pos)
	case *ast.CharLit:
		fmt.Fprintf(w, "%sChar %q @%s\n", pad, v.Value, pos)
	case *ast.StringLit:
		fmt.Fprintf(w, "%sString %q @%s\n", pad, v.Value, pos)
	case *ast.Identifier:
		fmt.Fprintf(w, "%sIdentifier %s @%s\n", pad, v.Name, pos)
	case *ast.Unary:
		fmt.Fprintf(w, "%sUnary %s @%s\n", pad, v.Op, pos)
		dumpNode(w, v.Operand, depth+1)
	case *ast.Postfix:
		fmt.Fprintf(w, "%sPostfix %s @%s\n", pad, v.Op, pos)
		dumpNode(w, v.Operand, depth+1)
	case *ast.Binary:
		fmt.Fprintf(w, "%sBinary %s @%s\n", pad, v.Op, pos)
		dumpNode(w, v.Left, depth+1)
		dumpNode(w, v.Right, depth+1)
	case *ast.Ternary:
		fmt.Fprintf(w, "%sTernary @%s\n", pad, pos)
		dumpNode(w, v.Cond, depth+1)
		dumpNode(w, v.Then, depth+1)
		dumpNode(w, v.Else, depth+1)
	case *ast.Cast:
		fmt.Fprintf(w, "%sCast @%s\n", pad, pos)
		dumpNode(w, v.Type, depth+1)
		dumpNode(w, v.Value, depth+1)
	case *ast.Subscript:
		fmt.Fprintf(w, "%sSubscript @%s\n", pad, pos)
		dumpNode(w, v.Base, depth+1)
		dumpNode(w, v.Index, depth+1)
	case *ast.Access:
		fmt.Fprintf(w, "%sAccess .%s @%s\n", pad, v.Member, pos)
		dumpNode(w, v.Base, depth+1)
	case *ast.Call:
		fmt.Fprintf(w, "%sCall %s/%d @%s\n", pad, v.Callee, len(v.Args), pos)
		for _, a := range v.Args {
			dumpNode(w, a, depth+1)
		}
	case *ast.Range:
		fmt.Fprintf(w, "%sRange @%s\n", pad, pos)
		dumpNode(w, v.Start, depth+1)
		dumpNode(w, v.End, depth+1)
	case *ast.StructInit:
		fmt.Fprintf(w, "%sStructInit @%s\n", pad, pos)
		for _, f := range v.Fields {
			fmt.Fprintf(w, "%s  .%s =\n", pad, f.Name)
			dumpNode(w, f.Value, depth+2)
		}
	case *ast.PtrType:
		kind := "Ptr"
		if v.IsSlice {
			kind = "Slice"
		}
		fmt.Fprintf(w, "%s%sType const=%v volatile=%v @%s\n", pad, kind, v.IsConst, v.IsVolatile, pos)
		dumpNode(w, v.Child, depth+1)

	case *ast.VarDecl:
		fmt.Fprintf(w, "%sVarDecl %s @%s\n", pad, v.Name, pos)
		dumpNode(w, v.Type, depth+1)
		if v.Init != nil {
			dumpNode(w, v.Init, depth+1)
		}
	case *ast.Function:
		fmt.Fprintf(w, "%sFunction %s @%s\n", pad, v.Name, pos)
		for _, m := range ast.Members(v.Params) {
			fmt.Fprintf(w, "%s  param %s\n", pad, m.Name)
			dumpNode(w, m.Type, depth+2)
		}
		dumpNode(w, v.ReturnType, depth+1)
		if v.Body != nil {
			dumpNode(w, v.Body, depth+1)
		}
	case *ast.Struct:
		fmt.Fprintf(w, "%sStruct %s @%s\n", pad, v.Name, pos)
		for _, m := range ast.Members(v.Members) {
			fmt.Fprintf(w, "%s  member %s\n", pad, m.Name)
			dumpNode(w, m.Type, depth+2)
		}
	case *ast.Union:
		fmt.Fprintf(w, "%sUnion %s @%s\n", pad, v.Name, pos)
		for _, m := range ast.Members(v.Members) {
			fmt.Fprintf(w, "%s  member %s\n", pad, m.Name)
			dumpNode(w, m.Type, depth+2)
		}
	case *ast.Enum:
		fmt.Fprintf(w, "%sEnum %s @%s\n", pad, v.Name, pos)
		for _, variant := range ast.Variants(v.Variants) {
			fmt.Fprintf(w, "%s  %s = %d\n", pad, variant.Name, variant.Value)
		}

	case *ast.Compound:
		fmt.Fprintf(w, "%sCompound @%s\n", pad, pos)
		for _, s := range v.Stmts {
			dumpNode(w, s, depth+1)
		}
	case *ast.ExprStmt:
		fmt.Fprintf(w, "%sExprStmt @%s\n", pad, pos)
		dumpNode(w, v.X, depth+1)
	case *ast.If:
		fmt.Fprintf(w, "%sIf @%s\n", pad, pos)
		dumpNode(w, v.Cond, depth+1)
		dumpNode(w, v.Body, depth+1)
		if v.ElseBody != nil {
			fmt.Fprintf(w, "%selse\n", pad)
			dumpNode(w, v.ElseBody, depth+1)
		}
	case *ast.While:
		fmt.Fprintf(w, "%sWhile @%s\n", pad, pos)
		dumpNode(w, v.Cond, depth+1)
		dumpNode(w, v.Body, depth+1)
	case *ast.For:
		fmt.Fprintf(w, "%sFor captures=%v @%s\n", pad, v.Captures, pos)
		for _, s := range v.Slices {
			dumpNode(w, s, depth+1)
		}
		dumpNode(w, v.Body, depth+1)
	case *ast.Return:
		fmt.Fprintf(w, "%sReturn @%s\n", pad, pos)
		if v.Value != nil {
			dumpNode(w, v.Value, depth+1)
		}
	case *ast.Break:
		fmt.Fprintf(w, "%sBreak @%s\n", pad, pos)
	case *ast.Goto:
		fmt.Fprintf(w, "%sGoto %s @%s\n", pad, v.Label, pos)
	case *ast.Label:
		fmt.Fprintf(w, "%sLabel %s @%s\n", pad, v.Name, pos)
	case *ast.Import:
		fmt.Fprintf(w, "%sImport %s @%s\n", pad, strings.Join(v.Path, "."), pos)

	default:
		fmt.Fprintf(w, "%s%T @%s\n", pad, v, pos)
	}
}
