package parser

import (
	"github.com/vovakirdan/lc/internal/ast"
	"github.com/vovakirdan/lc/internal/token"
)

// parseType parses a type expression: an optional const/volatile
// qualifier run, then either a pointer (`*T`), a slice (`[]T`), or a
// bare identifier naming a primitive or aggregate type.
func (p *Parser) parseType() ast.Node {
	pos := p.posHere()
	isConst := false
	isVolatile := false
	for {
		switch p.peekKind() {
		case token.KwConst:
			p.advance()
			isConst = true
			continue
		case token.KwVolatile:
			p.advance()
			isVolatile = true
			continue
		}
		break
	}

	switch p.peekKind() {
	case token.Star:
		p.advance()
		child := p.parseType()
		n := &ast.PtrType{Child: child, IsSlice: false, IsConst: isConst, IsVolatile: isVolatile}
		n.At = pos
		return n

	case token.LBracket:
		p.advance()
		if _, ok := p.expect(token.RBracket, "expected `]`"); !ok {
			p.sync()
		}
		child := p.parseType()
		n := &ast.PtrType{Child: child, IsSlice: true, IsConst: isConst, IsVolatile: isVolatile}
		n.At = pos
		return n

	case token.Identifier:
		tok := p.advance()
		n := &ast.Identifier{Name: tok.Text()}
		n.At = tok.Pos
		return n

	default:
		p.errorHere("expected type")
		n := &ast.Identifier{Name: ""}
		n.At = pos
		return n
	}
}
