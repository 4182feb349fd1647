package parser

import (
	"github.com/vovakirdan/lc/internal/ast"
	"github.com/vovakirdan/lc/internal/source"
	"github.com/vovakirdan/lc/internal/token"
)

// parseStatement implements the `statement` production.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.peekKind() {
	case token.KwBreak:
		pos := p.posHere()
		p.advance()
		if _, ok := p.expect(token.Semi, "expected `;`"); !ok {
			p.sync()
		}
		b := &ast.Break{}
		b.At = pos
		return b

	case token.KwReturn:
		pos := p.posHere()
		p.advance()
		var val ast.Expr
		if !p.at(token.Semi) {
			val = p.parseExpression()
		}
		if _, ok := p.expect(token.Semi, "expected `;`"); !ok {
			p.sync()
		}
		r := &ast.Return{Value: val}
		r.At = pos
		return r

	case token.KwGoto:
		pos := p.posHere()
		p.advance()
		nameTok, ok := p.expect(token.Identifier, "expected label identifier after `goto`")
		name := ""
		if ok {
			name = nameTok.Text()
		}
		if _, ok := p.expect(token.Semi, "expected `;`"); !ok {
			p.sync()
		}
		g := &ast.Goto{Label: name}
		g.At = pos
		return g

	case token.KwImport:
		pos := p.posHere()
		p.advance()
		path := p.parseModulePath()
		if _, ok := p.expect(token.Semi, "expected `;`"); !ok {
			p.sync()
		}
		im := &ast.Import{Path: path}
		im.At = pos
		return im

	case token.KwLoop:
		return p.parseLoop()

	case token.KwIf:
		return p.parseIf()

	case token.KwVar:
		return p.parseVarDecl()

	case token.Identifier:
		if nxt := p.peekAhead(1); nxt != nil && nxt.Kind == token.Colon {
			pos := p.posHere()
			tok := p.advance()
			p.advance() // ':'
			l := &ast.Label{Name: tok.Text()}
			l.At = pos
			return l
		}
		return p.parseExprStmt()

	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseExprStmt() ast.Stmt {
	pos := p.posHere()
	expr := p.parseExpression()
	if _, ok := p.expect(token.Semi, "expected `;`"); !ok {
		p.sync()
	}
	s := &ast.ExprStmt{X: expr}
	s.At = pos
	return s
}

// parseModulePath parses `IDENT ('.' IDENT)*` after `import` has
// already been consumed.
func (p *Parser) parseModulePath() []string {
	nameTok, ok := p.expect(token.Identifier, "expected module path after `import`")
	if !ok {
		return nil
	}
	path := []string{nameTok.Text()}
	for p.at(token.Dot) {
		p.advance()
		segTok, ok := p.expect(token.Identifier, "expected module path after `import`")
		if !ok {
			break
		}
		path = append(path, segTok.Text())
	}
	return path
}

func (p *Parser) parseIf() ast.Stmt {
	pos := p.posHere()
	p.advance() // 'if'
	cond := p.parseExpression()
	body := p.parseCompound()
	stmt := &ast.If{Cond: cond, Body: body}
	stmt.At = pos
	if _, ok := p.match(token.KwElse); ok {
		stmt.ElseBody = p.parseCompound()
	}
	return stmt
}

// parseLoop dispatches `loop (...)  |...| block` (for, with captures)
// versus `loop expr block` (while).
func (p *Parser) parseLoop() ast.Stmt {
	pos := p.posHere()
	p.advance() // 'loop'
	if p.at(token.LParen) {
		return p.parseFor(pos)
	}
	cond := p.parseExpression()
	body := p.parseCompound()
	w := &ast.While{Cond: cond, Body: body}
	w.At = pos
	return w
}

func (p *Parser) parseFor(pos source.Position) ast.Stmt {
	p.advance() // '('
	sliceSnap := p.snapshot()
	var slices []ast.Expr
	if !p.at(token.RParen) {
		slices = append(slices, p.parseExpression())
		for p.at(token.Comma) {
			p.advance()
			slices = append(slices, p.parseExpression())
		}
	}
	if _, ok := p.expect(token.RParen, "expected `)`"); !ok {
		p.restore(sliceSnap)
		p.sync()
		f := &ast.For{}
		f.At = pos
		return f
	}

	if _, ok := p.expect(token.Pipe, "expected `|`"); !ok {
		f := &ast.For{Slices: slices}
		f.At = pos
		p.sync()
		return f
	}
	capSnap := p.snapshot()
	var captures []string
	if !p.at(token.Pipe) {
		for {
			tok, ok := p.expect(token.Identifier, "captures must be identifiers")
			if !ok {
				p.restore(capSnap)
				p.sync()
				f := &ast.For{Slices: slices}
				f.At = pos
				return f
			}
			captures = append(captures, tok.Text())
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
	}
	if _, ok := p.expect(token.Pipe, "expected `|`"); !ok {
		p.sync()
	}
	if len(captures) != len(slices) {
		p.errorHere("invalid number of captures")
	}
	body := p.parseCompound()
	f := &ast.For{Slices: slices, Captures: captures, Body: body}
	f.At = pos
	return f
}

// parseCompound parses `{ statement* }`. End-of-input before the
// closing brace is an "Unterminated block" diagnostic.
func (p *Parser) parseCompound() *ast.Compound {
	pos := p.posHere()
	if _, ok := p.expect(token.LBrace, "expected `{` for beginning of a block"); !ok {
		p.sync()
		c := &ast.Compound{}
		c.At = pos
		return c
	}
	var stmts []ast.Stmt
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.errorHere("Unterminated block")
			c := &ast.Compound{Stmts: stmts}
			c.At = pos
			return c
		}
		before := p.cur
		s := p.parseStatement()
		if s != nil {
			stmts = append(stmts, s)
		}
		if p.cur == before {
			p.advance()
		}
	}
	p.advance() // '}'
	c := &ast.Compound{Stmts: stmts}
	c.At = pos
	return c
}
