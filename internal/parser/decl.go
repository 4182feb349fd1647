package parser

import (
	"github.com/vovakirdan/lc/internal/ast"
	"github.com/vovakirdan/lc/internal/token"
)

// parseTopLevel dispatches to a declaration production or falls back
// to a plain statement, so a source file is simply a sequence of
// declarations and statements (the original's Unit-chain shape).
func (p *Parser) parseTopLevel() ast.Stmt {
	switch p.peekKind() {
	case token.KwStruct:
		return p.parseAggregateDecl(false)
	case token.KwUnion:
		return p.parseAggregateDecl(true)
	case token.KwEnum:
		return p.parseEnumDecl()
	case token.KwFn:
		return p.parseFunctionDecl()
	case token.KwVar:
		return p.parseVarDecl()
	default:
		return p.parseStatement()
	}
}

// parseMemberList parses `{ name ':' type (';' name ':' type)* ';'? }`,
// shared by struct and union declarations.
func (p *Parser) parseMemberList() *ast.Member {
	if _, ok := p.expect(token.LBrace, "expected `{` for beginning of a block"); !ok {
		p.sync()
		return nil
	}

	var head, tail *ast.Member
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		nameTok, ok := p.expect(token.Identifier, "expected identifier")
		if !ok {
			p.sync()
			break
		}
		if _, ok := p.expect(token.Colon, "expected `:`"); !ok {
			p.sync()
			break
		}
		typeNode := p.parseType()
		m := &ast.Member{Name: nameTok.Text(), Type: typeNode}
		if head == nil {
			head = m
			tail = m
		} else {
			tail.Next = m
			tail = m
		}
		if p.at(token.Semi) {
			p.advance()
		} else {
			break
		}
	}
	if _, ok := p.expect(token.RBrace, "expected `}`"); !ok {
		p.sync()
	}
	return head
}

func (p *Parser) parseAggregateDecl(isUnion bool) ast.Stmt {
	pos := p.posHere()
	p.advance() // 'struct' / 'union'
	nameTok, ok := p.expect(token.Identifier, "expected identifier")
	name := ""
	if ok {
		name = nameTok.Text()
	}
	members := p.parseMemberList()
	if isUnion {
		u := &ast.Union{Name: name, Members: members}
		u.At = pos
		return u
	}
	s := &ast.Struct{Name: name, Members: members}
	s.At = pos
	return s
}

func (p *Parser) parseEnumDecl() ast.Stmt {
	pos := p.posHere()
	p.advance() // 'enum'
	nameTok, ok := p.expect(token.Identifier, "expected identifier")
	name := ""
	if ok {
		name = nameTok.Text()
	}
	if _, ok := p.expect(token.LBrace, "expected `{` for beginning of a block"); !ok {
		p.sync()
		e := &ast.Enum{Name: name}
		e.At = pos
		return e
	}

	var head, tail *ast.Variant
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		nameTok, ok := p.expect(token.Identifier, "expected identifier")
		if !ok {
			p.sync()
			break
		}
		v := &ast.Variant{Name: nameTok.Text()}
		if p.at(token.Eq) {
			p.advance()
			valTok, ok := p.expect(token.Integer, "expected expression")
			if ok {
				v.HasValue = true
				v.Value = parseInt64(valTok.Text())
			}
		}
		if head == nil {
			head = v
			tail = v
		} else {
			tail.Next = v
			tail = v
		}
		if p.at(token.Comma) {
			p.advance()
		} else {
			break
		}
	}
	if _, ok := p.expect(token.RBrace, "expected `}`"); !ok {
		p.sync()
	}
	e := &ast.Enum{Name: name, Variants: head}
	e.At = pos
	return e
}

func (p *Parser) parseFunctionDecl() ast.Stmt {
	pos := p.posHere()
	p.advance() // 'fn'
	nameTok, ok := p.expect(token.Identifier, "expected identifier")
	name := ""
	if ok {
		name = nameTok.Text()
	}
	if _, ok := p.expect(token.LParen, "expected `(`"); !ok {
		p.sync()
		fn := &ast.Function{Name: name}
		fn.At = pos
		return fn
	}

	var head, tail *ast.Member
	if !p.at(token.RParen) {
		for {
			pnTok, ok := p.expect(token.Identifier, "expected identifier")
			if !ok {
				break
			}
			if _, ok := p.expect(token.Colon, "expected `:`"); !ok {
				break
			}
			ptype := p.parseType()
			m := &ast.Member{Name: pnTok.Text(), Type: ptype}
			if head == nil {
				head = m
				tail = m
			} else {
				tail.Next = m
				tail = m
			}
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
	}
	if _, ok := p.expect(token.RParen, "expected `)`"); !ok {
		p.sync()
	}

	var retType ast.Node = &ast.Identifier{Name: "void"}
	if _, ok := p.match(token.Arrow); ok {
		retType = p.parseType()
	}

	body := p.parseCompound()
	fn := &ast.Function{Name: name, Params: head, ReturnType: retType, Body: body}
	fn.At = pos
	return fn
}

func (p *Parser) parseVarDecl() ast.Stmt {
	pos := p.posHere()
	p.advance() // 'var'
	nameTok, ok := p.expect(token.Identifier, "expected identifier")
	name := ""
	if ok {
		name = nameTok.Text()
	}
	if _, ok := p.expect(token.Colon, "expected `:`"); !ok {
		p.sync()
		v := &ast.VarDecl{Name: name}
		v.At = pos
		return v
	}
	typeNode := p.parseType()
	var init ast.Expr
	if _, ok := p.match(token.Eq); ok {
		init = p.parseExpression()
	}
	if _, ok := p.expect(token.Semi, "expected `;`"); !ok {
		p.sync()
	}
	v := &ast.VarDecl{Name: name, Type: typeNode, Init: init}
	v.At = pos
	return v
}

func parseInt64(s string) int64 {
	var v int64
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			break
		}
		v = v*10 + int64(s[i]-'0')
	}
	return v
}
