package parser

import (
	"strconv"

	"github.com/vovakirdan/lc/internal/ast"
	"github.com/vovakirdan/lc/internal/source"
	"github.com/vovakirdan/lc/internal/token"
)

var prefixOps = map[token.Kind]bool{
	token.PlusPlus:   true,
	token.MinusMinus: true,
	token.Minus:      true,
	token.Star:       true,
	token.Amp:        true,
	token.Bang:       true,
}

// trailingOps is the widened operator set for the non-chaining,
// right-leaning trailing tier attached after an additive expression:
// the full assignment family plus comparison/equality/logical
// operators. See DESIGN.md for why this set is wider than the
// retrieved original's (buggy) token-range check.
var trailingOps = map[token.Kind]bool{
	token.Eq:        true,
	token.PlusEq:    true,
	token.MinusEq:   true,
	token.StarEq:    true,
	token.SlashEq:   true,
	token.PercentEq: true,
	token.AmpEq:     true,
	token.PipeEq:    true,
	token.CaretEq:   true,
	token.ShlEq:     true,
	token.ShrEq:     true,
	token.EqEq:      true,
	token.NotEq:     true,
	token.Lt:        true,
	token.LtEq:      true,
	token.Gt:        true,
	token.GtEq:      true,
	token.AmpAmp:    true,
	token.PipePipe:  true,
}

// parseExpression implements the `expression` production: an additive
// chain, then an optional postfix chain (subscript/access/incr-decr),
// then a single optional trailing comparison/logical/assignment
// operator applied non-recursively (design notes, precedence
// completeness).
func (p *Parser) parseExpression() ast.Expr {
	left := p.parseAdditive()
	left = p.applyPostfixChain(left)
	left = p.applyTrailingBinary(left)
	return left
}

func (p *Parser) parseAdditive() ast.Expr {
	pos := p.posHere()
	left := p.parseTerm()
	for p.at(token.Plus) || p.at(token.Minus) {
		opTok := p.advance()
		right := p.parseTerm()
		left = &ast.Binary{Op: opTok.Kind, Left: left, Right: right}
		left.(*ast.Binary).At = pos
	}
	return left
}

func (p *Parser) parseTerm() ast.Expr {
	pos := p.posHere()
	left := p.parseUnary()
	for p.at(token.Star) || p.at(token.Slash) {
		opTok := p.advance()
		right := p.parseUnary()
		left = &ast.Binary{Op: opTok.Kind, Left: left, Right: right}
		left.(*ast.Binary).At = pos
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	if prefixOps[p.peekKind()] {
		opTok := p.advance()
		operand := p.parseExpression()
		n := &ast.Unary{Op: opTok.Kind, Operand: operand}
		n.At = opTok.Pos
		return n
	}
	if p.isCastLookahead() {
		lparen := p.advance() // '('
		nameTok := p.advance()
		p.advance() // ')'
		typeNode := &ast.Identifier{Name: nameTok.Text()}
		typeNode.At = nameTok.Pos
		value := p.parseExpression()
		n := &ast.Cast{Type: typeNode, Value: value}
		n.At = lparen.Pos
		return n
	}
	return p.parseFactor()
}

// isCastLookahead checks the 4-token shape `( IDENT ) <factor-start>`
// without consuming anything: a bare `(x)` with nothing expression-
// shaped after the `)` is a parenthesized group, not a cast.
func (p *Parser) isCastLookahead() bool {
	if !p.at(token.LParen) {
		return false
	}
	second := p.peekAhead(1)
	third := p.peekAhead(2)
	if second == nil || second.Kind != token.Identifier ||
		third == nil || third.Kind != token.RParen {
		return false
	}
	fourth := p.peekAhead(3)
	return fourth != nil && canStartFactor(fourth.Kind)
}

// canStartFactor reports whether kind can begin a unary/factor
// expression: a prefix operator or a primary expression's FIRST set.
func canStartFactor(kind token.Kind) bool {
	if prefixOps[kind] {
		return true
	}
	switch kind {
	case token.Integer, token.Float, token.String, token.Char,
		token.Identifier, token.LBrace, token.LParen:
		return true
	default:
		return false
	}
}

func (p *Parser) peekAhead(n int) *token.Token {
	t := p.cur
	for i := 0; i < n && t != nil; i++ {
		t = t.Next
	}
	return t
}

func (p *Parser) parseFactor() ast.Expr {
	switch p.peekKind() {
	case token.Integer:
		tok := p.advance()
		val, _ := strconv.ParseUint(tok.Text(), 10, 64)
		node := &ast.IntegerLit{Value: val}
		node.At = tok.Pos
		if p.at(token.DotDot) {
			p.advance()
			endTok, ok := p.expect(token.Integer, "expected expression")
			end := &ast.IntegerLit{}
			end.At = tok.Pos
			if ok {
				end.Value, _ = strconv.ParseUint(endTok.Text(), 10, 64)
				end.At = endTok.Pos
			}
			rng := &ast.Range{Start: node, End: end}
			rng.At = tok.Pos
			return rng
		}
		return node

	case token.Float:
		tok := p.advance()
		val, _ := strconv.ParseFloat(tok.Text(), 64)
		n := &ast.FloatLit{Value: val}
		n.At = tok.Pos
		return n

	case token.String:
		tok := p.advance()
		text := tok.Lexeme
		if len(text) >= 2 {
			text = text[1 : len(text)-1]
		}
		n := &ast.StringLit{Value: text}
		n.At = tok.Pos
		return n

	case token.Char:
		tok := p.advance()
		n := &ast.CharLit{Value: decodeCharLexeme(tok.Lexeme)}
		n.At = tok.Pos
		return n

	case token.Identifier:
		tok := p.advance()
		if p.at(token.LParen) {
			return p.parseCallArgs(tok.Text(), tok.Pos)
		}
		n := &ast.Identifier{Name: tok.Text()}
		n.At = tok.Pos
		return n

	case token.LBrace:
		return p.parseStructInit()

	case token.LParen:
		p.advance()
		inner := p.parseExpression()
		if _, ok := p.expect(token.RParen, "unclosed parenthesis"); !ok {
			p.sync()
		}
		return inner

	default:
		p.errorHere("expected expression")
		n := &ast.Identifier{Name: ""}
		n.At = p.posHere()
		return n
	}
}

// parseStructInit parses a struct literal `{ .field = expr, ... }`.
func (p *Parser) parseStructInit() ast.Expr {
	pos := p.posHere()
	p.advance() // '{'
	var fields []ast.StructInitField
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if _, ok := p.expect(token.Dot, "expected expression"); !ok {
			p.sync()
			break
		}
		nameTok, ok := p.expect(token.Identifier, "expected identifier after member access")
		name := ""
		if ok {
			name = nameTok.Text()
		}
		if _, ok := p.expect(token.Eq, "expected expression"); !ok {
			p.sync()
			break
		}
		val := p.parseExpression()
		fields = append(fields, ast.StructInitField{Name: name, Value: val})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(token.RBrace, "expected `}`"); !ok {
		p.sync()
	}
	n := &ast.StructInit{Fields: fields}
	n.At = pos
	return n
}

// decodeCharLexeme extracts the byte value of a 'c' or '\e' literal,
// given its raw lexeme including the surrounding quotes.
func decodeCharLexeme(lexeme []byte) byte {
	if len(lexeme) < 3 {
		return 0
	}
	if lexeme[1] == '\\' && len(lexeme) >= 4 {
		switch lexeme[2] {
		case 'n':
			return '\n'
		case 't':
			return '\t'
		case 'r':
			return '\r'
		case '0':
			return 0
		case '\\':
			return '\\'
		case '\'':
			return '\''
		}
		return lexeme[2]
	}
	return lexeme[1]
}

// parseCallArgs parses `( arglist? )` after callee has already been
// consumed. A missing ',' or ')' snapshots the cursor before the
// argument list and rolls back the partial list on failure, per
// spec.md's call-argument backtracking contract.
func (p *Parser) parseCallArgs(callee string, pos source.Position) ast.Expr {
	p.advance() // '('
	if p.at(token.RParen) {
		p.advance()
		n := &ast.Call{Callee: callee}
		n.At = pos
		return n
	}

	snap := p.snapshot()
	var args []ast.Expr
	args = append(args, p.parseExpression())
	for p.at(token.Comma) {
		p.advance()
		args = append(args, p.parseExpression())
	}
	if _, ok := p.expect(token.RParen, "expected `)`"); !ok {
		p.restore(snap)
		p.sync()
		n := &ast.Call{Callee: callee}
		n.At = pos
		return n
	}
	n := &ast.Call{Callee: callee, Args: args}
	n.At = pos
	return n
}

// applyPostfixChain repeatedly consumes subscript, member-access and
// postfix increment/decrement, so `a.b[0]++` chains left to right.
func (p *Parser) applyPostfixChain(left ast.Expr) ast.Expr {
	pos := left.Pos()
	for {
		switch p.peekKind() {
		case token.LBracket:
			p.advance()
			idx := p.parseExpression()
			if _, ok := p.expect(token.RBracket, "expected `]`"); !ok {
				p.sync()
			}
			n := &ast.Subscript{Base: left, Index: idx}
			n.At = pos
			left = n

		case token.Dot:
			p.advance()
			nameTok, ok := p.expect(token.Identifier, "expected identifier after member access")
			name := ""
			if ok {
				name = nameTok.Text()
			}
			n := &ast.Access{Base: left, Member: name}
			n.At = pos
			left = n

		case token.PlusPlus, token.MinusMinus:
			opTok := p.advance()
			n := &ast.Postfix{Op: opTok.Kind, Operand: left}
			n.At = pos
			left = n

		default:
			return left
		}
	}
}

// applyTrailingBinary attaches at most one comparison/logical/
// assignment operator, right-recursing into a full expression for
// its right-hand side; see the non-chaining design note.
func (p *Parser) applyTrailingBinary(left ast.Expr) ast.Expr {
	if trailingOps[p.peekKind()] {
		pos := left.Pos()
		opTok := p.advance()
		right := p.parseExpression()
		n := &ast.Binary{Op: opTok.Kind, Left: left, Right: right}
		n.At = pos
		return n
	}
	return left
}
