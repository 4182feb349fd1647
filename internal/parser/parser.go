// Package parser implements a recursive-descent parser with
// panic-mode error recovery over the lexer's token stream.
package parser

import (
	"github.com/vovakirdan/lc/internal/ast"
	"github.com/vovakirdan/lc/internal/diag"
	"github.com/vovakirdan/lc/internal/source"
	"github.com/vovakirdan/lc/internal/token"
)

// Parser consumes a token list (as produced by internal/lexer) and
// builds an ast.File. Backtracking (call-argument lists, for-capture
// lists) is implemented by saving and restoring the current token
// pointer: since tokens are immutable and arena-owned, rewinding the
// cursor is equivalent to the original's arena snapshot/restore.
type Parser struct {
	cur       *token.Token
	bag       *diag.Bag
	hasErrors bool
	lastFile  *ast.File
}

// New creates a Parser positioned at the head of tokens.
func New(tokens *token.Token, bag *diag.Bag) *Parser {
	return &Parser{cur: tokens, bag: bag}
}

// HasErrors reports whether any parse error was emitted.
func (p *Parser) HasErrors() bool {
	return p.hasErrors
}

func (p *Parser) peek() *token.Token {
	return p.cur
}

func (p *Parser) peekKind() token.Kind {
	if p.cur == nil {
		return token.EOF
	}
	return p.cur.Kind
}

func (p *Parser) at(k token.Kind) bool {
	return p.peekKind() == k
}

func (p *Parser) advance() *token.Token {
	t := p.cur
	if t != nil && t.Kind != token.EOF {
		p.cur = t.Next
	}
	return t
}

// match consumes and returns the current token if it has kind k.
func (p *Parser) match(k token.Kind) (*token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return nil, false
}

// expect consumes the current token if it has kind k, otherwise
// reports message at the current position and returns ok=false
// without advancing (so sync() and the caller's own recovery can see
// the offending token).
func (p *Parser) expect(k token.Kind, message string) (*token.Token, bool) {
	if tok, ok := p.match(k); ok {
		return tok, true
	}
	p.errorHere(message)
	return nil, false
}

func (p *Parser) errorHere(message string) {
	p.hasErrors = true
	p.bag.Error(p.posHere(), message)
}

func (p *Parser) posHere() source.Position {
	if p.cur != nil {
		return p.cur.Pos
	}
	return source.Position{}
}

// snapshot/restore back a speculative parse out via the cursor
// position, the token-list analogue of the arena snapshot/restore
// spec.md's call-argument and for-capture grammars rely on.
type snapshot struct {
	cur *token.Token
}

func (p *Parser) snapshot() snapshot {
	return snapshot{cur: p.cur}
}

func (p *Parser) restore(s snapshot) {
	p.cur = s.cur
}

// statementStarters are the keywords panic-mode recovery treats as
// synchronization landmarks, per spec §4.4.
var statementStarters = map[token.Kind]bool{
	token.KwStruct: true,
	token.KwEnum:   true,
	token.KwIf:     true,
	token.KwLoop:   true,
	token.KwDo:     true,
	token.KwReturn: true,
	token.KwSwitch: true,
}

// sync skips tokens until the previously consumed token was ';' or
// '}', or the next token begins a statement-starter keyword.
func (p *Parser) sync() {
	var prevKind token.Kind = token.Invalid
	for {
		if p.cur == nil || p.cur.Kind == token.EOF {
			return
		}
		if prevKind == token.Semi || prevKind == token.RBrace {
			return
		}
		if statementStarters[p.cur.Kind] {
			return
		}
		prevKind = p.cur.Kind
		p.advance()
	}
}

// ParseFile consumes the entire token stream, producing an ast.File
// with every top-level declaration/statement it could recover.
func ParseFile(path string, tokens *token.Token, bag *diag.Bag) *Parser {
	p := New(tokens, bag)
	file := &ast.File{Path: path}
	for !p.at(token.EOF) {
		before := p.cur
		decl := p.parseTopLevel()
		if decl != nil {
			file.Decls = append(file.Decls, decl)
		}
		if p.cur == before {
			// No progress was made (a production failed without
			// consuming anything); force forward motion.
			p.advance()
		}
	}
	p.lastFile = file
	return p
}

// File returns the ast.File that ParseFile built with this Parser
// (stored in lastFile), or nil for a Parser made with New that
// ParseFile never ran.
func (p *Parser) File() *ast.File {
	return p.lastFile
}
