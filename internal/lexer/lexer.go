package lexer

import (
	"github.com/vovakirdan/lc/internal/arena"
	"github.com/vovakirdan/lc/internal/diag"
	"github.com/vovakirdan/lc/internal/source"
	"github.com/vovakirdan/lc/internal/token"
	"github.com/vovakirdan/lc/internal/trie"
)

// validEscapes is the set of characters accepted after a backslash in
// a char literal: n t r 0 \ '.
var validEscapes = map[byte]bool{
	'n': true, 't': true, 'r': true, '0': true, '\\': true, '\'': true,
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
func isAlnum(b byte) bool { return isAlpha(b) || isDigit(b) || b == '_' }

// Lex runs the single-pass lexer over file's content, allocating
// tokens into tokArena and reporting lexical errors into bag. keywords
// must already be populated (see NewKeywordTrie). Returns the head of
// the token list; the list always ends in a token.EOF token.
func Lex(file *source.File, tokArena *arena.Arena[token.Token], keywords *trie.Trie, bag *diag.Bag) *token.Token {
	src := []byte(file.Content)
	c := newCursor(src)

	var head, tail *token.Token
	emit := func(t token.Token) {
		tk := tokArena.Alloc(t)
		if head == nil {
			head = tk
			tail = tk
		} else {
			tail.Next = tk
			tail = tk
		}
	}

	for {
		skipWhitespaceAndComments(c)
		if c.atEnd() {
			emit(token.Token{Kind: token.EOF, Pos: c.pos()})
			break
		}

		start := c.idx
		pos := c.pos()
		b := c.peek(0)

		switch {
		case isDigit(b) || (b == '.' && isDigit(c.peek(1))):
			kind := scanNumber(c)
			emit(token.Token{Kind: kind, Lexeme: src[start:c.idx], Pos: pos})

		case isAlpha(b):
			for !c.atEnd() && isAlnum(c.peek(0)) {
				c.advance()
			}
			lexeme := src[start:c.idx]
			kind := token.Identifier
			if v := keywords.Lookup(lexeme); v != 0 {
				kind = token.Kind(v)
			}
			emit(token.Token{Kind: kind, Lexeme: lexeme, Pos: pos})

		case b == '"':
			lexeme, ok := scanString(c)
			if !ok {
				bag.Error(pos, "unclosed string literal")
				emit(token.Token{Kind: token.Invalid, Lexeme: lexeme, Pos: pos})
				continue
			}
			emit(token.Token{Kind: token.String, Lexeme: lexeme, Pos: pos})

		case b == '\'':
			lexeme, ok := scanChar(c, bag, pos)
			kind := token.Char
			if !ok {
				kind = token.Invalid
			}
			emit(token.Token{Kind: kind, Lexeme: lexeme, Pos: pos})

		default:
			if kind, n, ok := matchOp(c); ok {
				for i := 0; i < n; i++ {
					c.advance()
				}
				emit(token.Token{Kind: kind, Lexeme: src[start:c.idx], Pos: pos})
			} else {
				// Unrecognized byte: consume it and move on so the
				// lexer always makes progress.
				c.advance()
				bag.Error(pos, "unrecognized character")
			}
		}
	}

	return head
}

func skipWhitespaceAndComments(c *cursor) {
	for {
		switch {
		case !c.atEnd() && isSpace(c.peek(0)):
			c.advance()
		case !c.atEnd() && c.peek(0) == '/' && c.peek(1) == '/':
			for !c.atEnd() && c.peek(0) != '\n' {
				c.advance()
			}
		default:
			return
		}
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// scanNumber consumes digits, and if a '.' is immediately followed by
// a digit, the fractional half too, returning Integer or Float.
func scanNumber(c *cursor) token.Kind {
	for !c.atEnd() && isDigit(c.peek(0)) {
		c.advance()
	}
	if c.peek(0) == '.' && isDigit(c.peek(1)) {
		c.advance() // '.'
		for !c.atEnd() && isDigit(c.peek(0)) {
			c.advance()
		}
		return token.Float
	}
	return token.Integer
}

// scanString consumes a "..." literal. An embedded NUL or newline
// before the closing quote is unclosed.
func scanString(c *cursor) ([]byte, bool) {
	start := c.idx
	c.advance() // opening quote
	for {
		if c.atEnd() {
			return c.src[start:c.idx], false
		}
		b := c.peek(0)
		if b == 0 || b == '\n' {
			return c.src[start:c.idx], false
		}
		if b == '"' {
			c.advance()
			return c.src[start:c.idx], true
		}
		c.advance()
	}
}

// scanChar consumes either 'c' (one byte) or '\e' where e is one of
// the accepted escape letters, reporting "invalid escape code" or
// "unclosed character literal" as appropriate.
func scanChar(c *cursor, bag *diag.Bag, pos source.Position) ([]byte, bool) {
	start := c.idx
	c.advance() // opening quote

	if c.atEnd() {
		bag.Error(pos, "unclosed character literal")
		return c.src[start:c.idx], false
	}

	if c.peek(0) == '\\' {
		if c.peek(2) != '\'' {
			bag.Error(pos, "unclosed character literal")
			return c.src[start:c.idx], false
		}
		escLetter := c.peek(1)
		if !validEscapes[escLetter] {
			bag.Error(pos, "invalid escape code")
			c.advance()
			c.advance()
			c.advance()
			return c.src[start:c.idx], false
		}
		c.advance() // backslash
		c.advance() // escape letter
		c.advance() // closing quote
		return c.src[start:c.idx], true
	}

	if c.peek(1) != '\'' {
		bag.Error(pos, "unclosed character literal")
		return c.src[start:c.idx], false
	}
	c.advance() // the char byte
	c.advance() // closing quote
	return c.src[start:c.idx], true
}
