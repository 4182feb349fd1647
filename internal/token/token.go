package token

import "github.com/vovakirdan/lc/internal/source"

// Token is a single lexical token. Lexeme borrows bytes from the
// originating source buffer; it is never copied. Tokens are arena
// owned and chained in emission order via Next.
type Token struct {
	Kind   Kind
	Lexeme []byte
	Pos    source.Position
	Next   *Token
}

// Text returns the lexeme as a string. This copies; callers that only
// need to compare bytes should prefer Lexeme directly.
func (t *Token) Text() string {
	if t == nil {
		return ""
	}
	return string(t.Lexeme)
}
