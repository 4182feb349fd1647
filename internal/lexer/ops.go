package lexer

import "github.com/vovakirdan/lc/internal/token"

// opSpelling is one entry in the maximal-munch operator table.
type opSpelling struct {
	text string
	kind token.Kind
}

// ops is tried longest-first so maximal munch falls out of a simple
// linear scan: e.g. "<<=" is matched before "<<" before "<".
var ops = []opSpelling{
	{"<<=", token.ShlEq},
	{">>=", token.ShrEq},

	{"++", token.PlusPlus},
	{"+=", token.PlusEq},
	{"--", token.MinusMinus},
	{"-=", token.MinusEq},
	{"->", token.Arrow},
	{"*=", token.StarEq},
	{"/=", token.SlashEq},
	{"%=", token.PercentEq},
	{"&=", token.AmpEq},
	{"&&", token.AmpAmp},
	{"|=", token.PipeEq},
	{"||", token.PipePipe},
	{"^=", token.CaretEq},
	{"==", token.EqEq},
	{"!=", token.NotEq},
	{"<=", token.LtEq},
	{">=", token.GtEq},
	{"<<", token.Shl},
	{">>", token.Shr},
	{"..", token.DotDot},

	{"+", token.Plus},
	{"-", token.Minus},
	{"*", token.Star},
	{"/", token.Slash},
	{"%", token.Percent},
	{"&", token.Amp},
	{"|", token.Pipe},
	{"^", token.Caret},
	{"=", token.Eq},
	{"<", token.Lt},
	{">", token.Gt},
	{"!", token.Bang},
	{".", token.Dot},
	{",", token.Comma},
	{":", token.Colon},
	{";", token.Semi},
	{"(", token.LParen},
	{")", token.RParen},
	{"[", token.LBracket},
	{"]", token.RBracket},
	{"{", token.LBrace},
	{"}", token.RBrace},
}

// matchOp tries every spelling in ops against the cursor's upcoming
// bytes and returns the longest match, or ok=false if none match.
func matchOp(c *cursor) (token.Kind, int, bool) {
	for _, o := range ops {
		n := len(o.text)
		matched := true
		for i := 0; i < n; i++ {
			if c.peek(i) != o.text[i] {
				matched = false
				break
			}
		}
		if matched {
			return o.kind, n, true
		}
	}
	return token.Invalid, 0, false
}
