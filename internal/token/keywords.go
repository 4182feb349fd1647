package token

// Keywords lists every reserved word and its Kind, in the order the
// lexer should insert them into the keyword trie.
var Keywords = []struct {
	Spelling string
	Kind     Kind
}{
	{"struct", KwStruct},
	{"union", KwUnion},
	{"enum", KwEnum},
	{"loop", KwLoop},
	{"goto", KwGoto},
	{"if", KwIf},
	{"else", KwElse},
	{"switch", KwSwitch},
	{"break", KwBreak},
	{"do", KwDo},
	{"defer", KwDefer},
	{"return", KwReturn},
	{"module", KwModule},
	{"static", KwStatic},
	{"const", KwConst},
	{"extern", KwExtern},
	{"volatile", KwVolatile},
	{"import", KwImport},
	{"fn", KwFn},
	{"var", KwVar},
}
