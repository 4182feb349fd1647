package lexer

import (
	"github.com/vovakirdan/lc/internal/token"
	"github.com/vovakirdan/lc/internal/trie"
)

// NewKeywordTrie builds the trie the lexer consults once per
// identifier to recognize reserved words, per token.Keywords.
func NewKeywordTrie() *trie.Trie {
	capacity := 1
	for _, kw := range token.Keywords {
		capacity += len(kw.Spelling)
	}
	t := trie.New(uint(capacity))
	for _, kw := range token.Keywords {
		t.Insert(kw.Spelling, uint16(kw.Kind))
	}
	return t
}
