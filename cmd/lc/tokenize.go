package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lc/internal/arena"
	"github.com/vovakirdan/lc/internal/lexer"
	"github.com/vovakirdan/lc/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Lex a source file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	rc, err := loadRunContext(cmd, filePath)
	if err != nil {
		return err
	}

	file, err := loadSourceFile(filePath)
	if err != nil {
		return err
	}

	bag := newBag(rc)
	keywords := lexer.NewKeywordTrie()
	tokArena := arena.New[token.Token](uint(len(file.Content) + 16))
	head := lexer.Lex(file, tokArena, keywords, bag)

	reportDiagnostics(bag, file, rc)

	for t := head; t != nil; t = t.Next {
		if t.Kind == token.EOF {
			fmt.Fprintf(os.Stdout, "%4d:%-3d EOF\n", t.Pos.Row, t.Pos.Col)
			break
		}
		fmt.Fprintf(os.Stdout, "%4d:%-3d %-12s %q\n", t.Pos.Row, t.Pos.Col, t.Kind, t.Lexeme)
	}

	os.Exit(exitCode(bag))
	return nil
}
