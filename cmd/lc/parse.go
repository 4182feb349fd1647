package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lc/internal/arena"
	"github.com/vovakirdan/lc/internal/lexer"
	"github.com/vovakirdan/lc/internal/parser"
	"github.com/vovakirdan/lc/internal/token"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Lex and parse a source file, printing the resulting AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
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

	p := parser.ParseFile(filePath, head, bag)

	reportDiagnostics(bag, file, rc)
	dumpFile(os.Stdout, p.File())

	os.Exit(exitCode(bag))
	return nil
}
