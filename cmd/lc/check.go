package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lc/internal/arena"
	"github.com/vovakirdan/lc/internal/lexer"
	"github.com/vovakirdan/lc/internal/parser"
	"github.com/vovakirdan/lc/internal/sema"
	"github.com/vovakirdan/lc/internal/token"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run the full front end: lex, parse and type-check a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
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
	astFile := p.File()

	if !p.HasErrors() {
		checker := sema.NewChecker(bag, rc.target)
		checker.Check(astFile)
	}

	reportDiagnostics(bag, file, rc)

	if !bag.HasErrors() {
		fmt.Fprintf(os.Stdout, "%s: ok\n", filePath)
	}

	os.Exit(exitCode(bag))
	return nil
}
