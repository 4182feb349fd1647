package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lc/internal/config"
	"github.com/vovakirdan/lc/internal/diag"
	"github.com/vovakirdan/lc/internal/diagfmt"
	"github.com/vovakirdan/lc/internal/layout"
	"github.com/vovakirdan/lc/internal/source"
)

// runContext bundles the settings every subcommand needs: the loaded
// project config layered under CLI flag overrides, and whether to
// colorize stderr.
type runContext struct {
	cfg      config.Config
	useColor bool
	useJSON  bool
	target   layout.Target
}

func loadRunContext(cmd *cobra.Command, filePath string) (*runContext, error) {
	cfg, _, err := config.Load(filepath.Dir(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to load lc.toml: %w", err)
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return nil, err
	}
	if colorFlag != "auto" {
		cfg.Color = colorFlag
	}
	useColor := cfg.Color == "on" || (cfg.Color == "auto" && term.IsTerminal(int(os.Stderr.Fd())))

	maxDiag, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return nil, err
	}
	if maxDiag > 0 {
		cfg.MaxDiagnostics = maxDiag
	}

	useJSON, err := cmd.Root().PersistentFlags().GetBool("json")
	if err != nil {
		return nil, err
	}

	return &runContext{
		cfg:      cfg,
		useColor: useColor,
		useJSON:  useJSON,
		target:   layout.Target{WordSize: cfg.WordSize},
	}, nil
}

// newBag creates the diagnostic bag a subcommand reports into,
// capped per rc's config/flag-resolved max-diagnostics setting.
func newBag(rc *runContext) *diag.Bag {
	return diag.NewBag(rc.cfg.MaxDiagnostics)
}

// loadSourceFile reads filePath, or "-" for stdin.
func loadSourceFile(filePath string) (*source.File, error) {
	if filePath == "-" {
		raw, err := readAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return source.New("<stdin>", string(raw)), nil
	}
	return source.Load(filePath)
}

func readAll(f *os.File) ([]byte, error) {
	info, err := f.Stat()
	if err == nil && info.Size() > 0 {
		buf := make([]byte, info.Size())
		n, err := f.Read(buf)
		if err != nil {
			return nil, err
		}
		return buf[:n], nil
	}
	var out []byte
	chunk := make([]byte, 4096)
	for {
		n, err := f.Read(chunk)
		out = append(out, chunk[:n]...)
		if err != nil {
			break
		}
	}
	return out, nil
}

// reportDiagnostics sorts and prints bag's contents to stderr.
func reportDiagnostics(bag *diag.Bag, file *source.File, rc *runContext) {
	if bag.Len() == 0 {
		return
	}
	bag.Sort()
	diagfmt.Print(os.Stderr, file, bag, diagfmt.Options{Color: rc.useColor, Source: true})
}

func exitCode(bag *diag.Bag) int {
	if bag.HasErrors() {
		return 1
	}
	return 0
}
