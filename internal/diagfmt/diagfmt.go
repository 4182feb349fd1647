// Package diagfmt renders diagnostics for a terminal: the canonical
// "error:row:col: message" line, optionally colorized, followed by a
// source snippet with a caret under the offending column.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/lc/internal/diag"
	"github.com/vovakirdan/lc/internal/source"
)

// Options controls how diagnostics are rendered.
type Options struct {
	Color  bool // emit ANSI SGR escapes
	Source bool // print a source snippet with a caret
}

var severityColor = map[diag.Severity]*color.Color{
	diag.SevError:   color.New(color.FgRed, color.Bold),
	diag.SevWarning: color.New(color.FgYellow, color.Bold),
	diag.SevInfo:    color.New(color.FgCyan),
}

// Print renders every diagnostic in bag to w, in the given file's
// context (used for source snippets). bag should typically already be
// sorted (Bag.Sort) for deterministic output.
func Print(w io.Writer, file *source.File, bag *diag.Bag, opts Options) {
	for _, d := range bag.Items() {
		PrintOne(w, file, d, opts)
	}
}

// PrintOne renders a single diagnostic.
func PrintOne(w io.Writer, file *source.File, d diag.Diagnostic, opts Options) {
	head := fmt.Sprintf("error:%d:%d: %s", d.Pos.Row, d.Pos.Col, d.Message)
	if opts.Color {
		c := severityColor[d.Severity]
		if c == nil {
			c = severityColor[diag.SevError]
		}
		head = c.Sprint(head)
	}
	fmt.Fprintln(w, head)

	if !opts.Source || file == nil {
		return
	}
	line := file.Line(d.Pos.Row)
	if line == "" {
		return
	}
	fmt.Fprintln(w, "    "+line)
	fmt.Fprintln(w, "    "+caretPrefix(line, d.Pos.Col))
}

// caretPrefix builds whitespace padding up to the rune at the given
// 1-based column, accounting for multi-width runes (tabs, wide CJK
// glyphs) so the caret lands visually under the offending character.
func caretPrefix(line string, col uint32) string {
	if col == 0 {
		col = 1
	}
	var b strings.Builder
	runes := []rune(line)
	limit := int(col) - 1
	if limit > len(runes) {
		limit = len(runes)
	}
	for _, r := range runes[:limit] {
		if r == '\t' {
			// Echo the tab so the caret line expands it the same way
			// the source line above it does.
			b.WriteByte('\t')
			continue
		}
		w := runewidth.RuneWidth(r)
		if w <= 0 {
			w = 1
		}
		for i := 0; i < w; i++ {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('^')
	return b.String()
}
