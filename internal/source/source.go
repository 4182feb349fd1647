// Package source carries loaded source files and the positions the
// lexer and parser attach diagnostics to.
package source

import (
	"fmt"
	"os"
	"strings"
)

// Position is a 1-based (row, column) location within a File. Row and
// column both start at 1, matching the original lexer's bookkeeping.
type Position struct {
	Row uint32
	Col uint32
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// IsZero reports whether p was never set.
func (p Position) IsZero() bool {
	return p.Row == 0 && p.Col == 0
}

// File is a loaded source file plus a line index used to print
// diagnostic snippets.
type File struct {
	Path    string
	Content string

	lineStarts []int // byte offset of the first byte of each line
}

// Load reads path from disk and builds its line index.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: load %s: %w", path, err)
	}
	return New(path, string(raw)), nil
}

// New builds a File directly from in-memory content, useful for tests
// and for reading from stdin.
func New(path, content string) *File {
	f := &File{Path: path, Content: content}
	f.buildLineIndex()
	return f
}

func (f *File) buildLineIndex() {
	f.lineStarts = []int{0}
	for i := 0; i < len(f.Content); i++ {
		if f.Content[i] == '\n' {
			f.lineStarts = append(f.lineStarts, i+1)
		}
	}
}

// Line returns the raw text of the given 1-based line number, without
// its trailing newline. Returns "" if row is out of range.
func (f *File) Line(row uint32) string {
	idx := int(row) - 1
	if idx < 0 || idx >= len(f.lineStarts) {
		return ""
	}
	start := f.lineStarts[idx]
	end := len(f.Content)
	if idx+1 < len(f.lineStarts) {
		end = f.lineStarts[idx+1] - 1
	}
	if start > end || start > len(f.Content) {
		return ""
	}
	if end > len(f.Content) {
		end = len(f.Content)
	}
	return strings.TrimRight(f.Content[start:end], "\r")
}

// LineCount returns the number of lines tracked in the index.
func (f *File) LineCount() uint32 {
	return uint32(len(f.lineStarts))
}
