// Package diag defines diagnostics and the bag that accumulates them
// across the lexer, parser and semantic analyzer.
package diag

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/lc/internal/source"
)

// Severity classifies how serious a Diagnostic is.
type Severity uint8

const (
	SevError Severity = iota
	SevWarning
	SevInfo
)

func (s Severity) String() string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	case SevInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Diagnostic is a single issue at a single source position. Message
// text matches the literal wordings in the error catalogue where the
// spec gives one verbatim.
type Diagnostic struct {
	Severity Severity
	Message  string
	Pos      source.Position
}

// String renders the canonical "error:row:col: message" line.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.Severity, d.Pos.Row, d.Pos.Col, d.Message)
}

// Bag accumulates diagnostics from a single compilation run. A zero
// Bag is usable; NewBag sets an optional cap on total diagnostics.
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag creates a Bag that stops accepting new diagnostics once it
// holds max items (0 means unlimited).
func NewBag(max int) *Bag {
	return &Bag{max: max}
}

// Add appends a diagnostic, unless the bag is already at capacity.
func (b *Bag) Add(d Diagnostic) {
	if b.max > 0 && len(b.items) >= b.max {
		return
	}
	b.items = append(b.items, d)
}

// Error is shorthand for Add with SevError.
func (b *Bag) Error(pos source.Position, message string) {
	b.Add(Diagnostic{Severity: SevError, Message: message, Pos: pos})
}

// HasErrors reports whether any SevError diagnostic was recorded.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == SevError {
			return true
		}
	}
	return false
}

// Len returns the number of recorded diagnostics.
func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the recorded diagnostics in insertion order.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Sort orders diagnostics by position, for stable, deterministic
// output regardless of which pass discovered them first.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		a, c := b.items[i].Pos, b.items[j].Pos
		if a.Row != c.Row {
			return a.Row < c.Row
		}
		return a.Col < c.Col
	})
}
