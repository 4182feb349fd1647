package diag

import "github.com/vovakirdan/lc/internal/source"

// Reporter receives diagnostics as they are discovered, decoupling
// producers (lexer, parser, sema) from how diagnostics are ultimately
// collected or rendered.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter adapts a *Bag to the Reporter interface.
type BagReporter struct {
	Bag *Bag
}

func (r *BagReporter) Report(d Diagnostic) {
	r.Bag.Add(d)
}

// Error reports an error-severity diagnostic through r.
func Error(r Reporter, pos source.Position, message string) {
	r.Report(Diagnostic{Severity: SevError, Message: message, Pos: pos})
}
