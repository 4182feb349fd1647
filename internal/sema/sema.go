// Package sema implements the two-pass semantic analyzer: first a
// type-graph construction, topological sort and layout finalize pass,
// then prototype registration and per-function body type-checking
// against a lexical scope chain.
package sema

import (
	"fmt"

	"github.com/vovakirdan/lc/internal/ast"
	"github.com/vovakirdan/lc/internal/diag"
	"github.com/vovakirdan/lc/internal/layout"
	"github.com/vovakirdan/lc/internal/source"
	"github.com/vovakirdan/lc/internal/symbols"
	"github.com/vovakirdan/lc/internal/types"
)

// Checker holds every piece of state design notes §9 says should be
// an explicit context value rather than process-global: the type
// registry, prototype table, and root scope.
type Checker struct {
	Registry *types.Registry
	Protos   *symbols.Prototypes
	Global   *symbols.Scope
	Target   layout.Target

	bag *diag.Bag
}

// NewChecker creates a Checker targeting target, reporting into bag.
func NewChecker(bag *diag.Bag, target layout.Target) *Checker {
	return &Checker{
		Registry: types.NewRegistry(target),
		Protos:   symbols.NewPrototypes(),
		Global:   symbols.NewGlobalScope(),
		Target:   target,
		bag:      bag,
	}
}

// Check runs both analyzer passes over file: type-graph ordering and
// layout, then prototype registration and body checking.
func (c *Checker) Check(file *ast.File) {
	c.registerTypes(file)
	c.registerPrototypes(file)
	c.checkBodies(file)
}

// errorf reports a formatted error diagnostic at pos.
func (c *Checker) errorf(pos source.Position, format string, args ...any) {
	c.bag.Error(pos, fmt.Sprintf(format, args...))
}
