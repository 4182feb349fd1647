// Package symbols implements the lexical scope chain and function
// prototype table used while type-checking function bodies.
package symbols

import "github.com/vovakirdan/lc/internal/types"

// Scope is one lexical level: a parent link plus a name->type map.
// The root "global" scope has a nil parent and persists for the run.
type Scope struct {
	parent *Scope
	names  map[string]*types.Type
}

// NewGlobalScope creates the root scope.
func NewGlobalScope() *Scope {
	return &Scope{names: make(map[string]*types.Type)}
}

// Push opens a child scope.
func (s *Scope) Push() *Scope {
	return &Scope{parent: s, names: make(map[string]*types.Type)}
}

// Declare binds name to t in this scope only. Returns false if name is
// already bound in this scope (callers use this for "redeclaration of
// variable"; shadowing an outer scope's binding is allowed).
func (s *Scope) Declare(name string, t *types.Type) bool {
	if _, exists := s.names[name]; exists {
		return false
	}
	s.names[name] = t
	return true
}

// Lookup searches this scope and its ancestors for name.
func (s *Scope) Lookup(name string) (*types.Type, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if t, ok := sc.names[name]; ok {
			return t, true
		}
	}
	return nil, false
}
