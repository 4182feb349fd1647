package symbols

import "github.com/vovakirdan/lc/internal/types"

// Prototype is a function's registered signature.
type Prototype struct {
	Name       string
	ReturnType *types.Type
	Params     []*types.Type
}

// Prototypes is keyed by function name.
type Prototypes struct {
	byName map[string]*Prototype
}

// NewPrototypes creates an empty prototype table.
func NewPrototypes() *Prototypes {
	return &Prototypes{byName: make(map[string]*Prototype)}
}

// Declare registers p, unless a prototype with the same name already
// exists (callers use this for "function already defined").
func (p *Prototypes) Declare(proto *Prototype) bool {
	if _, exists := p.byName[proto.Name]; exists {
		return false
	}
	p.byName[proto.Name] = proto
	return true
}

// Lookup returns the named prototype, if registered.
func (p *Prototypes) Lookup(name string) (*Prototype, bool) {
	proto, ok := p.byName[name]
	return proto, ok
}
