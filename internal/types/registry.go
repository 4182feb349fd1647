package types

import "github.com/vovakirdan/lc/internal/layout"

// Registry interns every named type reachable during a compilation:
// the pre-registered primitives plus every user struct/union/enum,
// keyed by name so repeated lookups return the identical *Type the
// equality rule in Equal relies on for aggregates.
type Registry struct {
	byName map[string]*Type
	target layout.Target
}

// NewRegistry creates a Registry with the primitive types already
// registered: void, bool, u8..u64, i8..i64, f32, f64.
func NewRegistry(target layout.Target) *Registry {
	r := &Registry{byName: make(map[string]*Type), target: target}
	r.registerPrimitives()
	if u64, ok := r.byName["u64"]; ok {
		r.RegisterAlias("usize", u64)
	}
	return r
}

func (r *Registry) registerPrimitives() {
	r.byName["void"] = &Type{Tag: Void, Name: "void", Size: 0, Align: 1}
	r.byName["bool"] = &Type{Tag: Bool, Name: "bool", Size: 1, Align: 1}
	for _, bits := range []int{8, 16, 32, 64} {
		size, align := layout.Primitive(bits)
		r.byName[intName("u", bits)] = &Type{Tag: UInteger, Name: intName("u", bits), Bits: bits, Size: size, Align: align}
		r.byName[intName("i", bits)] = &Type{Tag: Integer, Name: intName("i", bits), Bits: bits, Size: size, Align: align}
	}
	for _, bits := range []int{32, 64} {
		size, align := layout.Primitive(bits)
		name := intName("f", bits)
		r.byName[name] = &Type{Tag: Float, Name: name, Bits: bits, Size: size, Align: align}
	}
}

func intName(prefix string, bits int) string {
	switch bits {
	case 8:
		return prefix + "8"
	case 16:
		return prefix + "16"
	case 32:
		return prefix + "32"
	case 64:
		return prefix + "64"
	}
	return prefix
}

// Lookup returns the named type, if registered.
func (r *Registry) Lookup(name string) (*Type, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Declared reports whether name is already registered: a primitive,
// an alias, or a struct/union/enum placeholder, finalized or not
// (used for the "type already defined" check).
func (r *Registry) Declared(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// DeclarePlaceholder registers an incomplete Struct/Union/Enum node so
// the type graph can reference it before its layout is finalized.
func (r *Registry) DeclarePlaceholder(name string, tag Tag) *Type {
	t := &Type{Tag: tag, Name: name}
	r.byName[name] = t
	return t
}

// RegisterAlias registers name as a distinct *Type with the same tag,
// bit width and layout as base (used for `usize`, which spec.md treats
// as its own spelling of the registry's 64-bit unsigned integer).
func (r *Registry) RegisterAlias(name string, base *Type) *Type {
	alias := &Type{Tag: base.Tag, Name: name, Bits: base.Bits, Size: base.Size, Align: base.Align}
	r.byName[name] = alias
	return alias
}

// Target returns the layout target this registry was built for.
func (r *Registry) Target() layout.Target {
	return r.target
}

// Ptr returns a (possibly freshly built) pointer-to-child type.
func (r *Registry) Ptr(child *Type, isConst, isVolatile bool) *Type {
	size, align := r.target.Ptr()
	return &Type{Tag: Ptr, Name: "*" + child.Name, Child: child, IsConst: isConst, IsVolatile: isVolatile, Size: size, Align: align}
}

// Slice returns a slice-of-child type, optionally with a known length
// (set for string literals and ranges).
func (r *Registry) Slice(child *Type, isConst, isVolatile bool, length int64, hasLen bool) *Type {
	size, align := r.target.Slice()
	return &Type{Tag: Slice, Name: "[]" + child.Name, Child: child, IsConst: isConst, IsVolatile: isVolatile, HasLen: hasLen, Len: length, Size: size, Align: align}
}
