package ufuncdispatch

// Type is a ready-made single-parent TypeIdentity for hosts that do not
// carry their own type lattice. Each call to NewType yields a distinct
// identity; share the returned pointer among all operands of that type.
type Type struct {
	name   string
	parent *Type
}

// NewType creates a type named name. parent may be nil for a root type.
func NewType(name string, parent *Type) *Type {
	return &Type{name: name, parent: parent}
}

// Name returns the type name.
func (t *Type) Name() string { return t.name }

// Parent returns the immediate supertype, or nil for a root type.
func (t *Type) Parent() *Type { return t.parent }

// SubtypeOf reports whether t is a strict subtype of other, walking the
// parent chain. A type is not a subtype of itself.
func (t *Type) SubtypeOf(other TypeIdentity) bool {
	for p := t.parent; p != nil; p = p.parent {
		if TypeIdentity(p) == other {
			return true
		}
	}
	return false
}
