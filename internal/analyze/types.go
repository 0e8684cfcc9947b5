package analyze

import (
	"guardgen/shape"
)

// Captured is the result of capturing one entity from loaded source: the
// facet shapes handed to the engine plus the source-level detail code
// generation needs to reference the entity again.
type Captured struct {
	// Entity carries the instance and static facet shapes.
	Entity shape.Entity

	// PkgName is the declared package name of the entity's package.
	PkgName string

	// Statics maps a static member name to its package-level declaration.
	Statics map[string]StaticDecl

	// Imports maps import path to package name for every package
	// referenced by a member type, including the entity's own package.
	Imports map[string]string

	// MemberImports maps a member name to the import paths its rendered
	// type references. Generation only imports packages used by members
	// it actually publishes.
	MemberImports map[string][]string
}

// StaticDecl records the package-level declaration behind a static member.
type StaticDecl struct {
	// DeclName is the declared identifier, e.g. "ProductDefaultCurrency"
	// for the Product member "DefaultCurrency".
	DeclName string

	// Const is true for constant declarations; a constant static member
	// is read-only regardless of classification.
	Const bool
}

// HasMember reports whether the named member exists on either facet.
func (c *Captured) HasMember(name string) bool {
	if _, ok := c.Entity.Instance.Member(name); ok {
		return true
	}

	_, ok := c.Entity.Static.Member(name)

	return ok
}
