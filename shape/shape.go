package shape

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// EntityID uniquely identifies an entity by its package path and type name.
type EntityID struct {
	PkgPath string // e.g., "guardgen/catalog"
	Name    string // e.g., "Product"
}

// String returns a human-readable representation of the EntityID.
func (e EntityID) String() string {
	if e.PkgPath == "" {
		return e.Name
	}

	return e.PkgPath + "." + e.Name
}

// Visibility is the capability tag declared per member. It is checked at
// classification time and is deliberately independent of Go access modifiers.
type Visibility int

const (
	// VisibilityOpen members form the externally visible surface and are
	// the only members subject to guard classification.
	VisibilityOpen Visibility = iota
	// VisibilitySubclass members are visible to the entity and its
	// subtypes only; derivation never publishes them.
	VisibilitySubclass
	// VisibilityPrivate members belong to the entity's implementation;
	// derivation never publishes them.
	VisibilityPrivate
)

// String returns a human-readable visibility name.
func (v Visibility) String() string {
	switch v {
	case VisibilityOpen:
		return "open"
	case VisibilitySubclass:
		return "subclass"
	case VisibilityPrivate:
		return "private"
	default:
		return "unknown"
	}
}

// Facet distinguishes an entity's instance surface from its entity-level
// (static) surface. Both facets are derived independently with the same
// guard pattern.
type Facet int

const (
	FacetInstance Facet = iota
	FacetStatic
)

// String returns a human-readable facet name.
func (f Facet) String() string {
	switch f {
	case FacetInstance:
		return "instance"
	case FacetStatic:
		return "static"
	default:
		return "unknown"
	}
}

// Member describes a single named member of a facet.
type Member struct {
	Name       string     // member name as declared
	Type       string     // rendered Go type (e.g., "int64", "*time.Time")
	Visibility Visibility // capability tag, see Visibility
	ReadOnly   bool       // set on restricted members of a derived shape
}

// Shape is an order-irrelevant mapping from member name to Member for one
// facet of an entity. A Shape is immutable once built; every transform
// returns a new value.
type Shape struct {
	members map[string]Member
}

// New builds a Shape from the given members. Later duplicates win, which
// matches capture order never producing duplicates in practice.
func New(members ...Member) Shape {
	m := make(map[string]Member, len(members))
	for _, mem := range members {
		m[mem.Name] = mem
	}

	return Shape{members: m}
}

// Member returns the named member and whether it exists.
func (s Shape) Member(name string) (Member, bool) {
	m, ok := s.members[name]
	return m, ok
}

// Names returns all member names in sorted order.
func (s Shape) Names() []string {
	names := make([]string, 0, len(s.members))
	for name := range s.members {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of members.
func (s Shape) Len() int {
	return len(s.members)
}

// Members returns all members ordered by name.
func (s Shape) Members() []Member {
	names := s.Names()

	out := make([]Member, 0, len(names))
	for _, name := range names {
		out = append(out, s.members[name])
	}

	return out
}

// With returns a copy of the shape with the given member replaced or added.
func (s Shape) With(m Member) Shape {
	next := make(map[string]Member, len(s.members)+1)
	for name, mem := range s.members {
		next[name] = mem
	}

	next[m.Name] = m

	return Shape{members: next}
}

// Equal reports whether two shapes have identical member sets, including
// type, visibility and mutability of every member.
func (s Shape) Equal(other Shape) bool {
	if len(s.members) != len(other.members) {
		return false
	}

	for name, m := range s.members {
		o, ok := other.members[name]
		if !ok || o != m {
			return false
		}
	}

	return true
}

// Fingerprint returns a stable digest of the shape's full member set.
// Shapes with equal fingerprints are Equal for all practical purposes;
// the digest is used as a memoization key for derivation.
func (s Shape) Fingerprint() string {
	var b strings.Builder
	for _, m := range s.Members() {
		b.WriteString(m.Name)
		b.WriteByte('\x00')
		b.WriteString(m.Type)
		b.WriteByte('\x00')
		b.WriteString(m.Visibility.String())
		if m.ReadOnly {
			b.WriteString("\x00ro")
		}
		b.WriteByte('\n')
	}

	sum := sha256.Sum256([]byte(b.String()))

	return hex.EncodeToString(sum[:])
}

// Entity couples a constructible entity's identity with its two facet
// shapes. Entities are captured once and never mutated afterwards.
type Entity struct {
	ID       EntityID
	Instance Shape
	Static   Shape
}

// Fingerprint returns a stable digest covering both facets.
func (e Entity) Fingerprint() string {
	sum := sha256.Sum256([]byte(e.ID.String() + "\x00" + e.Instance.Fingerprint() + "\x00" + e.Static.Fingerprint()))
	return hex.EncodeToString(sum[:])
}
