package view

import (
	"guardgen/guard"
	"guardgen/shape"
)

// RestrictedShape is a derived, externally publishable view of one facet:
// open members are unchanged, restricted members are marked read-only, and
// subclass/private members are elided from the published surface entirely.
//
// A RestrictedShape records the pattern it was derived with but carries no
// proof of origin; see Wrap and Recover for the checkable reverse path.
type RestrictedShape struct {
	derived   shape.Shape
	pattern   guard.Pattern
	partition Partition

	// hardened lists the restricted members whose ReadOnly flag was set
	// by this derivation, as opposed to members the source already
	// declared read-only. Only these are relaxable.
	hardened []string
}

// Restrict derives the restricted view of a shape under the given pattern.
// The source shape is not modified. Derivation is idempotent: restricting
// an already restricted view with the same pattern yields an equal view.
func Restrict(s shape.Shape, p guard.Pattern) RestrictedShape {
	part := Classify(s, p)

	members := make([]shape.Member, 0, len(part.Open)+len(part.Restricted))

	var hardened []string

	for _, name := range part.Open {
		m, _ := s.Member(name)
		members = append(members, m)
	}

	for _, name := range part.Restricted {
		m, _ := s.Member(name)
		if !m.ReadOnly {
			hardened = append(hardened, name)
		}

		m.ReadOnly = true
		members = append(members, m)
	}

	return RestrictedShape{
		derived:   shape.New(members...),
		pattern:   p,
		partition: part,
		hardened:  hardened,
	}
}

// Shape returns the derived member set with restricted members read-only.
func (r RestrictedShape) Shape() shape.Shape {
	return r.derived
}

// Pattern returns the pattern the view was derived with.
func (r RestrictedShape) Pattern() guard.Pattern {
	return r.pattern
}

// Partition returns the open/restricted classification of the view.
func (r RestrictedShape) Partition() Partition {
	return r.partition
}

// UnsafeRelax re-enables mutation on the members that Restrict marked
// read-only and returns the resulting shape. Members the source itself
// declared read-only (constants, for one) stay read-only: relaxing
// restores the source member verbatim, never grants access the source
// never had.
//
// This is the unchecked structural escape: for a view produced by a real
// Restrict call the result is behaviorally equivalent to the source shape
// for the members the view publishes, but UnsafeRelax performs no origin
// verification. Applied to an arbitrary RestrictedShape it silently
// yields a shape that is only structurally like a source. Callers needing
// a verified reversal must wrap with origin tracking and use Recover.
func UnsafeRelax(r RestrictedShape) shape.Shape {
	relaxed := r.derived

	for _, name := range r.hardened {
		m, ok := relaxed.Member(name)
		if !ok {
			continue
		}

		m.ReadOnly = false
		relaxed = relaxed.With(m)
	}

	return relaxed
}
