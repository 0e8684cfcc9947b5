package view

import (
	"guardgen/guard"
	"guardgen/shape"
)

// Partition is the result of classifying one facet's members against a
// guard pattern. Both slices are sorted by name.
type Partition struct {
	// Open members pass through derivation unchanged.
	Open []string
	// Restricted members become read-only for external holders of the
	// derived shape.
	Restricted []string
}

// Classify partitions the shape's open members into open and restricted
// sets under the given pattern. Subclass and private members are
// structurally invisible to derivation and never appear in either set.
//
// Classification is pure: the same shape and pattern always produce the
// same partition. A name absent from the shape is outside the classifier's
// domain; callers are responsible for only asking about captured members.
func Classify(s shape.Shape, p guard.Pattern) Partition {
	var part Partition

	for _, name := range s.Names() {
		m, _ := s.Member(name)
		if m.Visibility != shape.VisibilityOpen {
			continue
		}

		if p.Matches(name) {
			part.Restricted = append(part.Restricted, name)
		} else {
			part.Open = append(part.Open, name)
		}
	}

	return part
}

// IsRestricted reports whether the named member is in the restricted set.
func (p Partition) IsRestricted(name string) bool {
	for _, n := range p.Restricted {
		if n == name {
			return true
		}
	}

	return false
}

// IsEmpty reports whether classification found no restricted members.
func (p Partition) IsEmpty() bool {
	return len(p.Restricted) == 0
}
