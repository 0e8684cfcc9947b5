package view

import (
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"guardgen/guard"
	"guardgen/shape"
)

// deriveCacheSize bounds the derivation memo. Each distinct
// (entity, pattern, trackOrigin) combination is derived at most once
// while its key stays resident.
const deriveCacheSize = 256

// originMarker records the association from a wrapped value back to the
// exact source entity it was derived from. The type is unexported so a
// marker can only be minted by Wrap itself; holding one is the proof that
// a real prior wrap occurred.
type originMarker struct {
	source shape.Entity
}

// Wrapped couples the restricted instance and static facets of an entity,
// optionally tagged with an origin marker. A Wrapped value is created once
// by Wrap and never mutated; it starts in the restricted state and leaves
// it only through Recover (checked) or UnsafeRecover (caller-asserted).
type Wrapped struct {
	id       shape.EntityID
	instance RestrictedShape
	static   RestrictedShape
	origin   *originMarker
}

// Option configures a Wrap call.
type Option func(*wrapOptions)

type wrapOptions struct {
	pattern guard.Pattern
}

// WithPattern wraps with a custom guard pattern instead of the default
// leading-marker pattern. The pattern is fixed for the wrapped value.
func WithPattern(p guard.Pattern) Option {
	return func(o *wrapOptions) {
		o.pattern = p
	}
}

type derivedFacets struct {
	instance RestrictedShape
	static   RestrictedShape
}

var deriveCache *lru.Cache[string, derivedFacets]

func init() {
	// Size is fixed; New only fails on a non-positive size.
	deriveCache, _ = lru.New[string, derivedFacets](deriveCacheSize)
}

// Wrap derives the restricted view of both facets of the entity and
// packages them into one constructible unit.
//
// Wrapping is pure and representation-preserving: the entity itself is
// untouched and no member changes type or layout. When trackOrigin is
// true the result carries an origin marker and Recover can later return
// the exact source entity; when false, recovery is statically unavailable
// and the static facet's restricted members are elided from the wrapped
// value entirely (the documented static-surface limitation).
func Wrap(e shape.Entity, trackOrigin bool, opts ...Option) Wrapped {
	o := wrapOptions{pattern: guard.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	facets := deriveFacets(e, o.pattern, trackOrigin)

	w := Wrapped{
		id:       e.ID,
		instance: facets.instance,
		static:   facets.static,
	}

	if trackOrigin {
		w.origin = &originMarker{source: e}
	}

	return w
}

// deriveFacets memoizes facet derivation per distinct combination of
// entity content, pattern and origin mode.
func deriveFacets(e shape.Entity, p guard.Pattern, trackOrigin bool) derivedFacets {
	key := e.Fingerprint() + "\x00" + p.String() + "\x00" + strconv.FormatBool(trackOrigin)

	if cached, ok := deriveCache.Get(key); ok {
		return cached
	}

	facets := derivedFacets{
		instance: Restrict(e.Instance, p),
		static:   Restrict(e.Static, p),
	}

	if !trackOrigin {
		facets.static = elideRestricted(facets.static)
	}

	deriveCache.Add(key, facets)

	return facets
}

// elideRestricted drops restricted members from a derived static facet.
// Without an origin marker there is no legitimate path back to the
// entity-level surface that carries both the restriction and the ability
// to recover, so those members are not reachable through the wrapped
// value at all.
func elideRestricted(r RestrictedShape) RestrictedShape {
	members := make([]shape.Member, 0, len(r.partition.Open))
	for _, name := range r.partition.Open {
		m, _ := r.derived.Member(name)
		members = append(members, m)
	}

	return RestrictedShape{
		derived:   shape.New(members...),
		pattern:   r.pattern,
		partition: Partition{Open: r.partition.Open},
	}
}

// ID returns the identity of the wrapped entity.
func (w Wrapped) ID() shape.EntityID {
	return w.id
}

// Instance returns the restricted instance facet.
func (w Wrapped) Instance() RestrictedShape {
	return w.instance
}

// Static returns the restricted static facet. When the value was wrapped
// without origin tracking, restricted static members are absent.
func (w Wrapped) Static() RestrictedShape {
	return w.static
}

// HasOrigin reports whether the wrapped value carries an origin marker.
func (w Wrapped) HasOrigin() bool {
	return w.origin != nil
}

// Recover returns the source entity a wrapped value was derived from,
// fully mutable on both facets. It succeeds only if the value carries an
// origin marker recorded by a real prior Wrap with trackOrigin; otherwise
// it fails with ErrOriginUnavailable.
func Recover(w Wrapped) (shape.Entity, error) {
	if w.origin == nil {
		return shape.Entity{}, ErrOriginUnavailable
	}

	return w.origin.source, nil
}

// UnsafeRecover reconstructs an entity from the wrapped facets by
// structural relaxation alone, bypassing the origin check.
//
// The result is only structurally like the source: members elided at wrap
// time (subclass, private, and, without origin tracking, restricted
// statics) are gone for good. The caller owns the assertion that the
// wrapped value legitimately originated from the entity they believe it
// did; prefer wrapping with trackOrigin and using Recover.
func UnsafeRecover(w Wrapped) shape.Entity {
	return shape.Entity{
		ID:       w.id,
		Instance: UnsafeRelax(w.instance),
		Static:   UnsafeRelax(w.static),
	}
}
