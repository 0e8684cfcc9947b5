package config

import (
	"fmt"
	"strings"

	"guardgen/guard"
	"guardgen/shape"
)

// File represents the root of a YAML generator configuration file.
// This is the authoritative, human-reviewed description of which entities
// are wrapped and under which policy.
type File struct {
	// Version of the configuration schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Packages lists Go package patterns to load entities from.
	Packages []string `yaml:"packages"`

	// Output describes where generated view files are written.
	Output Output `yaml:"output,omitempty"`

	// AllowUnchecked gates emission of the UnsafeRelax escape functions.
	// Off by default; the checked Recover path is the supported reversal.
	AllowUnchecked bool `yaml:"allow_unchecked,omitempty"`

	// Entities lists the entities to wrap.
	Entities []Entity `yaml:"entities"`
}

// Output describes the generated package.
type Output struct {
	// Dir is the directory generated files are written to.
	Dir string `yaml:"dir,omitempty"`

	// Package is the name of the generated package.
	Package string `yaml:"package,omitempty"`
}

// Entity configures the wrap of a single entity.
type Entity struct {
	// Type identifies the entity, either as "pkgname.TypeName" or with a
	// full import path, "guardgen/catalog.Product".
	Type string `yaml:"type"`

	// TrackOrigin records an origin marker so the generated view carries
	// a Recover path back to the source value.
	TrackOrigin bool `yaml:"track_origin,omitempty"`

	// Pattern selects the guard pattern as data. Omitted means the
	// default leading-marker pattern.
	Pattern *guard.Spec `yaml:"pattern,omitempty"`

	// Restricted is shorthand for an explicit name-set pattern. Mutually
	// exclusive with Pattern.
	Restricted []string `yaml:"restricted,omitempty"`
}

// CompilePattern returns the guard pattern configured for the entity.
func (e Entity) CompilePattern() (guard.Pattern, error) {
	switch {
	case e.Pattern != nil && len(e.Restricted) > 0:
		return nil, fmt.Errorf("entity %s: %w", e.Type, ErrPatternConflict)

	case len(e.Restricted) > 0:
		return guard.ByName(e.Restricted...), nil

	case e.Pattern != nil:
		return e.Pattern.Compile()

	default:
		return guard.Default(), nil
	}
}

// ResolveType resolves the entity's Type against the loaded package
// paths. A bare package name matches any loaded path with that final
// element; a path-qualified name must match exactly.
func (e Entity) ResolveType(loadedPaths []string) (shape.EntityID, error) {
	idx := strings.LastIndexByte(e.Type, '.')
	if idx <= 0 || idx == len(e.Type)-1 {
		return shape.EntityID{}, fmt.Errorf("entity type %q: %w", e.Type, ErrBadTypeFormat)
	}

	pkgPart, name := e.Type[:idx], e.Type[idx+1:]

	var matches []string

	for _, p := range loadedPaths {
		if p == pkgPart || strings.HasSuffix(p, "/"+pkgPart) {
			matches = append(matches, p)
		}
	}

	switch len(matches) {
	case 0:
		return shape.EntityID{}, fmt.Errorf("entity type %q: %w", e.Type, ErrPackageNotLoaded)
	case 1:
		return shape.EntityID{PkgPath: matches[0], Name: name}, nil
	default:
		return shape.EntityID{}, fmt.Errorf("entity type %q matches packages %v: %w", e.Type, matches, ErrAmbiguousType)
	}
}
