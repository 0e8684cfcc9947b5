package plan

import (
	"guardgen/guard"
	"guardgen/internal/analyze"
	"guardgen/internal/diagnostic"
	"guardgen/view"
)

// EntityPlan is the fully resolved plan for one entity: its captured
// shapes, the fixed policy, and the derived wrapped value that code
// generation renders.
type EntityPlan struct {
	// Captured holds the entity's facet shapes and source-level detail.
	Captured *analyze.Captured

	// Pattern is the guard pattern the entity was wrapped with.
	Pattern guard.Pattern

	// TrackOrigin records whether the wrap carries an origin marker.
	TrackOrigin bool

	// Wrapped is the derived restricted view of both facets.
	Wrapped view.Wrapped
}

// Plan is the resolved input to code generation.
type Plan struct {
	// Package is the name of the generated package.
	Package string

	// OutputDir is the directory generated files are written to.
	OutputDir string

	// AllowUnchecked gates emission of the unchecked relax escape.
	AllowUnchecked bool

	// Entities lists the per-entity plans in configuration order.
	Entities []EntityPlan

	// Diags collects findings from resolution.
	Diags diagnostic.Diagnostics
}
