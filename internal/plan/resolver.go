package plan

import (
	"fmt"

	"guardgen/internal/analyze"
	"guardgen/internal/config"
	"guardgen/internal/diagnostic"
	"guardgen/view"
)

// Build resolves a validated configuration against loaded packages into a
// Plan. Per-entity failures become error diagnostics rather than aborting
// the run, so one bad entity block does not hide findings about the rest.
func Build(loader *analyze.Loader, cfg *config.File) *Plan {
	p := &Plan{
		Package:        cfg.Output.Package,
		OutputDir:      cfg.Output.Dir,
		AllowUnchecked: cfg.AllowUnchecked,
	}

	for _, ec := range cfg.Entities {
		ep, diags := buildEntity(loader, &ec, cfg.AllowUnchecked)
		p.Diags.Merge(diags)

		if ep != nil {
			p.Entities = append(p.Entities, *ep)
		}
	}

	return p
}

func buildEntity(loader *analyze.Loader, ec *config.Entity, allowUnchecked bool) (*EntityPlan, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	id, err := ec.ResolveType(loader.Packages())
	if err != nil {
		diags.AddError(diagnostic.CodeEntityNotFound, err.Error(), ec.Type, "")
		return nil, diags
	}

	captured, err := loader.Capture(id)
	if err != nil {
		diags.AddError(diagnostic.CodeEntityNotFound, err.Error(), ec.Type, "")
		return nil, diags
	}

	pattern, err := ec.CompilePattern()
	if err != nil {
		diags.AddError(diagnostic.CodeBadPattern, err.Error(), id.String(), "")
		return nil, diags
	}

	// An explicitly configured member name that is not part of either
	// captured facet is a caller error, not a classification outcome.
	for _, name := range ec.Restricted {
		if !captured.HasMember(name) {
			diags.AddError(diagnostic.CodeUnknownMember,
				fmt.Sprintf("member %q is not part of the captured shape", name),
				id.String(), name)
		}
	}

	if diags.HasErrors() {
		return nil, diags
	}

	wrapped := view.Wrap(captured.Entity, ec.TrackOrigin, view.WithPattern(pattern))

	if wrapped.Instance().Partition().IsEmpty() && wrapped.Static().Partition().IsEmpty() {
		diags.AddInfo(diagnostic.CodeEmptyRestrictedSet,
			fmt.Sprintf("pattern %s matches no member; the view equals the source", pattern),
			id.String(), "")
	}

	// The wrapped static facet is already elided without origin tracking;
	// classify the captured facet directly to report what was lost.
	if !ec.TrackOrigin {
		if lost := view.Classify(captured.Entity.Static, pattern); !lost.IsEmpty() {
			for _, name := range lost.Restricted {
				diags.AddInfo(diagnostic.CodeStaticSurfaceLoss,
					"restricted static member is unreachable without origin tracking",
					id.String(), name)
			}
		}
	}

	if allowUnchecked {
		diags.AddWarning(diagnostic.CodeUncheckedEscape,
			"unchecked relax escape will be generated; prefer track_origin with Recover",
			id.String(), "")
	}

	return &EntityPlan{
		Captured:    captured,
		Pattern:     pattern,
		TrackOrigin: ec.TrackOrigin,
		Wrapped:     wrapped,
	}, diags
}
