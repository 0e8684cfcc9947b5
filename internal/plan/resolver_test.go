package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardgen/guard"
	"guardgen/internal/analyze"
	"guardgen/internal/config"
	"guardgen/internal/diagnostic"
)

func catalogLoader(t *testing.T) *analyze.Loader {
	t.Helper()

	loader, err := analyze.Load("guardgen/catalog")
	require.NoError(t, err)

	return loader
}

func catalogConfig(entities ...config.Entity) *config.File {
	return &config.File{
		Version:  "1",
		Packages: []string{"guardgen/catalog"},
		Output:   config.Output{Dir: "./guarded", Package: "guarded"},
		Entities: entities,
	}
}

func codes(diags []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Code)
	}

	return out
}

func TestBuild_ResolvesEntities(t *testing.T) {
	p := Build(catalogLoader(t), catalogConfig(
		config.Entity{Type: "catalog.Product", TrackOrigin: true, Restricted: []string{"Stock", "PriceCents"}},
		config.Entity{Type: "catalog.Customer", Pattern: &guard.Spec{Kind: guard.KindSuffix, Suffix: "Raw"}},
	))

	require.False(t, p.Diags.HasErrors(), "diags: %v", p.Diags.All())
	require.Len(t, p.Entities, 2)

	product := p.Entities[0]
	assert.True(t, product.TrackOrigin)
	assert.Equal(t, []string{"PriceCents", "Stock"}, product.Wrapped.Instance().Partition().Restricted)

	customer := p.Entities[1]
	assert.False(t, customer.TrackOrigin)
	assert.Equal(t, []string{"EmailRaw", "PhoneRaw"}, customer.Wrapped.Instance().Partition().Restricted)
}

func TestBuild_UnknownMember(t *testing.T) {
	p := Build(catalogLoader(t), catalogConfig(
		config.Entity{Type: "catalog.Product", Restricted: []string{"Stock", "Nope"}},
	))

	require.True(t, p.Diags.HasErrors())
	assert.Contains(t, codes(p.Diags.Errors), diagnostic.CodeUnknownMember)
	assert.Empty(t, p.Entities, "an entity with caller errors is not planned")
}

func TestBuild_EntityNotFound(t *testing.T) {
	p := Build(catalogLoader(t), catalogConfig(
		config.Entity{Type: "catalog.Missing"},
		config.Entity{Type: "catalog.Product", Restricted: []string{"Stock"}},
	))

	assert.Contains(t, codes(p.Diags.Errors), diagnostic.CodeEntityNotFound)
	assert.Len(t, p.Entities, 1, "other entities still resolve")
}

func TestBuild_StaticSurfaceLoss(t *testing.T) {
	p := Build(catalogLoader(t), catalogConfig(
		config.Entity{Type: "catalog.Product", Restricted: []string{"DefaultCurrency"}},
	))

	require.False(t, p.Diags.HasErrors())
	assert.Contains(t, codes(p.Diags.Infos), diagnostic.CodeStaticSurfaceLoss)

	// The planned static facet no longer carries the lost member.
	_, ok := p.Entities[0].Wrapped.Static().Shape().Member("DefaultCurrency")
	assert.False(t, ok)
}

func TestBuild_NoLossWithOrigin(t *testing.T) {
	p := Build(catalogLoader(t), catalogConfig(
		config.Entity{Type: "catalog.Product", TrackOrigin: true, Restricted: []string{"DefaultCurrency"}},
	))

	assert.NotContains(t, codes(p.Diags.Infos), diagnostic.CodeStaticSurfaceLoss)

	m, ok := p.Entities[0].Wrapped.Static().Shape().Member("DefaultCurrency")
	require.True(t, ok)
	assert.True(t, m.ReadOnly)
}

func TestBuild_EmptyRestrictedSet(t *testing.T) {
	p := Build(catalogLoader(t), catalogConfig(
		config.Entity{Type: "catalog.Product", Pattern: &guard.Spec{Kind: guard.KindSuffix, Suffix: "$"}},
	))

	assert.Contains(t, codes(p.Diags.Infos), diagnostic.CodeEmptyRestrictedSet)
}

func TestBuild_UncheckedEscapeWarning(t *testing.T) {
	cfg := catalogConfig(config.Entity{Type: "catalog.Product", Restricted: []string{"Stock"}})
	cfg.AllowUnchecked = true

	p := Build(catalogLoader(t), cfg)

	assert.Contains(t, codes(p.Diags.Warnings), diagnostic.CodeUncheckedEscape)
	assert.True(t, p.AllowUnchecked)
}
