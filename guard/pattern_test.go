package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LeadingMarker(t *testing.T) {
	p := Default()

	assert.True(t, p.Matches("_hidden"))
	assert.False(t, p.Matches("open"))
	assert.False(t, p.Matches(""))
	assert.Equal(t, "prefix(_)", p.String())
}

func TestPrefix_CustomMarker(t *testing.T) {
	p := Prefix{Marker: '$'}

	assert.True(t, p.Matches("$secret"))
	assert.False(t, p.Matches("secret$"))
}

func TestSuffix(t *testing.T) {
	p := Suffix{Suffix: "Raw"}

	assert.True(t, p.Matches("EmailRaw"))
	assert.False(t, p.Matches("Email"))
	assert.False(t, p.Matches("Raws"))

	empty := Suffix{}
	assert.False(t, empty.Matches("anything"), "empty suffix matches nothing")
}

func TestNames(t *testing.T) {
	p := ByName("Stock", "PriceCents")

	assert.True(t, p.Matches("Stock"))
	assert.True(t, p.Matches("PriceCents"))
	assert.False(t, p.Matches("Name"))

	// Canonical form is sorted so equal sets render equally.
	assert.Equal(t, "names(PriceCents,Stock)", p.String())
	assert.Equal(t, ByName("PriceCents", "Stock").String(), p.String())
}

func TestRegexp_AnchoredToWholeName(t *testing.T) {
	p, err := ByExpr("[A-Z].*Raw")
	require.NoError(t, err)

	assert.True(t, p.Matches("EmailRaw"))
	assert.False(t, p.Matches("EmailRawCopy"), "expression must match the whole name")
	assert.False(t, p.Matches("raw"))
}

func TestPatterns_Deterministic(t *testing.T) {
	patterns := []Pattern{
		Default(),
		Suffix{Suffix: "Raw"},
		ByName("Stock"),
	}

	for _, p := range patterns {
		for _, name := range []string{"_a", "Stock", "EmailRaw", ""} {
			first := p.Matches(name)
			for i := 0; i < 3; i++ {
				assert.Equal(t, first, p.Matches(name), "pattern %s must be deterministic for %q", p, name)
			}
		}
	}
}
