package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSpec_CompileDefaults(t *testing.T) {
	p, err := Spec{}.Compile()
	require.NoError(t, err)
	assert.Equal(t, Default().String(), p.String())

	p, err = Spec{Kind: KindPrefix}.Compile()
	require.NoError(t, err)
	assert.Equal(t, Default().String(), p.String())
}

func TestSpec_CompileKinds(t *testing.T) {
	p, err := Spec{Kind: KindPrefix, Marker: "$"}.Compile()
	require.NoError(t, err)
	assert.True(t, p.Matches("$x"))

	p, err = Spec{Kind: KindSuffix, Suffix: "Raw"}.Compile()
	require.NoError(t, err)
	assert.True(t, p.Matches("EmailRaw"))

	p, err = Spec{Kind: KindNames, Names: []string{"Stock"}}.Compile()
	require.NoError(t, err)
	assert.True(t, p.Matches("Stock"))

	p, err = Spec{Kind: KindRegexp, Expr: ".*Cents"}.Compile()
	require.NoError(t, err)
	assert.True(t, p.Matches("PriceCents"))
}

func TestSpec_CompileErrors(t *testing.T) {
	_, err := Spec{Kind: "glob"}.Compile()
	assert.ErrorIs(t, err, ErrUnknownPatternKind)

	_, err = Spec{Kind: KindSuffix}.Compile()
	assert.ErrorIs(t, err, ErrEmptyPattern)

	_, err = Spec{Kind: KindNames}.Compile()
	assert.ErrorIs(t, err, ErrEmptyPattern)

	_, err = Spec{Kind: KindRegexp}.Compile()
	assert.ErrorIs(t, err, ErrEmptyPattern)

	_, err = Spec{Kind: KindRegexp, Expr: "["}.Compile()
	assert.Error(t, err)

	_, err = Spec{Kind: KindPrefix, Marker: "__"}.Compile()
	assert.Error(t, err, "marker must be a single character")
}

func TestSpec_YAMLForm(t *testing.T) {
	var s Spec

	err := yaml.Unmarshal([]byte(`{kind: suffix, suffix: Raw}`), &s)
	require.NoError(t, err)

	p, err := s.Compile()
	require.NoError(t, err)
	assert.Equal(t, "suffix(Raw)", p.String())
}
