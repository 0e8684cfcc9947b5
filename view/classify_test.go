package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"guardgen/guard"
	"guardgen/shape"
)

func testShape() shape.Shape {
	return shape.New(
		shape.Member{Name: "a", Type: "string", Visibility: shape.VisibilityOpen},
		shape.Member{Name: "_b", Type: "int", Visibility: shape.VisibilityOpen},
		shape.Member{Name: "_sub", Type: "int", Visibility: shape.VisibilitySubclass},
		shape.Member{Name: "secret", Type: "string", Visibility: shape.VisibilityPrivate},
	)
}

func TestClassify_DefaultPattern(t *testing.T) {
	part := Classify(testShape(), guard.Default())

	assert.Equal(t, []string{"a"}, part.Open)
	assert.Equal(t, []string{"_b"}, part.Restricted)
}

func TestClassify_NonOpenMembersInvisible(t *testing.T) {
	// _sub matches the default pattern but is subclass-only; secret is
	// private. Neither may appear in either set.
	part := Classify(testShape(), guard.Default())

	for _, name := range append(part.Open, part.Restricted...) {
		assert.NotEqual(t, "_sub", name)
		assert.NotEqual(t, "secret", name)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	s := testShape()
	p := guard.Default()

	first := Classify(s, p)
	second := Classify(s, p)

	assert.Equal(t, first, second)
}

func TestClassify_EmptyRestrictedSet(t *testing.T) {
	part := Classify(testShape(), guard.Suffix{Suffix: "$"})

	assert.True(t, part.IsEmpty())
	assert.Equal(t, []string{"_b", "a"}, part.Open)
}

func TestPartition_IsRestricted(t *testing.T) {
	part := Classify(testShape(), guard.Default())

	assert.True(t, part.IsRestricted("_b"))
	assert.False(t, part.IsRestricted("a"))
	assert.False(t, part.IsRestricted("nope"))
}
