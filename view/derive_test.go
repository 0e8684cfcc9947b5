package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardgen/guard"
	"guardgen/shape"
)

func TestRestrict_OpenMemberTransparency(t *testing.T) {
	src := testShape()
	derived := Restrict(src, guard.Default()).Shape()

	want, _ := src.Member("a")
	got, ok := derived.Member("a")
	require.True(t, ok)
	assert.Equal(t, want, got, "open members pass through unchanged")
}

func TestRestrict_RestrictedMembersReadOnly(t *testing.T) {
	derived := Restrict(testShape(), guard.Default()).Shape()

	m, ok := derived.Member("_b")
	require.True(t, ok)
	assert.True(t, m.ReadOnly)
}

func TestRestrict_ElidesNonOpenMembers(t *testing.T) {
	derived := Restrict(testShape(), guard.Default()).Shape()

	_, ok := derived.Member("_sub")
	assert.False(t, ok, "subclass members are not part of the published surface")

	_, ok = derived.Member("secret")
	assert.False(t, ok, "private members are not part of the published surface")
}

func TestRestrict_Idempotent(t *testing.T) {
	p := guard.Default()

	once := Restrict(testShape(), p)
	twice := Restrict(once.Shape(), p)

	assert.True(t, once.Shape().Equal(twice.Shape()))
	assert.Equal(t, once.Partition(), twice.Partition())
}

func TestUnsafeRelax_RoundTripOnPublishedMembers(t *testing.T) {
	src := shape.New(
		shape.Member{Name: "a", Type: "string", Visibility: shape.VisibilityOpen},
		shape.Member{Name: "_b", Type: "int", Visibility: shape.VisibilityOpen},
	)

	relaxed := UnsafeRelax(Restrict(src, guard.Default()))

	assert.Empty(t, cmp.Diff(src.Members(), relaxed.Members()),
		"relax(restrict(S)) equals S when S has only open-visibility members")
}

func TestUnsafeRelax_KeepsSourceReadOnlyMembers(t *testing.T) {
	// Constants capture as read-only source members. Relaxing a view that
	// restricted one must restore the source member verbatim, not grant
	// mutability the source never had.
	src := shape.New(
		shape.Member{Name: "MaxStock", Type: "int", Visibility: shape.VisibilityOpen, ReadOnly: true},
		shape.Member{Name: "Stock", Type: "int", Visibility: shape.VisibilityOpen},
	)

	relaxed := UnsafeRelax(Restrict(src, guard.ByName("MaxStock", "Stock")))

	maxStock, ok := relaxed.Member("MaxStock")
	require.True(t, ok)
	assert.True(t, maxStock.ReadOnly)

	stock, ok := relaxed.Member("Stock")
	require.True(t, ok)
	assert.False(t, stock.ReadOnly)

	assert.True(t, src.Equal(relaxed), "relax(restrict(S)) equals S member for member")
}

func TestUnsafeRelax_NoOriginVerification(t *testing.T) {
	// A view derived from one shape relaxes into that shape's structure
	// regardless of what the caller believes it originated from. This is
	// the documented soundness gap of the unchecked escape.
	forged := Restrict(shape.New(
		shape.Member{Name: "_b", Type: "bool", Visibility: shape.VisibilityOpen},
	), guard.Default())

	relaxed := UnsafeRelax(forged)

	m, ok := relaxed.Member("_b")
	require.True(t, ok)
	assert.False(t, m.ReadOnly)
	assert.Equal(t, "bool", m.Type)
}
