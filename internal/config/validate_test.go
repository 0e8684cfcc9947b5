package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardgen/guard"
)

var patternSuffixRaw = guard.Spec{Kind: guard.KindSuffix, Suffix: "Raw"}

func validFile() *File {
	f := &File{
		Packages: []string{"./catalog"},
		Entities: []Entity{
			{Type: "catalog.Product", Restricted: []string{"Stock"}},
		},
	}
	applyDefaults(f)

	return f
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, Validate(validFile()))
}

func TestValidate_NoPackages(t *testing.T) {
	f := validFile()
	f.Packages = nil

	assert.ErrorIs(t, Validate(f), ErrNoPackages)
}

func TestValidate_NoEntities(t *testing.T) {
	f := validFile()
	f.Entities = nil

	assert.ErrorIs(t, Validate(f), ErrNoEntities)
}

func TestValidate_BadOutputPackage(t *testing.T) {
	f := validFile()
	f.Output.Package = "my-views"

	assert.ErrorIs(t, Validate(f), ErrBadPackageName)
}

func TestValidate_DuplicateEntity(t *testing.T) {
	f := validFile()
	f.Entities = append(f.Entities, Entity{Type: "catalog.Product"})

	assert.ErrorIs(t, Validate(f), ErrDuplicateEntity)
}

func TestValidate_PatternConflict(t *testing.T) {
	f := validFile()
	f.Entities[0].Pattern = &patternSuffixRaw

	assert.ErrorIs(t, Validate(f), ErrPatternConflict)
}
