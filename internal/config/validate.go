package config

import (
	"errors"
	"fmt"
	"go/token"
)

var (
	ErrNoPackages       = errors.New("config lists no packages to load")
	ErrNoEntities       = errors.New("config lists no entities to wrap")
	ErrBadTypeFormat    = errors.New("entity type must be \"pkg.TypeName\"")
	ErrPatternConflict  = errors.New("pattern and restricted are mutually exclusive")
	ErrPackageNotLoaded = errors.New("package not in the loaded set")
	ErrAmbiguousType    = errors.New("entity type is ambiguous")
	ErrDuplicateEntity  = errors.New("entity configured more than once")
	ErrBadPackageName   = errors.New("output package is not a valid identifier")
)

// Validate checks the structural validity of a configuration file: that
// it names packages and entities, that every entity block is well formed,
// and that its pattern spec compiles. Resolution against actually loaded
// packages happens later, when shapes are captured.
func Validate(f *File) error {
	if len(f.Packages) == 0 {
		return ErrNoPackages
	}

	if len(f.Entities) == 0 {
		return ErrNoEntities
	}

	if !token.IsIdentifier(f.Output.Package) {
		return fmt.Errorf("%w: %q", ErrBadPackageName, f.Output.Package)
	}

	seen := make(map[string]struct{}, len(f.Entities))

	for _, e := range f.Entities {
		if _, ok := seen[e.Type]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateEntity, e.Type)
		}

		seen[e.Type] = struct{}{}

		if _, err := e.CompilePattern(); err != nil {
			return err
		}
	}

	return nil
}
