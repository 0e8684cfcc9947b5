package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/go/packages"

	"guardgen/shape"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// GuardTag is the struct tag key carrying a member's visibility class.
const GuardTag = "guard"

var (
	ErrEntityNotFound = errors.New("entity type not found in loaded packages")
	ErrNotAStruct     = errors.New("entity type is not a struct")
)

// Loader loads Go packages and captures entity facet shapes from them.
// Each entity is captured at most once; repeated Capture calls for the
// same identity return the same result.
type Loader struct {
	pkgs     []*packages.Package
	captured map[shape.EntityID]*Captured
}

// Load loads the given package patterns and returns a Loader over them.
// Patterns are standard Go package patterns (e.g., "./catalog").
func Load(patterns ...string) (*Loader, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	return &Loader{
		pkgs:     pkgs,
		captured: make(map[shape.EntityID]*Captured),
	}, nil
}

// Packages returns the import paths of all loaded packages.
func (l *Loader) Packages() []string {
	paths := make([]string, 0, len(l.pkgs))
	for _, pkg := range l.pkgs {
		paths = append(paths, pkg.PkgPath)
	}

	return paths
}

// Dirs returns the directories containing the loaded packages' files.
func (l *Loader) Dirs() []string {
	seen := make(map[string]struct{})

	var dirs []string

	for _, pkg := range l.pkgs {
		for _, f := range pkg.GoFiles {
			dir := filepath.Dir(f)
			if _, ok := seen[dir]; ok {
				continue
			}

			seen[dir] = struct{}{}
			dirs = append(dirs, dir)
		}
	}

	return dirs
}

// Capture builds the facet shapes for the named entity. The instance
// facet comes from the struct's fields, the static facet from exported
// package-level vars and consts whose name is prefixed by the type name.
func (l *Loader) Capture(id shape.EntityID) (*Captured, error) {
	if c, ok := l.captured[id]; ok {
		return c, nil
	}

	pkg := l.findPackage(id.PkgPath)
	if pkg == nil {
		return nil, fmt.Errorf("%w: package %q not loaded", ErrEntityNotFound, id.PkgPath)
	}

	obj := pkg.Types.Scope().Lookup(id.Name)
	if obj == nil {
		return nil, fmt.Errorf("%w: %s", ErrEntityNotFound, id)
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotAStruct, id)
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotAStruct, id)
	}

	c := &Captured{
		PkgName:       pkg.Types.Name(),
		Statics:       make(map[string]StaticDecl),
		Imports:       make(map[string]string),
		MemberImports: make(map[string][]string),
	}

	// Generated files always reference the entity's package; record its
	// name up front so the import gets an alias even when no member type
	// routes through the qualifier.
	c.Imports[id.PkgPath] = pkg.Types.Name()

	c.Entity = shape.Entity{
		ID:       id,
		Instance: captureInstance(st, c),
		Static:   captureStatic(pkg, id.Name, c),
	}

	l.captured[id] = c

	return c, nil
}

func (l *Loader) findPackage(pkgPath string) *packages.Package {
	for _, pkg := range l.pkgs {
		if pkg.PkgPath == pkgPath {
			return pkg
		}
	}

	return nil
}

// memberQualifier renders package names while recording which imports the
// member's type pulls in.
func (c *Captured) memberQualifier(memberName string) types.Qualifier {
	return func(p *types.Package) string {
		if _, ok := c.Imports[p.Path()]; !ok {
			c.Imports[p.Path()] = p.Name()
		}

		paths := c.MemberImports[memberName]
		for _, existing := range paths {
			if existing == p.Path() {
				return p.Name()
			}
		}

		c.MemberImports[memberName] = append(paths, p.Path())

		return p.Name()
	}
}

// captureInstance extracts the instance facet from struct fields.
// Visibility comes from the export status and the guard tag: exported
// fields are open unless tagged `guard:"subclass"`, unexported fields are
// private. Embedded fields keep their type name as the member name.
func captureInstance(st *types.Struct, c *Captured) shape.Shape {
	var members []shape.Member

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		tag := reflect.StructTag(st.Tag(i))

		vis := shape.VisibilityPrivate
		if field.Exported() {
			vis = shape.VisibilityOpen
			if tag.Get(GuardTag) == "subclass" {
				vis = shape.VisibilitySubclass
			}
		}

		members = append(members, shape.Member{
			Name:       field.Name(),
			Type:       types.TypeString(field.Type(), c.memberQualifier(field.Name())),
			Visibility: vis,
		})
	}

	return shape.New(members...)
}

// captureStatic extracts the static facet: every exported package-level
// var or const named "<Entity><Member>" becomes the static member
// <Member>. The member part must itself start with an upper-case letter
// so that "Products" never reads as a member "s" of Product.
func captureStatic(pkg *packages.Package, entityName string, c *Captured) shape.Shape {
	scope := pkg.Types.Scope()

	var members []shape.Member

	for _, declName := range scope.Names() {
		memberName, ok := staticMemberName(declName, entityName)
		if !ok {
			continue
		}

		obj := scope.Lookup(declName)
		if !obj.Exported() {
			continue
		}

		var isConst bool

		switch obj.(type) {
		case *types.Var:
		case *types.Const:
			isConst = true
		default:
			continue
		}

		// Untyped constants default to their concrete type so the
		// rendered type is valid in generated source.
		objType := obj.Type()
		if isConst {
			objType = types.Default(objType)
		}

		members = append(members, shape.Member{
			Name:       memberName,
			Type:       types.TypeString(objType, c.memberQualifier(memberName)),
			Visibility: shape.VisibilityOpen,
			ReadOnly:   isConst,
		})

		c.Statics[memberName] = StaticDecl{
			DeclName: declName,
			Const:    isConst,
		}
	}

	return shape.New(members...)
}

// staticMemberName splits "<Entity><Member>" and returns the member part.
func staticMemberName(declName, entityName string) (string, bool) {
	if !strings.HasPrefix(declName, entityName) || declName == entityName {
		return "", false
	}

	member := strings.TrimPrefix(declName, entityName)

	first, _ := utf8.DecodeRuneInString(member)
	if !unicode.IsUpper(first) {
		return "", false
	}

	return member, true
}
