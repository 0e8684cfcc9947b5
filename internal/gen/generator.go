package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"

	"github.com/go-openapi/inflect"

	"guardgen/internal/common"
	"guardgen/internal/plan"
	"guardgen/shape"
)

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "catalog_product_view.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generator generates view files from a resolved plan.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders one view file per planned entity. Output is
// deterministic: files follow configuration order and members are sorted
// by name within each section.
func (g *Generator) Generate(p *plan.Plan) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for i := range p.Entities {
		ep := &p.Entities[i]

		file, err := g.generateEntity(p, ep)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", ep.Captured.Entity.ID, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

func (g *Generator) generateEntity(p *plan.Plan, ep *plan.EntityPlan) (*GeneratedFile, error) {
	data := g.buildTemplateData(p, ep)

	var buf bytes.Buffer
	if err := viewTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}

	return &GeneratedFile{
		Filename: g.filename(ep),
		Content:  src,
	}, nil
}

// filename returns the generated file name for an entity, e.g.
// "catalog_product_view.go".
func (g *Generator) filename(ep *plan.EntityPlan) string {
	name := inflect.Underscore(ep.Captured.Entity.ID.Name)
	return fmt.Sprintf("%s_%s_view.go", ep.Captured.PkgName, name)
}

func (g *Generator) buildTemplateData(p *plan.Plan, ep *plan.EntityPlan) *templateData {
	id := ep.Captured.Entity.ID
	entityName := id.Name

	data := &templateData{
		Package:     p.Package,
		Source:      id.String(),
		Pattern:     ep.Pattern.String(),
		ViewName:    entityName + "View",
		StaticsName: entityName + "Statics",
		WrapFunc:    "Wrap" + entityName,
		EscapeFunc:  "UnsafeRelax" + entityName,
		EntityRef:   ep.Captured.PkgName + "." + entityName,
		TrackOrigin: ep.TrackOrigin,
		Escape:      p.AllowUnchecked,
	}

	used := map[string]struct{}{
		id.PkgPath: {}, // the entity's own package is always referenced
	}

	for _, m := range ep.Wrapped.Instance().Shape().Members() {
		data.Accessors = append(data.Accessors, accessorData{
			Name:     m.Name,
			Type:     m.Type,
			Settable: !m.ReadOnly,
		})

		markUsed(used, ep, m)
	}

	for _, m := range ep.Wrapped.Static().Shape().Members() {
		decl, ok := ep.Captured.Statics[m.Name]
		if !ok {
			continue
		}

		data.Statics = append(data.Statics, staticData{
			Name:     m.Name,
			Type:     m.Type,
			Ref:      ep.Captured.PkgName + "." + decl.DeclName,
			Settable: !m.ReadOnly,
		})

		markUsed(used, ep, m)
	}

	data.HasStatics = len(data.Statics) > 0
	data.Imports = buildImports(used, ep.Captured.Imports)

	return data
}

func markUsed(used map[string]struct{}, ep *plan.EntityPlan, m shape.Member) {
	for _, p := range ep.Captured.MemberImports[m.Name] {
		used[p] = struct{}{}
	}
}

// buildImports turns the used import set into a sorted import list,
// aliasing any import whose package name differs from its path base.
func buildImports(used map[string]struct{}, names map[string]string) []importSpec {
	specs := make([]importSpec, 0, len(used))

	for importPath := range used {
		name := names[importPath]
		specs = append(specs, importSpec{
			Path:    importPath,
			Name:    name,
			Aliased: name != "" && name != common.PkgAlias(importPath),
		})
	}

	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Path < specs[j].Path
	})

	return specs
}
