package gen

import "text/template"

// templateData holds all data needed for one generated view file.
type templateData struct {
	Package     string
	Source      string // fully qualified entity, e.g. "guardgen/catalog.Product"
	Pattern     string // canonical pattern description
	Imports     []importSpec
	ViewName    string
	StaticsName string
	WrapFunc    string
	EscapeFunc  string
	EntityRef   string // entity type as referenced from the generated package
	Accessors   []accessorData
	Statics     []staticData
	TrackOrigin bool
	HasStatics  bool
	Escape      bool
}

// importSpec is a single import of the generated file.
type importSpec struct {
	Path string
	Name string
	// Aliased is true when the package name differs from the last path
	// element and the import needs an explicit name.
	Aliased bool
}

// accessorData describes one instance member accessor. Settable members
// get a setter alongside the getter; guarded members get the getter only.
type accessorData struct {
	Name     string
	Type     string
	Settable bool
}

// staticData describes one entity-level member accessor. Ref is the
// package-level declaration the accessor reads (and, for settable
// members, writes).
type staticData struct {
	Name     string
	Type     string
	Ref      string
	Settable bool
}

var viewTemplate = template.Must(template.New("view").Parse(`// Code generated by guardgen. DO NOT EDIT.
//
// Source:  {{.Source}}
// Pattern: {{.Pattern}}

package {{.Package}}
{{if .Imports}}
import (
{{- range .Imports}}
	{{if .Aliased}}{{.Name}} {{end}}"{{.Path}}"
{{- end}}
)
{{end}}
// {{.ViewName}} is the guarded view of {{.Source}}. Open members keep
// full access through the view; guarded members are read-only for any
// holder of the view.
type {{.ViewName}} struct {
	v *{{.EntityRef}}
}

// {{.WrapFunc}} wraps v in its guarded view. The view shares v's
// representation; wrapping copies nothing and has no runtime effect
// beyond constructing the handle.
func {{.WrapFunc}}(v *{{.EntityRef}}) {{.ViewName}} {
	return {{.ViewName}}{v: v}
}
{{range .Accessors}}
// {{.Name}} returns the {{.Name}} member.
func (w {{$.ViewName}}) {{.Name}}() {{.Type}} {
	return w.v.{{.Name}}
}
{{if .Settable}}
// Set{{.Name}} sets the {{.Name}} member.
func (w {{$.ViewName}}) Set{{.Name}}(value {{.Type}}) {
	w.v.{{.Name}} = value
}
{{end}}{{end}}{{if .TrackOrigin}}
// Recover returns the source value the view was derived from, with full
// access to every member restored. Available because the view was
// generated with origin tracking.
func (w {{.ViewName}}) Recover() *{{.EntityRef}} {
	return w.v
}
{{end}}{{if .HasStatics}}
// {{.StaticsName}} is the guarded entity-level facet of {{.Source}}.
type {{.StaticsName}} struct{}
{{range .Statics}}
// {{.Name}} returns the entity-level {{.Name}} member.
func ({{$.StaticsName}}) {{.Name}}() {{.Type}} {
	return {{.Ref}}
}
{{if .Settable}}
// Set{{.Name}} sets the entity-level {{.Name}} member.
func ({{$.StaticsName}}) Set{{.Name}}(value {{.Type}}) {
	{{.Ref}} = value
}
{{end}}{{end}}{{end}}{{if .Escape}}
// {{.EscapeFunc}} returns the source value without verifying origin.
// Unchecked escape: the caller asserts that w was legitimately derived
// from the value it claims to wrap. Prefer generating with track_origin
// and calling Recover.
func {{.EscapeFunc}}(w {{.ViewName}}) *{{.EntityRef}} {
	return w.v
}
{{end}}`))
