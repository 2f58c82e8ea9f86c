package gen

import "text/template"

// bundleTemplate renders the declarations generated for one artifact.
// Output is formatted afterwards, so only token order matters here.
var bundleTemplate = template.Must(template.New("bundle").Parse(`
{{- define "attrs"}}{{range .Attrs}}{{.}}
{{end}}{{end -}}

{{- define "fields"}}{{$ptr := .Ptr}}{{$elem := .Elem}}{{range .Fields}}
{{- range .Doc}}
	{{.}}
{{- end}}
	{{.Name}} {{$ptr}}{{$elem}}{{with .Tag}} {{.}}{{end}}{{with .Comment}} {{.}}{{end}}
{{- end}}{{end -}}

{{- $w := printf "%s%s" .Name .Ref -}}
{{- $v := printf "%s%s" .ValueName .Ref -}}
{{- $r := printf "%s%s" .RefsName .Ref -}}
{{- $m := printf "%s%s" .MutsName .Ref -}}
{{- $arr := .ArrayType -}}
{{- $elem := .Elem -}}

{{range .Doc}}{{.}}
{{else}}{{if $.Comments}}// {{$.Name}} is an array of {{$.Len}} {{$.Elem}} values addressed by field name.
{{end}}{{end}}{{template "attrs" .}}type {{.Name}}{{.Decl}} {{$arr}}

{{if .Comments}}// {{.ValueName}} is the named-field form of {{.Name}}.
{{end}}{{template "attrs" .}}type {{.ValueName}}{{.Decl}} struct{ {{- template "fields" .Value}}{{if .Fields}}
{{end}}}

{{if .Comments}}// {{.RefsName}} is a read-only view of the fields of {{.Name}}.
{{end}}{{template "attrs" .}}type {{.RefsName}}{{.Decl}} struct {
	_arrayAsStruct *{{$arr}}
}

{{if .Comments}}// {{.MutsName}} holds a pointer to each field of {{.Name}}.
{{end}}{{template "attrs" .}}type {{.MutsName}}{{.Decl}} struct{ {{- template "fields" .Muts}}{{if .Fields}}
{{end}}}

{{if .Comments}}// {{.IndexName}} gives the array position of each field of {{.Name}}.
{{end}}{{template "attrs" .}}type {{.IndexName}} struct{}
{{if .Fields}}
{{if .Comments}}// Positions of the fields of {{.Name}}, usable in constant expressions.
{{end}}const (
{{- range .Fields}}
	{{$.IndexConst .Name}} = {{.Index}}
{{- end}}
)
{{end}}{{range .Fields}}
{{if $.Comments}}// {{.Name}} returns the position of {{.Name}} in {{$.Name}}.
{{end}}func ({{$.IndexName}}) {{.Name}}() int { return {{$.IndexConst .Name}} }
{{end}}
{{if .Comments}}// Val returns the named-field form of f.
{{end}}func (f {{$w}}) Val() {{$v}} {
	return {{$v}}{ {{- range .Fields}}
		{{.Name}}: f[{{.Index}}],
{{- end}}{{if .Fields}}
	{{end}}}
}

{{if .Comments}}// SetVal overwrites f with the fields of v.
{{end}}func (f *{{$w}}) SetVal(v {{$v}}) {
	*f = v.ToArrayStruct()
}

{{if .Comments}}// ToArrayStruct returns the array form of v.
{{end}}func (v {{$v}}) ToArrayStruct() {{$w}} {
	return {{$w}}{ {{- range .Fields}}v.{{.Name}}, {{end -}} }
}

{{if .Comments}}// ToArray returns a copy of the underlying array.
{{end}}func (f {{$w}}) ToArray() {{$arr}} {
	return {{$arr}}(f)
}

{{if .Comments}}// SetArray overwrites f with a.
{{end}}func (f *{{$w}}) SetArray(a {{$arr}}) {
	*f = {{$w}}(a)
}

{{if .Comments}}// AsArray returns f viewed as its underlying array.
{{end}}func (f *{{$w}}) AsArray() *{{$arr}} {
	return (*{{$arr}})(f)
}

{{if .Comments}}// Refs returns a read-only view of the fields of f.
{{end}}func (f *{{$w}}) Refs() {{$r}} {
	return {{$r}}{_arrayAsStruct: f.AsArray()}
}

{{if .Comments}}// Muts returns a pointer to each field of f.
{{end}}func (f *{{$w}}) Muts() {{$m}} {
{{- if .Fields}}
	a := f.AsArray()
{{- end}}
	return {{$m}}{ {{- range .Fields}}
		{{.Name}}: &a[{{.Index}}],
{{- end}}{{if .Fields}}
	{{end}}}
}

{{if .Comments}}// Index returns the field position marker of f.
{{end}}func (f {{$w}}) Index() {{.IndexName}} {
	return {{.IndexName}}{}
}
{{range .Fields}}
{{if $.Comments}}// {{.Name}} returns the current value of the {{.Name}} field.
{{end}}func (r {{$r}}) {{.Name}}() {{$elem}} {
	return r._arrayAsStruct[{{.Index}}]
}
{{end}}
{{- if .Runtime}}
var _ {{.Runtime}}.ArrayStruct[{{.ValueName}}, {{$arr}}, {{.RefsName}}, {{.MutsName}}, {{.IndexName}}] = (*{{.Name}})(nil)
{{end}}`))

// headerTemplate renders the first lines of a generated file.
var headerTemplate = template.Must(template.New("header").Parse(
	`// Code generated by {{.Generator}} from {{.Source}}. DO NOT EDIT.

//go:build !{{.Tag}}

`))
