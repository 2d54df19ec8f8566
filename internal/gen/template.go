package gen

import (
	"text/template"

	"f2mex/fortran"
)

const moduleTemplate = `! Code generated by f2mex; DO NOT EDIT.
module {{.Module}}
  use iso_c_binding, only: c_long
  use iso_fortran_env, only: REAL32, REAL64
  implicit none
{{- if .Routines}}

  interface
{{- range .Routines}}
{{- if $.Comments}}
    ! {{.Name}}: {{len .Args}} argument(s), kind {{.RealKind.Name}} ({{.RealKind.Bytes}} bytes)
{{- end}}
    subroutine {{template "name" .}}({{range $i, $a := .Args}}{{if $i}}, {{end}}{{$a.Name}}{{end}}){{with .Bind}} bind(c, name="{{.}}"){{end}}
      import :: c_long, REAL32, REAL64
{{- range .Args}}
      {{template "arg" .}}
{{- end}}
    end subroutine {{template "name" .}}
{{- end}}
  end interface
{{- end}}
end module {{.Module}}
`

const nameTemplate = `{{if .Prefixed}}{{typecode .Kind}}{{end}}{{.Name}}`

const argTemplate = `{{if eq .Type "integer"}}integer(kind=c_long){{else}}real(kind={{.RealKind.Name}}){{end}}, ` +
	`{{with rank .Rank}}{{.}} {{end}}intent({{.Intent.Keyword}}) :: {{.Name}}`

var moduleTmpl = template.Must(
	template.Must(
		template.Must(template.New("module").Funcs(fortran.FuncMap()).Parse(moduleTemplate)).
			New("name").Parse(nameTemplate)).
		New("arg").Parse(argTemplate)).
	Lookup("module")
