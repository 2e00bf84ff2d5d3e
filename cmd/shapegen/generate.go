package main

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"
)

const catalogTemplate = `// Code generated by shapegen from {{.Source}}; DO NOT EDIT.

package {{.Package}}

var kindColors = [...]Color{
{{- range .Kinds}}
	{{.Name}}: {R: {{.R}}, G: {{.G}}, B: {{.B}}},
{{- end}}
}

var kindMasks = [...][]Mask{
{{- range .Kinds}}
	{{.Name}}: {
	{{- range .Masks}}
		{
		{{- range .}}
			{ {{- range $i, $c := .}}{{if $i}}, {{end}}{{$c}}{{end -}} },
		{{- end}}
		},
	{{- end}}
	},
{{- end}}
}
`

var tmpl = template.Must(template.New("catalog").Parse(catalogTemplate))

// Generate renders the Go source for kinds. filename is only used by the
// formatter to resolve imports.
func Generate(pkg, source, filename string, kinds []Kind) ([]byte, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Package string
		Source  string
		Kinds   []Kind
	}{pkg, source, kinds})
	if err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	out, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return out, nil
}
