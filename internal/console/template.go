package console

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

var templateFuncs = sprig.TxtFuncMap()

const lookTemplate = `The dog is at {{ printf "%.1f" .Player.Position.X }}, {{ printf "%.1f" .Player.Position.Z }} facing {{ .Facing }}{{ if .Player.Moving }}, trotting{{ end }}.
{{- if .Nearby }}
Nearby: {{ join ", " .Nearby }}.
{{- else }}
Nobody is around.
{{- end }}
{{ len .Props }} {{ plural "food can" "food cans" (len .Props) }} on the ground.
`

const helpTemplate = `Commands:
{{- range . }}
  {{ .Usage | trunc 24 | printf "%-24s" }} {{ .Help }}
{{- end }}
`

func parseTemplate(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(templateFuncs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s template: %w", name, err)
	}
	return tmpl, nil
}

func expand(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing %s template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
