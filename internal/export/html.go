package export

import (
	_ "embed"
	"html/template"
	"strings"
)

//go:embed templates/form.html.tmpl
var formTemplateSource string

var formTemplate = template.Must(template.New("form").Parse(formTemplateSource))

// RenderHTML produces the printable HTML document for a snapshot.
func RenderHTML(snap Snapshot) (string, error) {
	var sb strings.Builder
	if err := formTemplate.Execute(&sb, snap); err != nil {
		return "", NewExportError(string(snap.Form), "render", err)
	}
	return sb.String(), nil
}
