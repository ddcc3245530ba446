package preview

import (
	"bytes"
	_ "embed"
	"html/template"
)

//go:embed preview.html
var previewTemplate string

// tmpl is parsed once at startup; the template is embedded, so a parse
// failure is a programming error.
var tmpl = template.Must(template.New("preview").Parse(previewTemplate))

// RenderHTML renders the view as a standalone, print-ready A4 HTML page.
// This is the document fed to the browser print pipeline.
func RenderHTML(v View) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, v); err != nil {
		return nil, &RenderError{Message: "failed to execute preview template", Cause: err}
	}
	return buf.Bytes(), nil
}
