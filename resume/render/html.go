package render

import (
	"bytes"
	"fmt"
	"html/template"
)

// HTML produces the printable surface consumed by the PDF raster path. The
// page is self-contained: inline CSS, A4-width body, one wrapper class per
// template so variants can shade differently.
func HTML(doc *Document) (string, error) {
	var buf bytes.Buffer
	data := htmlData{
		Template: doc.Template,
		Accent:   accentFor(doc.Template),
		Blocks:   doc.Blocks,
	}
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render html template=%s: %w", doc.Template, err)
	}
	return buf.String(), nil
}

type htmlData struct {
	Template string
	Accent   string
	Blocks   []Block
}

func accentFor(name string) string {
	if accent, ok := accents[name]; ok {
		return accent
	}
	return "#222222"
}

var accents = map[string]string{
	"classic":      "#1a1a1a",
	"modern":       "#0b5fff",
	"minimal":      "#444444",
	"elegant":      "#5b3a29",
	"professional": "#13315c",
	"creative":     "#b23a48",
	"compact":      "#2f2f2f",
	"executive":    "#1f3d2b",
	"technical":    "#0f6b5c",
	"academic":     "#3c2a4d",
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { width: 794px; margin: 0 auto; font-family: Georgia, 'Times New Roman', serif; color: #1a1a1a; padding: 36px 48px; }
  .tpl-modern body, .modern { font-family: Helvetica, Arial, sans-serif; }
  h1.name { font-size: 26px; margin: 0 0 2px 0; color: {{.Accent}}; }
  p.contact { font-size: 11px; margin: 0 0 14px 0; color: #555; }
  h2.section { font-size: 13px; letter-spacing: 1px; border-bottom: 1px solid {{.Accent}}; color: {{.Accent}}; margin: 14px 0 6px 0; padding-bottom: 2px; }
  p.body { font-size: 11px; margin: 2px 0; line-height: 1.45; }
  .entry { display: flex; justify-content: space-between; font-size: 11.5px; font-weight: bold; margin-top: 6px; }
  .entry .meta { font-weight: normal; color: #555; white-space: nowrap; margin-left: 12px; }
  ul.items { font-size: 11px; margin: 2px 0 2px 18px; padding: 0; line-height: 1.45; }
</style>
</head>
<body class="tpl-{{.Template}}">
{{- range .Blocks}}
{{- if eq .Kind 0}}
<h1 class="name">{{.Text}}</h1>
{{- else if eq .Kind 1}}
<p class="contact">{{.Text}}</p>
{{- else if eq .Kind 2}}
<h2 class="section">{{.Text}}</h2>
{{- else if eq .Kind 3}}
<p class="body">{{.Text}}</p>
{{- else if eq .Kind 4}}
<div class="entry"><span>{{.Text}}</span>{{if .Meta}}<span class="meta">{{.Meta}}</span>{{end}}</div>
{{- else if eq .Kind 5}}
<ul class="items">{{range .Items}}<li>{{.}}</li>{{end}}</ul>
{{- end}}
{{- end}}
</body>
</html>`))
