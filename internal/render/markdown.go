package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/dshills/axiom/internal/schema"
)

type markdownRenderer struct{}

const fence = "```"

var mdFuncs = template.FuncMap{
	"join":  strings.Join,
	"fence": func() string { return fence },
}

var mdTemplates = template.Must(template.New("md").Funcs(mdFuncs).Parse(`
{{- define "categories" -}}
# Axiom Categories

| Category | Icon | Rules |
|---|---|---|
{{ range .Categories }}| {{ .Name }} (` + "`{{ .ID }}`" + `) | {{ .Icon }} | {{ .RuleCount }} |
{{ end }}
{{- end }}

{{- define "section" -}}
### {{ .Title }}
{{ if eq .Kind "text" }}
{{ .Content }}
{{ else if eq .Kind "list" }}
{{ range .Items }}- {{ . }}
{{ end }}{{ else if eq .Kind "code" }}
{{ fence }}{{ .Language }}
{{ .Code }}
{{ fence }}
{{ end }}
{{- end }}

{{- define "rule" -}}
## {{ .Rule.Title }}

` + "`{{ .Rule.ID }}`" + `{{ if .CategoryName }} · {{ .CategoryName }}{{ end }}{{ if .Rule.Tags }} · {{ join .Rule.Tags ", " }}{{ end }}

{{ .Rule.Desc }}

- **Do:** {{ .Rule.Do }}
- **Don't:** {{ .Rule.Dont }}

[Permalink]({{ .Link }})
{{ range .Sections }}
{{ template "section" . }}{{ end }}
{{- if .Contrast }}
### Contrast

Bold text appears only in the recommended pattern, struck text only in the discouraged one.

{{ range .Contrast }}{{ if eq .Op "delete" }}**{{ .Text }}**{{ else if eq .Op "insert" }}~~{{ .Text }}~~{{ else }}{{ .Text }}{{ end }}{{ end }}
{{ end }}
{{- if .Previews }}
### Preview
{{ range .Previews }}
{{ if eq .Variant "do" }}Do{{ else }}Don't{{ end }}:

{{ fence }}
{{ join .Lines "\n" }}
{{ fence }}
{{ end }}{{ end }}
{{- end }}

{{- define "results" -}}
# Axiom Rules
{{ if .Query }}
Query: ` + "`{{ .Query }}`" + ` · {{ .Total }} match{{ if ne .Total 1 }}es{{ end }}
{{ end }}
{{- if not .Groups }}
No rules match{{ if .Query }} "{{ .Query }}"{{ end }}.
{{ end }}
{{- range .Groups }}
## {{ .Name }}

{{ range .Rules }}- **{{ .Title }}** (` + "`{{ .ID }}`" + `): {{ .Desc }}
{{ end }}{{ end }}
{{- if .Selected }}
---

{{ template "rule" .Selected }}{{ end }}
{{- end }}

{{- define "lint" -}}
# Axiom Lint Report

**Verdict:** {{ .Summary.Verdict }}
**Score:** {{ .Summary.Score }}/100
**Critical:** {{ .Summary.CriticalCount }} | **Warn:** {{ .Summary.WarnCount }} | **Info:** {{ .Summary.InfoCount }}
> Note: counts reflect all findings; --severity-threshold may hide some from this output.

## Files
{{ range .Files }}
- ` + "`{{ .Path }}`" + `: {{ .Categories }} categories, {{ .Rules }} rules
{{- end }}
{{ if .Findings }}
---

## Findings
{{ range .Findings }}
### {{ .ID }} · {{ .Severity }} · {{ .Kind }}
**{{ .Title }}**

{{ .Description }}
{{ with .Evidence }}
> {{ .Path }}{{ if .Line }} L{{ .Line }}{{ end }}
{{ end }}{{ end }}{{ end }}
{{- end }}
`))

func (r *markdownRenderer) Categories(list *schema.CategoryList) ([]byte, error) {
	return executeMarkdown("categories", list)
}

func (r *markdownRenderer) Results(res *schema.Results) ([]byte, error) {
	return executeMarkdown("results", res)
}

func (r *markdownRenderer) Rule(view *schema.RuleView) ([]byte, error) {
	return executeMarkdown("rule", view)
}

func (r *markdownRenderer) Lint(report *schema.LintReport) ([]byte, error) {
	return executeMarkdown("lint", report)
}

func executeMarkdown(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.Bytes(), nil
}
