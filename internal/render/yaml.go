package render

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dshills/axiom/internal/schema"
)

type yamlRenderer struct{}

func (r *yamlRenderer) Categories(list *schema.CategoryList) ([]byte, error) { return encodeYAML(list) }
func (r *yamlRenderer) Results(res *schema.Results) ([]byte, error)          { return encodeYAML(res) }
func (r *yamlRenderer) Rule(view *schema.RuleView) ([]byte, error)           { return encodeYAML(view) }
func (r *yamlRenderer) Lint(report *schema.LintReport) ([]byte, error)       { return encodeYAML(report) }

func encodeYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("rendering yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("rendering yaml: %w", err)
	}
	return buf.Bytes(), nil
}
