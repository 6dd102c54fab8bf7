package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dshills/axiom/internal/schema"
)

type jsonRenderer struct{}

func (r *jsonRenderer) Categories(list *schema.CategoryList) ([]byte, error) { return encodeJSON(list) }
func (r *jsonRenderer) Results(res *schema.Results) ([]byte, error)          { return encodeJSON(res) }
func (r *jsonRenderer) Rule(view *schema.RuleView) ([]byte, error)           { return encodeJSON(view) }
func (r *jsonRenderer) Lint(report *schema.LintReport) ([]byte, error)       { return encodeJSON(report) }

// encodeJSON indents like json.MarshalIndent but leaves &, < and > as
// written; rule text is read by people, not embedded in HTML.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("rendering json: %w", err)
	}
	return buf.Bytes(), nil
}
