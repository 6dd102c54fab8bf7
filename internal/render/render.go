// Package render formats query results, rule views and lint reports.
package render

import (
	"fmt"
	"io"

	"github.com/dshills/axiom/internal/schema"
)

// Renderer formats axiom output documents into bytes.
type Renderer interface {
	Categories(list *schema.CategoryList) ([]byte, error)
	Results(res *schema.Results) ([]byte, error)
	Rule(view *schema.RuleView) ([]byte, error)
	Lint(report *schema.LintReport) ([]byte, error)
}

// Color modes for the term format.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Options tune renderer output. Only the term format reads them.
type Options struct {
	Color string
	// Output is where the rendered bytes will be written. In auto color
	// mode styling is applied only when it is a terminal. Nil means os.Stdout.
	Output io.Writer
}

// NewRenderer returns a Renderer for the given format string.
// Supported formats: "json" (default), "yaml", "md", "term".
func NewRenderer(format string, opts Options) (Renderer, error) {
	switch format {
	case "json":
		return &jsonRenderer{}, nil
	case "yaml":
		return &yamlRenderer{}, nil
	case "md":
		return &markdownRenderer{}, nil
	case "term":
		return newTermRenderer(opts), nil
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are json, yaml, md, term", format)
	}
}

// Data encodes an arbitrary document in a data format (json or yaml).
// It backs commands whose output has no prose rendering.
func Data(format string, v any) ([]byte, error) {
	switch format {
	case "json":
		return encodeJSON(v)
	case "yaml":
		return encodeYAML(v)
	default:
		return nil, fmt.Errorf("format %q is not supported here: use json or yaml", format)
	}
}
