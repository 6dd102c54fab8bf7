// Package preview renders small text illustrations of a rule's recommended
// and discouraged variants.
package preview

import (
	"strings"

	"github.com/dshills/axiom/internal/schema"
)

// Variant selects which side of a rule to illustrate.
type Variant string

const (
	Do   Variant = "do"
	Dont Variant = "dont"
)

// KindGeneric marks illustrations built only from the rule's do/dont text.
const KindGeneric = "generic"

// Illustrator draws one variant of a rule as text lines.
type Illustrator struct {
	Kind string
	Draw func(rule schema.Rule, v Variant) []string
}

// Registry maps rule ids to bespoke illustrators. Ids without an entry fall
// back to the generic frame.
type Registry map[string]Illustrator

// Default returns the built-in registry.
func Default() Registry {
	return builtin
}

// Render illustrates one variant of rule.
func (r Registry) Render(rule schema.Rule, v Variant) schema.Illustration {
	ill, ok := r[rule.ID]
	if !ok {
		ill = Illustrator{Kind: KindGeneric, Draw: generic}
	}
	return schema.Illustration{
		RuleID:  rule.ID,
		Variant: string(v),
		Kind:    ill.Kind,
		Lines:   ill.Draw(rule, v),
	}
}

// Pair illustrates both variants of rule, do first.
func (r Registry) Pair(rule schema.Rule) []schema.Illustration {
	return []schema.Illustration{r.Render(rule, Do), r.Render(rule, Dont)}
}

func generic(rule schema.Rule, v Variant) []string {
	label := rule.Do
	if v == Dont {
		label = rule.Dont
	}
	return frame(label)
}

// frame draws lines inside a box sized to the widest line.
func frame(lines ...string) []string {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	out := make([]string, 0, len(lines)+2)
	out = append(out, "┌"+strings.Repeat("─", width+2)+"┐")
	for _, l := range lines {
		out = append(out, "│ "+l+strings.Repeat(" ", width-len([]rune(l)))+" │")
	}
	out = append(out, "└"+strings.Repeat("─", width+2)+"┘")
	return out
}

func pick[T any](v Variant, do, dont T) T {
	if v == Do {
		return do
	}
	return dont
}
