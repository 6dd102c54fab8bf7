// Package deepdive expands a rule into its structured deep-dive document.
package deepdive

import (
	"fmt"

	"github.com/dshills/axiom/internal/schema"
)

// Section titles, in output order.
const (
	TitleSummary        = "Summary"
	TitleWhyItMatters   = "Why it matters"
	TitleRisk           = "Risk when ignored"
	TitleImplementation = "Implementation notes"
	TitleReviewPrompts  = "Design review prompts"
	TitleRelatedSignals = "Related signals"
	TitleRecommended    = "Recommended"
	TitleAvoid          = "Avoid"
)

// SectionCount is the number of sections Build always returns.
const SectionCount = 8

// codeLanguage tags the do/don't snippets; they are prose-like fragments,
// not code in any particular language.
const codeLanguage = "text"

const noTagsSignal = "Cross-check this decision with adjacent components."

// baseTips close every implementation list regardless of category.
var baseTips = [...]string{
	"Use this decision consistently across the product surface.",
	"Validate in both desktop and mobile contexts.",
	"Break the rule only when you can articulate a measurable UX gain.",
}

// Build returns the deep dive for rule: always SectionCount sections in a
// fixed order. It has no side effects and the result shares no memory with
// the knowledge table.
func Build(rule schema.Rule) []schema.Section {
	k := KnowledgeFor(rule.Category)

	implementation := make([]string, 0, 1+len(k.Implementation)+len(baseTips))
	implementation = append(implementation, "Default pattern: "+rule.Do)
	implementation = append(implementation, k.Implementation...)
	implementation = append(implementation, baseTips[:]...)

	return []schema.Section{
		schema.TextSection(TitleSummary, rule.Desc),
		schema.TextSection(TitleWhyItMatters, k.Impact),
		schema.TextSection(TitleRisk, fmt.Sprintf("%s Anti-pattern example: %s.", k.FailureMode, rule.Dont)),
		schema.ListSection(TitleImplementation, implementation),
		schema.ListSection(TitleReviewPrompts, k.ReviewPrompts),
		schema.ListSection(TitleRelatedSignals, relatedSignals(rule.Tags)),
		schema.CodeSection(TitleRecommended, rule.Do, codeLanguage),
		schema.CodeSection(TitleAvoid, rule.Dont, codeLanguage),
	}
}

func relatedSignals(tags []string) []string {
	if len(tags) == 0 {
		return []string{noTagsSignal}
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t + ": keep this pattern aligned."
	}
	return out
}
