// Package query answers which rules match a search and how matches group
// by category.
package query

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/dshills/axiom/internal/schema"
)

// Filter returns the rules whose title, description or any tag contains
// query as a case-insensitive substring, in input order. A query that is
// empty after trimming matches every rule and rules is returned as is.
func Filter(rules []schema.Rule, query string) []schema.Rule {
	query = strings.TrimSpace(query)
	if query == "" {
		return rules
	}

	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]schema.Rule, 0, len(rules))
	for _, r := range rules {
		if matches(fold, r, needle) {
			out = append(out, r)
		}
	}
	return out
}

func matches(fold cases.Caser, r schema.Rule, needle string) bool {
	if strings.Contains(fold.String(r.Title), needle) || strings.Contains(fold.String(r.Desc), needle) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(fold.String(tag), needle) {
			return true
		}
	}
	return false
}

// GroupByCategory partitions rules by category, following the order of
// categories. Categories with no rules are left out, so an empty result
// means nothing matched.
func GroupByCategory(rules []schema.Rule, categories []schema.Category) []schema.CategoryGroup {
	groups := make([]schema.CategoryGroup, 0, len(categories))
	for _, c := range categories {
		var members []schema.Rule
		for _, r := range rules {
			if r.Category == c.ID {
				members = append(members, r)
			}
		}
		if len(members) == 0 {
			continue
		}
		groups = append(groups, schema.CategoryGroup{ID: c.ID, Name: c.Name, Rules: members})
	}
	return groups
}

// Find returns the rule with the given id. An empty id is never found.
// If ids collide, the first rule in order wins.
func Find(rules []schema.Rule, id string) (schema.Rule, bool) {
	if id == "" {
		return schema.Rule{}, false
	}
	for _, r := range rules {
		if r.ID == id {
			return r, true
		}
	}
	return schema.Rule{}, false
}
