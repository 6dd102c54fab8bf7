// Package catalog holds the compiled-in table of rule categories and rules.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dshills/axiom/internal/schema"
)

// Store is an immutable, in-memory catalog. The zero value is an empty catalog.
type Store struct {
	categories []schema.Category
	rules      []schema.Rule
}

var builtin = New(builtinCategories(), builtinRules())

// Default returns the compiled-in catalog.
func Default() *Store {
	return builtin
}

// New returns a Store over copies of the given categories and rules.
// Declaration order is kept as the canonical order.
func New(categories []schema.Category, rules []schema.Rule) *Store {
	rs := make([]schema.Rule, len(rules))
	for i, r := range rules {
		r.Tags = slices.Clone(r.Tags)
		rs[i] = r
	}
	return &Store{
		categories: slices.Clone(categories),
		rules:      rs,
	}
}

// Categories returns all categories in declaration order.
func (s *Store) Categories() []schema.Category {
	return slices.Clone(s.categories)
}

// Rules returns all rules in declaration order.
func (s *Store) Rules() []schema.Rule {
	return slices.Clone(s.rules)
}

// Category returns the category with the given id.
func (s *Store) Category(id string) (schema.Category, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return schema.Category{}, false
}

// Validate reports every violation of the catalog invariants: unique
// category ids, unique rule ids, rule categories that exist, and the
// required rule fields.
func (s *Store) Validate() error {
	var errs []error

	cats := make(map[string]bool, len(s.categories))
	for i, c := range s.categories {
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("category[%d]: id is required", i))
			continue
		}
		if cats[c.ID] {
			errs = append(errs, fmt.Errorf("category[%d]: duplicate id %q", i, c.ID))
		}
		cats[c.ID] = true
	}

	ids := make(map[string]bool, len(s.rules))
	for i, r := range s.rules {
		prefix := fmt.Sprintf("rule[%d]", i)
		if r.ID == "" {
			errs = append(errs, fmt.Errorf("%s: id is required", prefix))
		} else if ids[r.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", prefix, r.ID))
		}
		ids[r.ID] = true
		if !cats[r.Category] {
			errs = append(errs, fmt.Errorf("%s (%s): unknown category %q", prefix, r.ID, r.Category))
		}
		if r.Title == "" {
			errs = append(errs, fmt.Errorf("%s (%s): title is required", prefix, r.ID))
		}
		if r.Do == "" || r.Dont == "" {
			errs = append(errs, fmt.Errorf("%s (%s): do and dont are required", prefix, r.ID))
		}
	}

	return errors.Join(errs...)
}

// IconFor returns the icon name for a category id, falling back to "layers"
// for categories without a dedicated icon.
func IconFor(categoryID string) string {
	switch categoryID {
	case "typography":
		return "type"
	case "layout":
		return "layout-grid"
	case "color":
		return "palette"
	case "components":
		return "box-select"
	case "forms":
		return "text-cursor-input"
	case "system":
		return "cpu"
	default:
		return "layers"
	}
}

func builtinCategories() []schema.Category {
	return []schema.Category{
		{ID: "typography", Name: "Typography & Text"},
		{ID: "layout", Name: "Layout & Spacing"},
		{ID: "color", Name: "Color & Depth"},
		{ID: "components", Name: "Components & Actions"},
		{ID: "forms", Name: "Forms & Inputs"},
		{ID: "system", Name: "System & Logic"},
		{ID: "accessibility", Name: "Accessibility & Inclusivity"},
	}
}

func builtinRules() []schema.Rule {
	var rules []schema.Rule
	for _, part := range [][]schema.Rule{
		typographyRules(),
		layoutRules(),
		colorRules(),
		componentRules(),
		formRules(),
		systemRules(),
		typographyAdditions(),
		layoutAdditions(),
		colorAdditions(),
		componentAdditions(),
		formAdditions(),
		systemAdditions(),
		accessibilityRules(),
	} {
		rules = append(rules, part...)
	}
	return rules
}
