package query

import (
	"github.com/dshills/axiom/internal/catalog"
	"github.com/dshills/axiom/internal/contrast"
	"github.com/dshills/axiom/internal/deepdive"
	"github.com/dshills/axiom/internal/preview"
	"github.com/dshills/axiom/internal/schema"
	"github.com/dshills/axiom/internal/site"
)

// Engine binds the query functions and the deep-dive synthesizer to one
// catalog. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	store    *catalog.Store
	baseURL  string
	previews preview.Registry
}

// Option configures an Engine.
type Option func(*Engine)

// WithBaseURL sets the root used for rule links.
func WithBaseURL(baseURL string) Option {
	return func(e *Engine) { e.baseURL = baseURL }
}

// WithPreviews replaces the illustration registry.
func WithPreviews(r preview.Registry) Option {
	return func(e *Engine) { e.previews = r }
}

// NewEngine returns an Engine over store, or over the compiled-in catalog
// when store is nil.
func NewEngine(store *catalog.Store, opts ...Option) *Engine {
	if store == nil {
		store = catalog.Default()
	}
	e := &Engine{
		store:    store,
		baseURL:  site.DefaultBaseURL,
		previews: preview.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ViewOptions selects the optional parts of a RuleView.
type ViewOptions struct {
	Contrast bool
	Previews bool
}

// ListCategories returns every category in declaration order.
func (e *Engine) ListCategories() []schema.Category { return e.store.Categories() }

// ListRules returns every rule in declaration order.
func (e *Engine) ListRules() []schema.Rule { return e.store.Rules() }

// Category looks up a category by id.
func (e *Engine) Category(id string) (schema.Category, bool) { return e.store.Category(id) }

// FilterRules filters the whole catalog by query.
func (e *Engine) FilterRules(query string) []schema.Rule {
	return Filter(e.store.Rules(), query)
}

// GroupByCategory groups rules under the catalog's categories.
func (e *Engine) GroupByCategory(rules []schema.Rule) []schema.CategoryGroup {
	return GroupByCategory(rules, e.store.Categories())
}

// FindRuleByID looks a rule up in the catalog.
func (e *Engine) FindRuleByID(id string) (schema.Rule, bool) {
	return Find(e.store.Rules(), id)
}

// BuildDeepDive returns the detail sections synthesized for rule.
func (e *Engine) BuildDeepDive(rule schema.Rule) []schema.Section {
	return deepdive.Build(rule)
}

// Summaries lists every category with its icon and rule count.
func (e *Engine) Summaries() []schema.CategorySummary {
	counts := map[string]int{}
	for _, r := range e.store.Rules() {
		counts[r.Category]++
	}
	cats := e.store.Categories()
	out := make([]schema.CategorySummary, len(cats))
	for i, c := range cats {
		out[i] = schema.CategorySummary{
			ID:        c.ID,
			Name:      c.Name,
			Icon:      catalog.IconFor(c.ID),
			RuleCount: counts[c.ID],
		}
	}
	return out
}

// View assembles the detail view of rule.
func (e *Engine) View(rule schema.Rule, opts ViewOptions) schema.RuleView {
	v := schema.RuleView{
		Rule:     rule,
		Icon:     catalog.IconFor(rule.Category),
		Link:     site.RuleURL(e.baseURL, rule.ID),
		Sections: deepdive.Build(rule),
	}
	if c, ok := e.store.Category(rule.Category); ok {
		v.CategoryName = c.Name
	}
	if opts.Contrast {
		v.Contrast = contrast.Diff(rule.Do, rule.Dont)
	}
	if opts.Previews {
		v.Previews = e.previews.Pair(rule)
	}
	return v
}

// Resolve answers a navigation state: the grouped matches for its query and,
// when its rule id names a catalog rule, that rule's view. The selected rule
// need not be among the matches.
func (e *Engine) Resolve(state site.State, opts ViewOptions) schema.Results {
	matches := e.FilterRules(state.Query)
	res := schema.Results{
		Query:  state.Query,
		Total:  len(matches),
		Groups: e.GroupByCategory(matches),
	}
	if rule, ok := e.FindRuleByID(state.RuleID); ok {
		v := e.View(rule, opts)
		res.Selected = &v
	}
	return res
}
