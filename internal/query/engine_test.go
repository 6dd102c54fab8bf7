package query

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/axiom/internal/catalog"
	"github.com/dshills/axiom/internal/deepdive"
	"github.com/dshills/axiom/internal/schema"
	"github.com/dshills/axiom/internal/site"
)

func TestEngine_LibrarySurface(t *testing.T) {
	e := NewEngine(nil)

	assert.Len(t, e.ListCategories(), 7)
	assert.Equal(t, "typography", e.ListCategories()[0].ID)
	assert.Equal(t, "typo-10", e.ListRules()[48].ID)
	assert.Equal(t, ids(catalog.Default().Rules()), ids(e.ListRules()))
	assert.Equal(t, ids(e.ListRules()), ids(e.FilterRules("")))
	assert.Empty(t, e.GroupByCategory(e.FilterRules("zzz-no-match")))

	r, ok := e.FindRuleByID("typo-1")
	require.True(t, ok)
	assert.Equal(t, "Sentence Case Is King", r.Title)
	_, ok = e.FindRuleByID("nonexistent")
	assert.False(t, ok)

	assert.Equal(t, deepdive.Build(r), e.BuildDeepDive(r))
}

func TestEngine_Summaries(t *testing.T) {
	e := NewEngine(nil)
	sums := e.Summaries()
	require.Len(t, sums, 7)

	total := 0
	for _, s := range sums {
		assert.NotZero(t, s.RuleCount, s.ID)
		total += s.RuleCount
	}
	assert.Equal(t, len(e.ListRules()), total)
	assert.Equal(t, "type", sums[0].Icon)
	assert.Equal(t, "layers", sums[6].Icon)
}

func TestEngine_View(t *testing.T) {
	e := NewEngine(nil, WithBaseURL("https://example.test"))
	r, _ := e.FindRuleByID("form-5")

	v := e.View(r, ViewOptions{})
	assert.Equal(t, "Forms & Inputs", v.CategoryName)
	assert.Equal(t, "text-cursor-input", v.Icon)
	assert.Equal(t, "https://example.test/rules/form-5", v.Link)
	assert.Len(t, v.Sections, deepdive.SectionCount)
	assert.Nil(t, v.Contrast)
	assert.Nil(t, v.Previews)

	v = e.View(r, ViewOptions{Contrast: true, Previews: true})
	assert.NotEmpty(t, v.Contrast)
	require.Len(t, v.Previews, 2)
	assert.Equal(t, "choice", v.Previews[0].Kind)
}

func TestEngine_ViewUnknownCategory(t *testing.T) {
	store := catalog.New(nil, []schema.Rule{{ID: "x-1", Category: "motion", Title: "T", Do: "a", Dont: "b"}})
	e := NewEngine(store)
	r, ok := e.FindRuleByID("x-1")
	require.True(t, ok)

	v := e.View(r, ViewOptions{Previews: true})
	assert.Empty(t, v.CategoryName)
	assert.Equal(t, "layers", v.Icon)
	assert.Len(t, v.Sections, deepdive.SectionCount)
	assert.Equal(t, "generic", v.Previews[0].Kind)
}

func TestEngine_Resolve(t *testing.T) {
	e := NewEngine(nil)

	res := e.Resolve(site.State{Query: "button", RuleID: "typo-1"}, ViewOptions{})
	assert.Equal(t, "button", res.Query)
	assert.NotZero(t, res.Total)
	assert.NotEmpty(t, res.Groups)
	require.NotNil(t, res.Selected)
	assert.Equal(t, "typo-1", res.Selected.Rule.ID)

	res = e.Resolve(site.State{Query: "zzz-no-match", RuleID: "nonexistent"}, ViewOptions{})
	assert.Zero(t, res.Total)
	assert.Empty(t, res.Groups)
	assert.Nil(t, res.Selected)

	// selection is independent of the query
	res = e.Resolve(site.State{Query: "zzz-no-match", RuleID: "sys-1"}, ViewOptions{})
	require.NotNil(t, res.Selected)
	assert.Equal(t, "sys-1", res.Selected.Rule.ID)
}

func TestEngine_ConcurrentUse(t *testing.T) {
	e := NewEngine(nil)
	want := ids(e.FilterRules("button"))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, ids(e.FilterRules("button")))
			r, ok := e.FindRuleByID("typo-1")
			assert.True(t, ok)
			assert.Len(t, e.BuildDeepDive(r), deepdive.SectionCount)
		}()
	}
	wg.Wait()
}
