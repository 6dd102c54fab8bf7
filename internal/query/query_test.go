package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/axiom/internal/catalog"
	"github.com/dshills/axiom/internal/schema"
)

func ids(rules []schema.Rule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.ID
	}
	return out
}

// naiveMatch is the reference predicate: lowercase substring containment.
func naiveMatch(r schema.Rule, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), q) || strings.Contains(strings.ToLower(r.Desc), q) {
		return true
	}
	for _, t := range r.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

var sampleQueries = []string{
	"", "   ", "button", "BUTTON", " Button ", "grid", "line-height", "accessibility",
	"wcag", "ux", "a", "zzz-no-match", "→", "fitts's", "modal", "42",
}

func TestFilter_ButtonScenario(t *testing.T) {
	got := ids(Filter(catalog.Default().Rules(), "button"))
	assert.Contains(t, got, "typo-1")   // via the "Buttons" tag
	assert.Contains(t, got, "layout-5") // via the title
}

func TestFilter_EmptyQueryReturnsAll(t *testing.T) {
	all := catalog.Default().Rules()
	for _, q := range []string{"", " ", "\t\n"} {
		got := Filter(all, q)
		assert.Equal(t, ids(all), ids(got), "query %q", q)
	}
}

func TestFilter_MatchesReferencePredicate(t *testing.T) {
	all := catalog.Default().Rules()
	for _, q := range sampleQueries {
		got := map[string]bool{}
		for _, r := range Filter(all, q) {
			got[r.ID] = true
		}
		for _, r := range all {
			assert.Equal(t, naiveMatch(r, q), got[r.ID], "query %q rule %s", q, r.ID)
		}
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	all := catalog.Default().Rules()
	pos := map[string]int{}
	for i, r := range all {
		pos[r.ID] = i
	}
	for _, q := range sampleQueries {
		got := Filter(all, q)
		for i := 1; i < len(got); i++ {
			assert.Less(t, pos[got[i-1].ID], pos[got[i].ID], "query %q reordered results", q)
		}
	}
}

func TestFilter_UnicodeCaseInsensitive(t *testing.T) {
	rules := []schema.Rule{
		{ID: "b", Title: "ÉCRAN principal"},
		{ID: "c", Tags: []string{"ΣΊΣΥΦΟΣ"}},
		{ID: "d", Title: "plain"},
	}
	assert.Equal(t, []string{"b"}, ids(Filter(rules, "écran")))
	assert.Equal(t, []string{"c"}, ids(Filter(rules, "σίσυφος")))
}

func TestFilter_MatchesDescAndTags(t *testing.T) {
	rules := []schema.Rule{
		{ID: "title", Title: "Needle here"},
		{ID: "desc", Desc: "a needle in desc"},
		{ID: "tag", Tags: []string{"x", "NeedleTag"}},
		{ID: "do-only", Do: "needle", Dont: "needle"},
	}
	assert.Equal(t, []string{"title", "desc", "tag"}, ids(Filter(rules, "needle")))
}

func TestGroupByCategory_NoMatchIsEmpty(t *testing.T) {
	s := catalog.Default()
	groups := GroupByCategory(Filter(s.Rules(), "zzz-no-match"), s.Categories())
	assert.Empty(t, groups)
}

func TestGroupByCategory_DropsEmptyAndIsTotal(t *testing.T) {
	s := catalog.Default()
	for _, q := range sampleQueries {
		matches := Filter(s.Rules(), q)
		groups := GroupByCategory(matches, s.Categories())

		present := map[string]bool{}
		seen := map[string]int{}
		for _, g := range groups {
			require.NotEmpty(t, g.Rules, "query %q group %s is empty", q, g.ID)
			present[g.ID] = true
			for _, r := range g.Rules {
				assert.Equal(t, g.ID, r.Category)
				seen[r.ID]++
			}
		}
		for _, c := range s.Categories() {
			has := false
			for _, r := range matches {
				if r.Category == c.ID {
					has = true
				}
			}
			assert.Equal(t, has, present[c.ID], "query %q category %s", q, c.ID)
		}
		for _, r := range matches {
			assert.Equal(t, 1, seen[r.ID], "query %q rule %s", q, r.ID)
		}
	}
}

func TestGroupByCategory_CategoryOrderAndNames(t *testing.T) {
	cats := []schema.Category{{ID: "b", Name: "Bee"}, {ID: "a", Name: "Ay"}, {ID: "c", Name: "Sea"}}
	rules := []schema.Rule{
		{ID: "a1", Category: "a"},
		{ID: "b1", Category: "b"},
		{ID: "a2", Category: "a"},
		{ID: "z1", Category: "z"},
	}
	groups := GroupByCategory(rules, cats)
	require.Len(t, groups, 2)
	assert.Equal(t, "b", groups[0].ID)
	assert.Equal(t, "Bee", groups[0].Name)
	assert.Equal(t, "a", groups[1].ID)
	assert.Equal(t, []string{"a1", "a2"}, ids(groups[1].Rules))
}

func TestFind(t *testing.T) {
	all := catalog.Default().Rules()

	r, ok := Find(all, "typo-1")
	require.True(t, ok)
	assert.Equal(t, "Sentence Case Is King", r.Title)

	_, ok = Find(all, "nonexistent")
	assert.False(t, ok)

	_, ok = Find(all, "")
	assert.False(t, ok)
}

func TestFind_FirstMatchWins(t *testing.T) {
	rules := []schema.Rule{{ID: "dup", Title: "first"}, {ID: "dup", Title: "second"}}
	r, ok := Find(rules, "dup")
	require.True(t, ok)
	assert.Equal(t, "first", r.Title)
}
