package preview

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/axiom/internal/catalog"
	"github.com/dshills/axiom/internal/schema"
)

func TestRender_Bespoke(t *testing.T) {
	rule := schema.Rule{ID: "typo-1", Do: "Create new account", Dont: "Create New Account"}
	do := Default().Render(rule, Do)
	assert.Equal(t, "button", do.Kind)
	assert.Equal(t, "do", do.Variant)
	assert.Contains(t, do.Lines[1], "Create new account")

	dont := Default().Render(rule, Dont)
	assert.Contains(t, dont.Lines[1], "Create New Account")
}

func TestRender_GenericFallback(t *testing.T) {
	rule := schema.Rule{ID: "not-registered", Do: "Left", Dont: "Right side"}
	got := Default().Render(rule, Dont)
	assert.Equal(t, KindGeneric, got.Kind)
	assert.Equal(t, "not-registered", got.RuleID)
	require.Len(t, got.Lines, 3)
	assert.Equal(t, "│ Right side │", got.Lines[1])
}

func TestRender_EmptyRegistry(t *testing.T) {
	rule := schema.Rule{ID: "typo-1", Do: "a", Dont: "b"}
	got := Registry{}.Render(rule, Do)
	assert.Equal(t, KindGeneric, got.Kind)
	assert.Equal(t, "│ a │", got.Lines[1])
}

func TestRender_EveryCatalogRuleIsFramed(t *testing.T) {
	for _, rule := range catalog.Default().Rules() {
		for _, ill := range Default().Pair(rule) {
			require.NotEmpty(t, ill.Lines, rule.ID)
			width := utf8.RuneCountInString(ill.Lines[0])
			for _, line := range ill.Lines {
				assert.Equal(t, width, utf8.RuneCountInString(line), "%s/%s: ragged frame line %q", rule.ID, ill.Variant, line)
			}
		}
	}
}

func TestRegistry_KeysExistInCatalog(t *testing.T) {
	ids := map[string]bool{}
	for _, r := range catalog.Default().Rules() {
		ids[r.ID] = true
	}
	for id := range Default() {
		assert.True(t, ids[id], "illustrator registered for unknown rule %q", id)
	}
}

func TestRegistry_CoversCatalog(t *testing.T) {
	for _, rule := range catalog.Default().Rules() {
		pair := Default().Pair(rule)
		assert.NotEqual(t, KindGeneric, pair[0].Kind, "%s has no bespoke illustration", rule.ID)
		assert.Equal(t, pair[0].Kind, pair[1].Kind, rule.ID)
		assert.NotEqual(t, pair[0].Lines, pair[1].Lines, "%s draws the same picture for do and dont", rule.ID)
	}
	assert.Len(t, Default(), len(catalog.Default().Rules()))
}

func TestRender_UnframedDrawingsAreRectangular(t *testing.T) {
	rule := schema.Rule{ID: "typo-10"}
	got := Default().Render(rule, Dont)
	require.Len(t, got.Lines, 3)
	assert.Contains(t, got.Lines[1], "north region")
	for _, line := range got.Lines {
		assert.Equal(t, utf8.RuneCountInString(got.Lines[1]), utf8.RuneCountInString(line))
	}
}

func TestPair_Order(t *testing.T) {
	pair := Default().Pair(schema.Rule{ID: "x", Do: "d", Dont: "n"})
	require.Len(t, pair, 2)
	assert.Equal(t, "do", pair[0].Variant)
	assert.Equal(t, "dont", pair[1].Variant)
}
