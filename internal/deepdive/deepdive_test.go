package deepdive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/axiom/internal/catalog"
	"github.com/dshills/axiom/internal/schema"
)

var wantShape = []struct {
	kind  schema.SectionKind
	title string
}{
	{schema.SectionText, TitleSummary},
	{schema.SectionText, TitleWhyItMatters},
	{schema.SectionText, TitleRisk},
	{schema.SectionList, TitleImplementation},
	{schema.SectionList, TitleReviewPrompts},
	{schema.SectionList, TitleRelatedSignals},
	{schema.SectionCode, TitleRecommended},
	{schema.SectionCode, TitleAvoid},
}

func sampleRule() schema.Rule {
	return schema.Rule{
		ID:       "typo-1",
		Category: "typography",
		Title:    "Sentence Case Is King",
		Desc:     "Never use Title Case for buttons.",
		Do:       "Create new account",
		Dont:     "Create New Account",
		Tags:     []string{"Buttons", "Headers"},
	}
}

func TestBuild_ShapeForEveryCatalogRule(t *testing.T) {
	for _, rule := range catalog.Default().Rules() {
		t.Run(rule.ID, func(t *testing.T) {
			sections := Build(rule)
			require.Len(t, sections, SectionCount)
			for i, want := range wantShape {
				assert.Equal(t, want.kind, sections[i].Kind, "section %d kind", i)
				assert.Equal(t, want.title, sections[i].Title, "section %d title", i)
			}

			assert.Equal(t, rule.Desc, sections[0].Content)
			assert.Equal(t, rule.Do, sections[6].Code)
			assert.Equal(t, rule.Dont, sections[7].Code)
			require.NotEmpty(t, sections[3].Items)
			assert.Equal(t, "Default pattern: "+rule.Do, sections[3].Items[0])
		})
	}
}

func TestBuild_Content(t *testing.T) {
	rule := sampleRule()
	sections := Build(rule)
	k := KnowledgeFor("typography")

	assert.Equal(t, k.Impact, sections[1].Content)
	assert.Equal(t, k.FailureMode+" Anti-pattern example: Create New Account.", sections[2].Content)

	wantImpl := append([]string{"Default pattern: Create new account"}, k.Implementation...)
	wantImpl = append(wantImpl, baseTips[:]...)
	assert.Equal(t, wantImpl, sections[3].Items)
	assert.Equal(t, k.ReviewPrompts, sections[4].Items)
	assert.Equal(t, []string{
		"Buttons: keep this pattern aligned.",
		"Headers: keep this pattern aligned.",
	}, sections[5].Items)
}

func TestBuild_RecommendedSectionForTypo1(t *testing.T) {
	var rule schema.Rule
	for _, r := range catalog.Default().Rules() {
		if r.ID == "typo-1" {
			rule = r
		}
	}
	require.Equal(t, "typo-1", rule.ID)

	got := Build(rule)[6]
	assert.Equal(t, schema.SectionCode, got.Kind)
	assert.Equal(t, "Recommended", got.Title)
	assert.Equal(t, "Create new account", got.Code)
}

func TestBuild_UnknownCategoryUsesDefault(t *testing.T) {
	rule := sampleRule()
	rule.Category = "motion"

	sections := Build(rule)
	require.Len(t, sections, SectionCount)

	def := defaultKnowledge()
	assert.Equal(t, def.Impact, sections[1].Content)
	assert.Equal(t, def.ReviewPrompts, sections[4].Items)
	assert.Equal(t, def.Implementation[0], sections[3].Items[1])
}

func TestBuild_EmptyTagsFallback(t *testing.T) {
	for _, tags := range [][]string{nil, {}} {
		rule := sampleRule()
		rule.Tags = tags
		sections := Build(rule)
		require.Len(t, sections, SectionCount)
		assert.Equal(t, []string{"Cross-check this decision with adjacent components."}, sections[5].Items)
	}
}

func TestBuild_DuplicateTagsKept(t *testing.T) {
	rule := sampleRule()
	rule.Tags = []string{"UX", "UX"}
	assert.Equal(t, []string{"UX: keep this pattern aligned.", "UX: keep this pattern aligned."}, Build(rule)[5].Items)
}

func TestBuild_Deterministic(t *testing.T) {
	rule := sampleRule()
	assert.Equal(t, Build(rule), Build(rule))
}

func TestBuild_ResultIsIndependent(t *testing.T) {
	rule := sampleRule()
	first := Build(rule)
	first[4].Items[0] = "mutated"
	first[3].Items[1] = "mutated"

	second := Build(rule)
	assert.NotEqual(t, "mutated", second[4].Items[0])
	assert.NotEqual(t, "mutated", second[3].Items[1])
}

func TestKnowledgeFor_Total(t *testing.T) {
	for _, c := range catalog.Default().Categories() {
		k := KnowledgeFor(c.ID)
		assert.NotEmpty(t, k.Impact, c.ID)
		assert.NotEmpty(t, k.FailureMode, c.ID)
		assert.NotEmpty(t, k.Implementation, c.ID)
		assert.NotEmpty(t, k.ReviewPrompts, c.ID)
		assert.NotEqual(t, defaultKnowledge().Impact, k.Impact, "%s should have a dedicated entry", c.ID)
	}
	assert.Equal(t, defaultKnowledge(), KnowledgeFor(""))
}
