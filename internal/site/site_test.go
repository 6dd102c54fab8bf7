package site

import (
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/axiom/internal/schema"
)

func typo1() schema.Rule {
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

func TestParseState(t *testing.T) {
	tests := []struct {
		raw  string
		want State
	}{
		{"", State{}},
		{"   ", State{}},
		{"q=button", State{Query: "button"}},
		{"?q=button&rule=typo-1", State{Query: "button", RuleID: "typo-1"}},
		{"rule=typo-1", State{RuleID: "typo-1"}},
		{"q=line+height", State{Query: "line height"}},
		{"https://axiom.design/?q=grid&rule=layout-1", State{Query: "grid", RuleID: "layout-1"}},
		{"https://axiom.design/", State{}},
		{"other=1", State{}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseState(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseState_Malformed(t *testing.T) {
	_, err := ParseState("q=%zz")
	assert.Error(t, err)
}

func TestState_EncodeRoundTrip(t *testing.T) {
	s := State{Query: "a&b c", RuleID: "typo-1"}
	got, err := ParseState(s.Encode())
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestState_EncodeOmitsEmpty(t *testing.T) {
	assert.Equal(t, "", State{}.Encode())
	assert.Equal(t, "q=grid", State{Query: "grid"}.Encode())
	assert.Equal(t, "rule=sys-1", State{RuleID: "sys-1"}.Encode())
}

func TestLink(t *testing.T) {
	assert.Equal(t, "https://axiom.design/", Link(DefaultBaseURL, State{}))
	assert.Equal(t, "https://x.test/?q=grid&rule=layout-1", Link("https://x.test/", State{Query: "grid", RuleID: "layout-1"}))
}

func TestRuleURL(t *testing.T) {
	assert.Equal(t, "https://axiom.design/rules/typo-1", RuleURL(DefaultBaseURL, "typo-1"))
	assert.Equal(t, "https://x.test/rules/a11y-2", RuleURL("https://x.test/", "a11y-2"))
}

func TestMeta(t *testing.T) {
	m := Meta(typo1(), "Typography & Text", DefaultBaseURL)

	assert.Equal(t, "Sentence Case Is King", m.Title)
	assert.Equal(t, []string{"Buttons", "Headers", "Typography & Text", "design system", "UI logic"}, m.Keywords)
	assert.Equal(t, "https://axiom.design/rules/typo-1", m.Canonical)
	assert.Equal(t, "Sentence Case Is King | Axiom", m.OpenGraph.Title)
	assert.Equal(t, "article", m.OpenGraph.Type)
	assert.Equal(t, "summary", m.TwitterCard.Card)
}

func TestNewHowTo_JSON(t *testing.T) {
	out, err := json.Marshal(NewHowTo(typo1()))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "https://schema.org", doc["@context"])
	assert.Equal(t, "HowTo", doc["@type"])

	steps, ok := doc["step"].([]any)
	require.True(t, ok)
	require.Len(t, steps, 2)
	dont := steps[1].(map[string]any)
	assert.Equal(t, "Don't", dont["name"])
	assert.Equal(t, "Create New Account", dont["text"])
}

func TestSitemap(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rules := []schema.Rule{typo1(), {ID: "layout-1"}}

	out, err := Sitemap("https://axiom.design/", rules, now)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "<?xml"))

	var set urlSet
	require.NoError(t, xml.Unmarshal(out, &set))
	require.Len(t, set.URLs, 3)

	assert.Equal(t, "https://axiom.design", set.URLs[0].Loc)
	assert.Equal(t, "weekly", set.URLs[0].ChangeFreq)
	assert.Equal(t, "1.0", set.URLs[0].Priority)
	assert.Equal(t, "https://axiom.design/rules/typo-1", set.URLs[1].Loc)
	assert.Equal(t, "https://axiom.design/rules/layout-1", set.URLs[2].Loc)
	assert.Equal(t, "monthly", set.URLs[2].ChangeFreq)
	assert.Equal(t, "0.8", set.URLs[2].Priority)
	assert.Equal(t, "2026-01-02T03:04:05Z", set.URLs[2].LastMod)
}
