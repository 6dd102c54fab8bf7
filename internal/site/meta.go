package site

import "github.com/dshills/axiom/internal/schema"

// PageMeta is the document metadata of a rule page.
type PageMeta struct {
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Keywords     []string `json:"keywords" yaml:"keywords"`
	Canonical    string   `json:"canonical" yaml:"canonical"`
	OpenGraph    Social   `json:"open_graph" yaml:"open_graph"`
	TwitterCard  Social   `json:"twitter" yaml:"twitter"`
	StructuredLD HowTo    `json:"json_ld" yaml:"json_ld"`
}

// Social is the title/description pair shared with link previews.
type Social struct {
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Card        string `json:"card,omitempty" yaml:"card,omitempty"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
}

// HowTo is a schema.org HowTo document with one step per variant.
type HowTo struct {
	Context     string      `json:"@context" yaml:"@context"`
	Type        string      `json:"@type" yaml:"@type"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Steps       []HowToStep `json:"step" yaml:"step"`
}

// HowToStep is one schema.org HowToStep.
type HowToStep struct {
	Type string `json:"@type" yaml:"@type"`
	Name string `json:"name" yaml:"name"`
	Text string `json:"text" yaml:"text"`
}

// Meta builds the page metadata for a rule. categoryName may be empty when
// the rule's category is unknown.
func Meta(rule schema.Rule, categoryName, baseURL string) PageMeta {
	keywords := make([]string, 0, len(rule.Tags)+3)
	keywords = append(keywords, rule.Tags...)
	keywords = append(keywords, categoryName, "design system", "UI logic")

	pageURL := RuleURL(baseURL, rule.ID)
	social := rule.Title + " | Axiom"

	return PageMeta{
		Title:       rule.Title,
		Description: rule.Desc,
		Keywords:    keywords,
		Canonical:   pageURL,
		OpenGraph: Social{
			Type:        "article",
			Title:       social,
			Description: rule.Desc,
			URL:         pageURL,
		},
		TwitterCard: Social{
			Card:        "summary",
			Title:       social,
			Description: rule.Desc,
		},
		StructuredLD: NewHowTo(rule),
	}
}

// NewHowTo returns the JSON-LD HowTo for a rule.
func NewHowTo(rule schema.Rule) HowTo {
	return HowTo{
		Context:     "https://schema.org",
		Type:        "HowTo",
		Name:        rule.Title,
		Description: rule.Desc,
		Steps: []HowToStep{
			{Type: "HowToStep", Name: "Do", Text: rule.Do},
			{Type: "HowToStep", Name: "Don't", Text: rule.Dont},
		},
	}
}
