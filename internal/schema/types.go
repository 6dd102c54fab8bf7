package schema

// Category is a named grouping bucket for rules.
type Category struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Rule is one catalogued UI design decision.
type Rule struct {
	ID       string   `json:"id" yaml:"id"`
	Category string   `json:"category" yaml:"category"`
	Title    string   `json:"title" yaml:"title"`
	Desc     string   `json:"desc" yaml:"desc"`
	Do       string   `json:"do" yaml:"do"`
	Dont     string   `json:"dont" yaml:"dont"`
	Tags     []string `json:"tags" yaml:"tags"`
}

// CategoryGroup is a category together with the rules that fell into it.
type CategoryGroup struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Rules []Rule `json:"rules" yaml:"rules"`
}

// CategorySummary is a category listing entry.
type CategorySummary struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Icon      string `json:"icon" yaml:"icon"`
	RuleCount int    `json:"rule_count" yaml:"rule_count"`
}

// SectionKind discriminates the shape of a deep-dive Section.
type SectionKind string

const (
	SectionText SectionKind = "text"
	SectionList SectionKind = "list"
	SectionCode SectionKind = "code"
)

// Section is one block of a deep-dive document. Which payload field is set
// depends on Kind: Content for text, Items for list, Code (and Language)
// for code.
type Section struct {
	Kind     SectionKind `json:"kind" yaml:"kind"`
	Title    string      `json:"title,omitempty" yaml:"title,omitempty"`
	Content  string      `json:"content,omitempty" yaml:"content,omitempty"`
	Items    []string    `json:"items,omitempty" yaml:"items,omitempty"`
	Code     string      `json:"code,omitempty" yaml:"code,omitempty"`
	Language string      `json:"language,omitempty" yaml:"language,omitempty"`
}

// TextSection returns a text section.
func TextSection(title, content string) Section {
	return Section{Kind: SectionText, Title: title, Content: content}
}

// ListSection returns a list section.
func ListSection(title string, items []string) Section {
	return Section{Kind: SectionList, Title: title, Items: items}
}

// CodeSection returns a code section.
func CodeSection(title, code, language string) Section {
	return Section{Kind: SectionCode, Title: title, Code: code, Language: language}
}

// Segment is one run of a do/don't diff.
type Segment struct {
	Op   string `json:"op" yaml:"op"` // "equal", "insert" or "delete"
	Text string `json:"text" yaml:"text"`
}

// Illustration is a small text rendering of a rule variant.
type Illustration struct {
	RuleID  string   `json:"rule_id" yaml:"rule_id"`
	Variant string   `json:"variant" yaml:"variant"`
	Kind    string   `json:"kind" yaml:"kind"` // "generic" when no bespoke illustrator exists
	Lines   []string `json:"lines" yaml:"lines"`
}

// RuleView is the detail view of a single rule.
type RuleView struct {
	Rule         Rule           `json:"rule" yaml:"rule"`
	CategoryName string         `json:"category_name" yaml:"category_name"`
	Icon         string         `json:"icon" yaml:"icon"`
	Link         string         `json:"link" yaml:"link"`
	Sections     []Section      `json:"sections" yaml:"sections"`
	Contrast     []Segment      `json:"contrast,omitempty" yaml:"contrast,omitempty"`
	Previews     []Illustration `json:"previews,omitempty" yaml:"previews,omitempty"`
}

// CategoryList is the top-level output of the categories command.
type CategoryList struct {
	Tool       string            `json:"tool" yaml:"tool"`
	Version    string            `json:"version" yaml:"version"`
	Categories []CategorySummary `json:"categories" yaml:"categories"`
}

// Results is the top-level output of a catalog query.
// Selected is nil when no rule is selected or the selected id is unknown.
type Results struct {
	Tool     string          `json:"tool" yaml:"tool"`
	Version  string          `json:"version" yaml:"version"`
	Query    string          `json:"query" yaml:"query"`
	Total    int             `json:"total" yaml:"total"`
	Groups   []CategoryGroup `json:"groups" yaml:"groups"`
	Selected *RuleView       `json:"selected" yaml:"selected"`
}

// CatalogFile is the on-disk shape of a catalog, as produced by export and
// consumed by lint.
type CatalogFile struct {
	Categories []Category `json:"categories" yaml:"categories"`
	Rules      []Rule     `json:"rules" yaml:"rules"`
}
