// Package lint checks catalog data files for structural and content defects.
package lint

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/axiom/internal/catalog"
	"github.com/dshills/axiom/internal/review"
	"github.com/dshills/axiom/internal/schema"
)

// BuiltinPath is the evidence path used for findings against the compiled-in catalog.
const BuiltinPath = "(builtin)"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Linter runs catalog checks. It is safe for concurrent use.
type Linter struct {
	logger *slog.Logger
}

// New returns a Linter that logs progress to logger. A nil logger uses slog.Default.
func New(logger *slog.Logger) *Linter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Linter{logger: logger}
}

// Result is the raw outcome of a lint run, before numbering and filtering.
type Result struct {
	Files    []schema.FileInfo
	Findings []schema.Finding
}

// LintFiles loads and checks each path in order. An unreadable file is an
// error; malformed content is reported as findings.
func (l *Linter) LintFiles(paths []string) (*Result, error) {
	res := &Result{}
	for _, p := range paths {
		src, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		info, findings := l.LintSource(src)
		res.Files = append(res.Files, info)
		res.Findings = append(res.Findings, findings...)
	}
	return res, nil
}

// LintSource checks one loaded catalog file.
func (l *Linter) LintSource(src *Source) (schema.FileInfo, []schema.Finding) {
	info := schema.FileInfo{Path: src.Path, Hash: src.Hash}
	c := &checker{path: src.Path}

	var root yaml.Node
	if err := yaml.Unmarshal(src.Raw, &root); err != nil {
		c.add(schema.SeverityCritical, schema.KindSchemaViolation, "Unparseable catalog file",
			fmt.Sprintf("parse error: %v", err), "", 0)
		l.logger.Debug("lint: parse failed", "path", src.Path, "error", err)
		return info, c.findings
	}
	if len(root.Content) == 0 {
		c.add(schema.SeverityCritical, schema.KindSchemaViolation, "Empty catalog file",
			"the document contains no categories or rules", "", 0)
		return info, c.findings
	}
	c.root = &root

	var doc any
	if err := root.Decode(&doc); err != nil {
		c.add(schema.SeverityCritical, schema.KindSchemaViolation, "Undecodable catalog file",
			fmt.Sprintf("decode error: %v", err), "", root.Line)
		return info, c.findings
	}
	shapeErrs, err := validateShape(doc)
	if err != nil {
		c.add(schema.SeverityCritical, schema.KindSchemaViolation, "Invalid document structure",
			err.Error(), "", root.Line)
		return info, c.findings
	}
	for _, se := range shapeErrs {
		c.add(schema.SeverityCritical, schema.KindSchemaViolation, "Schema violation",
			se.Message, "", c.line(se.Field))
	}

	var file schema.CatalogFile
	if err := root.Decode(&file); err != nil {
		// Shape errors above already describe why the typed decode fails.
		l.logger.Debug("lint: typed decode failed", "path", src.Path, "error", err)
		return info, c.findings
	}
	info.Categories = len(file.Categories)
	info.Rules = len(file.Rules)

	c.check(file.Categories, file.Rules)
	l.logger.Debug("lint: file checked", "path", src.Path,
		"categories", info.Categories, "rules", info.Rules, "findings", len(c.findings))
	return info, c.findings
}

// LintStore checks an in-memory catalog. Findings carry no line evidence.
func (l *Linter) LintStore(store *catalog.Store) *Result {
	cats, rules := store.Categories(), store.Rules()
	c := &checker{path: BuiltinPath}
	c.check(cats, rules)
	l.logger.Debug("lint: store checked", "categories", len(cats), "rules", len(rules), "findings", len(c.findings))
	return &Result{
		Files:    []schema.FileInfo{{Path: BuiltinPath, Categories: len(cats), Rules: len(rules)}},
		Findings: c.findings,
	}
}

// Merge appends the files and findings of other to r.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Files = append(r.Files, other.Files...)
	r.Findings = append(r.Findings, other.Findings...)
}

// BuildReport numbers findings, summarizes them and applies the severity
// threshold. The summary always reflects every finding.
func BuildReport(res *Result, input schema.LintInput, threshold schema.Severity, version string) *schema.LintReport {
	findings := make([]schema.Finding, len(res.Findings))
	for i, f := range res.Findings {
		f.ID = fmt.Sprintf("LINT-%04d", i+1)
		findings[i] = f
	}
	input.SeverityThreshold = strings.ToLower(string(threshold))

	files := res.Files
	if files == nil {
		files = []schema.FileInfo{}
	}
	return &schema.LintReport{
		Tool:     "axiom",
		Version:  version,
		Input:    input,
		Summary:  review.Summarize(findings),
		Files:    files,
		Findings: review.FilterBySeverity(findings, threshold),
	}
}

type checker struct {
	path     string
	root     *yaml.Node
	findings []schema.Finding
}

func (c *checker) add(sev schema.Severity, kind schema.FindingKind, title, desc, ruleID string, line int) {
	c.findings = append(c.findings, schema.Finding{
		Severity:    sev,
		Kind:        kind,
		Title:       title,
		Description: desc,
		RuleID:      ruleID,
		Evidence:    &schema.Evidence{Path: c.path, Line: line},
	})
}

func (c *checker) line(path string) int {
	if c.root == nil {
		return 0
	}
	return lookup(c.root, path)
}

func (c *checker) check(cats []schema.Category, rules []schema.Rule) {
	catIDs := make(map[string]bool, len(cats))
	for i, cat := range cats {
		at := func(field string) int { return c.line(fmt.Sprintf("categories.%d.%s", i, field)) }
		switch {
		case strings.TrimSpace(cat.ID) == "":
			c.add(schema.SeverityCritical, schema.KindEmptyField, "Category without id",
				fmt.Sprintf("category %d has an empty id", i), "", at("id"))
			continue
		case catIDs[cat.ID]:
			c.add(schema.SeverityCritical, schema.KindDuplicateCategoryID, "Duplicate category id",
				fmt.Sprintf("category id %q is declared more than once", cat.ID), "", at("id"))
		case !slugPattern.MatchString(cat.ID):
			c.add(schema.SeverityWarn, schema.KindInvalidSlug, "Category id is not a slug",
				fmt.Sprintf("category id %q should be lowercase words joined by hyphens", cat.ID), "", at("id"))
		}
		catIDs[cat.ID] = true
		if strings.TrimSpace(cat.Name) == "" {
			c.add(schema.SeverityWarn, schema.KindEmptyField, "Category without name",
				fmt.Sprintf("category %q has an empty name", cat.ID), "", at("name"))
		}
	}

	ruleIDs := make(map[string]bool, len(rules))
	used := make(map[string]bool, len(cats))
	for i, r := range rules {
		at := func(field string) int { return c.line(fmt.Sprintf("rules.%d.%s", i, field)) }
		switch {
		case strings.TrimSpace(r.ID) == "":
			c.add(schema.SeverityCritical, schema.KindEmptyField, "Rule without id",
				fmt.Sprintf("rule %d has an empty id", i), "", at("id"))
		case ruleIDs[r.ID]:
			c.add(schema.SeverityCritical, schema.KindDuplicateRuleID, "Duplicate rule id",
				fmt.Sprintf("rule id %q is declared more than once; lookups return the first", r.ID), r.ID, at("id"))
		case !slugPattern.MatchString(r.ID):
			c.add(schema.SeverityWarn, schema.KindInvalidSlug, "Rule id is not a slug",
				fmt.Sprintf("rule id %q should be lowercase words joined by hyphens", r.ID), r.ID, at("id"))
		}
		ruleIDs[r.ID] = true

		if !catIDs[r.Category] {
			c.add(schema.SeverityCritical, schema.KindUnknownCategory, "Unknown category",
				fmt.Sprintf("rule %q refers to undeclared category %q", r.ID, r.Category), r.ID, at("category"))
		}
		used[r.Category] = true

		for _, f := range []struct {
			name  string
			value string
			sev   schema.Severity
		}{
			{"title", r.Title, schema.SeverityCritical},
			{"desc", r.Desc, schema.SeverityWarn},
			{"do", r.Do, schema.SeverityCritical},
			{"dont", r.Dont, schema.SeverityCritical},
		} {
			if strings.TrimSpace(f.value) == "" {
				c.add(f.sev, schema.KindEmptyField, "Empty "+f.name,
					fmt.Sprintf("rule %q has an empty %s", r.ID, f.name), r.ID, at(f.name))
			}
		}

		if r.Do != "" && strings.TrimSpace(r.Do) == strings.TrimSpace(r.Dont) {
			c.add(schema.SeverityWarn, schema.KindIdenticalPatterns, "Identical do and don't",
				fmt.Sprintf("rule %q uses the same text for both patterns", r.ID), r.ID, at("dont"))
		}

		if len(r.Tags) == 0 {
			c.add(schema.SeverityInfo, schema.KindMissingTags, "Rule without tags",
				fmt.Sprintf("rule %q has no tags and only matches on title and description", r.ID), r.ID, at("id"))
		}
		seen := make(map[string]bool, len(r.Tags))
		for j, tag := range r.Tags {
			if seen[tag] {
				c.add(schema.SeverityInfo, schema.KindDuplicateTag, "Duplicate tag",
					fmt.Sprintf("rule %q lists tag %q more than once", r.ID, tag), r.ID, at("tags."+strconv.Itoa(j)))
			}
			seen[tag] = true
		}
	}

	for i, cat := range cats {
		if cat.ID != "" && !used[cat.ID] {
			c.add(schema.SeverityWarn, schema.KindEmptyCategory, "Empty category",
				fmt.Sprintf("category %q has no rules", cat.ID), "", c.line(fmt.Sprintf("categories.%d.id", i)))
		}
	}
}

// lookup returns the line of the node at a dot-separated path such as
// "rules.3.title". When the path ends early (a missing key) the line of the
// deepest node reached is returned.
func lookup(root *yaml.Node, path string) int {
	n := root
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	if path == "" || path == "(root)" {
		return n.Line
	}
	for _, part := range strings.Split(path, ".") {
		next := child(n, part)
		if next == nil {
			break
		}
		n = next
	}
	return n.Line
}

func child(n *yaml.Node, key string) *yaml.Node {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Value == key {
				return n.Content[i+1]
			}
		}
	case yaml.SequenceNode:
		idx, err := strconv.Atoi(key)
		if err == nil && idx >= 0 && idx < len(n.Content) {
			return n.Content[idx]
		}
	}
	return nil
}
