package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/dshills/axiom/internal/schema"
)

type termStyles struct {
	heading  lipgloss.Style
	title    lipgloss.Style
	id       lipgloss.Style
	muted    lipgloss.Style
	good     lipgloss.Style
	bad      lipgloss.Style
	warn     lipgloss.Style
	section  lipgloss.Style
	code     lipgloss.Style
	doOnly   lipgloss.Style
	dontOnly lipgloss.Style
	panel    lipgloss.Style
}

type termRenderer struct {
	s termStyles
}

func newTermRenderer(opts Options) *termRenderer {
	if opts.Color == ColorNever {
		plain := lipgloss.NewStyle()
		return &termRenderer{s: termStyles{
			heading: plain, title: plain, id: plain, muted: plain,
			good: plain, bad: plain, warn: plain, section: plain,
			code: plain, doOnly: plain, dontOnly: plain, panel: plain,
		}}
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	lr := lipgloss.NewRenderer(out)
	if opts.Color == ColorAlways {
		lr.SetColorProfile(termenv.ANSI256)
	}
	return &termRenderer{s: termStyles{
		heading:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).PaddingLeft(1).PaddingRight(1),
		title:    lr.NewStyle().Bold(true),
		id:       lr.NewStyle().Foreground(lipgloss.Color("99")),
		muted:    lr.NewStyle().Foreground(lipgloss.Color("240")),
		good:     lr.NewStyle().Foreground(lipgloss.Color("42")),
		bad:      lr.NewStyle().Foreground(lipgloss.Color("196")),
		warn:     lr.NewStyle().Foreground(lipgloss.Color("208")),
		section:  lr.NewStyle().Bold(true).Underline(true),
		code:     lr.NewStyle().Foreground(lipgloss.Color("229")).PaddingLeft(2),
		doOnly:   lr.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		dontOnly: lr.NewStyle().Foreground(lipgloss.Color("196")).Strikethrough(true),
		panel:    lr.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	}}
}

func (r *termRenderer) Categories(list *schema.CategoryList) ([]byte, error) {
	var b strings.Builder
	b.WriteString(r.s.heading.Render("Categories") + "\n\n")
	for _, c := range list.Categories {
		fmt.Fprintf(&b, "%s %s %s\n",
			r.s.id.Render(fmt.Sprintf("%-14s", c.ID)),
			r.s.title.Render(fmt.Sprintf("%-28s", c.Name)),
			r.s.muted.Render(fmt.Sprintf("%2d rules · %s", c.RuleCount, c.Icon)))
	}
	return []byte(b.String()), nil
}

func (r *termRenderer) Results(res *schema.Results) ([]byte, error) {
	var b strings.Builder
	header := "Rules"
	if res.Query != "" {
		header = fmt.Sprintf("Rules matching %q", res.Query)
	}
	b.WriteString(r.s.heading.Render(header) + " " + r.s.muted.Render(fmt.Sprintf("%d total", res.Total)) + "\n")

	if len(res.Groups) == 0 {
		b.WriteString("\n" + r.s.muted.Render("No rules match.") + "\n")
	}
	for _, g := range res.Groups {
		fmt.Fprintf(&b, "\n%s %s\n", r.s.title.Render(g.Name), r.s.muted.Render(fmt.Sprintf("(%d)", len(g.Rules))))
		for _, rule := range g.Rules {
			fmt.Fprintf(&b, "  %s %s\n", r.s.id.Render(fmt.Sprintf("%-10s", rule.ID)), rule.Title)
		}
	}

	if res.Selected != nil {
		b.WriteString("\n")
		b.WriteString(r.rule(res.Selected))
	}
	return []byte(b.String()), nil
}

func (r *termRenderer) Rule(view *schema.RuleView) ([]byte, error) {
	return []byte(r.rule(view)), nil
}

func (r *termRenderer) rule(v *schema.RuleView) string {
	var b strings.Builder
	b.WriteString(r.s.heading.Render(v.Rule.Title) + "\n")
	meta := v.Rule.ID
	if v.CategoryName != "" {
		meta += " · " + v.CategoryName
	}
	if len(v.Rule.Tags) > 0 {
		meta += " · " + strings.Join(v.Rule.Tags, ", ")
	}
	b.WriteString(r.s.muted.Render(meta) + "\n")
	b.WriteString(r.s.muted.Render(v.Link) + "\n\n")
	b.WriteString(v.Rule.Desc + "\n\n")
	b.WriteString(r.s.good.Render("✓ Do:    ") + v.Rule.Do + "\n")
	b.WriteString(r.s.bad.Render("✗ Don't: ") + v.Rule.Dont + "\n")

	for _, sec := range v.Sections {
		b.WriteString("\n" + r.s.section.Render(sec.Title) + "\n")
		switch sec.Kind {
		case schema.SectionText:
			b.WriteString(sec.Content + "\n")
		case schema.SectionList:
			for _, item := range sec.Items {
				b.WriteString("  • " + item + "\n")
			}
		case schema.SectionCode:
			b.WriteString(r.s.code.Render(sec.Code) + "\n")
		}
	}

	if len(v.Contrast) > 0 {
		b.WriteString("\n" + r.s.section.Render("Contrast") + "\n")
		for _, seg := range v.Contrast {
			switch seg.Op {
			case "delete":
				b.WriteString(r.s.doOnly.Render(seg.Text))
			case "insert":
				b.WriteString(r.s.dontOnly.Render(seg.Text))
			default:
				b.WriteString(seg.Text)
			}
		}
		b.WriteString("\n")
	}

	if len(v.Previews) > 0 {
		b.WriteString("\n" + r.s.section.Render("Preview") + "\n")
		panels := make([]string, 0, len(v.Previews)*2)
		for i, p := range v.Previews {
			label := r.s.good.Render("Do")
			if p.Variant != "do" {
				label = r.s.bad.Render("Don't")
			}
			if i > 0 {
				panels = append(panels, "  ")
			}
			panels = append(panels, lipgloss.JoinVertical(lipgloss.Left, label, strings.Join(p.Lines, "\n")))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels...) + "\n")
	}
	return b.String()
}

func (r *termRenderer) Lint(report *schema.LintReport) ([]byte, error) {
	var b strings.Builder
	verdict := string(report.Summary.Verdict)
	switch report.Summary.Verdict {
	case schema.VerdictValid:
		verdict = r.s.good.Render(verdict)
	case schema.VerdictValidWithGaps:
		verdict = r.s.warn.Render(verdict)
	case schema.VerdictInvalid:
		verdict = r.s.bad.Render(verdict)
	}
	b.WriteString(r.s.heading.Render("Lint") + " " + verdict + "\n")
	b.WriteString(r.s.panel.Render(fmt.Sprintf("score %d/100 · critical %d · warn %d · info %d",
		report.Summary.Score, report.Summary.CriticalCount, report.Summary.WarnCount, report.Summary.InfoCount)) + "\n")

	for _, f := range report.Files {
		fmt.Fprintf(&b, "%s %s\n", r.s.id.Render(f.Path), r.s.muted.Render(fmt.Sprintf("%d categories, %d rules", f.Categories, f.Rules)))
	}
	if len(report.Findings) > 0 {
		b.WriteString("\n")
	}
	for _, f := range report.Findings {
		sev := string(f.Severity)
		switch f.Severity {
		case schema.SeverityCritical:
			sev = r.s.bad.Render(sev)
		case schema.SeverityWarn:
			sev = r.s.warn.Render(sev)
		default:
			sev = r.s.muted.Render(sev)
		}
		loc := ""
		if f.Evidence != nil {
			loc = f.Evidence.Path
			if f.Evidence.Line > 0 {
				loc = fmt.Sprintf("%s:%d", loc, f.Evidence.Line)
			}
		}
		fmt.Fprintf(&b, "%s %s %s %s\n    %s\n", r.s.id.Render(f.ID), sev, r.s.title.Render(f.Title), r.s.muted.Render(loc), f.Description)
	}
	return []byte(b.String()), nil
}
