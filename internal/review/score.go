// Package review turns lint findings into a score, a verdict and counts.
package review

import "github.com/dshills/axiom/internal/schema"

// Score computes the deterministic score from all findings.
// Score is always computed before any --severity-threshold filtering.
// Start: 100, -20 per CRITICAL, -7 per WARN, -2 per INFO, clamped at 0.
func Score(findings []schema.Finding) int {
	score := 100
	for _, f := range findings {
		switch f.Severity {
		case schema.SeverityCritical:
			score -= 20
		case schema.SeverityWarn:
			score -= 7
		case schema.SeverityInfo:
			score -= 2
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}

// Verdict computes the deterministic verdict from all findings: INVALID on
// any CRITICAL, VALID_WITH_GAPS on any other finding, VALID otherwise.
func Verdict(findings []schema.Finding) schema.Verdict {
	for _, f := range findings {
		if f.Severity == schema.SeverityCritical {
			return schema.VerdictInvalid
		}
	}
	if len(findings) > 0 {
		return schema.VerdictValidWithGaps
	}
	return schema.VerdictValid
}

// Counts returns the pre-filter critical, warn, and info counts.
func Counts(findings []schema.Finding) (critical, warn, info int) {
	for _, f := range findings {
		switch f.Severity {
		case schema.SeverityCritical:
			critical++
		case schema.SeverityWarn:
			warn++
		case schema.SeverityInfo:
			info++
		}
	}
	return
}

// Summarize builds the report summary from all findings.
func Summarize(findings []schema.Finding) schema.Summary {
	critical, warn, info := Counts(findings)
	return schema.Summary{
		Verdict:       Verdict(findings),
		Score:         Score(findings),
		CriticalCount: critical,
		WarnCount:     warn,
		InfoCount:     info,
	}
}

// FilterBySeverity returns only findings at or above the given threshold severity.
func FilterBySeverity(findings []schema.Finding, threshold schema.Severity) []schema.Finding {
	if threshold == schema.SeverityInfo {
		return findings
	}
	out := make([]schema.Finding, 0, len(findings))
	for _, f := range findings {
		if meetsSeverity(f.Severity, threshold) {
			out = append(out, f)
		}
	}
	return out
}

// ParseSeverity converts a flag value (info, warn or critical, in lower or
// upper case) to a Severity.
func ParseSeverity(s string) (schema.Severity, bool) {
	switch s {
	case "info", "INFO":
		return schema.SeverityInfo, true
	case "warn", "WARN":
		return schema.SeverityWarn, true
	case "critical", "CRITICAL":
		return schema.SeverityCritical, true
	}
	return "", false
}

func meetsSeverity(s, threshold schema.Severity) bool {
	return severityOrdinal(s) >= severityOrdinal(threshold)
}

func severityOrdinal(s schema.Severity) int {
	switch s {
	case schema.SeverityInfo:
		return 0
	case schema.SeverityWarn:
		return 1
	case schema.SeverityCritical:
		return 2
	}
	return -1
}
