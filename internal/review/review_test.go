package review

import (
	"testing"

	"github.com/dshills/axiom/internal/schema"
)

func makeFindings(severities ...schema.Severity) []schema.Finding {
	findings := make([]schema.Finding, len(severities))
	for i, s := range severities {
		findings[i] = schema.Finding{Severity: s}
	}
	return findings
}

// --- Score tests ---

func TestScore_ThreeCritical(t *testing.T) {
	findings := makeFindings(schema.SeverityCritical, schema.SeverityCritical, schema.SeverityCritical)
	got := Score(findings)
	want := 100 - 3*20 // 40
	if got != want {
		t.Errorf("Score = %d, want %d", got, want)
	}
}

func TestScore_ClampsAtZero(t *testing.T) {
	// 6 CRITICAL = -120 → clamped to 0
	findings := makeFindings(
		schema.SeverityCritical, schema.SeverityCritical, schema.SeverityCritical,
		schema.SeverityCritical, schema.SeverityCritical, schema.SeverityCritical,
	)
	if got := Score(findings); got != 0 {
		t.Errorf("Score = %d, want 0 (clamped)", got)
	}
}

func TestScore_Mixed(t *testing.T) {
	// 1 CRITICAL(-20) + 2 WARN(-14) + 1 INFO(-2) = 100-36 = 64
	findings := makeFindings(schema.SeverityCritical, schema.SeverityWarn, schema.SeverityWarn, schema.SeverityInfo)
	if got := Score(findings); got != 64 {
		t.Errorf("Score = %d, want 64", got)
	}
}

func TestScore_NoFindings(t *testing.T) {
	if got := Score(nil); got != 100 {
		t.Errorf("Score = %d, want 100", got)
	}
}

// --- Verdict tests ---

func TestVerdict_Critical_Invalid(t *testing.T) {
	v := Verdict(makeFindings(schema.SeverityInfo, schema.SeverityCritical))
	if v != schema.VerdictInvalid {
		t.Errorf("Verdict = %q, want INVALID", v)
	}
}

func TestVerdict_WarnOnly_ValidWithGaps(t *testing.T) {
	v := Verdict(makeFindings(schema.SeverityWarn))
	if v != schema.VerdictValidWithGaps {
		t.Errorf("Verdict = %q, want VALID_WITH_GAPS", v)
	}
}

func TestVerdict_InfoOnly_ValidWithGaps(t *testing.T) {
	v := Verdict(makeFindings(schema.SeverityInfo))
	if v != schema.VerdictValidWithGaps {
		t.Errorf("Verdict = %q, want VALID_WITH_GAPS", v)
	}
}

func TestVerdict_NoFindings_Valid(t *testing.T) {
	if v := Verdict(nil); v != schema.VerdictValid {
		t.Errorf("Verdict = %q, want VALID", v)
	}
}

// --- Summarize tests ---

func TestSummarize(t *testing.T) {
	s := Summarize(makeFindings(schema.SeverityCritical, schema.SeverityWarn, schema.SeverityInfo, schema.SeverityInfo))
	if s.Verdict != schema.VerdictInvalid {
		t.Errorf("Verdict = %q, want INVALID", s.Verdict)
	}
	if s.Score != 100-20-7-4 {
		t.Errorf("Score = %d, want 69", s.Score)
	}
	if s.CriticalCount != 1 || s.WarnCount != 1 || s.InfoCount != 2 {
		t.Errorf("counts = %d/%d/%d, want 1/1/2", s.CriticalCount, s.WarnCount, s.InfoCount)
	}
}

// --- FilterBySeverity tests ---

func TestFilterBySeverity_CriticalThreshold(t *testing.T) {
	findings := makeFindings(schema.SeverityCritical, schema.SeverityWarn, schema.SeverityInfo)
	filtered := FilterBySeverity(findings, schema.SeverityCritical)
	if len(filtered) != 1 {
		t.Fatalf("expected 1 finding after CRITICAL filter, got %d", len(filtered))
	}
	if filtered[0].Severity != schema.SeverityCritical {
		t.Errorf("expected CRITICAL finding, got %q", filtered[0].Severity)
	}
}

func TestFilterBySeverity_WarnThreshold(t *testing.T) {
	findings := makeFindings(schema.SeverityCritical, schema.SeverityWarn, schema.SeverityInfo)
	if got := len(FilterBySeverity(findings, schema.SeverityWarn)); got != 2 {
		t.Errorf("expected 2 findings with WARN threshold, got %d", got)
	}
}

func TestFilterBySeverity_InfoThreshold_ReturnsAll(t *testing.T) {
	findings := makeFindings(schema.SeverityCritical, schema.SeverityWarn, schema.SeverityInfo)
	if got := len(FilterBySeverity(findings, schema.SeverityInfo)); got != 3 {
		t.Errorf("expected 3 findings with INFO threshold, got %d", got)
	}
}

func TestParseSeverity(t *testing.T) {
	for in, want := range map[string]schema.Severity{
		"info":     schema.SeverityInfo,
		"WARN":     schema.SeverityWarn,
		"critical": schema.SeverityCritical,
	} {
		got, ok := ParseSeverity(in)
		if !ok || got != want {
			t.Errorf("ParseSeverity(%q) = %q, %v", in, got, ok)
		}
	}
	if _, ok := ParseSeverity("fatal"); ok {
		t.Error("expected fatal to be rejected")
	}
}
