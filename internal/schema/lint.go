package schema

// LintReport is the top-level output of the lint command.
type LintReport struct {
	Tool     string     `json:"tool" yaml:"tool"`
	Version  string     `json:"version" yaml:"version"`
	Input    LintInput  `json:"input" yaml:"input"`
	Summary  Summary    `json:"summary" yaml:"summary"`
	Files    []FileInfo `json:"files" yaml:"files"`
	Findings []Finding  `json:"findings" yaml:"findings"`
}

// LintInput captures the parameters used for a lint run.
type LintInput struct {
	Patterns          []string `json:"patterns" yaml:"patterns"`
	Builtin           bool     `json:"builtin" yaml:"builtin"`
	SeverityThreshold string   `json:"severity_threshold" yaml:"severity_threshold"`
}

// FileInfo describes one linted catalog file.
type FileInfo struct {
	Path       string `json:"path" yaml:"path"`
	Hash       string `json:"hash" yaml:"hash"` // "sha256:<hex>"
	Categories int    `json:"categories" yaml:"categories"`
	Rules      int    `json:"rules" yaml:"rules"`
}

// Summary holds the computed verdict and finding counts.
// Counts always reflect all findings before any --severity-threshold filtering.
type Summary struct {
	Verdict       Verdict `json:"verdict" yaml:"verdict"`
	Score         int     `json:"score" yaml:"score"`
	CriticalCount int     `json:"critical_count" yaml:"critical_count"`
	WarnCount     int     `json:"warn_count" yaml:"warn_count"`
	InfoCount     int     `json:"info_count" yaml:"info_count"`
}

// Severity levels for findings.
type Severity string

const (
	SeverityInfo     Severity = "INFO"
	SeverityWarn     Severity = "WARN"
	SeverityCritical Severity = "CRITICAL"
)

// Verdict represents the overall assessment of a catalog.
type Verdict string

const (
	VerdictValid         Verdict = "VALID"
	VerdictValidWithGaps Verdict = "VALID_WITH_GAPS"
	VerdictInvalid       Verdict = "INVALID"
)

// VerdictOrdinal returns the numeric ordering for a verdict, used by --fail-on
// comparison. VALID(0) < VALID_WITH_GAPS(1) < INVALID(2).
// Returns -1 for an unrecognised verdict.
func VerdictOrdinal(v Verdict) int {
	switch v {
	case VerdictValid:
		return 0
	case VerdictValidWithGaps:
		return 1
	case VerdictInvalid:
		return 2
	default:
		return -1
	}
}

// FindingKind classifies a catalog defect.
type FindingKind string

const (
	KindSchemaViolation     FindingKind = "SCHEMA_VIOLATION"
	KindDuplicateRuleID     FindingKind = "DUPLICATE_RULE_ID"
	KindDuplicateCategoryID FindingKind = "DUPLICATE_CATEGORY_ID"
	KindUnknownCategory     FindingKind = "UNKNOWN_CATEGORY"
	KindEmptyField          FindingKind = "EMPTY_FIELD"
	KindIdenticalPatterns   FindingKind = "IDENTICAL_PATTERNS"
	KindEmptyCategory       FindingKind = "EMPTY_CATEGORY"
	KindInvalidSlug         FindingKind = "INVALID_SLUG"
	KindMissingTags         FindingKind = "MISSING_TAGS"
	KindDuplicateTag        FindingKind = "DUPLICATE_TAG"
)

// Finding is a single defect found in a catalog.
type Finding struct {
	ID          string      `json:"id" yaml:"id"`
	Severity    Severity    `json:"severity" yaml:"severity"`
	Kind        FindingKind `json:"kind" yaml:"kind"`
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	RuleID      string      `json:"rule_id,omitempty" yaml:"rule_id,omitempty"`
	Evidence    *Evidence   `json:"evidence,omitempty" yaml:"evidence,omitempty"`
}

// Evidence links a finding to a location in a catalog file.
// Line is 0 when the finding has no source position (builtin catalog).
type Evidence struct {
	Path string `json:"path" yaml:"path"`
	Line int    `json:"line" yaml:"line"`
}
