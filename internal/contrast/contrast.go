// Package contrast diffs a rule's recommended pattern against its
// anti-pattern.
package contrast

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dshills/axiom/internal/schema"
)

// Segment operations.
const (
	OpEqual  = "equal"
	OpInsert = "insert"
	OpDelete = "delete"
)

// Diff returns the character-level edit from do to dont, cleaned up for
// human reading. Deleted runs exist only in do, inserted runs only in dont.
// Identical inputs yield a single equal segment; two empty inputs yield none.
func Diff(do, dont string) []schema.Segment {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(normalize(do), normalize(dont), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	out := make([]schema.Segment, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		out = append(out, schema.Segment{Op: opName(d.Type), Text: d.Text})
	}
	return out
}

// Patch returns the diff-match-patch patch text turning do into dont, or ""
// when they are identical after normalization.
func Patch(do, dont string) string {
	before, after := normalize(do), normalize(dont)
	if before == after {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	return dmp.PatchToText(dmp.PatchMake(before, diffs))
}

// Similarity returns the share of do's and dont's runes left unchanged,
// between 0 and 1. Two empty inputs are fully similar.
func Similarity(segments []schema.Segment) float64 {
	var same, total int
	for _, s := range segments {
		n := len([]rune(s.Text))
		total += n
		if s.Op == OpEqual {
			// equal text appears on both sides
			same += 2 * n
			total += n
		}
	}
	if total == 0 {
		return 1
	}
	return float64(same) / float64(total)
}

func opName(op diffmatchpatch.Operation) string {
	switch op {
	case diffmatchpatch.DiffInsert:
		return OpInsert
	case diffmatchpatch.DiffDelete:
		return OpDelete
	default:
		return OpEqual
	}
}

// normalize trims trailing whitespace from each line and converts CRLF to LF.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
