package contrast

import (
	"strings"
	"testing"

	"github.com/dshills/axiom/internal/schema"
)

// rebuild reassembles one side of the diff.
func rebuild(segments []schema.Segment, skip string) string {
	var sb strings.Builder
	for _, s := range segments {
		if s.Op != skip {
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}

func TestDiff_ReassemblesBothSides(t *testing.T) {
	do, dont := "Create new account", "Create New Account"
	segs := Diff(do, dont)
	if len(segs) < 2 {
		t.Fatalf("expected several segments, got %+v", segs)
	}
	if got := rebuild(segs, OpInsert); got != do {
		t.Errorf("do side = %q, want %q", got, do)
	}
	if got := rebuild(segs, OpDelete); got != dont {
		t.Errorf("dont side = %q, want %q", got, dont)
	}
}

func TestDiff_Identical(t *testing.T) {
	segs := Diff("same", "same")
	if len(segs) != 1 || segs[0].Op != OpEqual || segs[0].Text != "same" {
		t.Errorf("Diff(same, same) = %+v", segs)
	}
}

func TestDiff_Empty(t *testing.T) {
	if segs := Diff("", ""); len(segs) != 0 {
		t.Errorf("expected no segments, got %+v", segs)
	}
}

func TestDiff_NormalizesTrailingWhitespace(t *testing.T) {
	segs := Diff("Label above Input  ", "Label above Input")
	if len(segs) != 1 || segs[0].Op != OpEqual {
		t.Errorf("trailing whitespace should not produce edits: %+v", segs)
	}
}

func TestPatch(t *testing.T) {
	out := Patch("Py-2 Px-4", "Py-2 Px-2")
	if !strings.HasPrefix(out, "@@") {
		t.Errorf("expected patch hunk header, got %q", out)
	}
	if Patch("x\r\n", "x\n") != "" {
		t.Error("expected empty patch for inputs equal after normalization")
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity(nil); got != 1 {
		t.Errorf("Similarity(nil) = %v, want 1", got)
	}
	if got := Similarity(Diff("abc", "abc")); got != 1 {
		t.Errorf("identical similarity = %v, want 1", got)
	}
	if got := Similarity(Diff("abc", "xyz")); got != 0 {
		t.Errorf("disjoint similarity = %v, want 0", got)
	}
	got := Similarity(Diff("Create new account", "Create New Account"))
	if got <= 0.5 || got >= 1 {
		t.Errorf("near-identical similarity = %v, want in (0.5, 1)", got)
	}
}
