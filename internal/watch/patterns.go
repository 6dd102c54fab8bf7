package watch

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// PatternFilter selects paths by doublestar include and exclude patterns.
// Each pattern is tried against the full path and the base name.
type PatternFilter struct {
	Include []string
	Exclude []string
}

// NewPatternFilter creates a new pattern filter.
func NewPatternFilter(include, exclude []string) *PatternFilter {
	return &PatternFilter{
		Include: include,
		Exclude: exclude,
	}
}

// Matches reports whether path passes the filter. Excludes win over
// includes; with no includes every non-excluded path passes.
func (f *PatternFilter) Matches(path string) bool {
	for _, pattern := range f.Exclude {
		if match(pattern, path) {
			return false
		}
	}
	if len(f.Include) == 0 {
		return true
	}
	for _, pattern := range f.Include {
		if match(pattern, path) {
			return true
		}
	}
	return false
}

func match(pattern, path string) bool {
	if ok, _ := doublestar.PathMatch(filepath.Clean(pattern), filepath.Clean(path)); ok {
		return true
	}
	ok, _ := doublestar.PathMatch(pattern, filepath.Base(path))
	return ok
}
