package lint

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// Source holds a loaded catalog file with derived metadata.
type Source struct {
	Path string
	Hash string // "sha256:<hex>"
	Raw  []byte
}

// LoadFile reads a catalog file from disk and hashes its content.
func LoadFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	sum := sha256.Sum256(data)
	return &Source{
		Path: path,
		Hash: fmt.Sprintf("sha256:%x", sum),
		Raw:  data,
	}, nil
}

// Expand resolves patterns to a sorted, de-duplicated list of files.
// Patterns may use doublestar syntax ("catalogs/**/*.yaml"). A pattern
// without glob metacharacters is kept as a literal path, so a missing file
// surfaces as a load error later. A glob that matches nothing is an error.
func Expand(patterns []string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, pattern := range patterns {
		if !hasMeta(pattern) {
			add(pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob error in %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match pattern: %s", pattern)
		}
		slices.Sort(matches)
		for _, m := range matches {
			add(m)
		}
	}
	return out, nil
}

func hasMeta(pattern string) bool {
	for _, c := range pattern {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
