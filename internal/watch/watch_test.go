package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_CoalescesPaths(t *testing.T) {
	var mu sync.Mutex
	var calls [][]string
	d := NewDebouncer(50*time.Millisecond, func(paths []string) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, paths)
	})
	defer d.Stop()

	for i := 0; i < 5; i++ {
		d.Trigger("b.yaml")
		d.Trigger("a.yaml")
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"a.yaml", "b.yaml"}, calls[0])
}

func TestDebouncer_Stop(t *testing.T) {
	var count atomic.Int32
	d := NewDebouncer(50*time.Millisecond, func([]string) { count.Add(1) })

	d.Trigger("a.yaml")
	d.Stop()
	time.Sleep(100 * time.Millisecond)

	assert.Zero(t, count.Load())
}

func TestDebouncer_DefaultWindow(t *testing.T) {
	d := NewDebouncer(0, nil)
	assert.Equal(t, DefaultWindow, d.window)
}

func TestPatternFilter(t *testing.T) {
	tests := []struct {
		name    string
		include []string
		exclude []string
		path    string
		want    bool
	}{
		{"no patterns", nil, nil, "catalog.yaml", true},
		{"base name include", []string{"*.yaml"}, nil, "catalogs/forms.yaml", true},
		{"include miss", []string{"*.yaml"}, nil, "catalogs/forms.json", false},
		{"doublestar include", []string{"catalogs/**/*.yaml"}, nil, "catalogs/a/b/forms.yaml", true},
		{"exclude wins", []string{"*.yaml"}, []string{"*.bak.yaml"}, "forms.bak.yaml", false},
		{"editor swap file", nil, []string{"*.swp", "*~"}, "forms.yaml~", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewPatternFilter(tt.include, tt.exclude)
			assert.Equal(t, tt.want, f.Matches(tt.path))
		})
	}
}

func TestFSWatcher_ReportsFilteredChanges(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "catalog.yaml")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(target, []byte("categories: []\n"), 0o600))

	changed := make(chan []string, 4)
	w, err := NewFSWatcher(NewPatternFilter([]string{"*.yaml"}, nil), 50*time.Millisecond,
		func(paths []string) { changed <- paths }, nil)
	require.NoError(t, err)
	require.NoError(t, w.WatchFiles([]string{target}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o600))
	require.NoError(t, os.WriteFile(target, []byte("categories: []\nrules: []\n"), 0o600))

	select {
	case paths := <-changed:
		require.NotEmpty(t, paths)
		for _, p := range paths {
			assert.Equal(t, "catalog.yaml", filepath.Base(p))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	assert.True(t, errors.Is(<-done, context.Canceled))
}

func TestFSWatcher_WatchFilesDedupesDirs(t *testing.T) {
	dir := t.TempDir()
	w, err := NewFSWatcher(nil, 0, nil, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.WatchFiles([]string{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yaml")}))
	assert.Len(t, w.dirs, 1)
	assert.Error(t, w.WatchDir(filepath.Join(dir, "missing")))
}

func TestFSWatcher_WatchTree(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a", "forms.yaml"), nil, 0o600))

	w, err := NewFSWatcher(nil, 0, nil, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.WatchTree(dir))
	assert.True(t, w.dirs[dir])
	assert.True(t, w.dirs[filepath.Join(dir, "a")])
	assert.True(t, w.dirs[filepath.Join(dir, "a", "b")])
	assert.Len(t, w.dirs, 3)

	assert.Error(t, w.WatchTree(filepath.Join(dir, "missing")))
}

func TestFSWatcher_WatchesCreatedDirectories(t *testing.T) {
	dir := t.TempDir()
	changed := make(chan []string, 8)
	w, err := NewFSWatcher(NewPatternFilter([]string{filepath.Join(dir, "**", "*.yaml")}, nil), 50*time.Millisecond,
		func(paths []string) { changed <- paths }, nil)
	require.NoError(t, err)
	require.NoError(t, w.WatchTree(dir))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	nested := filepath.Join(dir, "nested", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(nested, "forms.yaml"), []byte("rules: []\n"), 0o600))

	deadline := time.After(2 * time.Second)
	found := false
	for !found {
		select {
		case paths := <-changed:
			for _, p := range paths {
				if filepath.Base(p) == "forms.yaml" {
					found = true
				}
			}
		case <-deadline:
			t.Fatal("change in a created directory was not reported")
		}
	}

	cancel()
	assert.True(t, errors.Is(<-done, context.Canceled))

	w.mu.Lock()
	defer w.mu.Unlock()
	assert.True(t, w.dirs[nested])
}

func TestFSWatcher_CloseIsIdempotent(t *testing.T) {
	w, err := NewFSWatcher(nil, 0, nil, nil)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = w.Run(ctx)
	assert.True(t, err == nil || errors.Is(err, context.Canceled), "run after close: %v", err)
}
