package main

// Notes:
// - watchLoop: file system polling is replaced by watcher.TriggerEvent so the
//   test does not depend on timing of real writes.
// - resolveConfigPath: the user config directory fallback depends on $HOME
//   and is only checked for being listed in the not-found error.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/radovskyb/watcher"

	"github.com/matiasglessi/portfolio/internal/config"
)

// ---------------------------------------------------------------------------
// TestResolveConfigPath - Config lookup order
// ---------------------------------------------------------------------------

func TestResolveConfigPath(t *testing.T) {
	t.Parallel()

	t.Run("content root first", func(t *testing.T) {
		t.Parallel()

		dir := setupTestDir(t, map[string]string{"site.yml": testConfigYAML})
		got, err := resolveConfigPath("", dir)
		if err != nil {
			t.Fatalf("resolveConfigPath() error = %v", err)
		}
		if want := filepath.Join(dir, "site.yml"); got != want {
			t.Errorf("resolveConfigPath() = %q, want %q", got, want)
		}
	})

	t.Run("explicit path", func(t *testing.T) {
		t.Parallel()

		got, err := resolveConfigPath("conf/site.yaml", t.TempDir())
		if err != nil || got != "conf/site.yaml" {
			t.Errorf("resolveConfigPath() = %q, %v, want the path unchanged", got, err)
		}
	})

	t.Run("bare file name", func(t *testing.T) {
		t.Parallel()

		got, err := resolveConfigPath("site.yaml", t.TempDir())
		if err != nil || got != "site.yaml" {
			t.Errorf("resolveConfigPath() = %q, %v, want site.yaml", got, err)
		}
		if p := asPath(got); p != "."+string(filepath.Separator)+"site.yaml" {
			t.Errorf("asPath() = %q, want a relative path", p)
		}
	})

	t.Run("not found lists candidates", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		_, err := resolveConfigPath("", dir)
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Fatalf("resolveConfigPath() error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), filepath.Join(dir, "site.yaml")) {
			t.Errorf("error %q should list the content root candidate", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWatchLoop - Rebuild on change, stop on cancel
// ---------------------------------------------------------------------------

func TestWatchLoop(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{"posts/a.md": "x"})
	w, err := newContentWatcher(dir, filepath.Join(dir, "public"), filepath.Join(dir, "site.yaml"))
	if err != nil {
		t.Fatalf("newContentWatcher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	rebuilt := make(chan struct{}, 1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- watchLoop(ctx, w, discard(), func() { rebuilt <- struct{}{} })
	}()

	w.Wait()
	w.TriggerEvent(watcher.Write, nil)

	select {
	case <-rebuilt:
	case <-time.After(2 * time.Second):
		t.Fatal("rebuild was not called after a change")
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("watchLoop() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watchLoop() did not return after cancellation")
	}
}

func TestInside(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"same", root, true},
		{"child", filepath.Join(root, "public"), true},
		{"sibling with prefix", root + "-other", false},
		{"parent", filepath.Dir(root), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := inside(root, tt.path); got != tt.want {
				t.Errorf("inside(%q, %q) = %v, want %v", root, tt.path, got, tt.want)
			}
		})
	}
}
