package devserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherDetectsModification(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "main.css")
	if err := os.WriteFile(testFile, []byte("body{}"), 0644); err != nil {
		t.Fatal(err)
	}

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{tmpDir},
		Debounce: 50 * time.Millisecond,
	})

	changes := make(chan Change, 10)
	watcher.OnChange(func(c Change) {
		changes <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go watcher.Start(ctx)

	// Wait for initial scan
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(testFile, []byte("body{color:red}"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-changes:
		if change.Type != ChangeCSS {
			t.Errorf("change type = %v, want ChangeCSS", change.Type)
		}
		if change.Path != testFile {
			t.Errorf("change path = %q, want %q", change.Path, testFile)
		}
	case <-time.After(500 * time.Millisecond):
		t.Error("timeout waiting for change")
	}

	watcher.Stop()
}

func TestWatcherDetectsNewFile(t *testing.T) {
	tmpDir := t.TempDir()

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{tmpDir},
		Debounce: 50 * time.Millisecond,
	})

	changes := make(chan Change, 10)
	watcher.OnChange(func(c Change) {
		changes <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go watcher.Start(ctx)

	time.Sleep(100 * time.Millisecond)

	newFile := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(newFile, []byte("<html></html>"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-changes:
		if change.Type != ChangeTemplate {
			t.Errorf("change type = %v, want ChangeTemplate", change.Type)
		}
		if change.Path != newFile {
			t.Errorf("change path = %q, want %q", change.Path, newFile)
		}
	case <-time.After(500 * time.Millisecond):
		t.Error("timeout waiting for new file change")
	}

	watcher.Stop()
}

func TestWatcherIgnorePatterns(t *testing.T) {
	watcher := NewWatcher(WatcherConfig{
		Paths:  []string{t.TempDir()},
		Ignore: []string{"*_test.go", "vendor"},
	})

	if !watcher.shouldIgnore("foo_test.go") {
		t.Error("should ignore *_test.go files")
	}
	if !watcher.shouldIgnore(filepath.Join("vendor", "lib.go")) {
		t.Error("should ignore vendor directory")
	}
	if watcher.shouldIgnore("main.go") {
		t.Error("should not ignore main.go")
	}
}

func TestWatcherRootUnderIgnoredName(t *testing.T) {
	// Default ignore patterns apply relative to the watch root. A root
	// whose own path contains an ignored segment must still be watched,
	// while the same name inside the root stays ignored.
	root := filepath.Join(t.TempDir(), "tmp", "site")
	if err := os.MkdirAll(filepath.Join(root, "tmp"), 0755); err != nil {
		t.Fatal(err)
	}

	mainFile := filepath.Join(root, "main.css")
	scratchFile := filepath.Join(root, "tmp", "scratch.css")
	for _, p := range []string{mainFile, scratchFile} {
		if err := os.WriteFile(p, []byte("body{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{root},
		Debounce: 50 * time.Millisecond,
	})

	changes := make(chan Change, 10)
	watcher.OnChange(func(c Change) {
		changes <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go watcher.Start(ctx)
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(scratchFile, []byte("body{color:red}"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case change := <-changes:
		t.Errorf("change reported for ignored path %q", change.Path)
	case <-time.After(300 * time.Millisecond):
	}

	if err := os.WriteFile(mainFile, []byte("body{color:blue}"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case change := <-changes:
		if change.Path != mainFile {
			t.Errorf("change path = %q, want %q", change.Path, mainFile)
		}
	case <-time.After(500 * time.Millisecond):
		t.Error("timeout waiting for change inside watched root")
	}

	watcher.Stop()
}

func TestWatcherDefaultIgnore(t *testing.T) {
	watcher := NewWatcher(WatcherConfig{Paths: []string{"."}})

	tests := []struct {
		path string
		want bool
	}{
		{"app/page_test.go", true},
		{"node_modules/pkg/index.js", true},
		{".arbor/cache", true},
		{"app/page.go", false},
		{"public/styles.css", false},
	}
	for _, tt := range tests {
		if got := watcher.shouldIgnore(tt.path); got != tt.want {
			t.Errorf("shouldIgnore(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestClassifyChange(t *testing.T) {
	tests := []struct {
		path string
		want ChangeType
	}{
		{"app/main.go", ChangeGo},
		{"public/styles.css", ChangeCSS},
		{"app/input.scss", ChangeCSS},
		{"app/page.html", ChangeTemplate},
		{"public/logo.svg", ChangeAsset},
	}
	for _, tt := range tests {
		if got := classifyChange(tt.path); got != tt.want {
			t.Errorf("classifyChange(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWatcherStartIsIdempotent(t *testing.T) {
	watcher := NewWatcher(WatcherConfig{Paths: []string{t.TempDir()}})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go watcher.Start(ctx)
	time.Sleep(50 * time.Millisecond)

	if !watcher.IsRunning() {
		t.Fatal("watcher should be running")
	}
	if err := watcher.Start(ctx); err != nil {
		t.Fatalf("second Start() error: %v", err)
	}

	watcher.Stop()
	if watcher.IsRunning() {
		t.Error("watcher should be stopped")
	}
}
