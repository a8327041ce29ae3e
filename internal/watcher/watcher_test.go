package watcher_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"snapsort/internal/logging"
	"snapsort/internal/watcher"
)

func startWatcher(t *testing.T, root string, opts watcher.Options) *watcher.Watcher {
	t.Helper()
	w, err := watcher.New(logging.NewNop(), opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Start(context.Background(), root); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(w.Stop)
	return w
}

func TestWatcherEmitsAfterSizeSettles(t *testing.T) {
	root := t.TempDir()
	// The settle interval is longer than the gap between writes, so two
	// consecutive checks can never agree while writing is still going on.
	w := startWatcher(t, root, watcher.Options{
		SettleInterval: 100 * time.Millisecond,
		SettleChecks:   100,
	})

	path := filepath.Join(root, "shroud_Sat-Jan-18-2025_1_06_05-PM.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer f.Close()
		for i := 0; i < 6; i++ {
			if _, err := f.Write([]byte("chunk of pixels ")); err != nil {
				t.Errorf("write: %v", err)
				return
			}
			_ = f.Sync()
			time.Sleep(25 * time.Millisecond)
		}
	}()

	select {
	case got := <-w.Candidates():
		<-done
		if got != path {
			t.Fatalf("candidate = %q, want %q", got, path)
		}
		// The emitted candidate must hold the complete final content.
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if want := int64(6 * len("chunk of pixels ")); info.Size() != want {
			t.Fatalf("size at emission = %d, want %d (truncated emit)", info.Size(), want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("candidate never emitted")
	}
}

func TestWatcherSkipsVanishedFile(t *testing.T) {
	root := t.TempDir()
	w := startWatcher(t, root, watcher.Options{
		SettleInterval: 20 * time.Millisecond,
		SettleChecks:   5,
	})

	path := filepath.Join(root, "ephemeral.png")
	if err := os.WriteFile(path, []byte("temp"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Candidates():
		t.Fatalf("unexpected candidate %q for vanished file", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherLogsFileGoneAtCreation(t *testing.T) {
	root := t.TempDir()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	w, err := watcher.New(logger, watcher.Options{
		SettleInterval: 20 * time.Millisecond,
		SettleChecks:   5,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Start(context.Background(), root); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// A dangling symlink delivers a create event for a path whose target is
	// already gone, like a producer that renames its file away immediately.
	if err := os.Symlink(filepath.Join(root, "no-such-target"), filepath.Join(root, "ghost.png")); err != nil {
		t.Skipf("symlink not supported: %v", err)
	}

	select {
	case got := <-w.Candidates():
		t.Fatalf("unexpected candidate %q for vanished file", got)
	case <-time.After(300 * time.Millisecond):
	}

	w.Stop()
	if !strings.Contains(buf.String(), "vanished before tracking") {
		t.Fatalf("expected a log line for the vanished file, got:\n%s", buf.String())
	}
}

func TestWatcherIgnoresDirectories(t *testing.T) {
	root := t.TempDir()
	w := startWatcher(t, root, watcher.Options{
		SettleInterval: 20 * time.Millisecond,
		SettleChecks:   5,
	})

	if err := os.Mkdir(filepath.Join(root, "channela"), 0o755); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Candidates():
		t.Fatalf("unexpected candidate %q for directory", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherGivesUpOnRestlessFile(t *testing.T) {
	root := t.TempDir()
	w := startWatcher(t, root, watcher.Options{
		SettleInterval: 20 * time.Millisecond,
		SettleChecks:   3,
	})

	path := filepath.Join(root, "endless.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	// Keep the size changing well past the check budget.
	stop := time.After(500 * time.Millisecond)
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case got := <-w.Candidates():
			t.Fatalf("unexpected candidate %q for never-settling file", got)
		case <-ticker.C:
			if _, err := f.Write([]byte("more")); err != nil {
				t.Fatal(err)
			}
			_ = f.Sync()
		case <-stop:
			return
		}
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	w, err := watcher.New(logging.NewNop(), watcher.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(context.Background(), t.TempDir()); err != nil {
		t.Fatal(err)
	}
	w.Stop()
	w.Stop()
}
