package daemon

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"snapsort/internal/logging"
	"snapsort/internal/organizer"
	"snapsort/internal/testsupport"
	"snapsort/internal/watcher"
)

// Candidates that settled before shutdown but were never consumed must still
// be organized on the way out.
func TestDrainProcessesQueuedCandidates(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	root := cfg.Paths.DownloadsDir

	logger := logging.NewNop()
	d, err := New(cfg, organizer.New(cfg, logger), logger)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	w, err := watcher.New(logger, watcher.Options{
		SettleInterval: cfg.SettleInterval(),
		SettleChecks:   cfg.Watch.SettleChecks,
		Buffer:         cfg.Watch.EventBuffer,
	})
	if err != nil {
		t.Fatalf("watcher.New: %v", err)
	}
	if err := w.Start(context.Background(), root); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// Nothing consumes Candidates(), so settled files pile up in the buffer
	// the way they would when cancellation wins the race against the run loop.
	names := []string{
		"ChannelA_2024-05-01_001.png",
		"ChannelA_2024-05-01_002.png",
		"ChannelB_2024-06-02_001.png",
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(root, name), []byte("pixels "+name), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	deadline := time.Now().Add(5 * time.Second)
	for len(w.Candidates()) < len(names) {
		if time.Now().After(deadline) {
			t.Fatalf("only %d of %d candidates settled", len(w.Candidates()), len(names))
		}
		time.Sleep(10 * time.Millisecond)
	}
	w.Stop()

	var summary organizer.Summary
	d.drain(w, &summary)

	if summary.Moved != len(names) {
		t.Fatalf("Moved = %d, want %d", summary.Moved, len(names))
	}
	for _, want := range []string{
		filepath.Join(root, "channela", "2024-05", "ChannelA_2024-05-01_001.png"),
		filepath.Join(root, "channela", "2024-05", "ChannelA_2024-05-01_002.png"),
		filepath.Join(root, "channelb", "2024-06", "ChannelB_2024-06-02_001.png"),
	} {
		if _, err := os.Stat(want); err != nil {
			t.Fatalf("expected drained file at %s: %v", want, err)
		}
	}
}
