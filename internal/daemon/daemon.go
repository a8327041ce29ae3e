package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gofrs/flock"

	"snapsort/internal/config"
	"snapsort/internal/logging"
	"snapsort/internal/organizer"
	"snapsort/internal/watcher"
)

// Daemon runs the watch-mode lifecycle.
type Daemon struct {
	cfg    *config.Config
	org    *organizer.Organizer
	logger *slog.Logger
	lock   *flock.Flock
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, org *organizer.Organizer, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || org == nil {
		return nil, errors.New("daemon requires config and organizer")
	}
	if err := os.MkdirAll(cfg.Paths.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure log directory: %w", err)
	}
	return &Daemon{
		cfg:    cfg,
		org:    org,
		logger: logging.NewComponentLogger(logger, "daemon"),
		lock:   flock.New(cfg.LockFilePath()),
	}, nil
}

// Run sweeps root once, then processes watcher candidates until ctx is
// cancelled. The returned summary covers the sweep and all watched moves.
func (d *Daemon) Run(ctx context.Context, root string) (organizer.Summary, error) {
	var summary organizer.Summary

	locked, err := d.lock.TryLock()
	if err != nil {
		return summary, fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return summary, fmt.Errorf("another snapsort instance is already watching (lock %s)", d.lock.Path())
	}
	defer func() {
		if err := d.lock.Unlock(); err != nil {
			d.logger.Warn("failed to release lock", logging.Error(err))
		}
	}()

	if err := organizer.ValidateRoot(root); err != nil {
		return summary, err
	}

	w, err := watcher.New(d.logger, watcher.Options{
		SettleInterval: d.cfg.SettleInterval(),
		SettleChecks:   d.cfg.Watch.SettleChecks,
		Buffer:         d.cfg.Watch.EventBuffer,
	})
	if err != nil {
		return summary, fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	// Subscribe before the sweep so files created mid-sweep are not missed;
	// a file caught by both paths resolves as source-unavailable on the
	// second attempt.
	if err := w.Start(ctx, root); err != nil {
		return summary, fmt.Errorf("watch root: %w", err)
	}

	summary, err = d.org.Sweep(ctx, root)
	if err != nil && !errors.Is(err, context.Canceled) {
		return summary, err
	}

	d.logger.Info("watch mode active", logging.String("root", root))
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			d.drain(w, &summary)
			d.logger.Info("watch mode stopped",
				logging.Int("moved", summary.Moved),
				logging.Int("skipped", summary.Skipped),
				logging.Int("failed", summary.Failed),
			)
			return summary, nil
		case path := <-w.Candidates():
			summary.Record(d.org.Process(path))
		}
	}
}

// drain processes candidates that settled before shutdown but were still
// queued. The watcher is already stopped, so the buffer cannot refill.
func (d *Daemon) drain(w *watcher.Watcher, summary *organizer.Summary) {
	for {
		select {
		case path := <-w.Candidates():
			summary.Record(d.org.Process(path))
		default:
			return
		}
	}
}
