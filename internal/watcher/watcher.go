package watcher

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"snapsort/internal/logging"
)

// Options controls settle timing and buffering.
type Options struct {
	SettleInterval time.Duration // delay between size checks
	SettleChecks   int           // unstable checks tolerated before giving up
	Buffer         int           // candidate channel capacity
}

func (o Options) withDefaults() Options {
	if o.SettleInterval <= 0 {
		o.SettleInterval = 500 * time.Millisecond
	}
	if o.SettleChecks <= 0 {
		o.SettleChecks = 5
	}
	if o.Buffer <= 0 {
		o.Buffer = 64
	}
	return o
}

// pendingFile tracks one file moving through the settle cycle.
type pendingFile struct {
	timer    *time.Timer
	lastSize int64
	sized    bool
	checks   int
}

// Watcher monitors the downloads root for new files.
type Watcher struct {
	fs         *fsnotify.Watcher
	opts       Options
	logger     *slog.Logger
	candidates chan string
	stopChan   chan struct{}
	wg         sync.WaitGroup

	mu      sync.Mutex
	pending map[string]*pendingFile
	stopped bool
}

// New creates a watcher. Start must be called before candidates flow.
func New(logger *slog.Logger, opts Options) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	return &Watcher{
		fs:         fsWatcher,
		opts:       opts,
		logger:     logging.NewComponentLogger(logger, "watcher"),
		candidates: make(chan string, opts.Buffer),
		stopChan:   make(chan struct{}),
		pending:    make(map[string]*pendingFile),
	}, nil
}

// Start subscribes to creation events in root (non-recursive) and begins
// the event loop. It returns once the subscription is active.
func (w *Watcher) Start(ctx context.Context, root string) error {
	if err := w.fs.Add(root); err != nil {
		return err
	}
	w.wg.Add(1)
	go w.eventLoop(ctx)
	w.logger.Info("watching for new screenshots", logging.String("root", root))
	return nil
}

// Candidates returns the channel of settled file paths. The channel is
// buffered; entries still queued after Stop can be drained by the consumer.
func (w *Watcher) Candidates() <-chan string {
	return w.candidates
}

// Stop cancels all pending settle cycles and shuts down the event loop.
// Files still inside their settle window are dropped.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	for path, p := range w.pending {
		p.timer.Stop()
		delete(w.pending, path)
	}
	w.mu.Unlock()

	close(w.stopChan)
	_ = w.fs.Close()
	w.wg.Wait()
	w.logger.Info("watcher stopped")
}

func (w *Watcher) eventLoop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Create) {
				w.handleCreate(event.Name)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Error("filesystem notification error", logging.Error(err))
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

// handleCreate begins (or restarts) the settle cycle for a created path.
// Directory creations are ignored; those are organized output.
func (w *Watcher) handleCreate(path string) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Created and already gone; the producer renamed or removed it.
			w.logger.Info("created file vanished before tracking, skipping", logging.String("path", path))
		} else {
			w.logger.Warn("cannot stat created file, skipping", logging.String("path", path), logging.Error(err))
		}
		return
	}
	if info.IsDir() {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if existing, ok := w.pending[path]; ok {
		// Fresh activity on a file we were already tracking: restart.
		existing.timer.Stop()
	}
	p := &pendingFile{}
	p.timer = time.AfterFunc(w.opts.SettleInterval, func() { w.check(path) })
	w.pending[path] = p
	w.logger.Debug("tracking new file", logging.String("path", path))
}

// check is one step of the settle cycle: the file is emitted once its size
// matches the previous observation, re-armed while it keeps changing, and
// abandoned when it disappears or exhausts its check budget.
func (w *Watcher) check(path string) {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	p, ok := w.pending[path]
	if !ok {
		w.mu.Unlock()
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		delete(w.pending, path)
		w.mu.Unlock()
		if errors.Is(err, fs.ErrNotExist) {
			w.logger.Info("file vanished before settling, skipping", logging.String("path", path))
		} else {
			w.logger.Warn("cannot stat pending file, skipping", logging.String("path", path), logging.Error(err))
		}
		return
	}

	size := info.Size()
	if p.sized && size == p.lastSize {
		delete(w.pending, path)
		w.mu.Unlock()
		w.emit(path)
		return
	}

	p.lastSize = size
	p.sized = true
	p.checks++
	if p.checks >= w.opts.SettleChecks {
		delete(w.pending, path)
		w.mu.Unlock()
		w.logger.Warn("file never settled, skipping",
			logging.String("path", path),
			logging.Int("checks", p.checks),
		)
		return
	}
	p.timer.Reset(w.opts.SettleInterval)
	w.mu.Unlock()
}

func (w *Watcher) emit(path string) {
	select {
	case w.candidates <- path:
		w.logger.Debug("file settled", logging.String("path", path))
	case <-w.stopChan:
		w.logger.Info("dropping settled file during shutdown", logging.String("path", path))
	}
}
