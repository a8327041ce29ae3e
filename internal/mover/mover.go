package mover

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"snapsort/internal/fileutil"
	"snapsort/internal/logging"
	"snapsort/internal/placement"
)

// Mover performs safe single-file relocations.
type Mover struct {
	logger *slog.Logger
}

// New constructs a mover. A nil logger is replaced with a no-op logger.
func New(logger *slog.Logger) *Mover {
	return &Mover{logger: logging.NewComponentLogger(logger, "mover")}
}

// Move relocates src to dst, creating intermediate directories as needed,
// and reports the outcome. All failure modes are folded into the Result;
// Move never panics and never overwrites existing content.
func (m *Mover) Move(src, dst string) placement.Result {
	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return placement.Skipped(src, "source vanished before move",
				placement.Wrap(placement.ErrSourceUnavailable, "mover", "stat source", src, err))
		}
		return placement.Failed(src, placement.Wrap(placement.ErrSourceUnavailable, "mover", "stat source", src, err))
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		marker := placement.ErrIO
		if errors.Is(err, fs.ErrPermission) {
			marker = placement.ErrPermission
		}
		return placement.Failed(src, placement.Wrap(marker, "mover", "create destination directory", filepath.Dir(dst), err))
	}

	if _, err := os.Lstat(dst); err == nil {
		resolved, result, done := m.resolveConflict(src, dst)
		if done {
			return result
		}
		dst = resolved
	} else if !errors.Is(err, fs.ErrNotExist) {
		return placement.Failed(src, placement.Wrap(placement.ErrIO, "mover", "stat destination", dst, err))
	}

	if err := m.relocate(src, dst); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return placement.Skipped(src, "source vanished before move",
				placement.Wrap(placement.ErrSourceUnavailable, "mover", "rename", src, err))
		case errors.Is(err, fs.ErrPermission):
			return placement.Failed(src, placement.Wrap(placement.ErrPermission, "mover", "rename", dst, err))
		default:
			return placement.Failed(src, placement.Wrap(placement.ErrIO, "mover", "rename", dst, err))
		}
	}

	return placement.Moved(src, dst)
}

// resolveConflict handles an occupied destination. Identical content means
// the source is a duplicate and is discarded; different content gets a
// suffixed sibling path. done reports whether processing finished here.
func (m *Mover) resolveConflict(src, dst string) (string, placement.Result, bool) {
	same, err := fileutil.SameContent(src, dst)
	if err != nil {
		return "", placement.Failed(src, placement.Wrap(placement.ErrIO, "mover", "compare destination", dst, err)), true
	}
	if same {
		if err := os.Remove(src); err != nil {
			return "", placement.Failed(src, placement.Wrap(placement.ErrIO, "mover", "discard duplicate", src, err)), true
		}
		m.logger.Debug("discarded duplicate source", logging.String("source", src), logging.String("destination", dst))
		result := placement.Skipped(src, "duplicate content already at destination",
			placement.Wrap(placement.ErrDuplicate, "mover", "resolve conflict", dst, nil))
		result.Destination = dst
		return "", result, true
	}

	suffixed, err := nextAvailablePath(dst)
	if err != nil {
		return "", placement.Failed(src, placement.Wrap(placement.ErrIO, "mover", "allocate collision name", dst, err)), true
	}
	m.logger.Debug("destination occupied, using suffixed name",
		logging.String("destination", dst), logging.String("suffixed", suffixed))
	return suffixed, placement.Result{}, false
}

// relocate renames src, falling back to copy-verify-delete when the rename
// crosses filesystem volumes.
func (m *Mover) relocate(src, dst string) error {
	renameErr := os.Rename(src, dst)
	if renameErr == nil {
		return nil
	}

	var linkErr *os.LinkError
	if errors.As(renameErr, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		m.logger.Debug("cross-device move, copying instead", logging.String("source", src), logging.String("destination", dst))
		if err := fileutil.CopyFileVerified(src, dst); err != nil {
			return err
		}
		if err := os.Remove(src); err != nil {
			m.logger.Warn("copied across volumes but could not remove source", logging.String("source", src), logging.Error(err))
		}
		return nil
	}
	return renameErr
}

// nextAvailablePath returns the first free "<stem>-N<ext>" sibling of path.
func nextAvailablePath(path string) (string, error) {
	const maxAttempts = 10000
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, attempt, ext)
		if _, err := os.Lstat(candidate); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return candidate, nil
			}
			return "", err
		}
	}
	return "", fmt.Errorf("exhausted collision name slots for %s", path)
}
