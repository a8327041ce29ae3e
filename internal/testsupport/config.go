// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"snapsort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test
// and watch timings short enough for tests. The downloads directory exists
// when this returns.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DownloadsDir = filepath.Join(base, "downloads")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Watch.SettleMs = 20
	cfg.Watch.SettleChecks = 50

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := os.MkdirAll(cfg.Paths.DownloadsDir, 0o755); err != nil {
		t.Fatalf("mkdir downloads dir: %v", err)
	}
	return &cfg
}

// WithoutDateBuckets disables the YYYY-MM folder level on the test config.
func WithoutDateBuckets() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.DateBuckets = false
	}
}

// WithExtensions overrides the extension allow-list on the test config.
func WithExtensions(exts ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.Extensions = exts
	}
}
