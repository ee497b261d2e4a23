// Package testsupport provides shared helpers for package tests: per-test
// configuration seeded with temp directories and fixture file creation.
package testsupport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"blademedia/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config rooted in a unique temp directory per test,
// with the media subtrees pre-created.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Root = filepath.Join(base, "root")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.History.Path = filepath.Join(base, "logs", "history.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	for _, dir := range []string{cfg.MoviesRoot(), cfg.TVRoot(), cfg.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	return &cfg
}

// WithWebhook sets the Discord webhook endpoint on the test config.
func WithWebhook(url string) ConfigOption {
	return func(c *config.Config) {
		c.Notifications.DiscordWebhook = url
	}
}

// WithTVYear overrides the TV placeholder year on the test config.
func WithTVYear(year int) ConfigOption {
	return func(c *config.Config) {
		c.Library.TVYear = year
	}
}

// WriteFile fills the target path with the requested number of bytes,
// creating parent directories as needed. A size <= 0 writes a single byte.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, bytes.Repeat([]byte{0x42}, int(size)), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
