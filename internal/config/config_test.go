package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blademedia/internal/config"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if cfg.Paths.Root != wd {
		t.Fatalf("root = %q, want working directory %q", cfg.Paths.Root, wd)
	}
	if cfg.Library.TVYear != 2025 {
		t.Fatalf("tv_year = %d, want 2025", cfg.Library.TVYear)
	}
	if got := cfg.MoviesRoot(); got != filepath.Join(wd, "media", "movies") {
		t.Fatalf("MoviesRoot = %q", got)
	}
	if got := cfg.TVRoot(); got != filepath.Join(wd, "media", "tv") {
		t.Fatalf("TVRoot = %q", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
root = "` + dir + `"

[library]
tv_year = 2024

[notifications]
discord_webhook = "https://discord.com/api/webhooks/1/abc"
request_timeout = 5

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.Paths.Root != dir {
		t.Fatalf("root = %q, want %q", cfg.Paths.Root, dir)
	}
	if cfg.Library.TVYear != 2024 {
		t.Fatalf("tv_year = %d", cfg.Library.TVYear)
	}
	if cfg.Notifications.RequestTimeout != 5 {
		t.Fatalf("request_timeout = %d", cfg.Notifications.RequestTimeout)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:    "absolute movies dir",
			mutate:  func(c *config.Config) { c.Library.MoviesDir = "/abs/movies" },
			wantErr: "movies_dir",
		},
		{
			name: "identical subtrees",
			mutate: func(c *config.Config) {
				c.Library.MoviesDir = "media/all"
				c.Library.TVDir = "media/all"
			},
			wantErr: "must differ",
		},
		{
			name:    "tv year out of range",
			mutate:  func(c *config.Config) { c.Library.TVYear = 1400 },
			wantErr: "tv_year",
		},
		{
			name:    "webhook scheme",
			mutate:  func(c *config.Config) { c.Notifications.DiscordWebhook = "ftp://example.com/hook" },
			wantErr: "http(s)",
		},
		{
			name:    "log format",
			mutate:  func(c *config.Config) { c.Logging.Format = "yaml" },
			wantErr: "logging.format",
		},
		{
			name:    "log level",
			mutate:  func(c *config.Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Logging.Format = "console"
			cfg.Logging.Level = "info"
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q missing %q", err.Error(), tc.wantErr)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if _, _, exists, err := config.Load(path); err != nil || !exists {
		t.Fatalf("Load sample: exists=%v err=%v", exists, err)
	}
}
