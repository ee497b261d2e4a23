package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLibrary(); err != nil {
		return err
	}
	if err := c.validateNotifications(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateLibrary() error {
	if filepath.IsAbs(c.Library.MoviesDir) {
		return errors.New("library.movies_dir must be relative to paths.root")
	}
	if filepath.IsAbs(c.Library.TVDir) {
		return errors.New("library.tv_dir must be relative to paths.root")
	}
	if c.Library.MoviesDir == c.Library.TVDir {
		return errors.New("library.movies_dir and library.tv_dir must differ")
	}
	if c.Library.TVYear < 1900 || c.Library.TVYear > 2100 {
		return fmt.Errorf("library.tv_year %d out of range [1900, 2100]", c.Library.TVYear)
	}
	return nil
}

func (c *Config) validateNotifications() error {
	if c.Notifications.DiscordWebhook == "" {
		return nil
	}
	parsed, err := url.Parse(c.Notifications.DiscordWebhook)
	if err != nil {
		return fmt.Errorf("notifications.discord_webhook: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("notifications.discord_webhook must be an http(s) URL")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
