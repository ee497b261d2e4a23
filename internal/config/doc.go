// Package config loads, normalizes, and validates BladeMedia configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The library root defaults to the current
// working directory so the organizer can run against the tree it is invoked
// from, matching an unattended cron/systemd setup.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
