// Package services defines the shared error taxonomy used across the CLI and
// the organizer so failures carry enough context to classify them without
// string matching.
package services
