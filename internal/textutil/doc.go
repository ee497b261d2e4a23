// Package textutil provides small text helpers shared across the organizer,
// primarily sanitization of titles before they become filesystem path
// segments.
package textutil
