// Package notifications delivers run summaries via pluggable notifiers.
//
// The default implementation posts rich embeds to a Discord webhook using the
// endpoint configured in config.toml and gracefully degrades to a no-op when
// no webhook is set. Delivery failures are the caller's to log; they must
// never alter a run's outcome.
//
// Extend this package if you need alternative transports; callers depend only
// on the Service interface.
package notifications
