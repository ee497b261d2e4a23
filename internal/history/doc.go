// Package history persists a ledger of completed organizer runs backed by
// SQLite.
//
// The ledger stores only final counters per run, never per-move state: the
// organizer stays journal-free and a run's in-memory summary remains the
// source of truth while it executes. The store exists so unattended hourly
// runs leave an inspectable trail (`blademedia history`).
package history
