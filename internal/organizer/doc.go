// Package organizer scans the library subtrees and moves media into the
// canonical layout.
//
// Decision logic and filesystem mutation are split: planning (parse, resolve,
// compare) is pure and returns a per-file Action, the executor applies moves
// and carries the video's subtitle sidecars along as one logical unit. Each
// unit is processed independently; an individual failure lands in the run
// summary and never aborts the pass. Dry-run computes plans and counters but
// performs no mutation.
package organizer
