package organizer

import (
	"path/filepath"

	"blademedia/internal/identify"
	"blademedia/internal/library"
)

// ActionKind discriminates planned actions.
type ActionKind int

const (
	ActionSkip ActionKind = iota
	ActionMove
)

// SkipReason explains why a file was left in place.
type SkipReason int

const (
	SkipNone SkipReason = iota
	// SkipUnrecognized marks filenames no matcher could parse. This is an
	// expected outcome, not an error.
	SkipUnrecognized
	// SkipOrganized marks files already at their resolved destination.
	SkipOrganized
)

// Action is the planned outcome for one video file. Planning never touches
// the filesystem; the executor applies moves.
type Action struct {
	Kind   ActionKind
	Reason SkipReason
	Source string
	Dest   library.Destination
}

// PlanMovie decides what to do with one movie file.
func PlanMovie(layout library.Layout, path string) Action {
	name := filepath.Base(path)
	id, ok := identify.ParseMovie(name)
	if !ok {
		return Action{Kind: ActionSkip, Reason: SkipUnrecognized, Source: path}
	}
	dest := layout.MovieDestination(id, name)
	if library.MovieOrganized(path, dest) {
		return Action{Kind: ActionSkip, Reason: SkipOrganized, Source: path, Dest: dest}
	}
	return Action{Kind: ActionMove, Source: path, Dest: dest}
}

// PlanEpisode decides what to do with one TV episode file.
func PlanEpisode(layout library.Layout, path string) Action {
	name := filepath.Base(path)
	id, ok := identify.ParseEpisode(name)
	if !ok {
		return Action{Kind: ActionSkip, Reason: SkipUnrecognized, Source: path}
	}
	dest := layout.EpisodeDestination(id, filepath.Ext(name))
	if library.EpisodeOrganized(path, dest) {
		return Action{Kind: ActionSkip, Reason: SkipOrganized, Source: path, Dest: dest}
	}
	return Action{Kind: ActionMove, Source: path, Dest: dest}
}
