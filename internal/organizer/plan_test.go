package organizer_test

import (
	"path/filepath"
	"testing"

	"blademedia/internal/library"
	"blademedia/internal/organizer"
)

func planLayout() library.Layout {
	return library.Layout{
		MoviesRoot: "/lib/media/movies",
		TVRoot:     "/lib/media/tv",
		TVYear:     2025,
	}
}

func TestPlanMovieMove(t *testing.T) {
	layout := planLayout()
	action := organizer.PlanMovie(layout, "/lib/media/movies/Inception.2010.mkv")
	if action.Kind != organizer.ActionMove {
		t.Fatalf("kind = %v, want move", action.Kind)
	}
	want := "/lib/media/movies/[Inception] [2010]/Inception.2010.mkv"
	if action.Dest.Path() != want {
		t.Fatalf("dest = %q, want %q", action.Dest.Path(), want)
	}
}

func TestPlanMovieSkipsUnrecognized(t *testing.T) {
	layout := planLayout()
	action := organizer.PlanMovie(layout, "/lib/media/movies/home-video.mkv")
	if action.Kind != organizer.ActionSkip || action.Reason != organizer.SkipUnrecognized {
		t.Fatalf("action = %+v", action)
	}
}

func TestPlanMovieSkipsOrganized(t *testing.T) {
	layout := planLayout()
	path := "/lib/media/movies/[Inception] [2010]/Inception.2010.mkv"
	action := organizer.PlanMovie(layout, path)
	if action.Kind != organizer.ActionSkip || action.Reason != organizer.SkipOrganized {
		t.Fatalf("action = %+v", action)
	}
}

func TestPlanEpisodeMove(t *testing.T) {
	layout := planLayout()
	action := organizer.PlanEpisode(layout, "/lib/media/tv/Breaking.Bad.S01E01.Pilot.mkv")
	if action.Kind != organizer.ActionMove {
		t.Fatalf("kind = %v, want move", action.Kind)
	}
	want := "/lib/media/tv/[Breaking Bad] [2025]/Season 1 [2025]/EP1 - Pilot [2025].mkv"
	if action.Dest.Path() != want {
		t.Fatalf("dest = %q, want %q", action.Dest.Path(), want)
	}
}

func TestPlanEpisodeRightFolderWrongNameStillMoves(t *testing.T) {
	layout := planLayout()
	path := filepath.Join("/lib/media/tv/[Breaking Bad] [2025]/Season 1 [2025]", "Breaking.Bad.S01E01.Pilot.mkv")
	action := organizer.PlanEpisode(layout, path)
	if action.Kind != organizer.ActionMove {
		t.Fatalf("episodes must be renamed to the canonical filename, got %+v", action)
	}
	if action.Dest.Filename != "EP1 - Pilot [2025].mkv" {
		t.Fatalf("filename = %q", action.Dest.Filename)
	}
}

func TestPlanEpisodeSkipsUnrecognized(t *testing.T) {
	layout := planLayout()
	action := organizer.PlanEpisode(layout, "/lib/media/tv/[Breaking Bad] [2025]/Season 1 [2025]/EP1 - Pilot [2025].mkv")
	if action.Kind != organizer.ActionSkip || action.Reason != organizer.SkipUnrecognized {
		t.Fatalf("action = %+v", action)
	}
}
