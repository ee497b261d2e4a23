package library_test

import (
	"path/filepath"
	"sort"
	"testing"

	"blademedia/internal/library"
	"blademedia/internal/testsupport"
)

func TestVideoFilesRecursiveSorted(t *testing.T) {
	root := t.TempDir()
	paths := []string{
		filepath.Join(root, "b", "Show.S01E02.mkv"),
		filepath.Join(root, "a", "Show.S01E01.mp4"),
		filepath.Join(root, "Movie.2019.avi"),
	}
	for _, p := range paths {
		testsupport.WriteFile(t, p, 1)
	}
	testsupport.WriteFile(t, filepath.Join(root, "a", "notes.txt"), 1)
	testsupport.WriteFile(t, filepath.Join(root, "a", "Show.S01E01.srt"), 1)

	videos, err := library.VideoFiles(root)
	if err != nil {
		t.Fatalf("VideoFiles: %v", err)
	}
	if len(videos) != 3 {
		t.Fatalf("expected 3 videos, got %v", videos)
	}
	if !sort.StringsAreSorted(videos) {
		t.Fatalf("expected lexicographic order, got %v", videos)
	}
}

func TestVideoFilesMissingRoot(t *testing.T) {
	videos, err := library.VideoFiles(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("VideoFiles: %v", err)
	}
	if len(videos) != 0 {
		t.Fatalf("expected empty enumeration, got %v", videos)
	}
}

func TestSidecarsPrefixMatch(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "movie.2019.mkv")
	testsupport.WriteFile(t, video, 1)
	testsupport.WriteFile(t, filepath.Join(dir, "movie.2019.srt"), 1)
	testsupport.WriteFile(t, filepath.Join(dir, "movie.2019.en.srt"), 1)
	testsupport.WriteFile(t, filepath.Join(dir, "movie.2019.idx"), 1)
	// Not sidecars of this video:
	testsupport.WriteFile(t, filepath.Join(dir, "other.2020.srt"), 1)
	testsupport.WriteFile(t, filepath.Join(dir, "movie.2019.nfo"), 1)

	sidecars, err := library.Sidecars(video)
	if err != nil {
		t.Fatalf("Sidecars: %v", err)
	}
	want := []string{
		filepath.Join(dir, "movie.2019.en.srt"),
		filepath.Join(dir, "movie.2019.idx"),
		filepath.Join(dir, "movie.2019.srt"),
	}
	if len(sidecars) != len(want) {
		t.Fatalf("sidecars = %v, want %v", sidecars, want)
	}
	for i := range want {
		if sidecars[i] != want[i] {
			t.Fatalf("sidecars = %v, want %v", sidecars, want)
		}
	}
}

func TestSidecarsIgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	video := filepath.Join(dir, "movie.2019.mkv")
	testsupport.WriteFile(t, video, 1)
	testsupport.WriteFile(t, filepath.Join(dir, "subs", "movie.2019.srt"), 1)

	sidecars, err := library.Sidecars(video)
	if err != nil {
		t.Fatalf("Sidecars: %v", err)
	}
	if len(sidecars) != 0 {
		t.Fatalf("expected no sidecars, got %v", sidecars)
	}
}
