package library

import (
	"fmt"
	"path/filepath"

	"blademedia/internal/config"
	"blademedia/internal/identify"
	"blademedia/internal/textutil"
)

// Layout computes canonical destinations for organized media. It holds no
// filesystem state; both roots are absolute paths.
type Layout struct {
	MoviesRoot string
	TVRoot     string
	TVYear     int
}

// NewLayout derives a Layout from configuration.
func NewLayout(cfg *config.Config) Layout {
	return Layout{
		MoviesRoot: cfg.MoviesRoot(),
		TVRoot:     cfg.TVRoot(),
		TVYear:     cfg.Library.TVYear,
	}
}

// Destination is a resolved target location for one video file.
type Destination struct {
	Dir      string
	Filename string
}

// Path returns the full destination path.
func (d Destination) Path() string {
	return filepath.Join(d.Dir, d.Filename)
}

// MovieDestination resolves the library folder for a movie. The source
// filename is kept unchanged; movies are never renamed.
func (l Layout) MovieDestination(id identify.MovieIdentity, sourceName string) Destination {
	folder := fmt.Sprintf("[%s] [%d]", textutil.SanitizeFileName(id.Title), id.Year)
	return Destination{
		Dir:      filepath.Join(l.MoviesRoot, folder),
		Filename: sourceName,
	}
}

// EpisodeDestination resolves the show/season folder and canonical episode
// filename. The layout tags show and season folders with the configured
// placeholder year rather than the real air date.
func (l Layout) EpisodeDestination(id identify.EpisodeIdentity, sourceExt string) Destination {
	showFolder := fmt.Sprintf("[%s] [%d]", textutil.SanitizeFileName(id.Show), l.TVYear)
	seasonFolder := fmt.Sprintf("Season %d [%d]", id.Season, l.TVYear)
	filename := fmt.Sprintf("EP%d - %s [%d]%s", id.Episode, textutil.SanitizeFileName(id.EpisodeTitle), l.TVYear, sourceExt)
	return Destination{
		Dir:      filepath.Join(l.TVRoot, showFolder, seasonFolder),
		Filename: filename,
	}
}

// MovieOrganized reports whether the file already sits in its resolved
// folder. Only the directory is compared: movie filenames are never renamed.
func MovieOrganized(currentPath string, dest Destination) bool {
	return filepath.Dir(currentPath) == filepath.Clean(dest.Dir)
}

// EpisodeOrganized reports whether the file already sits at its resolved
// path, including the canonical filename.
func EpisodeOrganized(currentPath string, dest Destination) bool {
	return filepath.Dir(currentPath) == filepath.Clean(dest.Dir) &&
		filepath.Base(currentPath) == dest.Filename
}
