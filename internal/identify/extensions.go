package identify

import (
	"path/filepath"
	"strings"
)

var videoExtensions = map[string]struct{}{
	".mkv": {},
	".mp4": {},
	".avi": {},
	".m4v": {},
	".mov": {},
	".wmv": {},
	".flv": {},
}

var subtitleExtensions = map[string]struct{}{
	".srt": {},
	".ass": {},
	".ssa": {},
	".sub": {},
	".idx": {},
}

// IsVideo reports whether the filename carries a recognized video extension.
func IsVideo(name string) bool {
	_, ok := videoExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// IsSubtitle reports whether the filename carries a recognized subtitle
// extension.
func IsSubtitle(name string) bool {
	_, ok := subtitleExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// trimMediaExt strips a trailing video or subtitle extension. Unrecognized
// extensions are kept so episode titles like "Pilot" survive extensionless
// input.
func trimMediaExt(name string) string {
	ext := filepath.Ext(name)
	if IsVideo(name) || IsSubtitle(name) {
		return strings.TrimSuffix(name, ext)
	}
	return name
}
