package library

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"blademedia/internal/identify"
)

// VideoFiles enumerates video files recursively under root, sorted by full
// path for deterministic run order. A missing root yields an empty
// enumeration: the pass subtrees are optional, only the library root itself
// is mandatory.
func VideoFiles(root string) ([]string, error) {
	var videos []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if identify.IsVideo(entry.Name()) {
			videos = append(videos, path)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	sort.Strings(videos)
	return videos, nil
}

// Sidecars finds subtitle files in the video's own directory whose names
// share the video's stem. The search is non-recursive and results come back
// in lexicographic order.
func Sidecars(videoPath string) ([]string, error) {
	dir := filepath.Dir(videoPath)
	base := filepath.Base(videoPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var sidecars []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, stem) {
			continue
		}
		if !identify.IsSubtitle(name) {
			continue
		}
		sidecars = append(sidecars, filepath.Join(dir, name))
	}
	return sidecars, nil
}
