package identify

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// EpisodeIdentity is the structured identity inferred from a TV filename.
// EpisodeTitle is never empty: when the source name carries no title the
// placeholder "Episode {n}" is substituted.
type EpisodeIdentity struct {
	Show         string
	Season       int
	Episode      int
	EpisodeTitle string
}

type episodeMatcher func(name string) (EpisodeIdentity, bool)

var episodeMatchers = []episodeMatcher{
	matchSeasonEpisodeTag,
	matchSeasonXEpisode,
}

var (
	seasonEpisodeTagRe = regexp.MustCompile(`(?i)^(.+?)[. _]+s(\d+)[. _]*e(\d+)(.*)$`)
	seasonXEpisodeRe   = regexp.MustCompile(`(?i)^(.+?)[. _]+(\d+)x(\d+)(.*)$`)
)

// ParseEpisode infers show, season, episode, and episode title from a TV
// filename. Season and episode accept any non-negative integer; no range
// validation is applied.
func ParseEpisode(filename string) (EpisodeIdentity, bool) {
	name := stripBrackets(filename)
	for _, match := range episodeMatchers {
		if id, ok := match(name); ok {
			return id, true
		}
	}
	return EpisodeIdentity{}, false
}

func matchSeasonEpisodeTag(name string) (EpisodeIdentity, bool) {
	return episodeFromSubmatch(seasonEpisodeTagRe.FindStringSubmatch(name))
}

func matchSeasonXEpisode(name string) (EpisodeIdentity, bool) {
	return episodeFromSubmatch(seasonXEpisodeRe.FindStringSubmatch(name))
}

func episodeFromSubmatch(m []string) (EpisodeIdentity, bool) {
	if m == nil {
		return EpisodeIdentity{}, false
	}
	season, err := strconv.Atoi(m[2])
	if err != nil {
		return EpisodeIdentity{}, false
	}
	episode, err := strconv.Atoi(m[3])
	if err != nil {
		return EpisodeIdentity{}, false
	}
	return EpisodeIdentity{
		Show:         normalizeTitle(m[1]),
		Season:       season,
		Episode:      episode,
		EpisodeTitle: normalizeEpisodeTitle(m[4], episode),
	}, true
}

func normalizeEpisodeTitle(tail string, episode int) string {
	title := normalizeTitle(trimMediaExt(tail))
	if strings.TrimSpace(title) == "" {
		return fmt.Sprintf("Episode %d", episode)
	}
	return title
}
