package identify

import (
	"regexp"
	"strconv"
)

// Year bounds accepted for movie identities. Anything outside is treated as a
// resolution tag or codec artifact rather than a release year.
const (
	MinYear = 1900
	MaxYear = 2026
)

// MovieIdentity is the structured identity inferred from a movie filename.
type MovieIdentity struct {
	Title string
	Year  int
}

// movieMatcher attempts one naming pattern against a bracket-stripped
// filename. Matchers do not validate the year; ParseMovie owns that so a
// rejected candidate falls through to the next pattern.
type movieMatcher func(name string) (MovieIdentity, bool)

// Pattern order is the tie-break: the stricter separator-delimited form wins
// over the parenthesized form when both could match.
var movieMatchers = []movieMatcher{
	matchYearAfterSeparator,
	matchYearInParens,
}

var (
	yearAfterSeparatorRe = regexp.MustCompile(`(?i)^(.+?)[. _-]+(\d{4})[. _]`)
	yearInParensRe       = regexp.MustCompile(`(?i)^(.+?)[. _]*\(?(\d{4})\)?[. _]`)
)

// ParseMovie infers a title and year from a movie filename. The second return
// value is false when no pattern yields a year inside [MinYear, MaxYear].
func ParseMovie(filename string) (MovieIdentity, bool) {
	name := stripBrackets(filename)
	for _, match := range movieMatchers {
		id, ok := match(name)
		if !ok {
			continue
		}
		if id.Year < MinYear || id.Year > MaxYear {
			continue
		}
		return id, true
	}
	return MovieIdentity{}, false
}

func matchYearAfterSeparator(name string) (MovieIdentity, bool) {
	return movieFromSubmatch(yearAfterSeparatorRe.FindStringSubmatch(name))
}

func matchYearInParens(name string) (MovieIdentity, bool) {
	return movieFromSubmatch(yearInParensRe.FindStringSubmatch(name))
}

func movieFromSubmatch(m []string) (MovieIdentity, bool) {
	if m == nil {
		return MovieIdentity{}, false
	}
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return MovieIdentity{}, false
	}
	return MovieIdentity{Title: normalizeTitle(m[1]), Year: year}, true
}
