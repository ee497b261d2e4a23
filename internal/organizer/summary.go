package organizer

import "fmt"

// Move records one relocated (or, under dry-run, planned) video file.
type Move struct {
	Source string
	Dest   string
}

// Summary accumulates the counters for one run. It is created at run start,
// written only by the organizer, and returned to the caller; nothing is
// persisted across runs.
type Summary struct {
	MoviesOrganized int
	MoviesSkipped   int
	TVOrganized     int
	TVSkipped       int
	Moves           []Move
	Errors          []string
}

// TotalOrganized returns the number of files moved across both passes.
func (s *Summary) TotalOrganized() int {
	return s.MoviesOrganized + s.TVOrganized
}

func (s *Summary) addError(format string, args ...any) {
	s.Errors = append(s.Errors, fmt.Sprintf(format, args...))
}
