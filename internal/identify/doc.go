// Package identify infers structured media identity from loosely-structured
// download filenames.
//
// Movies resolve to a title and year, episodes to a show, season, episode
// number, and episode title. Each entry point runs an ordered chain of pure
// matcher functions; the first matcher that yields a valid identity wins and
// the absence of a match is a normal outcome, not an error. Heuristics are
// deliberately permissive: filenames from uncontrolled sources are
// heterogeneous and no external metadata lookup is attempted.
package identify
