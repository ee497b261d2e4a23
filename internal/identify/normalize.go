package identify

import "strings"

var (
	bracketStripper = strings.NewReplacer("[", "", "]", "")
	separatorSpacer = strings.NewReplacer(".", " ", "_", " ")
)

// stripBrackets removes download-tag bracket characters before matching.
func stripBrackets(name string) string {
	return bracketStripper.Replace(name)
}

// normalizeTitle turns a captured title segment into a display title: leading
// and trailing separator characters are trimmed and dots/underscores become
// spaces.
func normalizeTitle(segment string) string {
	segment = strings.Trim(segment, ".- ")
	segment = separatorSpacer.Replace(segment)
	return strings.TrimSpace(segment)
}
