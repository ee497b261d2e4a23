package textutil_test

import (
	"testing"

	"blademedia/internal/textutil"
)

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"passthrough", "Breaking Bad", "Breaking Bad"},
		{"slash becomes dash", "Face/Off", "Face-Off"},
		{"colon becomes dash", "Alien: Covenant", "Alien- Covenant"},
		{"question mark dropped", "Who Am I?", "Who Am I"},
		{"trimmed", "  The Wire  ", "The Wire"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := textutil.SanitizeFileName(tc.in); got != tc.want {
				t.Fatalf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
