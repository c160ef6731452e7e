package sheet

import (
	"strings"
	"unicode"
)

// defaultSlug names files for characters without a usable name
const defaultSlug = "character"

// Slug turns a character name into a file name stem: lowercase, each run of
// characters other than letters and digits becomes one underscore, and
// leading or trailing underscores are trimmed.
func Slug(name string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(name) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	if b.Len() == 0 {
		return defaultSlug
	}
	return b.String()
}
