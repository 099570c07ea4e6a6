// Package slug derives unique URL-safe identifiers from display names
// for catalog entities (categories, products, stores).
package slug

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ExistsFunc reports whether a slug is already taken.
type ExistsFunc func(slug string) (bool, error)

var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts a display name into a lowercase hyphenated identifier:
// accents folded to ASCII, runs of non-alphanumerics collapsed to a
// single hyphen, leading/trailing hyphens trimmed.
func Make(name string) string {
	folded, _, err := transform.String(foldMarks, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Generate returns the first unused slug for name: the base form, then
// base-1, base-2 and so on. An incrementing counter is used rather than
// appending the same suffix repeatedly, so repeated collisions stay
// readable and bounded.
func Generate(name string, exists ExistsFunc) (string, error) {
	base := Make(name)
	if base == "" {
		base = "item"
	}

	candidate := base
	for i := 1; ; i++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
