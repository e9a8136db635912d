// Package slug turns event names into URL-safe identifiers.
package slug

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	disallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace = regexp.MustCompile(`\s+`)
	hyphens    = regexp.MustCompile(`-{2,}`)
	valid      = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// folded lists the only accented letters that keep a base letter. Any other
// non-ASCII letter (ñ, ß, ø...) is dropped with the rest of the disallowed set.
var folded = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ä': 'a', 'ã': 'a',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'ö': 'o', 'õ': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c',
}

// Make derives a slug from name: lowercase, accented Latin vowels and ç
// folded to their base letter, everything outside [a-z0-9 -] dropped,
// whitespace runs turned into single hyphens. The result is empty when name
// holds no usable character.
func Make(name string) string {
	s := foldAccents(strings.ToLower(name))
	s = disallowed.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(strings.TrimSpace(s), "-")
	s = hyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// WithSuffix disambiguates a slug with the millisecond timestamp of at.
func WithSuffix(s string, at time.Time) string {
	return s + "-" + strconv.FormatInt(at.UnixMilli(), 10)
}

func Valid(s string) bool {
	return valid.MatchString(s)
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFC, runes.Map(func(r rune) rune {
		if base, ok := folded[r]; ok {
			return base
		}
		return r
	}))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
