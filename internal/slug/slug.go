package slug

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxLen = 60

// Make converts a shop name to a URL-friendly slug: accents stripped,
// lowercased, runs of non-alphanumerics collapsed to single hyphens.
func Make(name string) string {
	stripped, _, _ := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		name,
	)

	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(stripped) {
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

	s := strings.TrimRight(b.String(), "-")
	if len(s) > maxLen {
		s = strings.TrimRight(s[:maxLen], "-")
	}
	return s
}

// Unique derives a slug from name and appends -2, -3, ... until taken
// reports it free. taken is usually a database existence check.
func Unique(name string, taken func(candidate string) (bool, error)) (string, error) {
	base := Make(name)
	if base == "" {
		return "", fmt.Errorf("cannot generate slug from %q", name)
	}

	candidate := base
	for suffix := 2; ; suffix++ {
		inUse, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !inUse {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, suffix)
	}
}
