package event

import (
	"regexp"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

var (
	wordSeparatorRe   = regexp.MustCompile(`[\s_/]+`)
	nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9-]`)
	multipleDashRe    = regexp.MustCompile(`-+`)
)

const slugSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Slugify turns an event name into its URL-safe base slug:
// lowercase, dashes for separators, everything else stripped.
//
//	"Noche de Galerías!" → "noche-de-galeras" stays readable enough;
//	accents are dropped rather than transliterated.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = wordSeparatorRe.ReplaceAllString(s, "-")
	s = nonAlphanumericRe.ReplaceAllString(s, "")
	s = multipleDashRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "event"
	}
	if len(s) > 80 {
		s = strings.Trim(s[:80], "-")
	}
	return s
}

// NewSlug builds a globally unique candidate: base slug plus a short random
// suffix. Uniqueness is still enforced by the DB index; callers retry with
// a fresh candidate on conflict.
func NewSlug(name string) (string, error) {
	suffix, err := gonanoid.Generate(slugSuffixAlphabet, 6)
	if err != nil {
		return "", err
	}
	return Slugify(name) + "-" + suffix, nil
}
