// Package slug derives URL-safe identifiers from titles. The result is
// bounded and best-effort unique; callers append a disambiguating suffix
// on collision.
package slug

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const maxLength = 80

var (
	invalidChars = regexp.MustCompile(`[^\w\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
	dashes       = regexp.MustCompile(`-+`)
)

// Make lowercases the title, strips everything outside word characters,
// whitespace and hyphens, collapses whitespace runs to single hyphens and
// trims the result to maxLength.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = strings.ReplaceAll(s, "_", "-")
	s = dashes.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxLength {
		s = s[:maxLength]
		s = strings.Trim(s, "-")
	}
	return s
}

// Disambiguate appends the current Unix time in milliseconds. Used when a
// freshly derived slug collides with a stored one.
func Disambiguate(s string) string {
	return s + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}
