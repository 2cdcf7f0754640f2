package utils

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var wsRe = regexp.MustCompile(`\s+`)

// ErrInvalidTimeFormat is returned when time parsing fails
var ErrInvalidTimeFormat = errors.New("invalid time format")

func NormalizeNameLower(s string) string {
	s = strings.TrimSpace(s)
	s = wsRe.ReplaceAllString(s, " ")
	return strings.ToLower(s)
}

// foldAccents strips combining marks so "Café" and "Cafe" compare equal.
func foldAccents(s string) string {
	t := norm.NFKD.String(s)
	b := make([]rune, 0, len(t))
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b = append(b, r)
	}
	return string(b)
}

// MatchesSearch reports whether the query is a substring of any of the fields,
// case- and accent-insensitive. An empty query matches everything.
func MatchesSearch(query string, fields ...string) bool {
	query = foldAccents(NormalizeNameLower(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(foldAccents(strings.ToLower(f)), query) {
			return true
		}
	}
	return false
}

// ParseClock parses "HH:MM" into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	return t.Hour()*60 + t.Minute(), nil
}
