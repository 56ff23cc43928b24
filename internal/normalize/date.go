// Package normalize cleans provider data into display and comparison forms.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Provider date formats, most specific first. Google Books returns any of
// the first three; bestseller feeds return full dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01",
	"2006",
}

var yearPattern = regexp.MustCompile(`\b(1[5-9]\d{2}|20\d{2})\b`)

// ParseDate parses a raw provider date string. ok is false when nothing
// date-like could be extracted.
func ParseDate(raw string) (t time.Time, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	// Last resort: pull a plausible year out of free text like
	// "Published May 2021".
	if m := yearPattern.FindString(raw); m != "" {
		year, _ := strconv.Atoi(m)
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// DisplayDate renders a raw provider date as "Month Year" for output.
// Year-only values render as the bare year; unparseable values pass through
// unchanged so the caller never loses information.
func DisplayDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if len(raw) == 4 {
		if _, err := strconv.Atoi(raw); err == nil {
			return raw
		}
	}
	t, ok := ParseDate(raw)
	if !ok {
		return raw
	}
	return t.Format("January 2006")
}

// Year extracts the publication year from a raw date string.
func Year(raw string) (int, bool) {
	t, ok := ParseDate(raw)
	if !ok {
		return 0, false
	}
	return t.Year(), true
}

// SortKey returns a comparable time for descending date tie-breaks. Books
// with no parseable date sort last.
func SortKey(raw string) time.Time {
	t, ok := ParseDate(raw)
	if !ok {
		return time.Time{}
	}
	return t
}
