package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const canonicalLayout = "2006-01-02"

// monthsByName maps lowercase English month names (full and three-letter)
// to their calendar month. This is the single month table used everywhere a
// human date label is parsed; normalization, month filtering, and migration
// must never grow private copies of it.
var monthsByName = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// Canonical formats a date in the machine-sortable YYYY-MM-DD form.
func Canonical(d time.Time) string {
	return d.Format(canonicalLayout)
}

// ParseCanonical parses a canonical YYYY-MM-DD date string.
func ParseCanonical(s string) (time.Time, error) {
	return time.Parse(canonicalLayout, s)
}

// DisplayLabel formats the legacy short label for a date ("2 Jan 2025").
// The label always includes the year so it round-trips through
// ResolvePartialDate without re-running year inference.
func DisplayLabel(d time.Time) string {
	return fmt.Sprintf("%d %s %d", d.Day(), d.Month().String()[:3], d.Year())
}

// ResolvePartialDate parses a human date label such as "12 Jan",
// "12 Jan 2025", or "Jan 12" and resolves it to a calendar date. When the
// label carries no year, the year is inferred: the current year, unless the
// parsed month is later in the calendar than now's month, in which case the
// record is assumed to belong to the previous year (a statement processed
// today should not contain future-dated rows).
//
// The second return is false when no day/month pair can be recognized.
// Callers treat that as a soft failure and substitute their own fallback
// date so batch ingestion can continue.
func ResolvePartialDate(raw string, now time.Time) (time.Time, bool) {
	fields := strings.FieldsFunc(strings.TrimSpace(raw), func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '\t'
	})
	if len(fields) < 2 {
		return time.Time{}, false
	}

	day, month, ok := dayMonthPair(fields[0], fields[1])
	if !ok {
		return time.Time{}, false
	}

	year := 0
	if len(fields) >= 3 {
		if y, err := strconv.Atoi(fields[2]); err == nil && y > 0 {
			if y < 100 {
				y += 2000
			}
			year = y
		}
	}
	if year == 0 {
		year = now.Year()
		if month > now.Month() {
			year--
		}
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
}

// dayMonthPair interprets two tokens as a day number and a month name, in
// either order.
func dayMonthPair(a, b string) (int, time.Month, bool) {
	if day, ok := parseDay(a); ok {
		if month, ok := parseMonthName(b); ok {
			return day, month, true
		}
	}
	if month, ok := parseMonthName(a); ok {
		if day, ok := parseDay(b); ok {
			return day, month, true
		}
	}
	return 0, 0, false
}

func parseDay(s string) (int, bool) {
	d, err := strconv.Atoi(s)
	if err != nil || d < 1 || d > 31 {
		return 0, false
	}
	return d, true
}

func parseMonthName(s string) (time.Month, bool) {
	m, ok := monthsByName[strings.ToLower(strings.TrimSpace(s))]
	return m, ok
}
