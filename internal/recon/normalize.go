package recon

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ToNumber converts a raw cell value to a number. Blank cells and anything that
// does not parse come back as 0; thousands separators are stripped first.
func ToNumber(v string) float64 {
	if v == "" {
		return 0
	}
	cleaned := strings.ReplaceAll(v, ",", "")
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return n
}

var monthIndex = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// Matches labels like "Jan-24", "January 2024" and "4.Apr-24" (an optional
// leading "N." token before the month name).
var monthLabelPattern = regexp.MustCompile(`(?:\d{1,2}\.\s*)?([a-z]+)[\s-]*(\d{2,4})`)

// ParseMonthLabel turns a free-text month label into the first day of that month.
// Two-digit years map to 2000+. Labels the pattern cannot place fall back to
// generic date parsing; if that also fails the label is unparseable and ok is
// false. Callers use the failure for lexicographic fallback ordering, never as
// an error.
func ParseMonthLabel(label string) (time.Time, bool) {
	if label == "" {
		return time.Time{}, false
	}

	if m := monthLabelPattern.FindStringSubmatch(strings.ToLower(label)); m != nil {
		year, _ := strconv.Atoi(m[2])
		if year < 100 {
			year += 2000
		}
		if month, known := monthIndex[m[1]]; known && year >= 1900 && year <= 2100 {
			return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
		}
	}

	if d, ok := ParseDate(label); ok {
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

var dateFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"02-Jan-2006",
	"2-Jan-2006",
	"Jan 02, 2006",
	"02/01/06",
	"2006-01",
	"January 2006",
	"Jan-06",
	"Jan 2006",
}

// ParseDate tries the date formats seen across the source spreadsheets. Returns
// ok=false rather than an error; an unparseable date only means "date unknown".
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
