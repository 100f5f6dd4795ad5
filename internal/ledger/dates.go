package ledger

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Layouts used by stored records
const (
	ISODateLayout   = "2006-01-02"
	DisplayDate     = "02/01/2006"
	TimestampLayout = "02/01/2006 15:04:05"
)

// timestampLayouts are tried in order when reading audit timestamps
var timestampLayouts = []string{
	TimestampLayout,
	"02/01/2006, 15:04:05",
	"02/01/2006 15:04",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DisplayDate,
}

// FormatTimestamp renders an audit timestamp
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseTimestamp reads an audit timestamp. Absent or unreadable values yield the zero time.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseISODate reads a calendar date stored as YYYY-MM-DD
func parseISODate(s string) (time.Time, bool) {
	t, err := time.Parse(ISODateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// dateInPeriod reports whether an ISO date falls in year, and in month when month >= 0
func dateInPeriod(s string, year, month int) bool {
	d, ok := parseISODate(s)
	if !ok || d.Year() != year {
		return false
	}
	return month < 0 || int(d.Month())-1 == month
}

// sortByName orders items by a display name using Brazilian Portuguese collation
func sortByName[T any](items []T, name func(T) string) {
	c := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(name(items[i]), name(items[j])) < 0
	})
}

func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), term)
}
