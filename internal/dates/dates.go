package dates

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DefaultTime is used when a record has a date but no parseable time. Club
// events without a published start time are assumed to start in the evening.
const DefaultTime = "18:00:00"

// DateTime holds one canonical date and time pair.
type DateTime struct {
	Date string // YYYY-MM-DD
	Time string // HH:MM:SS
}

// dateLayouts are tried in order before falling back to tolerant parsing.
// Calendar exports use un-padded M/D/YYYY; scraped pages tend toward month
// names or ISO.
var dateLayouts = []string{
	"1/2/2006",
	"2006-01-02",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
}

// timeLayouts cover 12-hour clock with and without a space before the
// meridiem, bare hours, and 24-hour forms.
var timeLayouts = []string{
	"3:04 PM",
	"3:04PM",
	"3 PM",
	"3PM",
	"15:04:05",
	"15:04",
}

// ParseDate parses a date string into canonical YYYY-MM-DD form. Returns
// false if the text matches no known format; callers must not guess a date.
func ParseDate(dateText string) (string, bool) {
	dateText = strings.TrimSpace(dateText)
	if dateText == "" {
		return "", false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dateText); err == nil {
			return t.Format("2006-01-02"), true
		}
	}

	// Last resort: tolerant parsing for formats the explicit layouts miss
	// (e.g. "20 June 2025", "6-20-2025").
	if t, err := dateparse.ParseAny(dateText); err == nil {
		return t.Format("2006-01-02"), true
	}

	return "", false
}

// ParseTime parses a time string into canonical 24-hour HH:MM:SS form.
// Unparseable or empty input yields DefaultTime; time parsing never fails.
// 12-hour input follows the usual clock rules: 12 AM is 00, 12 PM is 12.
func ParseTime(timeText string) string {
	timeText = strings.ToUpper(strings.TrimSpace(timeText))
	if timeText == "" {
		return DefaultTime
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, timeText); err == nil {
			return t.Format("15:04:05")
		}
	}

	return DefaultTime
}

// ParseDateTime resolves a date and time string pair into a canonical
// DateTime. The date is mandatory: if it does not parse, ok is false and the
// caller should reject the record. The time is optional and defaults per
// ParseTime.
func ParseDateTime(dateText, timeText string) (DateTime, bool) {
	date, ok := ParseDate(dateText)
	if !ok {
		return DateTime{}, false
	}
	return DateTime{Date: date, Time: ParseTime(timeText)}, true
}
