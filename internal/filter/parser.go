package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const monthNames = `jan|january|feb|february|mar|march|apr|april|may|jun|june|jul|july|aug|august|sep|september|oct|october|nov|november|dec|december`

var (
	sameMonthPattern  = regexp.MustCompile(`(?i)^(` + monthNames + `)\s+(\d{1,2})\s*-\s*(\d{1,2})$`)
	crossMonthPattern = regexp.MustCompile(`(?i)^(` + monthNames + `)\s+(\d{1,2})\s*-\s*(` + monthNames + `)\s+(\d{1,2})$`)
	wholeMonthPattern = regexp.MustCompile(`(?i)^(` + monthNames + `)$`)
)

// ParseDateRange parses a date range string into canonical
// YYYY-MM-DD bounds suitable for Filter.DateFrom and Filter.DateTo.
//
// Supported formats:
//   - "Mar 1-15" or "March 1-15" - Same month, different days
//   - "March 1 - April 15" - Different months
//   - "March" - Entire month
//
// The year is inferred: months already past use next year, and for
// cross-month ranges an end month earlier than the start month rolls
// into the following year.
func ParseDateRange(input string) (string, string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", "", fmt.Errorf("date range cannot be empty")
	}

	if matches := sameMonthPattern.FindStringSubmatch(input); matches != nil {
		month := parseMonth(matches[1])
		day1, err := parseDay(matches[2])
		if err != nil {
			return "", "", err
		}
		day2, err := parseDay(matches[3])
		if err != nil {
			return "", "", err
		}

		year := yearForMonth(month)
		from := time.Date(year, month, day1, 0, 0, 0, 0, time.UTC)
		to := time.Date(year, month, day2, 0, 0, 0, 0, time.UTC)
		if from.After(to) {
			return "", "", fmt.Errorf("start date must be before end date")
		}
		return canonical(from), canonical(to), nil
	}

	if matches := crossMonthPattern.FindStringSubmatch(input); matches != nil {
		month1 := parseMonth(matches[1])
		day1, err := parseDay(matches[2])
		if err != nil {
			return "", "", err
		}
		month2 := parseMonth(matches[3])
		day2, err := parseDay(matches[4])
		if err != nil {
			return "", "", err
		}

		year1 := yearForMonth(month1)
		year2 := yearForMonth(month2)
		if month2 < month1 {
			year2++
		}

		from := time.Date(year1, month1, day1, 0, 0, 0, 0, time.UTC)
		to := time.Date(year2, month2, day2, 0, 0, 0, 0, time.UTC)
		if from.After(to) {
			return "", "", fmt.Errorf("start date must be before end date")
		}
		return canonical(from), canonical(to), nil
	}

	if matches := wholeMonthPattern.FindStringSubmatch(input); matches != nil {
		month := parseMonth(matches[1])
		year := yearForMonth(month)
		from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		// Day zero of the next month is the last day of this one
		to := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
		return canonical(from), canonical(to), nil
	}

	return "", "", fmt.Errorf("invalid date range format. Use 'Mar 1-15', 'March 1 - March 15', or 'March'")
}

func canonical(t time.Time) string {
	return t.Format("2006-01-02")
}

func parseDay(s string) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil || day < 1 || day > 31 {
		return 0, fmt.Errorf("invalid day: %s", s)
	}
	return day, nil
}

// parseMonth converts a month name to time.Month. The patterns above
// only admit known names, so lookups never miss.
func parseMonth(name string) time.Month {
	name = strings.ToLower(strings.TrimSpace(name))

	months := map[string]time.Month{
		"jan": time.January, "january": time.January,
		"feb": time.February, "february": time.February,
		"mar": time.March, "march": time.March,
		"apr": time.April, "april": time.April,
		"may": time.May,
		"jun": time.June, "june": time.June,
		"jul": time.July, "july": time.July,
		"aug": time.August, "august": time.August,
		"sep": time.September, "september": time.September,
		"oct": time.October, "october": time.October,
		"nov": time.November, "november": time.November,
		"dec": time.December, "december": time.December,
	}

	return months[name]
}

// yearForMonth returns the current year, or the next one when the
// month has already passed.
func yearForMonth(month time.Month) int {
	now := time.Now()
	year := now.Year()
	if month < now.Month() {
		year++
	}
	return year
}
