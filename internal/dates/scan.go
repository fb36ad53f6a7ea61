package dates

import "regexp"

// Candidate patterns for free-text scanning, tried in priority order. The
// first match wins; later patterns are only consulted when everything before
// them missed.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`),
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
	regexp.MustCompile(`(?i)(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}`),
	regexp.MustCompile(`(?i)(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{1,2},?\s+\d{4}`),
}

var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*(?:AM|PM)`),
	regexp.MustCompile(`\d{1,2}:\d{2}`),
	regexp.MustCompile(`(?i)\d{1,2}\s*(?:AM|PM)`),
}

// ScanDateTime searches unstructured text for the first recognizable date
// and time. Scraped event fragments rarely keep these in dedicated elements,
// so the whole fragment text is scanned with ordered patterns rather than
// requiring structure.
//
// Returns ok=false when no date is found anywhere in the text. A found date
// without a found time gets DefaultTime, matching ParseDateTime.
func ScanDateTime(text string) (DateTime, bool) {
	var date string
	for _, p := range datePatterns {
		if match := p.FindString(text); match != "" {
			if d, ok := ParseDate(match); ok {
				date = d
				break
			}
		}
	}
	if date == "" {
		return DateTime{}, false
	}

	timeOfDay := DefaultTime
	for _, p := range timePatterns {
		if match := p.FindString(text); match != "" {
			timeOfDay = ParseTime(match)
			break
		}
	}

	return DateTime{Date: date, Time: timeOfDay}, true
}
