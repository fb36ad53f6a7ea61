package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/ihcc-events/internal/event"
	"github.com/pfrederiksen/ihcc-events/internal/importer"
)

// strategy extracts candidate records from a parsed page. Strategies are
// tried in order; returning zero records passes control to the next one.
type strategy func(doc *goquery.Document) []importer.Record

// eventContainerSelector matches the containers the club site has used for
// event blocks across redesigns.
const eventContainerSelector = ".event-item, .calendar-event, [data-event], .event-row"

// titleSelectors and descriptionSelectors are tried in order within one
// event container; the first non-empty match wins.
var titleSelectors = []string{
	".event-title", ".title", "h2", "h3", ".event-name", "strong:first-child",
}

var descriptionSelectors = []string{
	".event-description", ".description", ".event-details", "p", ".content",
}

// textScanMaxRecords caps the fallback scan, which matches generously.
const textScanMaxRecords = 10

// dateish gates the text-scan strategy: an element's text must look like it
// contains a date or a time before it is considered an event.
var dateish = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}|\d{1,2}:\d{2}`)

// selectorStrategy is the primary extraction path: one record per known
// event container, with per-field selector fallbacks inside it.
func (s *Scraper) selectorStrategy(doc *goquery.Document) []importer.Record {
	var records []importer.Record

	doc.Find(eventContainerSelector).Each(func(_ int, sel *goquery.Selection) {
		records = append(records, importer.Record{
			Title:           extractTitle(sel),
			Description:     extractDescription(sel),
			ScanText:        sel.Text(),
			RegistrationURL: s.extractRegistrationURL(sel),
		})
	})

	return records
}

// textScanStrategy is the fallback: walk generic row-like elements and keep
// the ones whose text carries a date or time. Deliberately loose, so capped.
func (s *Scraper) textScanStrategy(doc *goquery.Document) []importer.Record {
	var records []importer.Record

	doc.Find("tr, li, div").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		// skip container elements; only leaf-most candidates carry one event
		if sel.Find("tr, li, div").Length() > 0 {
			return true
		}

		text := strings.TrimSpace(sel.Text())
		if len(text) <= 20 || !dateish.MatchString(text) {
			return true
		}

		records = append(records, importer.Record{
			Title:           firstLine(text),
			ScanText:        text,
			RegistrationURL: s.extractRegistrationURL(sel),
		})
		return len(records) < textScanMaxRecords
	})

	return records
}

// extractTitle tries the known title selectors, then falls back to the
// fragment's first text line.
func extractTitle(sel *goquery.Selection) string {
	for _, selector := range titleSelectors {
		if title := strings.TrimSpace(sel.Find(selector).First().Text()); title != "" {
			return title
		}
	}
	return firstLine(sel.Text())
}

// extractDescription tries the known description selectors, skipping
// matches too short to describe anything.
func extractDescription(sel *goquery.Selection) string {
	for _, selector := range descriptionSelectors {
		if desc := strings.TrimSpace(sel.Find(selector).First().Text()); len(desc) > 10 {
			return desc
		}
	}
	return ""
}

// extractRegistrationURL finds a registration-looking link in the fragment,
// resolving relative hrefs against the club site. Fragments without one get
// a placeholder event-view URL with a random id.
func (s *Scraper) extractRegistrationURL(sel *goquery.Selection) string {
	links := sel.Find(`a[href*="EventView"], a[href*="register"], a[href*="signup"]`)
	if href, ok := links.First().Attr("href"); ok && href != "" {
		if strings.HasPrefix(href, "http") {
			return href
		}
		return event.BaseURL + href
	}

	return event.PlaceholderRegistrationURL(1000000 + s.rng.Intn(9000000))
}

// firstLine returns the first non-empty line of text, trimmed.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
