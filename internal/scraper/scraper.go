package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/ihcc-events/internal/event"
	"github.com/pfrederiksen/ihcc-events/internal/importer"
	"github.com/pfrederiksen/ihcc-events/internal/logger"
)

const (
	// EventsURL is the club's public event-view page.
	EventsURL = event.BaseURL + "/default.aspx?p=.NETEventView"

	UserAgent = "ihcc-events/1.0 (github.com/pfrederiksen/ihcc-events)"
	Timeout   = 30 * time.Second
)

// Scraper fetches and parses the club events page.
type Scraper struct {
	client     *http.Client
	url        string
	parser     *importer.Parser
	rng        *rand.Rand
	strategies []strategy
}

// New creates a Scraper around a record parser. The random source feeds
// placeholder registration IDs for fragments without links; pass a seeded
// source in tests.
func New(parser *importer.Parser, rng *rand.Rand) *Scraper {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	s := &Scraper{
		client: &http.Client{Timeout: Timeout},
		url:    EventsURL,
		parser: parser,
		rng:    rng,
	}
	s.strategies = []strategy{s.selectorStrategy, s.textScanStrategy}
	return s
}

// SetURL points the scraper at a different events page. Used by tests and
// the CLI --url flag.
func (s *Scraper) SetURL(url string) { s.url = url }

// Scrape fetches the events page and returns a batch result. Per-fragment
// problems are counted as rejections; a fetch failure or a page yielding no
// records at all degrades to FallbackEvents instead of returning an error.
// The second return reports whether the fallback was used.
func (s *Scraper) Scrape(ctx context.Context) (*importer.Result, bool) {
	html, err := s.fetch(ctx)
	if err != nil {
		logger.Warn("events page unreachable, using fallback events", logger.Fields{
			"url": s.url, "error": err.Error(),
		})
		return s.fallbackResult(), true
	}

	result, err := s.parsePage(html)
	if err != nil || len(result.Events) == 0 {
		logger.Warn("no events extracted, using fallback events", logger.Fields{"url": s.url})
		return s.fallbackResult(), true
	}

	logger.Info("events scraped", logger.Fields{
		"url":      s.url,
		"events":   len(result.Events),
		"rejected": result.RejectedCount,
	})
	return result, false
}

// fetch retrieves the raw HTML of the events page.
func (s *Scraper) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// parsePage extracts records from HTML and runs them through the record
// parser.
func (s *Scraper) parsePage(html []byte) (*importer.Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	result := &importer.Result{
		Events: []*event.Event{},
		Stats:  importer.Stats{},
	}

	for _, rec := range s.extractRecords(doc) {
		evt, reason := s.parser.ParseRecord(rec)
		if reason != importer.RejectNone {
			result.RejectedCount++
			logger.Debug("rejected fragment", logger.Fields{
				"title": rec.Title, "reason": string(reason),
			})
			continue
		}
		result.Events = append(result.Events, evt)
		result.Stats.Add(evt.Category)
	}

	return result, nil
}

// extractRecords runs the strategy chain: first strategy returning any
// records wins.
func (s *Scraper) extractRecords(doc *goquery.Document) []importer.Record {
	for _, strat := range s.strategies {
		if records := strat(doc); len(records) > 0 {
			return records
		}
	}
	return nil
}

// fallbackResult wraps FallbackEvents in a batch result.
func (s *Scraper) fallbackResult() *importer.Result {
	events := FallbackEvents(time.Now())
	stats := importer.Stats{}
	for _, evt := range events {
		stats.Add(evt.Category)
	}
	return &importer.Result{Events: events, Stats: stats}
}
