package importer

import (
	"math/rand"
	"strings"

	"github.com/pfrederiksen/ihcc-events/internal/classify"
	"github.com/pfrederiksen/ihcc-events/internal/dates"
	"github.com/pfrederiksen/ihcc-events/internal/event"
	"github.com/pfrederiksen/ihcc-events/internal/normalize"
	"github.com/pfrederiksen/ihcc-events/internal/pricing"
)

// RejectReason explains why a record was excluded from a batch.
type RejectReason string

const (
	// RejectNone marks a successfully parsed record.
	RejectNone RejectReason = ""

	// RejectMissingRequiredField: the record has no title or no date field
	// at all.
	RejectMissingRequiredField RejectReason = "MissingRequiredField"

	// RejectUnparseableDate: a date field is present but matches no
	// accepted format. Dates are never guessed.
	RejectUnparseableDate RejectReason = "UnparseableDate"

	// RejectMalformedRow: a delimited row is too short to contain the
	// required columns.
	RejectMalformedRow RejectReason = "MalformedRow"
)

// Record is one candidate event before normalization, from either input
// source. A CSV row fills DateText/TimeText from its columns; an HTML
// fragment leaves them empty and supplies ScanText, its full visible text,
// for pattern scanning instead.
type Record struct {
	Title           string
	DateText        string
	TimeText        string
	ScanText        string
	Description     string
	Location        string
	RegistrationURL string
}

// Parser resolves candidate records into normalized events. It is a pure
// orchestration of the classifier and price estimator it is built with;
// parsing has no side effects.
type Parser struct {
	rules  *classify.Ruleset
	pricer *pricing.Estimator
}

// NewParser creates a record parser. Nil rules means the default ruleset;
// nil rng means an unseeded source for default prices.
func NewParser(rules *classify.Ruleset, ranges map[event.Category]pricing.Range, rng *rand.Rand) *Parser {
	if rules == nil {
		rules = classify.DefaultRuleset()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Parser{
		rules:  rules,
		pricer: pricing.NewEstimator(ranges, rng),
	}
}

// ParseRecord normalizes one record. On success the reason is RejectNone.
//
// A record needs a non-empty title and a parseable date; everything else has
// a defined fallback. The description is cleaned before classification and
// pricing, so transport-encoding noise and registration URLs never influence
// the category or the price.
func (p *Parser) ParseRecord(rec Record) (*event.Event, RejectReason) {
	title := strings.TrimSpace(rec.Title)
	if title == "" {
		return nil, RejectMissingRequiredField
	}

	var dt dates.DateTime
	var ok bool
	switch {
	case strings.TrimSpace(rec.DateText) != "":
		dt, ok = dates.ParseDateTime(rec.DateText, rec.TimeText)
	case strings.TrimSpace(rec.ScanText) != "":
		dt, ok = dates.ScanDateTime(rec.ScanText)
	default:
		return nil, RejectMissingRequiredField
	}
	if !ok {
		return nil, RejectUnparseableDate
	}

	description := normalize.CleanDescription(rec.Description)
	category := p.rules.Classify(title, description)
	price := p.pricer.Estimate(category, title, description)

	location := strings.TrimSpace(rec.Location)
	if location == "" {
		location = event.DefaultLocation
	}

	url := rec.RegistrationURL
	if url == "" {
		url = event.RegistrationURL(title)
	}

	return &event.Event{
		Title:           title,
		Description:     description,
		Date:            dt.Date,
		Time:            dt.Time,
		Category:        category,
		Price:           price,
		Location:        location,
		RegistrationURL: url,
	}, RejectNone
}
