// Package pricing resolves the price of an event. An explicit dollar amount
// in the event text always wins; without one, a plausible default is drawn
// from a per-category range so imported calendars don't show every event as
// free.
package pricing

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/pfrederiksen/ihcc-events/internal/event"
)

// Range is an inclusive-exclusive dollar interval [Min, Max).
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// DefaultRanges returns the standard per-category price ranges used when an
// event mentions no price of its own.
func DefaultRanges() map[event.Category]Range {
	return map[event.Category]Range{
		event.CategoryGolf:    {Min: 50, Max: 100},
		event.CategoryDining:  {Min: 30, Max: 70},
		event.CategoryKids:    {Min: 15, Max: 35},
		event.CategoryFitness: {Min: 10, Max: 25},
		event.CategorySocial:  {Min: 20, Max: 50},
	}
}

// fallbackPrice is used for a category with no configured range.
const fallbackPrice = 25

var pricePattern = regexp.MustCompile(`\$(\d+)`)

// Estimator computes event prices. The random source is injected so callers
// control determinism; it is not safe for concurrent use unless the source
// is.
type Estimator struct {
	ranges map[event.Category]Range
	rng    *rand.Rand
}

// NewEstimator creates an Estimator with the given per-category ranges and
// random source. Nil ranges means DefaultRanges.
func NewEstimator(ranges map[event.Category]Range, rng *rand.Rand) *Estimator {
	if ranges == nil {
		ranges = DefaultRanges()
	}
	return &Estimator{ranges: ranges, rng: rng}
}

// Estimate returns the price for an event. If the title or description
// mentions one or more "$N" amounts, the smallest is returned verbatim; a
// row like "Dads - $45 and Sons - $30" prices at the lower per-person rate,
// and stray larger numbers (member IDs, phone fragments) can't win. With no
// explicit amount, a price is drawn uniformly from the category's range.
func (e *Estimator) Estimate(category event.Category, title, description string) int {
	text := strings.ToLower(title + " " + description)

	if price, ok := minExplicitPrice(text); ok {
		return price
	}

	r, ok := e.ranges[category]
	if !ok || r.Max <= r.Min {
		return fallbackPrice
	}
	return r.Min + e.rng.Intn(r.Max-r.Min)
}

// minExplicitPrice scans text for $N amounts and returns the smallest.
func minExplicitPrice(text string) (int, bool) {
	matches := pricePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return 0, false
	}

	min := -1
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if min < 0 || n < min {
			min = n
		}
	}
	if min < 0 {
		return 0, false
	}
	return min, true
}

// Validate checks that every configured range is non-empty and non-negative.
func Validate(ranges map[event.Category]Range) error {
	for cat, r := range ranges {
		if !cat.Valid() {
			return fmt.Errorf("price range for unknown category %q", cat)
		}
		if r.Min < 0 || r.Max <= r.Min {
			return fmt.Errorf("invalid price range for %s: [%d, %d)", cat, r.Min, r.Max)
		}
	}
	return nil
}
