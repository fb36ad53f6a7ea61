// Package filter narrows a list of normalized events by criteria
// supplied on the command line:
//   - Categories (exact match against the five known categories)
//   - Date ranges (canonical YYYY-MM-DD bounds, inclusive)
//   - Title keywords (substring matching, case-insensitive)
//   - Maximum price
//   - Weekends only (Saturday/Sunday)
//
// An empty filter matches every event.
//
// Example usage:
//
//	f := filter.New()
//	f.Categories = []event.Category{event.CategoryGolf}
//	f.WeekendsOnly = true
//	filtered := f.Apply(events)
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/ihcc-events/internal/event"
)

// Filter holds event filtering criteria. Zero values mean the
// criterion is inactive.
type Filter struct {
	// Category filtering (exact match)
	Categories []event.Category `json:"categories,omitempty"`

	// Date range filtering, canonical YYYY-MM-DD, inclusive on both ends
	DateFrom string `json:"date_from,omitempty"`
	DateTo   string `json:"date_to,omitempty"`

	// Title keyword filtering (case-insensitive substring match)
	Keywords []string `json:"keywords,omitempty"`

	// Maximum price in whole dollars; 0 disables the check
	MaxPrice int `json:"max_price,omitempty"`

	// Weekend-only filtering (Saturday/Sunday)
	WeekendsOnly bool `json:"weekends_only,omitempty"`
}

// New creates an empty filter that matches all events until
// criteria are added.
func New() *Filter {
	return &Filter{
		Categories: []event.Category{},
		Keywords:   []string{},
	}
}

// IsEmpty reports whether the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return len(f.Categories) == 0 &&
		f.DateFrom == "" &&
		f.DateTo == "" &&
		len(f.Keywords) == 0 &&
		f.MaxPrice == 0 &&
		!f.WeekendsOnly
}

// Matches checks if an event passes all active filter criteria.
// An empty filter matches all events.
//
// Matching logic:
//   - Categories: event category must equal at least one entry
//   - Date range: event date must fall within DateFrom and DateTo;
//     canonical dates compare correctly as strings
//   - Keywords: event title must contain at least one keyword
//     (case-insensitive)
//   - MaxPrice: event price must not exceed the limit
//   - WeekendsOnly: event date must be a Saturday or Sunday
func (f *Filter) Matches(evt *event.Event) bool {
	if f.IsEmpty() {
		return true
	}

	if len(f.Categories) > 0 {
		matched := false
		for _, cat := range f.Categories {
			if evt.Category == cat {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if f.DateFrom != "" && evt.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && evt.Date > f.DateTo {
		return false
	}

	if len(f.Keywords) > 0 {
		matched := false
		titleLower := strings.ToLower(evt.Title)
		for _, kw := range f.Keywords {
			if strings.Contains(titleLower, strings.ToLower(kw)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if f.MaxPrice > 0 && evt.Price > f.MaxPrice {
		return false
	}

	if f.WeekendsOnly {
		t, err := time.Parse("2006-01-02", evt.Date)
		if err != nil {
			return false
		}
		if wd := t.Weekday(); wd != time.Saturday && wd != time.Sunday {
			return false
		}
	}

	return true
}

// Apply returns only the events that match all criteria. An empty
// filter returns the original slice unchanged.
func (f *Filter) Apply(events []*event.Event) []*event.Event {
	if f.IsEmpty() {
		return events
	}

	var filtered []*event.Event
	for _, evt := range events {
		if f.Matches(evt) {
			filtered = append(filtered, evt)
		}
	}

	return filtered
}

// String returns a human-readable description of the active criteria.
// Returns "No active filters" for an empty filter.
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string

	if len(f.Categories) > 0 {
		names := make([]string, len(f.Categories))
		for i, cat := range f.Categories {
			names[i] = string(cat)
		}
		parts = append(parts, fmt.Sprintf("Categories: %s", strings.Join(names, ", ")))
	}

	if f.DateFrom != "" {
		parts = append(parts, fmt.Sprintf("From: %s", f.DateFrom))
	}

	if f.DateTo != "" {
		parts = append(parts, fmt.Sprintf("To: %s", f.DateTo))
	}

	if len(f.Keywords) > 0 {
		parts = append(parts, fmt.Sprintf("Keywords: %s", strings.Join(f.Keywords, ", ")))
	}

	if f.MaxPrice > 0 {
		parts = append(parts, fmt.Sprintf("Max price: $%d", f.MaxPrice))
	}

	if f.WeekendsOnly {
		parts = append(parts, "Weekends only")
	}

	return strings.Join(parts, " | ")
}

// ParseCategories converts comma- or flag-separated category names
// into validated Category values. Names are matched case-insensitively.
func ParseCategories(names []string) ([]event.Category, error) {
	var cats []event.Category
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		matched := false
		for _, cat := range event.Categories() {
			if strings.EqualFold(name, string(cat)) {
				cats = append(cats, cat)
				matched = true
				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("unknown category %q", name)
		}
	}
	return cats, nil
}
