package event

import (
	"crypto/sha1"
	"fmt"
	"strings"
)

const (
	// DefaultLocation is used when a source row has no location of its own.
	DefaultLocation = "Indian Hills Country Club"

	// BaseURL is the club website root used to derive registration URLs.
	BaseURL = "https://www.ihcckc.com"
)

// Category is one of the fixed event categories. Every event carries exactly
// one category; classification never fails and never produces "unknown".
type Category string

const (
	CategoryGolf    Category = "Golf"
	CategoryDining  Category = "Dining"
	CategoryKids    Category = "Kids"
	CategoryFitness Category = "Fitness"
	CategorySocial  Category = "Social"
)

// Categories returns all categories in classification priority order.
func Categories() []Category {
	return []Category{CategoryGolf, CategoryKids, CategoryFitness, CategoryDining, CategorySocial}
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryGolf, CategoryDining, CategoryKids, CategoryFitness, CategorySocial:
		return true
	}
	return false
}

// Event represents a fully normalized club event.
type Event struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Date            string   `json:"date"` // YYYY-MM-DD
	Time            string   `json:"time"` // HH:MM:SS, 24-hour
	Category        Category `json:"category"`
	Price           int      `json:"price"` // whole dollars, 0 means free
	Location        string   `json:"location"`
	RegistrationURL string   `json:"registration_url"`
}

// Key creates a deterministic identifier from the fields that make an event
// unique in a batch: title and date. Events with the same key are treated as
// the same event when merging batches into a snapshot.
func (e *Event) Key() string {
	normalized := strings.ToLower(strings.TrimSpace(e.Title))
	h := sha1.New()
	h.Write([]byte(normalized + "|" + e.Date))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// RegistrationURL derives the club website registration URL for an event
// title. The title is slugified so the URL is stable across imports of the
// same calendar export.
func RegistrationURL(title string) string {
	return fmt.Sprintf("%s/events/%s", BaseURL, Slugify(title))
}

// PlaceholderRegistrationURL builds the event-view URL for a numeric event
// id. Used on the scrape path when a fragment carries no registration link.
func PlaceholderRegistrationURL(id int) string {
	return fmt.Sprintf("%s/default.aspx?p=.NETEventView&ID=%d", BaseURL, id)
}
