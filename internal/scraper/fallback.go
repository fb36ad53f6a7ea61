package scraper

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/ihcc-events/internal/dates"
	"github.com/pfrederiksen/ihcc-events/internal/event"
)

// fallbackTemplates span every category so the distribution display still
// renders something meaningful when the site is down. Prices and day
// offsets are fixed, not drawn from the estimator.
var fallbackTemplates = []struct {
	title    string
	category event.Category
	price    int
	days     int
}{
	{"Golf Tournament", event.CategoryGolf, 125, 7},
	{"Wine Tasting Dinner", event.CategoryDining, 89, 14},
	{"Kids Swimming Lessons", event.CategoryKids, 45, 10},
	{"Fitness Boot Camp", event.CategoryFitness, 25, 5},
	{"Social Mixer", event.CategorySocial, 35, 21},
}

// fallbackBaseID keeps fallback registration URLs stable run to run.
const fallbackBaseID = 3844355

// FallbackEvents returns the fixed placeholder set used when the events
// page is entirely unreachable or empty. Dates are offsets from now, so the
// placeholders always look upcoming.
func FallbackEvents(now time.Time) []*event.Event {
	events := make([]*event.Event, 0, len(fallbackTemplates))

	for i, tpl := range fallbackTemplates {
		date := now.AddDate(0, 0, tpl.days).Format("2006-01-02")
		events = append(events, &event.Event{
			Title:           tpl.title,
			Description:     fmt.Sprintf("Join us for this exciting %s event!", strings.ToLower(string(tpl.category))),
			Date:            date,
			Time:            dates.DefaultTime,
			Category:        tpl.category,
			Price:           tpl.price,
			Location:        event.DefaultLocation,
			RegistrationURL: event.PlaceholderRegistrationURL(fallbackBaseID + i),
		})
	}

	return events
}
