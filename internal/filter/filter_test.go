package filter

import (
	"testing"

	"github.com/pfrederiksen/ihcc-events/internal/event"
)

func sampleEvents() []*event.Event {
	return []*event.Event{
		{Title: "Member-Guest Golf Tournament", Date: "2026-06-06", Category: event.CategoryGolf, Price: 95},
		{Title: "Kids Summer Camp", Date: "2026-06-08", Category: event.CategoryKids, Price: 30},
		{Title: "Wine Dinner", Date: "2026-06-12", Category: event.CategoryDining, Price: 65},
		{Title: "Aqua Fitness", Date: "2026-06-13", Category: event.CategoryFitness, Price: 15},
	}
}

func TestEmptyFilterMatchesAll(t *testing.T) {
	f := New()

	if !f.IsEmpty() {
		t.Error("new filter should be empty")
	}

	events := sampleEvents()
	filtered := f.Apply(events)
	if len(filtered) != len(events) {
		t.Errorf("empty filter returned %d events, want %d", len(filtered), len(events))
	}
}

func TestFilterByCategory(t *testing.T) {
	f := New()
	f.Categories = []event.Category{event.CategoryGolf, event.CategoryKids}

	filtered := f.Apply(sampleEvents())
	if len(filtered) != 2 {
		t.Fatalf("got %d events, want 2", len(filtered))
	}
	if filtered[0].Category != event.CategoryGolf {
		t.Errorf("first event category = %s, want golf", filtered[0].Category)
	}
	if filtered[1].Category != event.CategoryKids {
		t.Errorf("second event category = %s, want kids", filtered[1].Category)
	}
}

func TestFilterByDateRange(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{"inclusive bounds", "2026-06-06", "2026-06-08", 2},
		{"open start", "", "2026-06-08", 2},
		{"open end", "2026-06-12", "", 2},
		{"no matches", "2026-07-01", "2026-07-31", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			f.DateFrom = tt.from
			f.DateTo = tt.to

			filtered := f.Apply(sampleEvents())
			if len(filtered) != tt.want {
				t.Errorf("got %d events, want %d", len(filtered), tt.want)
			}
		})
	}
}

func TestFilterByKeyword(t *testing.T) {
	f := New()
	f.Keywords = []string{"GOLF", "wine"}

	filtered := f.Apply(sampleEvents())
	if len(filtered) != 2 {
		t.Fatalf("got %d events, want 2", len(filtered))
	}
	if filtered[0].Title != "Member-Guest Golf Tournament" {
		t.Errorf("unexpected first match: %s", filtered[0].Title)
	}
}

func TestFilterByMaxPrice(t *testing.T) {
	f := New()
	f.MaxPrice = 30

	filtered := f.Apply(sampleEvents())
	if len(filtered) != 2 {
		t.Fatalf("got %d events, want 2", len(filtered))
	}
	for _, evt := range filtered {
		if evt.Price > 30 {
			t.Errorf("event %q price %d exceeds max", evt.Title, evt.Price)
		}
	}
}

func TestFilterWeekendsOnly(t *testing.T) {
	f := New()
	f.WeekendsOnly = true

	// 2026-06-06 and 2026-06-13 are Saturdays
	filtered := f.Apply(sampleEvents())
	if len(filtered) != 2 {
		t.Fatalf("got %d events, want 2", len(filtered))
	}
	for _, evt := range filtered {
		if evt.Date != "2026-06-06" && evt.Date != "2026-06-13" {
			t.Errorf("unexpected weekday event: %s", evt.Date)
		}
	}
}

func TestFilterCombinedCriteria(t *testing.T) {
	f := New()
	f.Categories = []event.Category{event.CategoryGolf, event.CategoryFitness}
	f.MaxPrice = 50

	filtered := f.Apply(sampleEvents())
	if len(filtered) != 1 {
		t.Fatalf("got %d events, want 1", len(filtered))
	}
	if filtered[0].Title != "Aqua Fitness" {
		t.Errorf("unexpected match: %s", filtered[0].Title)
	}
}

func TestFilterString(t *testing.T) {
	f := New()
	if got := f.String(); got != "No active filters" {
		t.Errorf("empty filter string = %q", got)
	}

	f.Categories = []event.Category{event.CategoryGolf}
	f.DateFrom = "2026-06-01"
	f.MaxPrice = 50
	f.WeekendsOnly = true

	got := f.String()
	want := "Categories: Golf | From: 2026-06-01 | Max price: $50 | Weekends only"
	if got != want {
		t.Errorf("filter string = %q, want %q", got, want)
	}
}

func TestParseCategories(t *testing.T) {
	cats, err := ParseCategories([]string{"Golf", "DINING", " kids "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []event.Category{event.CategoryGolf, event.CategoryDining, event.CategoryKids}
	if len(cats) != len(want) {
		t.Fatalf("got %d categories, want %d", len(cats), len(want))
	}
	for i, cat := range cats {
		if cat != want[i] {
			t.Errorf("category[%d] = %s, want %s", i, cat, want[i])
		}
	}

	if _, err := ParseCategories([]string{"bingo"}); err == nil {
		t.Error("expected error for unknown category")
	}
}
