package calendar

import (
	"strings"
	"testing"

	"github.com/pfrederiksen/ihcc-events/internal/event"
)

func TestGenerateCalendar(t *testing.T) {
	events := []*event.Event{
		{
			Title:           "Wine Tasting Dinner",
			Description:     "Five wines with paired small plates.",
			Date:            "2025-07-18",
			Time:            "18:30:00",
			Category:        event.CategoryDining,
			Price:           89,
			Location:        event.DefaultLocation,
			RegistrationURL: event.RegistrationURL("Wine Tasting Dinner"),
		},
		{
			Title:           "Jr. Tennis Member-Guest",
			Description:     "Invite a friend for tennis, pizza, drinks, and prizes!",
			Date:            "2025-06-20",
			Time:            "18:00:00",
			Category:        event.CategoryKids,
			Price:           25,
			Location:        event.DefaultLocation,
			RegistrationURL: event.RegistrationURL("Jr. Tennis Member-Guest"),
		},
	}

	ics, err := GenerateCalendar(events)
	if err != nil {
		t.Fatalf("GenerateCalendar() error = %v", err)
	}

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"END:VCALENDAR",
		"SUMMARY:Wine Tasting Dinner",
		"SUMMARY:Jr. Tennis Member-Guest",
		"DTSTART:20250718T183000Z",
		"LOCATION:Indian Hills Country Club",
	} {
		if !strings.Contains(ics, want) {
			t.Errorf("calendar output missing %q", want)
		}
	}

	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("got %d VEVENTs, want 2", got)
	}
}

func TestGenerateCalendarEmpty(t *testing.T) {
	if _, err := GenerateCalendar(nil); err == nil {
		t.Error("GenerateCalendar(nil) should fail")
	}
}

func TestGenerateCalendarSkipsUnparseable(t *testing.T) {
	events := []*event.Event{
		{Title: "Broken", Date: "someday", Time: "whenever"},
	}
	if _, err := GenerateCalendar(events); err == nil {
		t.Error("GenerateCalendar() with only unparseable events should fail")
	}
}
