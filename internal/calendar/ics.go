// Package calendar renders normalized events as iCalendar data so members
// can drop imported club events straight into their own calendars.
package calendar

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/pfrederiksen/ihcc-events/internal/event"
)

const productID = "-//IHCC Events//ihcc-events//EN"

// defaultDuration is used for the VEVENT end time; the pipeline does not
// carry end times, only starts.
const defaultDuration = 2 * time.Hour

// GenerateCalendar renders events into one iCalendar document. Events whose
// canonical date or time fail to parse are skipped; the pipeline guarantees
// both, so a skip indicates hand-edited input.
func GenerateCalendar(events []*event.Event) (string, error) {
	if len(events) == 0 {
		return "", fmt.Errorf("no events to render")
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	rendered := 0
	for _, evt := range events {
		start, err := time.Parse("2006-01-02 15:04:05", evt.Date+" "+evt.Time)
		if err != nil {
			continue
		}

		e := cal.AddEvent(fmt.Sprintf("%s@ihcckc.com", evt.Key()))
		e.SetDtStampTime(time.Now().UTC())
		e.SetStartAt(start)
		e.SetEndAt(start.Add(defaultDuration))
		e.SetSummary(evt.Title)
		e.SetDescription(evt.Description)
		e.SetLocation(evt.Location)
		e.SetURL(evt.RegistrationURL)
		rendered++
	}

	if rendered == 0 {
		return "", fmt.Errorf("no renderable events")
	}

	return cal.Serialize(), nil
}
