// Package ics turns the booking collection into an iCalendar feed so
// clients can subscribe to the schedule from their own calendar apps.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	appLog "riascal/internal/log"
	"riascal/internal/model"
)

// defaultDuration is the blocked-out length of one appointment. The
// booking model stores a start time only; an hour matches the slot
// granularity of the calendar views.
const defaultDuration = time.Hour

// Build assembles a VCALENDAR with one VEVENT per booking. A booking
// with a malformed time is logged and skipped; one bad record never
// aborts the feed.
func Build(events []model.EventRecord, name string) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//riascal//booking calendar//ID")
	if name != "" {
		cal.SetXWRCalName(name)
	}

	for _, ev := range events {
		clock, err := time.Parse(model.ClockFormat, ev.Time)
		if err != nil {
			appLog.Error("ics export: skipping booking with malformed time", err, "id", ev.ID, "time", ev.Time)
			continue
		}
		start := time.Date(
			ev.Date.Year(), ev.Date.Month(), ev.Date.Day(),
			clock.Hour(), clock.Minute(), 0, 0, ev.Date.Location(),
		)

		ve := cal.AddEvent(ev.ID)
		ve.SetSummary(fmt.Sprintf("%s - %s", ev.ClientName, ev.Service.Label()))
		ve.SetStartAt(start)
		ve.SetEndAt(start.Add(defaultDuration))
		if ev.Location != "" {
			ve.SetLocation(ev.Location)
		}
		if ev.Notes != "" {
			ve.SetDescription(ev.Notes)
		}
		ve.SetDtStampTime(start)
	}

	return cal
}

// Serialize renders the feed body for HTTP responses and file export.
func Serialize(events []model.EventRecord, name string) string {
	return Build(events, name).Serialize()
}
