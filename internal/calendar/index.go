package calendar

import (
	"time"

	appLog "riascal/internal/log"
	"riascal/internal/model"
)

// EventsOnDate returns every event falling on the given calendar day,
// preserving the relative order of the input. A fresh slice is allocated
// per call; the input is never mutated. No per-date index is built —
// collections are session-scale and recomputed per render.
func EventsOnDate(events []model.EventRecord, date time.Time) []model.EventRecord {
	out := make([]model.EventRecord, 0)
	for _, ev := range events {
		if SameDay(ev.Date, date) {
			out = append(out, ev)
		}
	}
	return out
}

// EventsOnDateInSlot narrows EventsOnDate to events whose time falls in
// the given slot. Input order is preserved; two bookings in the same
// hour are NOT re-sorted by minute. An event with a malformed time is
// logged and skipped — one bad record must not take down the batch.
func EventsOnDateInSlot(events []model.EventRecord, date time.Time, slotLabel string) []model.EventRecord {
	out := make([]model.EventRecord, 0)
	for _, ev := range events {
		if !SameDay(ev.Date, date) {
			continue
		}
		key, err := SlotKey(ev.Time)
		if err != nil {
			appLog.Error("skipping event with malformed time", err, "id", ev.ID, "time", ev.Time)
			continue
		}
		if key == slotLabel {
			out = append(out, ev)
		}
	}
	return out
}
