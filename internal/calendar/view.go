package calendar

import (
	"time"

	"riascal/internal/model"
)

// GridCell is one day-position of the month view. A zero Day marks a
// leading padding cell. Cells are ephemeral: recomputed on every render,
// never cached.
type GridCell struct {
	Day    time.Time
	Events []model.EventRecord
}

// Padding reports whether this cell is alignment filler.
func (c GridCell) Padding() bool { return c.Day.IsZero() }

// SlotBucket is one fixed one-hour window of a day with the events that
// start in it, in input order.
type SlotBucket struct {
	Label  string
	Events []model.EventRecord
}

// DayColumn is one day of the week view: the date plus its 16 buckets.
type DayColumn struct {
	Day     time.Time
	Buckets []SlotBucket
}

// DayView is the day-view payload. Total carries every event of the day
// in input order, including ones whose hour falls outside the slot
// catalog and therefore appears in no bucket.
type DayView struct {
	Day     time.Time
	Buckets []SlotBucket
	Total   []model.EventRecord
}

// ComputeMonthView populates the month grid for the cursor's date with
// the events of each day. Padding cells carry no events.
func ComputeMonthView(c *Cursor, events []model.EventRecord) []GridCell {
	grid := BuildMonthGrid(c.Current())
	cells := make([]GridCell, 0, len(grid))
	for _, day := range grid {
		if day.IsZero() {
			cells = append(cells, GridCell{})
			continue
		}
		cells = append(cells, GridCell{Day: day, Events: EventsOnDate(events, day)})
	}
	return cells
}

// ComputeWeekView returns the seven Sunday-first day columns of the week
// containing the cursor's date, each partitioned into the fixed slots.
func ComputeWeekView(c *Cursor, events []model.EventRecord) []DayColumn {
	week := BuildWeekGrid(c.Current())
	cols := make([]DayColumn, 0, len(week))
	for _, day := range week {
		cols = append(cols, DayColumn{Day: day, Buckets: dayBuckets(day, events)})
	}
	return cols
}

// ComputeDayView returns the slot partition plus the full-day total for
// the cursor's date.
func ComputeDayView(c *Cursor, events []model.EventRecord) DayView {
	day := DateOf(c.Current())
	return DayView{
		Day:     day,
		Buckets: dayBuckets(day, events),
		Total:   EventsOnDate(events, day),
	}
}

func dayBuckets(day time.Time, events []model.EventRecord) []SlotBucket {
	buckets := make([]SlotBucket, 0, SlotCount)
	for _, label := range slotLabels {
		buckets = append(buckets, SlotBucket{
			Label:  label,
			Events: EventsOnDateInSlot(events, day, label),
		})
	}
	return buckets
}
