package calendar

import (
	"fmt"
	"time"
)

// ViewMode selects which grid the calendar renders.
type ViewMode string

const (
	ViewMonth ViewMode = "month"
	ViewWeek  ViewMode = "week"
	ViewDay   ViewMode = "day"
)

// ParseViewMode validates a mode string from the outside world.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewMonth, ViewWeek, ViewDay:
		return ViewMode(s), nil
	default:
		return "", fmt.Errorf("unknown view mode %q", s)
	}
}

// Cursor is the navigation state machine: the single (currentDate,
// viewMode) pair that anchors all view computation. It is created once
// per session and mutated only through its methods. The cursor itself is
// not synchronized; it expects a single logical actor (the web layer
// serializes access for HTTP callers).
type Cursor struct {
	current time.Time
	mode    ViewMode
	now     func() time.Time
}

// NewCursor returns a cursor positioned at today in month view. now is
// injectable for testing; nil means time.Now.
func NewCursor(now func() time.Time) *Cursor {
	if now == nil {
		now = time.Now
	}
	return &Cursor{
		current: DateOf(now()),
		mode:    ViewMonth,
		now:     now,
	}
}

func (c *Cursor) Current() time.Time { return c.current }

func (c *Cursor) Mode() ViewMode { return c.mode }

// StepForward advances the cursor by one unit of the active view:
// a month, a week, or a day.
func (c *Cursor) StepForward() { c.step(1) }

// StepBackward retreats the cursor by one unit of the active view.
func (c *Cursor) StepBackward() { c.step(-1) }

func (c *Cursor) step(dir int) {
	switch c.mode {
	case ViewWeek:
		c.current = c.current.AddDate(0, 0, 7*dir)
	case ViewDay:
		c.current = c.current.AddDate(0, 0, dir)
	default:
		c.current = addMonths(c.current, dir)
	}
}

// GoToToday resets the date to the clock's current day; the view mode
// is left alone.
func (c *Cursor) GoToToday() {
	c.current = DateOf(c.now())
}

// Today returns the clock's current day, for "is today" highlighting.
func (c *Cursor) Today() time.Time {
	return DateOf(c.now())
}

// SetViewMode switches the view without moving the date. Switching from
// month to week deliberately does not snap to the start of the week;
// the week grid is derived fresh from whatever date the cursor holds.
func (c *Cursor) SetViewMode(m ViewMode) {
	c.mode = m
}

// SelectDate jumps to the clicked date and drills into day view. This is
// the one transition that changes both fields, and it does so atomically
// from the caller's point of view.
func (c *Cursor) SelectDate(d time.Time) {
	c.current = DateOf(d)
	c.mode = ViewDay
}

// addMonths shifts d by n calendar months, clamping the day-of-month to
// the target month's last day (Jan 31 minus one month is Dec 31; Mar 31
// minus one month is Feb 28 or 29). The clamp is an explicit policy
// choice over letting time.AddDate roll into the next month. Forward
// then backward round-trips exactly whenever the starting day exists in
// the adjacent month.
func addMonths(d time.Time, n int) time.Time {
	first := time.Date(d.Year(), d.Month()+time.Month(n), 1, 0, 0, 0, 0, d.Location())
	last := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, d.Location()).Day()
	day := d.Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, d.Location())
}
