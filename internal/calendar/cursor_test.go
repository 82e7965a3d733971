package calendar_test

import (
	"testing"
	"time"

	"riascal/internal/calendar"
)

func fixedNow(y int, m time.Month, d int) func() time.Time {
	return func() time.Time {
		return time.Date(y, m, d, 14, 30, 0, 0, time.UTC)
	}
}

func TestNewCursorInitialState(t *testing.T) {
	c := calendar.NewCursor(fixedNow(2025, 11, 22))

	if c.Mode() != calendar.ViewMonth {
		t.Errorf("initial mode = %v, want month", c.Mode())
	}
	want := time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)
	if !c.Current().Equal(want) {
		t.Errorf("initial date = %v, want %v (clock stripped)", c.Current(), want)
	}
}

func TestStepRoundTrip(t *testing.T) {
	for _, mode := range []calendar.ViewMode{calendar.ViewMonth, calendar.ViewWeek, calendar.ViewDay} {
		c := calendar.NewCursor(fixedNow(2025, 11, 15))
		c.SetViewMode(mode)
		start := c.Current()

		c.StepForward()
		c.StepBackward()

		if !c.Current().Equal(start) {
			t.Errorf("mode %s: round trip moved cursor from %v to %v", mode, start, c.Current())
		}
	}
}

func TestStepUnits(t *testing.T) {
	tests := []struct {
		mode calendar.ViewMode
		want time.Time
	}{
		{calendar.ViewMonth, time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)},
		{calendar.ViewWeek, time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)},
		{calendar.ViewDay, time.Date(2025, 11, 16, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		c := calendar.NewCursor(fixedNow(2025, 11, 15))
		c.SetViewMode(tt.mode)
		c.StepForward()
		if !c.Current().Equal(tt.want) {
			t.Errorf("mode %s: stepped to %v, want %v", tt.mode, c.Current(), tt.want)
		}
	}
}

func TestStepBackwardAcrossYearBoundary(t *testing.T) {
	c := calendar.NewCursor(fixedNow(2025, 1, 15))
	c.StepBackward() // month view
	want := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)
	if !c.Current().Equal(want) {
		t.Errorf("Jan 15 back one month = %v, want %v", c.Current(), want)
	}
}

func TestStepForwardAcrossYearBoundary(t *testing.T) {
	c := calendar.NewCursor(fixedNow(2025, 12, 30))
	c.SetViewMode(calendar.ViewDay)
	c.StepForward()
	c.StepForward()
	want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !c.Current().Equal(want) {
		t.Errorf("Dec 30 + 2 days = %v, want %v", c.Current(), want)
	}
}

func TestMonthStepClampsToLastDay(t *testing.T) {
	// Clamp policy: Jan 31 forward lands on Feb 28, not Mar 3.
	c := calendar.NewCursor(fixedNow(2025, 1, 31))
	c.StepForward()
	want := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
	if !c.Current().Equal(want) {
		t.Errorf("Jan 31 + 1 month = %v, want %v", c.Current(), want)
	}

	// Leap year keeps the 29th.
	c = calendar.NewCursor(fixedNow(2024, 1, 31))
	c.StepForward()
	want = time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	if !c.Current().Equal(want) {
		t.Errorf("Jan 31 2024 + 1 month = %v, want %v", c.Current(), want)
	}
}

func TestGoToToday(t *testing.T) {
	c := calendar.NewCursor(fixedNow(2025, 11, 22))
	c.SetViewMode(calendar.ViewWeek)
	c.StepForward()
	c.StepForward()

	c.GoToToday()

	if !c.Current().Equal(time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("GoToToday landed on %v", c.Current())
	}
	if c.Mode() != calendar.ViewWeek {
		t.Errorf("GoToToday changed mode to %v", c.Mode())
	}
}

func TestSetViewModeKeepsDate(t *testing.T) {
	c := calendar.NewCursor(fixedNow(2025, 11, 22))
	before := c.Current()
	c.SetViewMode(calendar.ViewWeek)
	if !c.Current().Equal(before) {
		t.Errorf("SetViewMode moved the date to %v", c.Current())
	}
	if c.Mode() != calendar.ViewWeek {
		t.Errorf("mode = %v, want week", c.Mode())
	}
}

func TestSelectDateForcesDayView(t *testing.T) {
	target := time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC)
	for _, mode := range []calendar.ViewMode{calendar.ViewMonth, calendar.ViewWeek, calendar.ViewDay} {
		c := calendar.NewCursor(fixedNow(2025, 11, 22))
		c.SetViewMode(mode)

		c.SelectDate(target)

		if c.Mode() != calendar.ViewDay {
			t.Errorf("from %s: mode = %v, want day", mode, c.Mode())
		}
		if !c.Current().Equal(target) {
			t.Errorf("from %s: date = %v, want %v", mode, c.Current(), target)
		}
	}
}

func TestParseViewMode(t *testing.T) {
	for _, ok := range []string{"month", "week", "day"} {
		if _, err := calendar.ParseViewMode(ok); err != nil {
			t.Errorf("ParseViewMode(%q) unexpected error: %v", ok, err)
		}
	}
	if _, err := calendar.ParseViewMode("year"); err == nil {
		t.Error("ParseViewMode(year) expected error")
	}
}
