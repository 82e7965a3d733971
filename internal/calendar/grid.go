// Package calendar holds the computation core of the booking calendar:
// month/week date grids, the fixed hourly slot catalog, order-preserving
// event lookups and the navigation cursor. Everything here is a pure
// function over immutable date values; rendering, persistence and text
// formatting are collaborator concerns.
package calendar

import "time"

// WeekdayLabels is the fixed Sunday-first header row. The ordering is
// load-bearing for grid alignment and is not locale-dependent.
var WeekdayLabels = [7]string{"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab"}

// DateOf truncates t to midnight in its own location, producing the
// canonical date value the rest of the core operates on.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BuildMonthGrid returns the ordered cell layout for the month containing
// ref: one zero time.Time per leading padding cell (so that day 1 lands in
// its weekday column of a 7-wide grid), then one entry per day of the
// month. No trailing padding is added; length is weekdayOfFirst plus the
// number of days in the month.
func BuildMonthGrid(ref time.Time) []time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	lead := int(first.Weekday()) // Sunday = 0
	// Day 0 of the following month is the last day of this one.
	days := time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, ref.Location()).Day()

	grid := make([]time.Time, 0, lead+days)
	for i := 0; i < lead; i++ {
		grid = append(grid, time.Time{})
	}
	for d := 0; d < days; d++ {
		grid = append(grid, first.AddDate(0, 0, d))
	}
	return grid
}

// BuildWeekGrid returns the seven days of the Sunday-anchored week
// containing ref, Sunday first. Any ref within the same Sunday–Saturday
// span yields the identical sequence.
func BuildWeekGrid(ref time.Time) []time.Time {
	start := DateOf(ref).AddDate(0, 0, -int(ref.Weekday()))
	week := make([]time.Time, 7)
	for i := range week {
		week[i] = start.AddDate(0, 0, i)
	}
	return week
}
