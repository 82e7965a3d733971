package calendar

import (
	"errors"
	"fmt"
)

// The day is partitioned into fixed one-hour slots from 06:00 to 21:00
// inclusive. The catalog is configuration, not data: bookings outside
// this range never appear in slot views. That is a documented limitation
// of the business (nobody books makeup at 03:00), not something to
// silently widen.
const (
	slotFirstHour = 6
	slotLastHour  = 21
	SlotCount     = slotLastHour - slotFirstHour + 1
)

// ErrInvalidTimeFormat is returned by SlotKey when the input is not a
// well-formed HH:MM 24-hour clock string.
var ErrInvalidTimeFormat = errors.New("invalid time format, want HH:MM")

var slotLabels = buildSlotLabels()

func buildSlotLabels() []string {
	labels := make([]string, 0, SlotCount)
	for h := slotFirstHour; h <= slotLastHour; h++ {
		labels = append(labels, fmt.Sprintf("%02d:00", h))
	}
	return labels
}

// SlotLabels returns the ascending slot catalog ("06:00" … "21:00").
// The returned slice is a copy; callers may keep it.
func SlotLabels() []string {
	out := make([]string, len(slotLabels))
	copy(out, slotLabels)
	return out
}

// SlotKey maps an HH:MM clock string to its slot label "HH:00". Minutes
// are ignored: 09:45 belongs to 09:00. This is an exact hour-prefix
// match, not rounding to the nearest slot. The result may name an hour
// outside the catalog; InCatalog decides visibility.
func SlotKey(clock string) (string, error) {
	hh, _, err := parseClock(clock)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:00", hh), nil
}

// InCatalog reports whether a slot label is one of the fixed 16 slots.
func InCatalog(label string) bool {
	hh, mm, err := parseClock(label)
	if err != nil || mm != 0 {
		return false
	}
	return hh >= slotFirstHour && hh <= slotLastHour
}

func parseClock(clock string) (hh, mm int, err error) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, 0, ErrInvalidTimeFormat
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if clock[i] < '0' || clock[i] > '9' {
			return 0, 0, ErrInvalidTimeFormat
		}
	}
	hh = int(clock[0]-'0')*10 + int(clock[1]-'0')
	mm = int(clock[3]-'0')*10 + int(clock[4]-'0')
	if hh > 23 || mm > 59 {
		return 0, 0, ErrInvalidTimeFormat
	}
	return hh, mm, nil
}
