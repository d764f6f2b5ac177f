package booking

import "time"

// Time-slot availability. A real deployment would fetch this from the
// dispatch system; the tables model typical booking pressure.

// defaultTimeSlots are offered on weekdays with no override.
var defaultTimeSlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM",
}

// weekendTimeSlots are the reduced Saturday hours.
var weekendTimeSlots = []string{"10:00 AM", "11:00 AM", "1:00 PM", "2:00 PM"}

// slotOverrides maps a day offset from today to its remaining slots:
// today is partly booked, tomorrow is wide open, the day after is busy.
var slotOverrides = map[int][]string{
	0: {"9:00 AM", "11:00 AM", "2:00 PM"},
	1: {"9:00 AM", "10:00 AM", "11:00 AM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM"},
	2: {"9:00 AM", "4:00 PM"},
}

// AvailableTimeSlots returns the open slots for a date relative to now.
func AvailableTimeSlots(date, now time.Time) []string {
	if date.IsZero() {
		return nil
	}

	if slots, ok := slotOverrides[dayOffset(date, now)]; ok {
		return slots
	}
	if date.Weekday() == time.Saturday {
		return weekendTimeSlots
	}
	return defaultTimeSlots
}

// dayOffset counts calendar days between two wall-clock dates. Rebuilding
// both dates in UTC keeps a DST-shortened or lengthened day counting as
// exactly one day.
func dayOffset(date, now time.Time) int {
	utcDate := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(utcDate(date).Sub(utcDate(now)).Hours() / 24)
}
