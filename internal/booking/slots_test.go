package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableTimeSlots(t *testing.T) {
	// A Wednesday
	now := time.Date(2026, time.March, 11, 8, 0, 0, 0, time.UTC)

	t.Run("today is partly booked", func(t *testing.T) {
		assert.Equal(t, []string{"9:00 AM", "11:00 AM", "2:00 PM"}, AvailableTimeSlots(now, now))
	})

	t.Run("tomorrow is wide open", func(t *testing.T) {
		assert.Len(t, AvailableTimeSlots(now.AddDate(0, 0, 1), now), 7)
	})

	t.Run("day after tomorrow is busy", func(t *testing.T) {
		assert.Equal(t, []string{"9:00 AM", "4:00 PM"}, AvailableTimeSlots(now.AddDate(0, 0, 2), now))
	})

	t.Run("saturday has reduced hours", func(t *testing.T) {
		saturday := time.Date(2026, time.March, 21, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, weekendTimeSlots, AvailableTimeSlots(saturday, now))
	})

	t.Run("far weekday gets default slots", func(t *testing.T) {
		weekday := time.Date(2026, time.March, 23, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, defaultTimeSlots, AvailableTimeSlots(weekday, now))
	})

	t.Run("zero date has no slots", func(t *testing.T) {
		assert.Empty(t, AvailableTimeSlots(time.Time{}, now))
	})
}

func TestAvailableTimeSlots_AcrossDSTChange(t *testing.T) {
	toronto, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)

	// Clocks spring forward on March 8, 2026, making it a 23-hour day.
	// Day offsets still count calendar days, not elapsed hours.
	now := time.Date(2026, time.March, 7, 9, 0, 0, 0, toronto)

	t.Run("spring-forward day is tomorrow", func(t *testing.T) {
		assert.Len(t, AvailableTimeSlots(now.AddDate(0, 0, 1), now), 7)
	})

	t.Run("day after the change is two days out", func(t *testing.T) {
		assert.Equal(t, []string{"9:00 AM", "4:00 PM"}, AvailableTimeSlots(now.AddDate(0, 0, 2), now))
	})
}
