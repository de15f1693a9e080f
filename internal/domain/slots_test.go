package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pacohlim/showroom-reservation/pkg/types"
)

func TestAllowedSlots(t *testing.T) {
	tests := []struct {
		name string
		date string
		want []types.TimeString
	}{
		{name: "sunday is closed", date: "2025-03-16", want: []types.TimeString{}},
		{name: "saturday", date: "2025-03-15", want: []types.TimeString{"14:00", "16:00"}},
		{name: "monday", date: "2025-03-17", want: []types.TimeString{"13:00", "15:00"}},
		{name: "tuesday", date: "2025-03-18", want: []types.TimeString{"13:00", "15:00"}},
		{name: "wednesday", date: "2025-03-19", want: []types.TimeString{"13:00", "15:00"}},
		{name: "thursday", date: "2025-03-20", want: []types.TimeString{"13:00", "15:00"}},
		{name: "friday", date: "2025-03-21", want: []types.TimeString{"13:00", "15:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, AllowedSlots(date))
		})
	}
}

func TestAllowedSlots_DoesNotShareBackingArray(t *testing.T) {
	date, err := ParseDate("2025-03-17")
	require.NoError(t, err)

	first := AllowedSlots(date)
	first[0] = "00:00"

	assert.Equal(t, []types.TimeString{"13:00", "15:00"}, AllowedSlots(date))
}

func TestIsSlotAllowed(t *testing.T) {
	saturday, err := ParseDate("2025-03-15")
	require.NoError(t, err)
	monday, err := ParseDate("2025-03-17")
	require.NoError(t, err)
	sunday, err := ParseDate("2025-03-16")
	require.NoError(t, err)

	assert.True(t, IsSlotAllowed(saturday, "14:00"))
	assert.True(t, IsSlotAllowed(saturday, "16:00"))
	assert.False(t, IsSlotAllowed(saturday, "13:00"))
	assert.True(t, IsSlotAllowed(monday, "13:00"))
	assert.False(t, IsSlotAllowed(monday, "14:00"))
	assert.False(t, IsSlotAllowed(sunday, "13:00"))
	assert.False(t, IsSlotAllowed(sunday, "14:00"))
}

func TestAvailableSlots(t *testing.T) {
	monday, err := ParseDate("2025-03-17")
	require.NoError(t, err)
	saturday, err := ParseDate("2025-03-15")
	require.NoError(t, err)
	sunday, err := ParseDate("2025-03-16")
	require.NoError(t, err)

	tests := []struct {
		name   string
		date   time.Time
		closed []types.TimeString
		want   []types.TimeString
	}{
		{name: "nothing closed", date: monday, closed: nil, want: []types.TimeString{"13:00", "15:00"}},
		{name: "first slot closed", date: monday, closed: []types.TimeString{"13:00"}, want: []types.TimeString{"15:00"}},
		{name: "second slot closed", date: monday, closed: []types.TimeString{"15:00"}, want: []types.TimeString{"13:00"}},
		{name: "all closed", date: monday, closed: []types.TimeString{"13:00", "15:00"}, want: []types.TimeString{}},
		{name: "closed time outside schedule is ignored", date: saturday, closed: []types.TimeString{"13:00"}, want: []types.TimeString{"14:00", "16:00"}},
		{name: "sunday stays empty", date: sunday, closed: []types.TimeString{"14:00"}, want: []types.TimeString{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AvailableSlots(tt.date, tt.closed))
		})
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), date)
	assert.Equal(t, time.Saturday, date.Weekday())

	_, err = ParseDate("2025-3-15")
	assert.Error(t, err)
	_, err = ParseDate("15.03.2025")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}
