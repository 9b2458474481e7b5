package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterviewScheduler/pkg/types"
)

func TestDefaultSchedulingSettings(t *testing.T) {
	s := DefaultSchedulingSettings(uuid.New(), uuid.New())

	require.NoError(t, s.Validate())
	assert.Equal(t, 30*time.Minute, s.MeetingDuration())
	assert.Equal(t, 15*time.Minute, s.Buffer())
	assert.Equal(t, 45*time.Minute, s.Step())
	assert.Equal(t, 3, s.MaxSchedulesPerDay)

	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, now.AddDate(0, 0, 30), s.BookingHorizon(now))
}

func TestSchedulingSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *SchedulingSettings)
		err    error
	}{
		{"duration too short", func(s *SchedulingSettings) { s.MeetingDurationMinutes = 1 }, ErrInvalidMeetingDuration},
		{"negative buffer", func(s *SchedulingSettings) { s.BufferMinutes = -1 }, ErrInvalidBuffer},
		{"zero per day", func(s *SchedulingSettings) { s.MaxSchedulesPerDay = 0 }, ErrInvalidMaxPerDay},
		{"advance too far", func(s *SchedulingSettings) { s.AdvanceBookingDays = 1000 }, ErrInvalidAdvanceDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSchedulingSettings(uuid.Nil, uuid.Nil)
			tt.mutate(s)
			assert.ErrorIs(t, s.Validate(), tt.err)
		})
	}
}

func TestWeeklyAvailability(t *testing.T) {
	a := &WeeklyAvailability{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"}
	require.NoError(t, a.Validate())

	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	w := a.Window(day)
	assert.Equal(t, time.Monday, a.Weekday())
	assert.Equal(t, time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC), w.End)

	bad := &WeeklyAvailability{DayOfWeek: 7, StartTime: "09:00", EndTime: "12:00"}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidDayOfWeek)

	reversed := &WeeklyAvailability{DayOfWeek: 1, StartTime: "12:00", EndTime: "09:00"}
	assert.ErrorIs(t, reversed.Validate(), ErrInvalidAvailabilityEnd)

	malformed := &WeeklyAvailability{DayOfWeek: 1, StartTime: "9am", EndTime: "12:00"}
	assert.ErrorIs(t, malformed.Validate(), types.ErrInvalidTimeString)
}

func TestExceptionDate_BlocksDay(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, (&ExceptionDate{Date: day, IsBlocked: true}).BlocksDay(day.Add(10*time.Hour)))
	assert.False(t, (&ExceptionDate{Date: day, IsBlocked: false}).BlocksDay(day))
	assert.False(t, (&ExceptionDate{Date: day, IsBlocked: true}).BlocksDay(day.AddDate(0, 0, 1)))
}
