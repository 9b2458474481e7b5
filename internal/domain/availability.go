package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/pkg/types"
)

var (
	ErrInvalidDayOfWeek       = errors.New("day of week must be in range 0..6")
	ErrInvalidAvailabilityEnd = errors.New("availability end time must be after start time")
)

// WeeklyAvailability recurring availability window of an interviewer
// DayOfWeek follows time.Weekday: 0 = Sunday
type WeeklyAvailability struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TenantID  uuid.UUID
	DayOfWeek int
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Validate checks day of week and time bounds
func (a *WeeklyAvailability) Validate() error {
	if a.DayOfWeek < 0 || a.DayOfWeek > 6 {
		return ErrInvalidDayOfWeek
	}
	if err := a.StartTime.Validate(); err != nil {
		return err
	}
	if err := a.EndTime.Validate(); err != nil {
		return err
	}
	if !a.StartTime.IsBefore(a.EndTime) {
		return ErrInvalidAvailabilityEnd
	}
	return nil
}

// Weekday returns the day of week as time.Weekday
func (a *WeeklyAvailability) Weekday() time.Weekday {
	return time.Weekday(a.DayOfWeek)
}

// Window returns the availability window on the given calendar day
func (a *WeeklyAvailability) Window(day time.Time) Interval {
	return Interval{
		Start: a.StartTime.On(day),
		End:   a.EndTime.On(day),
	}
}

// ExceptionDate date-level override of weekly availability
type ExceptionDate struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TenantID  uuid.UUID
	Date      time.Time
	IsBlocked bool
}

// BlocksDay returns true if the exception closes the given day
func (e *ExceptionDate) BlocksDay(day time.Time) bool {
	return e.IsBlocked && SameDay(e.Date, day)
}
