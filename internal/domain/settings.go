package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Default scheduling settings
const (
	DefaultMeetingDurationMinutes = 30
	DefaultBufferMinutes          = 15
	DefaultMaxSchedulesPerDay     = 3
	DefaultAdvanceBookingDays     = 30
)

var (
	ErrInvalidMeetingDuration = errors.New("meeting duration is out of range")
	ErrInvalidBuffer          = errors.New("buffer between events is out of range")
	ErrInvalidMaxPerDay       = errors.New("max schedules per day is out of range")
	ErrInvalidAdvanceDays     = errors.New("advance booking days is out of range")
)

// SchedulingSettings per (user, tenant) scheduling parameters
type SchedulingSettings struct {
	UserID                 uuid.UUID
	TenantID               uuid.UUID
	MeetingDurationMinutes int
	BufferMinutes          int
	MaxSchedulesPerDay     int
	AdvanceBookingDays     int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// DefaultSchedulingSettings settings used when nothing is stored for (user, tenant)
func DefaultSchedulingSettings(userID, tenantID uuid.UUID) *SchedulingSettings {
	return &SchedulingSettings{
		UserID:                 userID,
		TenantID:               tenantID,
		MeetingDurationMinutes: DefaultMeetingDurationMinutes,
		BufferMinutes:          DefaultBufferMinutes,
		MaxSchedulesPerDay:     DefaultMaxSchedulesPerDay,
		AdvanceBookingDays:     DefaultAdvanceBookingDays,
	}
}

// Validate checks business bounds
func (s *SchedulingSettings) Validate() error {
	if s.MeetingDurationMinutes < MinMeetingDurationMinutes || s.MeetingDurationMinutes > MaxMeetingDurationMinutes {
		return ErrInvalidMeetingDuration
	}
	if s.BufferMinutes < 0 || s.BufferMinutes > MaxBufferMinutes {
		return ErrInvalidBuffer
	}
	if s.MaxSchedulesPerDay < MinSchedulesPerDay || s.MaxSchedulesPerDay > MaxSchedulesPerDay {
		return ErrInvalidMaxPerDay
	}
	if s.AdvanceBookingDays < MinAdvanceBookingDays || s.AdvanceBookingDays > MaxAdvanceBookingDays {
		return ErrInvalidAdvanceDays
	}
	return nil
}

// MeetingDuration returns the meeting duration
func (s *SchedulingSettings) MeetingDuration() time.Duration {
	return time.Duration(s.MeetingDurationMinutes) * time.Minute
}

// Buffer returns the buffer between events
func (s *SchedulingSettings) Buffer() time.Duration {
	return time.Duration(s.BufferMinutes) * time.Minute
}

// Step distance between starts of consecutive slots
func (s *SchedulingSettings) Step() time.Duration {
	return s.MeetingDuration() + s.Buffer()
}

// BookingHorizon last moment that can be offered for booking
func (s *SchedulingSettings) BookingHorizon(now time.Time) time.Time {
	return now.AddDate(0, 0, s.AdvanceBookingDays)
}
