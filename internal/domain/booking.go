package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// ActiveStatuses статусы, занимающие время интервьюера
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// IsValid returns true if the status is a known booking status
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking represents an interview booked with an interviewer inside a tenant
type Booking struct {
	ID               uuid.UUID
	InterviewerID    uuid.UUID
	TenantID         uuid.UUID
	IntervieweeID    *uuid.UUID
	Title            string
	IntervieweeName  string
	IntervieweeEmail string
	StartTime        time.Time
	EndTime          time.Time
	Status           BookingStatus

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies interviewer time
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.IsActive()
}

// Interval returns the booked time interval
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// DefaultBookingTitle заголовок бронирования, если клиент его не указал
func DefaultBookingTitle(intervieweeName string) string {
	return "Interview with " + intervieweeName
}

// BookingsFilter фильтр для получения бронирований в тенанте
type BookingsFilter struct {
	InterviewerID    uuid.UUID  // uuid.Nil - без фильтра по интервьюеру
	IntervieweeEmail string     // Пустая строка - без фильтра по кандидату
	TenantID         uuid.UUID  // Обязательный параметр
	From             *time.Time // Начало периода (включительно), nil - без ограничения
	To               *time.Time // Конец периода (не включительно), nil - без ограничения
	EndsAfter        *time.Time // Только бронирования, заканчивающиеся строго позже, nil - без ограничения
	ActiveOnly       bool       // Только PENDING и CONFIRMED
}
