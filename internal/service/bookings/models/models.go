package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
)

// Роли в запросе списка бронирований
const (
	RoleInterviewer = "interviewer"
	RoleInterviewee = "interviewee"
)

// Форматы даты и времени для отображения
const (
	displayDateFormat = "Monday, January 2, 2006"
	displayTimeFormat = "3:04 PM"
)

// Request модели

// ListBookingsRequest запрос на получение бронирований текущего пользователя
type ListBookingsRequest struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	Role     string     // interviewer (по умолчанию) или interviewee
	From     *time.Time // Начало периода (включительно)
	To       *time.Time // Конец периода (не включительно)
}

// ListTenantBookingsRequest запрос на получение бронирований тенанта (для ADMIN/HR)
type ListTenantBookingsRequest struct {
	UserID           uuid.UUID
	TenantID         uuid.UUID
	InterviewerID    *uuid.UUID // nil - все интервьюеры
	From             *time.Time
	To               *time.Time
	IncludeCancelled bool // По умолчанию только PENDING и CONFIRMED
}

// AccessRequest данные пользователя для проверки доступа к бронированию
type AccessRequest struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID               uuid.UUID  `json:"id"`
	InterviewerID    uuid.UUID  `json:"interviewerId"`
	TenantID         uuid.UUID  `json:"tenantId"`
	IntervieweeID    *uuid.UUID `json:"intervieweeId,omitempty"`
	Title            string     `json:"title"`
	IntervieweeName  string     `json:"intervieweeName"`
	IntervieweeEmail string     `json:"intervieweeEmail"`
	StartTime        time.Time  `json:"startTime"`
	EndTime          time.Time  `json:"endTime"`
	Status           string     `json:"status"`
	Date             string     `json:"date"` // Monday, March 2, 2026
	Time             string     `json:"time"` // 2:30 PM - 3:00 PM
	CancelledAt      *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
// Дата и время для отображения форматируются в location
func FromDomainBooking(b *domain.Booking, location *time.Location) *BookingResponse {
	if b == nil {
		return nil
	}
	if location == nil {
		location = time.UTC
	}

	start := b.StartTime.In(location)
	end := b.EndTime.In(location)

	return &BookingResponse{
		ID:               b.ID,
		InterviewerID:    b.InterviewerID,
		TenantID:         b.TenantID,
		IntervieweeID:    b.IntervieweeID,
		Title:            b.Title,
		IntervieweeName:  b.IntervieweeName,
		IntervieweeEmail: b.IntervieweeEmail,
		StartTime:        start,
		EndTime:          end,
		Status:           string(b.Status),
		Date:             start.Format(displayDateFormat),
		Time:             start.Format(displayTimeFormat) + " - " + end.Format(displayTimeFormat),
		CancelledAt:      b.CancelledAt,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, location *time.Location) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, location); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
