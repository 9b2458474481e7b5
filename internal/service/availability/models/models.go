package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/types"
)

// Request модели

// ReplaceAvailabilityRequest запрос на полную замену расписания
type ReplaceAvailabilityRequest struct {
	UserID         uuid.UUID   `json:"-"`
	TenantID       uuid.UUID   `json:"-"`
	Weekly         []Weekly    `json:"availabilitySlots"`
	ExceptionDates []Exception `json:"exceptionDates"`
}

// Weekly окно недельного расписания
type Weekly struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0 = воскресенье
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM, 24:00 - до конца суток
}

// Exception исключение для конкретной даты
type Exception struct {
	Date      string `json:"date"` // YYYY-MM-DD
	IsBlocked bool   `json:"isBlocked"`
}

// Response модели

// AvailabilityResponse ответ с расписанием пользователя
type AvailabilityResponse struct {
	Weekly         []Weekly    `json:"availabilitySlots"`
	ExceptionDates []Exception `json:"exceptionDates"`
}

// Методы конвертации

// FromDomain конвертирует domain модели в DTO
func FromDomain(weekly []*domain.WeeklyAvailability, exceptions []*domain.ExceptionDate) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		Weekly:         make([]Weekly, 0, len(weekly)),
		ExceptionDates: make([]Exception, 0, len(exceptions)),
	}

	for _, w := range weekly {
		resp.Weekly = append(resp.Weekly, Weekly{
			DayOfWeek: w.DayOfWeek,
			StartTime: w.StartTime.String(),
			EndTime:   w.EndTime.String(),
		})
	}
	for _, e := range exceptions {
		resp.ExceptionDates = append(resp.ExceptionDates, Exception{
			Date:      e.Date.Format(domain.DateFormat),
			IsBlocked: e.IsBlocked,
		})
	}

	return resp
}

// ToDomain конвертирует и валидирует запрос
// Даты исключений интерпретируются в location
func (r *ReplaceAvailabilityRequest) ToDomain(location *time.Location) ([]*domain.WeeklyAvailability, []*domain.ExceptionDate, error) {
	weekly := make([]*domain.WeeklyAvailability, 0, len(r.Weekly))
	for i, w := range r.Weekly {
		start, err := types.NewTimeStringFromString(w.StartTime)
		if err != nil {
			return nil, nil, fmt.Errorf("availabilitySlots[%d].startTime: %w", i, err)
		}
		end, err := types.NewTimeStringFromString(w.EndTime)
		if err != nil {
			return nil, nil, fmt.Errorf("availabilitySlots[%d].endTime: %w", i, err)
		}

		entry := &domain.WeeklyAvailability{
			UserID:    r.UserID,
			TenantID:  r.TenantID,
			DayOfWeek: w.DayOfWeek,
			StartTime: start,
			EndTime:   end,
		}
		if err := entry.Validate(); err != nil {
			return nil, nil, fmt.Errorf("availabilitySlots[%d]: %w", i, err)
		}
		weekly = append(weekly, entry)
	}

	seen := make(map[string]struct{}, len(r.ExceptionDates))
	exceptions := make([]*domain.ExceptionDate, 0, len(r.ExceptionDates))
	for i, e := range r.ExceptionDates {
		date, err := time.ParseInLocation(domain.DateFormat, e.Date, location)
		if err != nil {
			return nil, nil, fmt.Errorf("exceptionDates[%d].date: expected YYYY-MM-DD", i)
		}
		key := date.Format(domain.DateFormat)
		if _, ok := seen[key]; ok {
			return nil, nil, fmt.Errorf("exceptionDates[%d].date: duplicate date %s", i, key)
		}
		seen[key] = struct{}{}

		exceptions = append(exceptions, &domain.ExceptionDate{
			UserID:    r.UserID,
			TenantID:  r.TenantID,
			Date:      date,
			IsBlocked: e.IsBlocked,
		})
	}

	return weekly, exceptions, nil
}
