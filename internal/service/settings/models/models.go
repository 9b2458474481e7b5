package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
)

// Request модели

// UpdateSettingsRequest запрос на обновление настроек планирования
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	UserID                 uuid.UUID `json:"-"`
	TenantID               uuid.UUID `json:"-"`
	MeetingDurationMinutes *int      `json:"meetingDuration,omitempty"`
	BufferMinutes          *int      `json:"bufferBetweenEvents,omitempty"`
	MaxSchedulesPerDay     *int      `json:"maxSchedulesPerDay,omitempty"`
	AdvanceBookingDays     *int      `json:"advanceBookingDays,omitempty"`
}

// Response модели

// SettingsResponse ответ с настройками планирования
type SettingsResponse struct {
	UserID                 uuid.UUID  `json:"userId"`
	TenantID               uuid.UUID  `json:"tenantId"`
	MeetingDurationMinutes int        `json:"meetingDuration"`
	BufferMinutes          int        `json:"bufferBetweenEvents"`
	MaxSchedulesPerDay     int        `json:"maxSchedulesPerDay"`
	AdvanceBookingDays     int        `json:"advanceBookingDays"`
	IsDefault              bool       `json:"isDefault"` // Настройки еще не сохранялись
	CreatedAt              *time.Time `json:"createdAt,omitempty"`
	UpdatedAt              *time.Time `json:"updatedAt,omitempty"`
}

// Методы конвертации

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.SchedulingSettings, isDefault bool) *SettingsResponse {
	if s == nil {
		return nil
	}

	resp := &SettingsResponse{
		UserID:                 s.UserID,
		TenantID:               s.TenantID,
		MeetingDurationMinutes: s.MeetingDurationMinutes,
		BufferMinutes:          s.BufferMinutes,
		MaxSchedulesPerDay:     s.MaxSchedulesPerDay,
		AdvanceBookingDays:     s.AdvanceBookingDays,
		IsDefault:              isDefault,
	}
	if !isDefault {
		resp.CreatedAt = &s.CreatedAt
		resp.UpdatedAt = &s.UpdatedAt
	}

	return resp
}

// ApplyToSettings применяет обновления к существующим настройкам
// Обновляются только непустые (not nil) поля из request
func (r *UpdateSettingsRequest) ApplyToSettings(s *domain.SchedulingSettings) {
	if r.MeetingDurationMinutes != nil {
		s.MeetingDurationMinutes = *r.MeetingDurationMinutes
	}
	if r.BufferMinutes != nil {
		s.BufferMinutes = *r.BufferMinutes
	}
	if r.MaxSchedulesPerDay != nil {
		s.MaxSchedulesPerDay = *r.MaxSchedulesPerDay
	}
	if r.AdvanceBookingDays != nil {
		s.AdvanceBookingDays = *r.AdvanceBookingDays
	}
}
