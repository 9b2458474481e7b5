package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
)

// AvailabilityRepository интерфейс репозитория расписания
type AvailabilityRepository interface {
	GetWeekly(ctx context.Context, userID, tenantID uuid.UUID) ([]*domain.WeeklyAvailability, error)
	GetExceptions(ctx context.Context, userID, tenantID uuid.UUID, from, to *time.Time) ([]*domain.ExceptionDate, error)
}

// SettingsRepository интерфейс репозитория настроек планирования
type SettingsRepository interface {
	// Get возвращает settings.ErrSettingsNotFound, если настройки не сохранены
	Get(ctx context.Context, userID, tenantID uuid.UUID) (*domain.SchedulingSettings, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// InterviewerRepository интерфейс репозитория интервьюеров
type InterviewerRepository interface {
	GetInTenant(ctx context.Context, userID, tenantID uuid.UUID) (*domain.Interviewer, error)
}

// Metrics интерфейс метрик генерации слотов
type Metrics interface {
	ObserveSlots(count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
