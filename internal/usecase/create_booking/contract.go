package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
	"github.com/m04kA/SMC-InterviewScheduler/internal/infra/lock"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// List внутри транзакции блокирует прочитанные строки
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// SettingsRepository интерфейс репозитория настроек планирования
type SettingsRepository interface {
	Get(ctx context.Context, userID, tenantID uuid.UUID) (*domain.SchedulingSettings, error)
}

// InterviewerRepository интерфейс репозитория интервьюеров
type InterviewerRepository interface {
	GetInTenant(ctx context.Context, userID, tenantID uuid.UUID) (*domain.Interviewer, error)
}

// IntervieweeRepository интерфейс репозитория кандидатов
type IntervieweeRepository interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Interviewee, error)
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.Interviewee, error)
	UpdateStatus(ctx context.Context, interviewee *domain.Interviewee) error
	AddNote(ctx context.Context, note *domain.IntervieweeNote) error
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// DayLocker блокировка дня интервьюера на время проверки и вставки
type DayLocker interface {
	Lock(ctx context.Context, interviewerID, tenantID uuid.UUID, day time.Time) (lock.UnlockFunc, error)
}

// Metrics интерфейс метрик бронирования
type Metrics interface {
	ObserveAdmission(outcome string)
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
