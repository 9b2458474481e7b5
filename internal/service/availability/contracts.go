package availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
)

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	GetWeekly(ctx context.Context, userID, tenantID uuid.UUID) ([]*domain.WeeklyAvailability, error)
	GetExceptions(ctx context.Context, userID, tenantID uuid.UUID, from, to *time.Time) ([]*domain.ExceptionDate, error)
	// ReplaceAll должен вызываться внутри транзакции
	ReplaceAll(ctx context.Context, userID, tenantID uuid.UUID, weekly []*domain.WeeklyAvailability, exceptions []*domain.ExceptionDate) error
}

// InterviewerRepository интерфейс репозитория интервьюеров
type InterviewerRepository interface {
	GetInTenant(ctx context.Context, userID, tenantID uuid.UUID) (*domain.Interviewer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
