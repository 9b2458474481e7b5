package settings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек планирования
type SettingsRepository interface {
	Get(ctx context.Context, userID, tenantID uuid.UUID) (*domain.SchedulingSettings, error)
	Upsert(ctx context.Context, settings *domain.SchedulingSettings) (*domain.SchedulingSettings, error)
}

// InterviewerRepository интерфейс репозитория интервьюеров
type InterviewerRepository interface {
	GetInTenant(ctx context.Context, userID, tenantID uuid.UUID) (*domain.Interviewer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
