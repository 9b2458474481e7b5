package interviewees

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
)

// IntervieweeRepository интерфейс репозитория кандидатов
type IntervieweeRepository interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Interviewee, error)
	UpdateStatus(ctx context.Context, interviewee *domain.Interviewee) error
	AddNote(ctx context.Context, note *domain.IntervieweeNote) error
	ListNotes(ctx context.Context, tenantID, intervieweeID uuid.UUID) ([]*domain.IntervieweeNote, error)
}

// InterviewerRepository интерфейс репозитория пользователей тенанта
type InterviewerRepository interface {
	GetInTenant(ctx context.Context, userID, tenantID uuid.UUID) (*domain.Interviewer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
