package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/psqlbuilder"
)

const table = "scheduling_settings"

// Repository репозиторий настроек планирования
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает настройки пользователя в тенанте
// Возвращает ErrSettingsNotFound, если строки нет; значения по умолчанию подставляет вызывающий
func (r *Repository) Get(ctx context.Context, userID, tenantID uuid.UUID) (*domain.SchedulingSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"user_id",
		"tenant_id",
		"meeting_duration",
		"buffer_between_events",
		"max_schedules_per_day",
		"advance_booking_days",
		"created_at",
		"updated_at",
	).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %w", ErrBuildQuery, err)
	}

	var s domain.SchedulingSettings
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.UserID,
		&s.TenantID,
		&s.MeetingDurationMinutes,
		&s.BufferMinutes,
		&s.MaxSchedulesPerDay,
		&s.AdvanceBookingDays,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %w", ErrScanRow, err)
	}

	return &s, nil
}

// Upsert создает или обновляет настройки пользователя в тенанте
func (r *Repository) Upsert(ctx context.Context, s *domain.SchedulingSettings) (*domain.SchedulingSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"user_id",
			"tenant_id",
			"meeting_duration",
			"buffer_between_events",
			"max_schedules_per_day",
			"advance_booking_days",
		).
		Values(
			s.UserID,
			s.TenantID,
			s.MeetingDurationMinutes,
			s.BufferMinutes,
			s.MaxSchedulesPerDay,
			s.AdvanceBookingDays,
		).
		Suffix(`ON CONFLICT (user_id, tenant_id) DO UPDATE SET
			meeting_duration = EXCLUDED.meeting_duration,
			buffer_between_events = EXCLUDED.buffer_between_events,
			max_schedules_per_day = EXCLUDED.max_schedules_per_day,
			advance_booking_days = EXCLUDED.advance_booking_days,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	return s, nil
}
