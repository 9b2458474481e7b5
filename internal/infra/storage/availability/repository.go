package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/psqlbuilder"
)

const (
	weeklyTable    = "availabilities"
	exceptionTable = "exception_dates"
)

// Repository репозиторий недельного расписания и дат-исключений
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeekly получает недельное расписание пользователя в тенанте
func (r *Repository) GetWeekly(ctx context.Context, userID, tenantID uuid.UUID) ([]*domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"tenant_id",
		"day_of_week",
		"start_time",
		"end_time",
	).
		From(weeklyTable).
		Where(squirrel.Eq{"user_id": userID, "tenant_id": tenantID}).
		OrderBy("day_of_week ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekly - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekly - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.WeeklyAvailability, 0)
	for rows.Next() {
		var a domain.WeeklyAvailability
		if err := rows.Scan(&a.ID, &a.UserID, &a.TenantID, &a.DayOfWeek, &a.StartTime, &a.EndTime); err != nil {
			return nil, fmt.Errorf("%w: GetWeekly - scan row: %w", ErrScanRow, err)
		}
		result = append(result, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeekly - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// GetExceptions получает даты-исключения пользователя в тенанте
// from и to (включительно) опциональны
func (r *Repository) GetExceptions(ctx context.Context, userID, tenantID uuid.UUID, from, to *time.Time) ([]*domain.ExceptionDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"user_id",
		"tenant_id",
		"date",
		"is_blocked",
	).
		From(exceptionTable).
		Where(squirrel.Eq{"user_id": userID, "tenant_id": tenantID})

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": from.Format(domain.DateFormat)})
	}
	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": to.Format(domain.DateFormat)})
	}

	query, args, err := selectBuilder.OrderBy("date ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptions - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptions - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ExceptionDate, 0)
	for rows.Next() {
		var e domain.ExceptionDate
		if err := rows.Scan(&e.ID, &e.UserID, &e.TenantID, &e.Date, &e.IsBlocked); err != nil {
			return nil, fmt.Errorf("%w: GetExceptions - scan row: %w", ErrScanRow, err)
		}
		result = append(result, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetExceptions - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// ReplaceAll полностью заменяет расписание и исключения пользователя в тенанте
// Должен вызываться внутри транзакции: старые строки удаляются, новые вставляются
func (r *Repository) ReplaceAll(ctx context.Context, userID, tenantID uuid.UUID, weekly []*domain.WeeklyAvailability, exceptions []*domain.ExceptionDate) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return ErrNoTransaction
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// 1. Удаляем старые записи
	for _, table := range []string{weeklyTable, exceptionTable} {
		query, args, err := psqlbuilder.Delete(table).
			Where(squirrel.Eq{"user_id": userID, "tenant_id": tenantID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: ReplaceAll - build delete query: %w", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: ReplaceAll - delete %s: %w", ErrExecQuery, table, err)
		}
	}

	// 2. Вставляем недельное расписание
	if len(weekly) > 0 {
		insert := psqlbuilder.Insert(weeklyTable).
			Columns("id", "user_id", "tenant_id", "day_of_week", "start_time", "end_time")
		for _, a := range weekly {
			if a.ID == uuid.Nil {
				a.ID = uuid.New()
			}
			a.UserID, a.TenantID = userID, tenantID
			insert = insert.Values(a.ID, userID, tenantID, a.DayOfWeek, a.StartTime, a.EndTime)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("%w: ReplaceAll - build weekly insert: %w", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: ReplaceAll - insert weekly: %w", ErrExecQuery, err)
		}
	}

	// 3. Вставляем исключения
	if len(exceptions) > 0 {
		insert := psqlbuilder.Insert(exceptionTable).
			Columns("id", "user_id", "tenant_id", "date", "is_blocked")
		for _, e := range exceptions {
			if e.ID == uuid.Nil {
				e.ID = uuid.New()
			}
			e.UserID, e.TenantID = userID, tenantID
			insert = insert.Values(e.ID, userID, tenantID, e.Date.Format(domain.DateFormat), e.IsBlocked)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("%w: ReplaceAll - build exceptions insert: %w", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: ReplaceAll - insert exceptions: %w", ErrExecQuery, err)
		}
	}

	return nil
}
