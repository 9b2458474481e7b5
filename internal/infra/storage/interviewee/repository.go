package interviewee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/psqlbuilder"
)

const (
	table      = "interviewees"
	notesTable = "interviewee_notes"
)

var columns = []string{
	"id",
	"tenant_id",
	"name",
	"email",
	"status",
	"current_round",
	"created_at",
	"updated_at",
}

// Repository репозиторий кандидатов и их заметок
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория кандидатов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает кандидата тенанта по ID
// Внутри транзакции строка блокируется до конца транзакции
func (r *Repository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Interviewee, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id, "tenant_id": tenantID})
}

// GetByEmail получает кандидата тенанта по email (без учета регистра)
func (r *Repository) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.Interviewee, error) {
	return r.getOne(ctx, "GetByEmail", squirrel.And{
		squirrel.Eq{"tenant_id": tenantID},
		squirrel.Expr("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))),
	})
}

func (r *Repository) getOne(ctx context.Context, method string, where squirrel.Sqlizer) (*domain.Interviewee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, method, err)
	}

	var i domain.Interviewee
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&i.ID,
		&i.TenantID,
		&i.Name,
		&i.Email,
		&i.Status,
		&i.CurrentRound,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrIntervieweeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan interviewee: %w", ErrScanRow, method, err)
	}

	return &i, nil
}

// UpdateStatus сохраняет статус и текущий раунд кандидата
func (r *Repository) UpdateStatus(ctx context.Context, i *domain.Interviewee) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", i.Status).
		Set("current_round", i.CurrentRound).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": i.ID, "tenant_id": i.TenantID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrIntervieweeNotFound
	}

	return nil
}

// AddNote добавляет заметку к кандидату
func (r *Repository) AddNote(ctx context.Context, note *domain.IntervieweeNote) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(notesTable).
		Columns("id", "interviewee_id", "tenant_id", "author_id", "content", "is_system", "created_at").
		Values(note.ID, note.IntervieweeID, note.TenantID, note.AuthorID, note.Content, note.IsSystem, note.CreatedAt).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddNote - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddNote - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// ListNotes получает заметки кандидата, новые первыми
func (r *Repository) ListNotes(ctx context.Context, tenantID, intervieweeID uuid.UUID) ([]*domain.IntervieweeNote, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"interviewee_id",
		"tenant_id",
		"author_id",
		"content",
		"is_system",
		"created_at",
	).
		From(notesTable).
		Where(squirrel.Eq{"interviewee_id": intervieweeID, "tenant_id": tenantID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListNotes - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListNotes - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	notes := make([]*domain.IntervieweeNote, 0)
	for rows.Next() {
		var (
			n        domain.IntervieweeNote
			authorID uuid.NullUUID
		)
		if err := rows.Scan(&n.ID, &n.IntervieweeID, &n.TenantID, &authorID, &n.Content, &n.IsSystem, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListNotes - scan row: %w", ErrScanRow, err)
		}
		if authorID.Valid {
			n.AuthorID = &authorID.UUID
		}
		notes = append(notes, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListNotes - rows error: %w", ErrScanRow, err)
	}

	return notes, nil
}
