package interviewer

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

// Repository репозиторий пользователей как членов тенанта
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория интервьюеров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetInTenant получает пользователя, если он состоит в тенанте
func (r *Repository) GetInTenant(ctx context.Context, userID, tenantID uuid.UUID) (*domain.Interviewer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"u.id",
		"tu.tenant_id",
		"u.name",
		"u.email",
		"tu.role",
	).
		From("users u").
		Join("tenant_users tu ON tu.user_id = u.id").
		Where(squirrel.Eq{"u.id": userID, "tu.tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetInTenant - build select query: %w", ErrBuildQuery, err)
	}

	var i domain.Interviewer
	err = executor.QueryRowContext(ctx, query, args...).Scan(&i.ID, &i.TenantID, &i.Name, &i.Email, &i.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInterviewerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetInTenant - scan interviewer: %w", ErrScanRow, err)
	}

	return &i, nil
}
