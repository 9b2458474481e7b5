package list_notes

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/service/interviewees/models"
)

type IntervieweeService interface {
	ListNotes(ctx context.Context, userID, tenantID, intervieweeID uuid.UUID) (*models.NoteListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
