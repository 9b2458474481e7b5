package add_note

import (
	"context"

	"github.com/m04kA/SMC-InterviewScheduler/internal/service/interviewees/models"
)

type IntervieweeService interface {
	AddNote(ctx context.Context, req *models.AddNoteRequest) (*models.NoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
