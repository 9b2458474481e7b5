package change_interviewee_status

import (
	"context"

	"github.com/m04kA/SMC-InterviewScheduler/internal/service/interviewees/models"
)

type IntervieweeService interface {
	ChangeStatus(ctx context.Context, req *models.ChangeStatusRequest) (*models.ChangeStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
