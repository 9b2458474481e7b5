package record_round_result

import (
	"context"

	recordRoundResult "github.com/m04kA/SMC-InterviewScheduler/internal/usecase/record_round_result"
)

type RecordRoundResultUseCase interface {
	Execute(ctx context.Context, req *recordRoundResult.Request) (*recordRoundResult.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
