package record_round_result

import (
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/interviewees/models"
	recordRoundResult "github.com/m04kA/SMC-InterviewScheduler/internal/usecase/record_round_result"
)

// RoundResultRequest HTTP request model
type RoundResultRequest struct {
	Result string  `json:"result"` // PASS или FAIL
	Note   *string `json:"note,omitempty"`
}

// RoundResultResponse HTTP response model
type RoundResultResponse struct {
	IntervieweeID  uuid.UUID           `json:"intervieweeId"`
	PreviousStatus string              `json:"previousStatus"`
	Status         string              `json:"status"`
	PreviousRound  int                 `json:"previousRound"`
	CurrentRound   int                 `json:"currentRound"`
	Note           models.NoteResponse `json:"note"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RoundResultRequest) ToUseCaseRequest(tenantID, intervieweeID, authorID uuid.UUID) *recordRoundResult.Request {
	return &recordRoundResult.Request{
		TenantID:      tenantID,
		IntervieweeID: intervieweeID,
		AuthorID:      authorID,
		Result:        domain.RoundResult(strings.ToUpper(strings.TrimSpace(r.Result))),
		Note:          r.Note,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *recordRoundResult.Response) *RoundResultResponse {
	return &RoundResultResponse{
		IntervieweeID:  resp.IntervieweeID,
		PreviousStatus: string(resp.PreviousStatus),
		Status:         string(resp.Status),
		PreviousRound:  resp.PreviousRound,
		CurrentRound:   resp.CurrentRound,
		Note:           models.FromDomainNote(resp.Note),
	}
}
