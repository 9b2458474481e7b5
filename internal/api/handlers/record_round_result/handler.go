package record_round_result

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewScheduler/internal/api/middleware"
	recordRoundResult "github.com/m04kA/SMC-InterviewScheduler/internal/usecase/record_round_result"
)

const (
	msgInvalidIntervieweeID = "некорректный ID кандидата"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidResult        = "результат должен быть PASS или FAIL"
	msgNotFound             = "кандидат не найден"
	msgForbidden            = "доступ запрещен"
	msgNotInProgress        = "кандидат не находится на этапе интервью"
)

type Handler struct {
	useCase RecordRoundResultUseCase
	logger  Logger
}

func NewHandler(useCase RecordRoundResultUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/interviewees/{intervieweeId}/round-result
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	intervieweeID, err := handlers.ParseUUID(mux.Vars(r)["intervieweeId"])
	if err != nil {
		h.logger.Warn("POST /interviewees/{id}/round-result - Invalid interviewee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIntervieweeID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /interviewees/{id}/round-result - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	tenantID, _ := middleware.GetTenantID(r.Context())

	var req RoundResultRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /interviewees/{id}/round-result - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(tenantID, intervieweeID, userID))
	if err != nil {
		switch {
		case errors.Is(err, recordRoundResult.ErrInvalidInput):
			h.logger.Warn("POST /interviewees/{id}/round-result - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidResult)

		case errors.Is(err, recordRoundResult.ErrIntervieweeNotFound):
			h.logger.Warn("POST /interviewees/{id}/round-result - Interviewee not found: interviewee_id=%s", intervieweeID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, recordRoundResult.ErrAccessDenied):
			h.logger.Warn("POST /interviewees/{id}/round-result - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, recordRoundResult.ErrInvalidIntervieweeState):
			h.logger.Warn("POST /interviewees/{id}/round-result - Interviewee not in progress: interviewee_id=%s", intervieweeID)
			handlers.RespondUnprocessableEntity(w, msgNotInProgress)

		default:
			h.logger.Error("POST /interviewees/{id}/round-result - Failed to record result: interviewee_id=%s, error=%v",
				intervieweeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /interviewees/{id}/round-result - Result recorded: interviewee_id=%s, status=%s, round=%d",
		intervieweeID, result.Status, result.CurrentRound)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
