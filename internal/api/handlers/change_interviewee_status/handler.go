package change_interviewee_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/interviewees"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/interviewees/models"
)

const (
	msgInvalidIntervieweeID = "некорректный ID кандидата"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStatus        = "некорректный статус"
	msgNotFound             = "кандидат не найден"
	msgForbidden            = "доступ запрещен"
	msgInvalidTransition    = "недопустимая смена статуса"
)

type Handler struct {
	service IntervieweeService
	logger  Logger
}

func NewHandler(service IntervieweeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/interviewees/{intervieweeId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	intervieweeID, err := handlers.ParseUUID(mux.Vars(r)["intervieweeId"])
	if err != nil {
		h.logger.Warn("PATCH /interviewees/{id}/status - Invalid interviewee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIntervieweeID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /interviewees/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	tenantID, _ := middleware.GetTenantID(r.Context())

	var req models.ChangeStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /interviewees/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID
	req.TenantID = tenantID
	req.IntervieweeID = intervieweeID

	result, err := h.service.ChangeStatus(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, interviewees.ErrInvalidInput):
			h.logger.Warn("PATCH /interviewees/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, interviewees.ErrIntervieweeNotFound):
			h.logger.Warn("PATCH /interviewees/{id}/status - Interviewee not found: interviewee_id=%s", intervieweeID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, interviewees.ErrAccessDenied):
			h.logger.Warn("PATCH /interviewees/{id}/status - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, interviewees.ErrInvalidTransition):
			h.logger.Warn("PATCH /interviewees/{id}/status - Invalid transition: interviewee_id=%s, status=%s", intervieweeID, req.Status)
			handlers.RespondUnprocessableEntity(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /interviewees/{id}/status - Failed to change status: interviewee_id=%s, error=%v", intervieweeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /interviewees/{id}/status - Status changed: interviewee_id=%s, %s -> %s",
		intervieweeID, result.PreviousStatus, result.Interviewee.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
