package list_notes

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/interviewees"
)

const (
	msgInvalidIntervieweeID = "некорректный ID кандидата"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "кандидат не найден"
	msgForbidden            = "доступ запрещен"
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

// Handle GET /api/v1/interviewees/{intervieweeId}/notes
// Заметки возвращаются от новых к старым
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	intervieweeID, err := handlers.ParseUUID(mux.Vars(r)["intervieweeId"])
	if err != nil {
		h.logger.Warn("GET /interviewees/{id}/notes - Invalid interviewee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIntervieweeID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /interviewees/{id}/notes - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	tenantID, _ := middleware.GetTenantID(r.Context())

	result, err := h.service.ListNotes(r.Context(), userID, tenantID, intervieweeID)
	if err != nil {
		switch {
		case errors.Is(err, interviewees.ErrIntervieweeNotFound):
			h.logger.Warn("GET /interviewees/{id}/notes - Interviewee not found: interviewee_id=%s", intervieweeID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, interviewees.ErrAccessDenied):
			h.logger.Warn("GET /interviewees/{id}/notes - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /interviewees/{id}/notes - Failed to list notes: interviewee_id=%s, error=%v", intervieweeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /interviewees/{id}/notes - Notes retrieved: interviewee_id=%s, count=%d", intervieweeID, len(result.Notes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
