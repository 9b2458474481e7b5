package add_note

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
	msgInvalidContent       = "текст заметки пуст или слишком длинный"
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

// Handle POST /api/v1/interviewees/{intervieweeId}/notes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	intervieweeID, err := handlers.ParseUUID(mux.Vars(r)["intervieweeId"])
	if err != nil {
		h.logger.Warn("POST /interviewees/{id}/notes - Invalid interviewee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIntervieweeID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /interviewees/{id}/notes - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	tenantID, _ := middleware.GetTenantID(r.Context())

	var req models.AddNoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /interviewees/{id}/notes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID
	req.TenantID = tenantID
	req.IntervieweeID = intervieweeID

	note, err := h.service.AddNote(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, interviewees.ErrInvalidInput):
			h.logger.Warn("POST /interviewees/{id}/notes - Invalid content: %v", err)
			handlers.RespondBadRequest(w, msgInvalidContent)

		case errors.Is(err, interviewees.ErrIntervieweeNotFound):
			h.logger.Warn("POST /interviewees/{id}/notes - Interviewee not found: interviewee_id=%s", intervieweeID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, interviewees.ErrAccessDenied):
			h.logger.Warn("POST /interviewees/{id}/notes - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /interviewees/{id}/notes - Failed to add note: interviewee_id=%s, error=%v", intervieweeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /interviewees/{id}/notes - Note added: interviewee_id=%s, note_id=%s", intervieweeID, note.ID)
	handlers.RespondJSON(w, http.StatusCreated, note)
}
