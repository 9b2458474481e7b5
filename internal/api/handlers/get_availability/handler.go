package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/availability"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	tenantID, _ := middleware.GetTenantID(r.Context())

	result, err := h.service.Get(r.Context(), userID, tenantID)
	if err != nil {
		if errors.Is(err, availability.ErrAccessDenied) {
			h.logger.Warn("GET /availability - Access denied: user_id=%s, tenant_id=%s", userID, tenantID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /availability - Failed to get availability: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability - Availability retrieved successfully: user_id=%s, weekly=%d, exceptions=%d",
		userID, len(result.Weekly), len(result.ExceptionDates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
