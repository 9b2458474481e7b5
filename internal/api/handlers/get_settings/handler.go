package get_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/settings"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/settings
// Если настройки не сохранялись, возвращаются значения по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /settings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	tenantID, _ := middleware.GetTenantID(r.Context())

	result, err := h.service.Get(r.Context(), userID, tenantID)
	if err != nil {
		if errors.Is(err, settings.ErrAccessDenied) {
			h.logger.Warn("GET /settings - Access denied: user_id=%s, tenant_id=%s", userID, tenantID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /settings - Failed to get settings: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /settings - Settings retrieved successfully: user_id=%s, default=%t", userID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
