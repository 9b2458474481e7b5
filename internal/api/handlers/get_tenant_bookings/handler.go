package get_tenant_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/bookings"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/bookings/models"
)

const (
	msgMissingUserID          = "отсутствует ID пользователя"
	msgInvalidInterviewerID   = "некорректный ID интервьюера"
	msgInvalidFrom            = "некорректный формат from"
	msgInvalidTo              = "некорректный формат to"
	msgInvalidIncludeCanceled = "некорректное значение includeCancelled"
	msgInvalidQuery           = "некорректные параметры запроса"
	msgForbidden              = "доступ запрещен"
)

type Handler struct {
	service  BookingService
	location *time.Location
	logger   Logger
}

func NewHandler(service BookingService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/tenant/bookings
// Query params: interviewerId, from, to, includeCancelled (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем пользователя из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /tenant/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	tenantID, _ := middleware.GetTenantID(r.Context())

	query := r.URL.Query()
	serviceReq := &models.ListTenantBookingsRequest{
		UserID:   userID,
		TenantID: tenantID,
	}

	if v := query.Get("interviewerId"); v != "" {
		interviewerID, err := handlers.ParseUUID(v)
		if err != nil {
			h.logger.Warn("GET /tenant/bookings - Invalid interviewer ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterviewerID)
			return
		}
		serviceReq.InterviewerID = &interviewerID
	}

	var err error
	if serviceReq.From, err = handlers.ParseOptionalTime(query.Get("from"), h.location); err != nil {
		h.logger.Warn("GET /tenant/bookings - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}
	if serviceReq.To, err = handlers.ParseOptionalTime(query.Get("to"), h.location); err != nil {
		h.logger.Warn("GET /tenant/bookings - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTo)
		return
	}

	if v := query.Get("includeCancelled"); v != "" {
		if serviceReq.IncludeCancelled, err = strconv.ParseBool(v); err != nil {
			h.logger.Warn("GET /tenant/bookings - Invalid includeCancelled: %v", err)
			handlers.RespondBadRequest(w, msgInvalidIncludeCanceled)
			return
		}
	}

	result, err := h.service.ListTenant(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /tenant/bookings - Invalid query: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /tenant/bookings - Access denied: user_id=%s, tenant_id=%s", userID, tenantID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /tenant/bookings - Failed to get bookings: tenant_id=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tenant/bookings - Bookings retrieved successfully: tenant_id=%s, count=%d", tenantID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
