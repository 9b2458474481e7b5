package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-InterviewScheduler/internal/usecase/get_available_slots"
)

const (
	msgInvalidInterviewerID = "некорректный ID интервьюера"
	msgMissingTenantID      = "ID тенанта обязателен"
	msgInvalidTenantID      = "некорректный ID тенанта"
	msgInvalidStartDate     = "некорректный формат startDate, ожидается YYYY-MM-DD или RFC3339"
	msgInvalidEndDate       = "некорректный формат endDate, ожидается YYYY-MM-DD или RFC3339"
	msgInvalidPeriod        = "некорректный период"
	msgInterviewerNotFound  = "интервьюер не найден"
)

type Handler struct {
	useCase  GetAvailableSlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/interviewers/{interviewerId}/available-slots
// Query params: tenantId (required), startDate, endDate (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем interviewerId из URL
	interviewerID, err := handlers.ParseUUID(mux.Vars(r)["interviewerId"])
	if err != nil {
		h.logger.Warn("GET /interviewers/{id}/available-slots - Invalid interviewer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInterviewerID)
		return
	}

	query := r.URL.Query()

	// Извлекаем tenantId из query параметров
	tenantIDStr := query.Get("tenantId")
	if tenantIDStr == "" {
		h.logger.Warn("GET /interviewers/{id}/available-slots - Missing tenant ID")
		handlers.RespondBadRequest(w, msgMissingTenantID)
		return
	}
	tenantID, err := handlers.ParseUUID(tenantIDStr)
	if err != nil {
		h.logger.Warn("GET /interviewers/{id}/available-slots - Invalid tenant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTenantID)
		return
	}

	// Извлекаем период (опционально)
	startDate, err := handlers.ParseOptionalTime(query.Get("startDate"), h.location)
	if err != nil {
		h.logger.Warn("GET /interviewers/{id}/available-slots - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartDate)
		return
	}
	endDate, err := handlers.ParseOptionalTime(query.Get("endDate"), h.location)
	if err != nil {
		h.logger.Warn("GET /interviewers/{id}/available-slots - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEndDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(interviewerID, tenantID, startDate, endDate))
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrInterviewerNotFound):
			h.logger.Warn("GET /interviewers/{id}/available-slots - Interviewer not found: interviewer_id=%s, tenant_id=%s",
				interviewerID, tenantID)
			handlers.RespondNotFound(w, msgInterviewerNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /interviewers/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /interviewers/{id}/available-slots - Failed to get slots: interviewer_id=%s, tenant_id=%s, error=%v",
				interviewerID, tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /interviewers/{id}/available-slots - Slots retrieved successfully: interviewer_id=%s, tenant_id=%s, slots_count=%d",
		interviewerID, tenantID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
