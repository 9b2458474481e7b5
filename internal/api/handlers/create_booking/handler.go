package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewScheduler/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-InterviewScheduler/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingFields       = "не заполнены обязательные поля"
	msgMissingTenant       = "ID тенанта обязателен"
	msgInvalidFields       = "некорректные параметры бронирования"
	msgInterviewerNotFound = "интервьюер не найден"
	msgIntervieweeNotFound = "кандидат не найден"
	msgCapacityExceeded    = "достигнут лимит интервью на этот день"
	msgSlotConflict        = "выбранное время пересекается с существующим бронированием"
	msgDayBusy             = "на этот день сейчас оформляется другое бронирование, повторите попытку"
	msgInvalidState        = "статус кандидата не позволяет назначить интервью"
)

type Handler struct {
	useCase  CreateBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings
// Авторизация опциональна: без сессии tenantId обязателен в теле
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Тенант сессии (если пользователь авторизован)
	sessionTenantID, _ := middleware.GetTenantID(r.Context())

	// Конвертируем HTTP запрос в модель use case
	useCaseReq, err := req.ToUseCaseRequest(sessionTenantID, h.location)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		switch {
		case errors.Is(err, errMissingFields):
			handlers.RespondBadRequest(w, msgMissingFields)
		case errors.Is(err, errMissingTenant):
			handlers.RespondBadRequest(w, msgMissingTenant)
		default:
			handlers.RespondBadRequest(w, msgInvalidFields)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		case errors.Is(err, createBooking.ErrInterviewerNotFound):
			h.logger.Warn("POST /bookings - Interviewer not found: interviewer_id=%s, tenant_id=%s",
				useCaseReq.InterviewerID, useCaseReq.TenantID)
			handlers.RespondNotFound(w, msgInterviewerNotFound)

		case errors.Is(err, createBooking.ErrIntervieweeNotFound):
			h.logger.Warn("POST /bookings - Interviewee not found: tenant_id=%s", useCaseReq.TenantID)
			handlers.RespondNotFound(w, msgIntervieweeNotFound)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: interviewer_id=%s, start=%s",
				useCaseReq.InterviewerID, useCaseReq.StartTime)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: interviewer_id=%s, start=%s",
				useCaseReq.InterviewerID, useCaseReq.StartTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrDayBusy):
			h.logger.Warn("POST /bookings - Day is busy: interviewer_id=%s, start=%s",
				useCaseReq.InterviewerID, useCaseReq.StartTime)
			handlers.RespondConflict(w, msgDayBusy)

		case errors.Is(err, createBooking.ErrInvalidIntervieweeState):
			h.logger.Warn("POST /bookings - Interviewee state does not allow booking: tenant_id=%s", useCaseReq.TenantID)
			handlers.RespondUnprocessableEntity(w, msgInvalidState)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: interviewer_id=%s, tenant_id=%s, error=%v",
				useCaseReq.InterviewerID, useCaseReq.TenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, interviewer_id=%s, tenant_id=%s",
		result.Booking.ID, useCaseReq.InterviewerID, useCaseReq.TenantID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, h.location))
}
