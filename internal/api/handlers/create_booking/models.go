package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewScheduler/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-InterviewScheduler/internal/usecase/create_booking"
)

var (
	errMissingFields = errors.New("missing required fields")
	errMissingTenant = errors.New("missing tenant id")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	InterviewerID    string  `json:"interviewerId"`
	TenantID         string  `json:"tenantId,omitempty"` // Если не указан, берется из сессии
	IntervieweeID    *string `json:"intervieweeId,omitempty"`
	IntervieweeName  string  `json:"intervieweeName"`
	IntervieweeEmail string  `json:"intervieweeEmail"`
	Title            *string `json:"title,omitempty"`
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking     *models.BookingResponse `json:"booking"`
	Interviewee *IntervieweeState       `json:"interviewee,omitempty"`
}

// IntervieweeState состояние кандидата после бронирования
type IntervieweeState struct {
	ID           uuid.UUID `json:"id"`
	Status       string    `json:"status"`
	CurrentRound int       `json:"currentRound"`
	Note         string    `json:"note"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// sessionTenantID используется, когда tenantId не передан в теле
func (r *CreateBookingRequest) ToUseCaseRequest(sessionTenantID uuid.UUID, location *time.Location) (*createBooking.Request, error) {
	if r.InterviewerID == "" || r.StartTime == "" || r.EndTime == "" {
		return nil, errMissingFields
	}

	interviewerID, err := handlers.ParseUUID(r.InterviewerID)
	if err != nil {
		return nil, fmt.Errorf("interviewerId: %w", err)
	}

	tenantID := sessionTenantID
	if r.TenantID != "" {
		if tenantID, err = handlers.ParseUUID(r.TenantID); err != nil {
			return nil, fmt.Errorf("tenantId: %w", err)
		}
	}
	if tenantID == uuid.Nil {
		return nil, errMissingTenant
	}

	var intervieweeID *uuid.UUID
	if r.IntervieweeID != nil && *r.IntervieweeID != "" {
		id, err := handlers.ParseUUID(*r.IntervieweeID)
		if err != nil {
			return nil, fmt.Errorf("intervieweeId: %w", err)
		}
		intervieweeID = &id
	}

	startTime, err := handlers.ParseTime(r.StartTime, location)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}
	endTime, err := handlers.ParseTime(r.EndTime, location)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	return &createBooking.Request{
		InterviewerID:    interviewerID,
		TenantID:         tenantID,
		IntervieweeID:    intervieweeID,
		IntervieweeName:  r.IntervieweeName,
		IntervieweeEmail: r.IntervieweeEmail,
		Title:            r.Title,
		StartTime:        startTime,
		EndTime:          endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response, location *time.Location) *CreateBookingResponse {
	result := &CreateBookingResponse{
		Booking: models.FromDomainBooking(resp.Booking, location),
	}

	if resp.Interviewee != nil {
		result.Interviewee = &IntervieweeState{
			ID:           resp.Interviewee.ID,
			Status:       string(resp.Interviewee.Status),
			CurrentRound: resp.Interviewee.CurrentRound,
			Note:         resp.Interviewee.Note,
		}
	}

	return result
}
