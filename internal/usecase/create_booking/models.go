package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	InterviewerID    uuid.UUID
	TenantID         uuid.UUID
	IntervieweeID    *uuid.UUID // Явная ссылка на кандидата (опционально)
	IntervieweeName  string
	IntervieweeEmail string
	Title            *string // nil - "Interview with <name>"
	StartTime        time.Time
	EndTime          time.Time
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking     *domain.Booking
	Interviewee *IntervieweeState // nil, если кандидат не привязан
}

// IntervieweeState состояние кандидата после бронирования
type IntervieweeState struct {
	ID           uuid.UUID
	Status       domain.IntervieweeStatus
	CurrentRound int
	Note         string
}
