package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.InterviewerID == uuid.Nil {
		return fmt.Errorf("%w: interviewerID is required", ErrInvalidInput)
	}

	if req.TenantID == uuid.Nil {
		return fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	if req.IntervieweeID != nil && *req.IntervieweeID == uuid.Nil {
		return fmt.Errorf("%w: intervieweeID must not be empty", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.IntervieweeName)
	if name == "" {
		return fmt.Errorf("%w: interviewee name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: interviewee name must not exceed %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	email := strings.TrimSpace(req.IntervieweeEmail)
	if email == "" {
		return fmt.Errorf("%w: interviewee email is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: interviewee email is malformed", ErrInvalidInput)
	}

	if req.Title != nil && len(*req.Title) > domain.MaxNameLength {
		return fmt.Errorf("%w: title must not exceed %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	if req.StartTime.Before(now) {
		return fmt.Errorf("%w: startTime must not be in the past", ErrInvalidInput)
	}

	return nil
}
