package record_round_result

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID == uuid.Nil {
		return fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	if req.IntervieweeID == uuid.Nil {
		return fmt.Errorf("%w: intervieweeID is required", ErrInvalidInput)
	}

	if req.AuthorID == uuid.Nil {
		return fmt.Errorf("%w: authorID is required", ErrInvalidInput)
	}

	if !req.Result.IsValid() {
		return fmt.Errorf("%w: result must be PASS or FAIL", ErrInvalidInput)
	}

	if req.Note != nil && len(strings.TrimSpace(*req.Note)) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note must not exceed %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}
