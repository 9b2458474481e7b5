package record_round_result

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
)

// Request модель запроса на фиксацию результата раунда
type Request struct {
	TenantID      uuid.UUID
	IntervieweeID uuid.UUID
	AuthorID      uuid.UUID
	Result        domain.RoundResult
	Note          *string // Заменяет системный текст заметки (опционально)
}

// Response модель ответа с новым состоянием кандидата
type Response struct {
	IntervieweeID  uuid.UUID
	PreviousStatus domain.IntervieweeStatus
	Status         domain.IntervieweeStatus
	PreviousRound  int
	CurrentRound   int
	Note           *domain.IntervieweeNote
}
