package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterviewScheduler/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	InterviewerID uuid.UUID  // ID интервьюера
	TenantID      uuid.UUID  // ID тенанта
	StartDate     *time.Time // Начало периода (nil - сейчас)
	EndDate       *time.Time // Конец периода (nil - через DefaultSlotsRangeDays дней)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Interviewer InterviewerInfo
	RangeStart  time.Time     // Начало периода после округления до начала дня
	RangeEnd    time.Time     // Конец периода после округления и ограничения горизонтом
	Slots       []domain.Slot // Слоты по возрастанию времени начала
}

// InterviewerInfo данные интервьюера для страницы бронирования
type InterviewerInfo struct {
	ID                     uuid.UUID
	Name                   string
	Email                  string
	MeetingDurationMinutes int
}
