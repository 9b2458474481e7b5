package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	getAvailableSlots "github.com/m04kA/SMC-InterviewScheduler/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Interviewer    InterviewerInfo `json:"interviewer"`
	RangeStart     time.Time       `json:"rangeStart"`
	RangeEnd       time.Time       `json:"rangeEnd"`
	AvailableSlots []AvailableSlot `json:"availableSlots"`
}

// InterviewerInfo данные интервьюера
type InterviewerInfo struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	MeetingDuration int       `json:"meetingDuration"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			ID:        slot.ID,
			StartTime: slot.Start,
			EndTime:   slot.End,
		}
	}

	return &AvailableSlotsResponse{
		Interviewer: InterviewerInfo{
			ID:              resp.Interviewer.ID,
			Name:            resp.Interviewer.Name,
			Email:           resp.Interviewer.Email,
			MeetingDuration: resp.Interviewer.MeetingDurationMinutes,
		},
		RangeStart:     resp.RangeStart,
		RangeEnd:       resp.RangeEnd,
		AvailableSlots: slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(interviewerID, tenantID uuid.UUID, startDate, endDate *time.Time) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		InterviewerID: interviewerID,
		TenantID:      tenantID,
		StartDate:     startDate,
		EndDate:       endDate,
	}
}
