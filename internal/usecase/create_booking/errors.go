package create_booking

import "errors"

var (
	// ErrInterviewerNotFound возвращается, когда интервьюер не состоит в тенанте
	ErrInterviewerNotFound = errors.New("create_booking: interviewer not found")

	// ErrIntervieweeNotFound возвращается, когда указанный кандидат не найден в тенанте
	ErrIntervieweeNotFound = errors.New("create_booking: interviewee not found")

	// ErrCapacityExceeded возвращается, когда на день уже набрано MaxSchedulesPerDay бронирований
	ErrCapacityExceeded = errors.New("create_booking: daily capacity exceeded")

	// ErrSlotConflict возвращается, когда интервал пересекается с активным бронированием
	// или параллельное бронирование того же дня не дало завершить транзакцию
	ErrSlotConflict = errors.New("create_booking: time slot conflicts with an existing booking")

	// ErrDayBusy возвращается, когда блокировку дня не удалось получить за время ожидания
	ErrDayBusy = errors.New("create_booking: day is busy with a concurrent booking")

	// ErrInvalidIntervieweeState возвращается, когда статус кандидата не допускает бронирование
	ErrInvalidIntervieweeState = errors.New("create_booking: interviewee is not in a bookable state")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// Результаты попытки бронирования для метрик
const (
	outcomeAdmitted         = "admitted"
	outcomeInvalidInput     = "invalid_input"
	outcomeNotFound         = "not_found"
	outcomeCapacityExceeded = "capacity_exceeded"
	outcomeSlotConflict     = "slot_conflict"
	outcomeDayBusy          = "day_busy"
	outcomeInvalidState     = "invalid_state"
	outcomeError            = "error"
)

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeAdmitted
	case errors.Is(err, ErrInvalidInput):
		return outcomeInvalidInput
	case errors.Is(err, ErrInterviewerNotFound), errors.Is(err, ErrIntervieweeNotFound):
		return outcomeNotFound
	case errors.Is(err, ErrCapacityExceeded):
		return outcomeCapacityExceeded
	case errors.Is(err, ErrSlotConflict):
		return outcomeSlotConflict
	case errors.Is(err, ErrDayBusy):
		return outcomeDayBusy
	case errors.Is(err, ErrInvalidIntervieweeState):
		return outcomeInvalidState
	default:
		return outcomeError
	}
}
