package get_available_slots

import "errors"

var (
	// ErrInterviewerNotFound возвращается, когда интервьюер не состоит в тенанте
	ErrInterviewerNotFound = errors.New("interviewer not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
