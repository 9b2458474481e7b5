package record_round_result

import "errors"

var (
	// ErrIntervieweeNotFound возвращается, когда кандидат не найден в тенанте
	ErrIntervieweeNotFound = errors.New("record_round_result: interviewee not found")

	// ErrInvalidIntervieweeState возвращается, когда кандидат не находится на этапе интервью
	ErrInvalidIntervieweeState = errors.New("record_round_result: interviewee is not in progress")

	// ErrAccessDenied возвращается, когда роль автора не позволяет менять статус кандидата
	ErrAccessDenied = errors.New("record_round_result: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("record_round_result: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("record_round_result: internal error")
)
