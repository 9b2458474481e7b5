package interviewee

import "errors"

var (
	// ErrIntervieweeNotFound возвращается, когда кандидат не найден в тенанте
	ErrIntervieweeNotFound = errors.New("interviewee.repository: interviewee not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("interviewee.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("interviewee.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("interviewee.repository: failed to scan row")
)
