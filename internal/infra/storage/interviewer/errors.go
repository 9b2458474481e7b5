package interviewer

import "errors"

var (
	// ErrInterviewerNotFound возвращается, когда пользователь не состоит в тенанте
	ErrInterviewerNotFound = errors.New("interviewer.repository: interviewer not found in tenant")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("interviewer.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("interviewer.repository: failed to scan row")
)
