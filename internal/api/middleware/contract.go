package middleware

import "time"

// HTTPObserver принимает метрики HTTP запросов
// Реализуется *metrics.Metrics
type HTTPObserver interface {
	ObserveHTTPRequest(method, route, status string, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
