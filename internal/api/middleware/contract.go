package middleware

import "time"

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// HTTPRecorder принимает наблюдения за HTTP запросами (реализует pkg/metrics)
type HTTPRecorder interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
}
