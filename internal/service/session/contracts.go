package session

import (
	"time"

	"github.com/m04kA/SMC-HotelCheckout/internal/service/checkout"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/payment"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics метрики визарда и платёжного адаптера
type Metrics interface {
	checkout.TransitionRecorder
	payment.Recorder
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}
