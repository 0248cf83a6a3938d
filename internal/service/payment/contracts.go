package payment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
)

// BackendClient часть клиента бэкенда, нужная для оплаты
type BackendClient interface {
	CreateBooking(ctx context.Context, payload hotelapi.BookingPayload) (*hotelapi.CreateBookingResponse, error)
	CaptureOrder(ctx context.Context, orderID string) (*hotelapi.CaptureResponse, error)
}

// Recorder метрики заказов и capture
type Recorder interface {
	OrderCreated(ok bool)
	Capture(ok bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type nopRecorder struct{}

func (nopRecorder) OrderCreated(bool) {}
func (nopRecorder) Capture(bool)      {}
