package bookings

import (
	"context"

	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
)

// BackendClient интерфейс клиента бэкенда для работы с бронированиями
type BackendClient interface {
	ListBookings(ctx context.Context) ([]hotelapi.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) error
	UpsertReview(ctx context.Context, bookingID string, review hotelapi.ReviewPayload) error
	DownloadInvoice(ctx context.Context, bookingID string) (*hotelapi.Invoice, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
