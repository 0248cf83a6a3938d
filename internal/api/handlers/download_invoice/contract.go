package download_invoice

import (
	"context"

	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
)

type BookingService interface {
	DownloadInvoice(ctx context.Context, bookingID string) (*hotelapi.Invoice, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
