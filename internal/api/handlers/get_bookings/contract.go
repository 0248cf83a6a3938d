package get_bookings

import (
	"context"

	"github.com/m04kA/SMC-HotelCheckout/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context, req models.ListRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
