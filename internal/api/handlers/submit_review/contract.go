package submit_review

import (
	"context"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/bookings/models"
)

type BookingService interface {
	SubmitReview(ctx context.Context, bookingID string, req models.ReviewRequest) ([]domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
