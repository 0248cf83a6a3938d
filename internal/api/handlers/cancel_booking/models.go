package cancel_booking

import (
	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/bookings/models"
)

// CancelBookingResponse HTTP response model: обновлённый список бронирований
type CancelBookingResponse struct {
	Message  string                      `json:"message"`
	Bookings *models.BookingListResponse `json:"bookings"`
}

// NewCancelBookingResponse собирает ответ с перечитанным списком в порядке по умолчанию
func NewCancelBookingResponse(message string, list []domain.Booking) *CancelBookingResponse {
	return &CancelBookingResponse{
		Message:  message,
		Bookings: models.FromDomainBookingList(models.SortBookings(list, models.DefaultSort), models.ListRequest{Status: models.StatusAll, Sort: models.DefaultSort}),
	}
}
