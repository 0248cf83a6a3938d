package submit_review

import (
	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/bookings/models"
)

// SubmitReviewRequest HTTP request model
type SubmitReviewRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// SubmitReviewResponse HTTP response model
type SubmitReviewResponse struct {
	Message  string                      `json:"message"`
	Bookings *models.BookingListResponse `json:"bookings"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SubmitReviewRequest) ToServiceRequest() models.ReviewRequest {
	return models.ReviewRequest{
		Rating: r.Rating,
		Text:   r.Review,
	}
}

func newSubmitReviewResponse(message string, list []domain.Booking) *SubmitReviewResponse {
	return &SubmitReviewResponse{
		Message:  message,
		Bookings: models.FromDomainBookingList(models.SortBookings(list, models.DefaultSort), models.ListRequest{Status: models.StatusAll, Sort: models.DefaultSort}),
	}
}
