package submit_review

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "Invalid booking ID"
	msgInvalidRequestBody = "Invalid request body"
	msgNotFound           = "Booking not found"
	msgSignInRequired     = "Please sign in to review your stay"
	msgCannotReview       = "Only completed stays can be reviewed"
	msgInvalidRating      = "Rating must be between 1 and 5"
	msgReviewTooLong      = "Review is too long"
	msgUnavailable        = "Bookings are unavailable right now. Please try again."
	msgReviewSaved        = "Thank you for your review"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}/review
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := strings.TrimSpace(mux.Vars(r)["bookingId"])
	if bookingID == "" {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req SubmitReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/review - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	list, err := h.service.SubmitReview(r.Context(), bookingID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidRating):
			handlers.RespondValidation(w, msgInvalidRating, map[string]string{"rating": msgInvalidRating})

		case errors.Is(err, bookings.ErrReviewTooLong):
			handlers.RespondValidation(w, msgReviewTooLong, map[string]string{"review": msgReviewTooLong})

		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotReview):
			h.logger.Warn("PUT /bookings/{id}/review - Cannot review: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgCannotReview)

		case errors.Is(err, bookings.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgSignInRequired)

		case errors.Is(err, bookings.ErrUnavailable):
			handlers.RespondUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("PUT /bookings/{id}/review - Failed to save review: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/review - Review saved: booking_id=%s, rating=%d", bookingID, req.Rating)
	handlers.RespondJSON(w, http.StatusOK, newSubmitReviewResponse(msgReviewSaved, list))
}
