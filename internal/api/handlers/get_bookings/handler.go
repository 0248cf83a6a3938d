package get_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/bookings"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/bookings/models"
)

const (
	msgInvalidFilter  = "Unknown status filter or sort order"
	msgSignInRequired = "Please sign in to see your bookings"
	msgUnavailable    = "Bookings are unavailable right now. Please try again."
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

// Handle GET /api/v1/bookings?status=confirmed&sort=price-asc
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := models.ListRequest{
		Status: query.Get("status"),
		Sort:   models.SortKey(query.Get("sort")),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: status=%s, sort=%s", req.Status, req.Sort)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		case errors.Is(err, bookings.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgSignInRequired)

		case errors.Is(err, bookings.ErrUnavailable):
			handlers.RespondUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: status=%s, sort=%s, count=%d", result.Status, result.Sort, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
