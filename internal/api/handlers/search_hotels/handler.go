package search_hotels

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers"
	searchHotels "github.com/m04kA/SMC-HotelCheckout/internal/usecase/search_hotels"
)

const (
	msgInvalidQuery = "Destination, dates (YYYY-MM-DD) and guests are required"
	msgInvalidInput = "Please check the destination and the number of guests"
	msgInvalidDate  = "Check-in cannot be in the past and check-out must be after check-in"
	msgUnavailable  = "Hotel service is unavailable. Please try again."
)

type Handler struct {
	useCase SearchHotelsUseCase
	logger  Logger
}

func NewHandler(useCase SearchHotelsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /hotels/search - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, searchHotels.ErrInvalidInput):
			handlers.RespondValidation(w, msgInvalidInput, nil)

		case errors.Is(err, searchHotels.ErrInvalidDate):
			handlers.RespondValidation(w, msgInvalidDate, map[string]string{"checkIn": msgInvalidDate, "checkOut": msgInvalidDate})

		case errors.Is(err, searchHotels.ErrUnavailable):
			handlers.RespondUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("GET /hotels/search - Failed to search hotels: destination=%s, error=%v", useCaseReq.Destination, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/search - Found %d hotels: destination=%s", len(result.Hotels), result.Destination)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
