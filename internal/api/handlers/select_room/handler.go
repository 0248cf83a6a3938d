package select_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers"
	selectRoom "github.com/m04kA/SMC-HotelCheckout/internal/usecase/select_room"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidDate        = "Dates must be in YYYY-MM-DD format"
	msgSignInRequired     = "Please sign in to continue"
	msgHotelNotFound      = "Hotel not found"
	msgRoomNotFound       = "Room not found"
	msgInvalidStay        = "Check-out must be after check-in"
	msgTooManyGuests      = "This room cannot host that many guests"
	msgRoomRate           = "This room cannot be booked right now"
	msgUnavailable        = "Hotel service is unavailable. Please try again."
)

type Handler struct {
	useCase SelectRoomUseCase
	logger  Logger
}

func NewHandler(useCase SelectRoomUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/checkout/draft
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userKey, ok := handlers.UserKey(r)
	if !ok {
		handlers.RespondUnauthorized(w, msgSignInRequired)
		return
	}

	var req SelectRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /checkout/draft - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(userKey)
	if err != nil {
		h.logger.Warn("PUT /checkout/draft - Failed to parse dates: %v", err)
		handlers.RespondValidation(w, msgInvalidDate, map[string]string{"checkIn": msgInvalidDate, "checkOut": msgInvalidDate})
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, selectRoom.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, selectRoom.ErrHotelNotFound):
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, selectRoom.ErrInvalidDate):
			handlers.RespondValidation(w, msgInvalidStay, map[string]string{"checkOut": msgInvalidStay})

		case errors.Is(err, selectRoom.ErrTooManyGuests):
			handlers.RespondValidation(w, msgTooManyGuests, map[string]string{"guests": msgTooManyGuests})

		case errors.Is(err, selectRoom.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, selectRoom.ErrInvalidRoomRate):
			h.logger.Error("PUT /checkout/draft - Invalid room rate: hotel_id=%s, room_id=%s, error=%v", req.HotelID, req.RoomID, err)
			handlers.RespondConflict(w, msgRoomRate)

		case errors.Is(err, selectRoom.ErrUnavailable):
			handlers.RespondUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("PUT /checkout/draft - Failed to select room: user=%s, hotel_id=%s, room_id=%s, error=%v",
				userKey, req.HotelID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /checkout/draft - Room selected: user=%s, hotel_id=%s, room_id=%s, total=%s",
		userKey, req.HotelID, req.RoomID, result.Draft.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
