package catalog

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers"
	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
	catalogService "github.com/m04kA/SMC-HotelCheckout/internal/service/catalog"
)

const (
	msgHotelNotFound = "Hotel not found"
	msgRoomNotFound  = "Room not found"
	msgInvalidID     = "Invalid hotel or room ID"
	msgUnavailable   = "Hotel service is unavailable. Please try again."
)

// Handler обслуживает публичный каталог отелей и номеров
type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListHotels GET /api/v1/hotels
func (h *Handler) ListHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.service.ListHotels(r.Context())
	if err != nil {
		h.respondError(w, "GET /hotels", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, nonNilHotels(hotels))
}

// GetHotel GET /api/v1/hotels/{hotelId}
func (h *Handler) GetHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.service.GetHotel(r.Context(), mux.Vars(r)["hotelId"])
	if err != nil {
		h.respondError(w, "GET /hotels/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, hotel)
}

// ListRooms GET /api/v1/hotels/{hotelId}/rooms
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.ListRooms(r.Context(), mux.Vars(r)["hotelId"])
	if err != nil {
		h.respondError(w, "GET /hotels/{id}/rooms", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, nonNilRooms(rooms))
}

// GetRoom GET /api/v1/hotels/{hotelId}/rooms/{roomId}
func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	room, err := h.service.GetRoom(r.Context(), vars["hotelId"], vars["roomId"])
	if err != nil {
		h.respondError(w, "GET /hotels/{id}/rooms/{roomId}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, room)
}

// FeaturedHotels GET /api/v1/hotels/featured
func (h *Handler) FeaturedHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.service.FeaturedHotels(r.Context())
	if err != nil {
		h.respondError(w, "GET /hotels/featured", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, nonNilHotels(hotels))
}

// FeaturedRooms GET /api/v1/rooms/featured
func (h *Handler) FeaturedRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.FeaturedRooms(r.Context())
	if err != nil {
		h.respondError(w, "GET /rooms/featured", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, nonNilRooms(rooms))
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, catalogService.ErrHotelNotFound):
		handlers.RespondNotFound(w, msgHotelNotFound)

	case errors.Is(err, catalogService.ErrRoomNotFound):
		handlers.RespondNotFound(w, msgRoomNotFound)

	case errors.Is(err, catalogService.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidID)

	case errors.Is(err, catalogService.ErrUnavailable):
		h.logger.Warn("%s - Backend unavailable: %v", route, err)
		handlers.RespondUnavailable(w, msgUnavailable)

	default:
		h.logger.Error("%s - Failed to load catalog: %v", route, err)
		handlers.RespondInternalError(w)
	}
}

func nonNilHotels(v []hotelapi.Hotel) []hotelapi.Hotel {
	if v == nil {
		return []hotelapi.Hotel{}
	}
	return v
}

func nonNilRooms(v []hotelapi.Room) []hotelapi.Room {
	if v == nil {
		return []hotelapi.Room{}
	}
	return v
}
