package select_room

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/pricing"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	req.HotelID = strings.TrimSpace(req.HotelID)
	req.RoomID = strings.TrimSpace(req.RoomID)

	if req.UserKey == "" {
		return fmt.Errorf("%w: user key is required", ErrInvalidInput)
	}
	if req.HotelID == "" {
		return fmt.Errorf("%w: hotelId is required", ErrInvalidInput)
	}
	if req.RoomID == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}

	if req.Guests == 0 {
		req.Guests = domain.DefaultGuestCount
	}
	if req.Guests < 0 {
		return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}

	// Даты: обе заданы, выезд строго позже заезда
	if err := pricing.ValidateStay(req.CheckIn, req.CheckOut); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	return nil
}

// validateCapacity проверяет вместимость комнаты (0 = не ограничена)
func validateCapacity(room *hotelapi.Room, guests int) error {
	if room.Capacity > 0 && guests > room.Capacity {
		return fmt.Errorf("%w: room fits %d guests", ErrTooManyGuests, room.Capacity)
	}
	return nil
}
