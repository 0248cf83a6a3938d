package select_room

import (
	"time"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers/checkout_wizard"
	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/pricing"
	selectRoom "github.com/m04kA/SMC-HotelCheckout/internal/usecase/select_room"
)

// SelectRoomRequest HTTP request model
type SelectRoomRequest struct {
	HotelID  string `json:"hotelId"`
	RoomID   string `json:"roomId"`
	CheckIn  string `json:"checkIn"`  // "2025-06-01"
	CheckOut string `json:"checkOut"` // "2025-06-04"
	Guests   int    `json:"guests"`
}

// SelectRoomResponse HTTP response model
type SelectRoomResponse struct {
	Draft *checkout_wizard.DraftView `json:"draft"`
	Price pricing.Formatted          `json:"price"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectRoomRequest) ToUseCaseRequest(userKey string) (*selectRoom.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &selectRoom.Request{
		UserKey:  userKey,
		HotelID:  r.HotelID,
		RoomID:   r.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   r.Guests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *selectRoom.Response) *SelectRoomResponse {
	return &SelectRoomResponse{
		Draft: checkout_wizard.NewDraftView(resp.Draft),
		Price: resp.Price,
	}
}
