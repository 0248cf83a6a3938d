package search_hotels

import (
	"time"

	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
)

// Request модель запроса поиска отелей
type Request struct {
	Destination string    `validate:"required,min=2,max=100"`
	CheckIn     time.Time // Дата заезда (без времени)
	CheckOut    time.Time // Дата выезда (без времени)
	Guests      int       `validate:"min=1,max=20"`
}

// Response модель ответа со списком найденных отелей
type Response struct {
	Destination string
	CheckIn     time.Time
	CheckOut    time.Time
	Guests      int
	Nights      int
	Hotels      []hotelapi.Hotel
}
