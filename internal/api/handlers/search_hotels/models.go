package search_hotels

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
	searchHotels "github.com/m04kA/SMC-HotelCheckout/internal/usecase/search_hotels"
)

// SearchHotelsResponse HTTP response model
type SearchHotelsResponse struct {
	Destination string           `json:"destination"`
	CheckIn     string           `json:"checkIn"`
	CheckOut    string           `json:"checkOut"`
	Guests      int              `json:"guests"`
	Nights      int              `json:"nights"`
	Hotels      []hotelapi.Hotel `json:"hotels"`
}

// ParseQuery собирает запрос use case из query параметров
// ?destination=Paris&checkIn=2025-06-01&checkOut=2025-06-04&guests=2
func ParseQuery(q url.Values) (*searchHotels.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, q.Get("checkIn"))
	if err != nil {
		return nil, fmt.Errorf("checkIn: %w", err)
	}
	checkOut, err := time.Parse(domain.DateFormat, q.Get("checkOut"))
	if err != nil {
		return nil, fmt.Errorf("checkOut: %w", err)
	}

	guests := 1
	if raw := q.Get("guests"); raw != "" {
		guests, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("guests: %w", err)
		}
	}

	return &searchHotels.Request{
		Destination: q.Get("destination"),
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Guests:      guests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchHotels.Response) *SearchHotelsResponse {
	hotels := resp.Hotels
	if hotels == nil {
		hotels = []hotelapi.Hotel{}
	}
	return &SearchHotelsResponse{
		Destination: resp.Destination,
		CheckIn:     resp.CheckIn.Format(domain.DateFormat),
		CheckOut:    resp.CheckOut.Format(domain.DateFormat),
		Guests:      resp.Guests,
		Nights:      resp.Nights,
		Hotels:      hotels,
	}
}
