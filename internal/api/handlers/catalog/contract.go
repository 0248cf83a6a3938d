package catalog

import (
	"context"

	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
)

type CatalogService interface {
	ListHotels(ctx context.Context) ([]hotelapi.Hotel, error)
	GetHotel(ctx context.Context, hotelID string) (*hotelapi.Hotel, error)
	ListRooms(ctx context.Context, hotelID string) ([]hotelapi.Room, error)
	GetRoom(ctx context.Context, hotelID, roomID string) (*hotelapi.Room, error)
	FeaturedHotels(ctx context.Context) ([]hotelapi.Hotel, error)
	FeaturedRooms(ctx context.Context) ([]hotelapi.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
