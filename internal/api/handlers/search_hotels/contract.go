package search_hotels

import (
	"context"

	searchHotels "github.com/m04kA/SMC-HotelCheckout/internal/usecase/search_hotels"
)

type SearchHotelsUseCase interface {
	Execute(ctx context.Context, req *searchHotels.Request) (*searchHotels.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
