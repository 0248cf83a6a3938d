package search_hotels

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
)

// CatalogClient интерфейс клиента каталога отелей
type CatalogClient interface {
	SearchHotels(ctx context.Context, p hotelapi.SearchParams) ([]hotelapi.Hotel, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
