package select_room

import (
	"context"

	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/session"
)

// CatalogClient интерфейс клиента каталога отелей
type CatalogClient interface {
	GetHotel(ctx context.Context, hotelID string) (*hotelapi.Hotel, error)
	GetRoom(ctx context.Context, hotelID, roomID string) (*hotelapi.Room, error)
}

// SessionProvider интерфейс реестра пользовательских сессий
type SessionProvider interface {
	Get(ctx context.Context, key string) *session.Session
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
