package account

import (
	"context"
	"io"

	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
)

// BackendClient интерфейс клиента бэкенда для работы с аккаунтом
type BackendClient interface {
	Login(ctx context.Context, creds hotelapi.Credentials) (*hotelapi.AuthResponse, error)
	Signup(ctx context.Context, payload hotelapi.SignupPayload) (*hotelapi.User, error)
	GetProfile(ctx context.Context) (*hotelapi.User, error)
	UpdateUser(ctx context.Context, userID string, payload hotelapi.ProfilePayload) (*hotelapi.User, error)
	UpdateAvatar(ctx context.Context, filename string, image io.Reader) (*hotelapi.User, error)
}

// SessionStore интерфейс реестра сессий (выгрузка при выходе)
type SessionStore interface {
	Drop(key string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
