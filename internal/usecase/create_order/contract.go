package create_order

import (
	"context"

	"github.com/m04kA/SMC-HotelCheckout/internal/service/session"
)

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
