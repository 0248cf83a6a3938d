package payment_error

import (
	"context"

	"github.com/m04kA/SMC-HotelCheckout/internal/service/session"
)

type SessionProvider interface {
	Get(ctx context.Context, key string) *session.Session
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
