package login

import (
	"context"

	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/account"
)

type AccountService interface {
	Login(ctx context.Context, req account.LoginRequest) (*hotelapi.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
