package signup

import (
	"context"

	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/account"
)

type AccountService interface {
	Signup(ctx context.Context, req account.SignupRequest) (*hotelapi.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
