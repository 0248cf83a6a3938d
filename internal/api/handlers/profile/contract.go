package profile

import (
	"context"
	"io"

	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/account"
)

type AccountService interface {
	Profile(ctx context.Context) (*hotelapi.User, error)
	UpdateProfile(ctx context.Context, upd account.ProfileUpdate) (*hotelapi.User, error)
	UpdateAvatar(ctx context.Context, filename string, image io.Reader) (*hotelapi.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
