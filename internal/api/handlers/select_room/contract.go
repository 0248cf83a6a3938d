package select_room

import (
	"context"

	selectRoom "github.com/m04kA/SMC-HotelCheckout/internal/usecase/select_room"
)

type SelectRoomUseCase interface {
	Execute(ctx context.Context, req *selectRoom.Request) (*selectRoom.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
