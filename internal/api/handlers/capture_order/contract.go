package capture_order

import (
	"context"

	captureOrder "github.com/m04kA/SMC-HotelCheckout/internal/usecase/capture_order"
)

type CaptureOrderUseCase interface {
	Execute(ctx context.Context, req *captureOrder.Request) (*captureOrder.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
