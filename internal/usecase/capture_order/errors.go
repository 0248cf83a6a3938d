package capture_order

import "errors"

var (
	// ErrNotAtPayment возвращается, когда визард не на шаге оплаты
	ErrNotAtPayment = errors.New("capture_order: checkout is not at the payment step")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("capture_order: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("capture_order: internal error")
)
