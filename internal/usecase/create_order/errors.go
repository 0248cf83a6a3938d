package create_order

import "errors"

var (
	// ErrNotAtPayment возвращается, когда визард не на шаге оплаты
	ErrNotAtPayment = errors.New("create_order: checkout is not at the payment step")

	// ErrDraftIncomplete возвращается, когда черновик пуст или не полон
	ErrDraftIncomplete = errors.New("create_order: booking draft is incomplete")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_order: invalid input data")
)
