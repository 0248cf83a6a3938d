package payment

import (
	"errors"
	"fmt"
)

var (
	// ErrDraftIncomplete возвращается, когда заказ создаётся без полного черновика
	ErrDraftIncomplete = errors.New("payment: booking draft is incomplete")

	// ErrNoOrderID возвращается, когда бэкенд не вернул paypal_order_id
	ErrNoOrderID = errors.New("payment: no order ID returned from server")

	// ErrUnknownOrder возвращается для заказа, который не создавался в этой сессии
	ErrUnknownOrder = errors.New("payment: unknown provider order")

	// ErrOrderAbandoned возвращается при попытке повторного capture проваленного заказа
	ErrOrderAbandoned = errors.New("payment: provider order was abandoned, create a new order")

	// ErrCaptureIncomplete capture не дошёл до ответа бэкенда, заказ остаётся pending и approve можно повторить
	ErrCaptureIncomplete = errors.New("payment: capture did not complete")

	// ErrNotConfirmed возвращается, когда бэкенд не подтвердил платёж
	ErrNotConfirmed = errors.New("payment: payment not confirmed")
)

// OrderCreationError заказ у провайдера не создан, можно повторить
type OrderCreationError struct {
	IdempotencyKey string
	Err            error
}

func (e *OrderCreationError) Error() string {
	return fmt.Sprintf("payment: order creation failed (key=%s): %v", e.IdempotencyKey, e.Err)
}

func (e *OrderCreationError) Unwrap() error {
	return e.Err
}

// CaptureError бэкенд отклонил или не подтвердил платёж, заказ брошен
type CaptureError struct {
	OrderID string
	Reason  string
	Err     error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("payment: capture of order %s failed: %s", e.OrderID, e.Reason)
}

func (e *CaptureError) Unwrap() error {
	return e.Err
}

// ProviderError ошибка виджета платёжного провайдера (отмена, сбой сессии)
type ProviderError struct {
	OrderID string
	Message string
}

func (e *ProviderError) Error() string {
	if e.OrderID == "" {
		return fmt.Sprintf("payment: provider error: %s", e.Message)
	}
	return fmt.Sprintf("payment: provider error for order %s: %s", e.OrderID, e.Message)
}
