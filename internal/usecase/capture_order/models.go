package capture_order

import (
	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/checkout"
)

// Request модель запроса на capture одобренного платежа
type Request struct {
	UserKey string // Ключ сессии пользователя
	OrderID string // ID заказа у провайдера
}

// Response модель ответа: оплаченный заказ и визард на шаге Confirmation
type Response struct {
	Order    domain.PaymentOrder
	Checkout checkout.State
}
