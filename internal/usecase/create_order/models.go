package create_order

import "github.com/m04kA/SMC-HotelCheckout/internal/domain"

// Request модель запроса на создание заказа у платёжного провайдера
type Request struct {
	UserKey string // Ключ сессии пользователя
}

// Response модель ответа с заказом провайдера
type Response struct {
	Order domain.PaymentOrder
	Draft domain.BookingDraft
}
