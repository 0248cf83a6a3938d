package create_order

import (
	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers/checkout_wizard"
	createOrder "github.com/m04kA/SMC-HotelCheckout/internal/usecase/create_order"
)

// CreateOrderResponse HTTP response model: ID заказа открывает виджет провайдера
type CreateOrderResponse struct {
	Order *checkout_wizard.OrderView `json:"order"`
	Total string                     `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createOrder.Response) *CreateOrderResponse {
	return &CreateOrderResponse{
		Order: checkout_wizard.NewOrderView(resp.Order),
		Total: resp.Draft.TotalPrice,
	}
}
