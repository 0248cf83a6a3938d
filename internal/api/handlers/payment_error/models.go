package payment_error

// ProviderErrorRequest HTTP request model: сообщение виджета провайдера
type ProviderErrorRequest struct {
	Message string `json:"message"`
}
