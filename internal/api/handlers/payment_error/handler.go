package payment_error

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers"
)

const (
	msgSignInRequired     = "Please sign in to continue"
	msgInvalidRequestBody = "Invalid request body"
)

type Handler struct {
	sessions SessionProvider
	logger   Logger
}

func NewHandler(sessions SessionProvider, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/checkout/orders/{orderId}/error
// Виджет провайдера сообщил об отмене или сбое: заказ бросается, ответом служит уведомление для показа
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userKey, ok := handlers.UserKey(r)
	if !ok {
		handlers.RespondUnauthorized(w, msgSignInRequired)
		return
	}

	var req ProviderErrorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders/{id}/error - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess := h.sessions.Get(r.Context(), userKey)
	perr := sess.Payment.OnError(mux.Vars(r)["orderId"], req.Message)

	h.logger.Info("POST /orders/{id}/error - Provider error reported: user=%s, order_id=%s", userKey, perr.OrderID)
	handlers.RespondJSON(w, http.StatusOK, handlers.ErrorResponse{
		Code:    http.StatusOK,
		Message: perr.Message,
		Source:  handlers.SourcePayment,
		Action:  handlers.ActionRetry,
	})
}
