package capture_order

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers"
	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers/checkout_wizard"
	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/payment"
	captureOrder "github.com/m04kA/SMC-HotelCheckout/internal/usecase/capture_order"
)

const (
	msgSignInRequired = "Please sign in to continue"
	msgNotAtPayment   = "Continue to the payment step first"
	msgUnknownOrder   = "Payment order not found"
	msgOrderExpired   = "This payment attempt has expired. Please try again."
	msgNotConfirmed   = "Payment not confirmed. Please try again."
	msgInvalidOrderID = "Invalid order ID"
	msgCapturePending = "We could not confirm your payment yet. Please try again."
)

type Handler struct {
	useCase CaptureOrderUseCase
	logger  Logger
}

func NewHandler(useCase CaptureOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout/orders/{orderId}/capture
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userKey, ok := handlers.UserKey(r)
	if !ok {
		handlers.RespondUnauthorized(w, msgSignInRequired)
		return
	}
	orderID := mux.Vars(r)["orderId"]

	result, err := h.useCase.Execute(r.Context(), &captureOrder.Request{UserKey: userKey, OrderID: orderID})
	if err != nil {
		var captureErr *payment.CaptureError
		switch {
		case errors.Is(err, captureOrder.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidOrderID)

		case errors.Is(err, hotelapi.ErrUnauthorized):
			h.logger.Warn("POST /orders/{id}/capture - Token rejected by backend: user=%s", userKey)
			handlers.RespondUnauthorized(w, msgSignInRequired)

		case errors.Is(err, payment.ErrCaptureIncomplete):
			h.logger.Warn("POST /orders/{id}/capture - Backend unavailable, order kept pending: user=%s, order_id=%s, error=%v", userKey, orderID, err)
			handlers.RespondUnavailable(w, msgCapturePending)

		case errors.Is(err, payment.ErrUnknownOrder):
			handlers.RespondPaymentError(w, http.StatusNotFound, msgUnknownOrder, handlers.ActionRetry)

		case errors.Is(err, payment.ErrOrderAbandoned):
			handlers.RespondPaymentError(w, http.StatusConflict, msgOrderExpired, handlers.ActionRetry)

		case errors.As(err, &captureErr):
			msg := captureErr.Reason
			if msg == "" {
				msg = msgNotConfirmed
			}
			h.logger.Warn("POST /orders/{id}/capture - Payment not confirmed: user=%s, order_id=%s, error=%v", userKey, orderID, err)
			handlers.RespondPaymentError(w, http.StatusPaymentRequired, msg, handlers.ActionRetry)

		case errors.Is(err, captureOrder.ErrNotAtPayment):
			handlers.RespondPaymentError(w, http.StatusConflict, msgNotAtPayment, handlers.ActionGoBack)

		default:
			h.logger.Error("POST /orders/{id}/capture - Failed to capture: user=%s, order_id=%s, error=%v", userKey, orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders/{id}/capture - Payment captured: user=%s, order_id=%s, confirmation=%s",
		userKey, orderID, result.Checkout.ConfirmationNumber)
	handlers.RespondJSON(w, http.StatusOK, checkout_wizard.NewView(result.Checkout, domain.BookingDraft{}, &result.Order))
}
