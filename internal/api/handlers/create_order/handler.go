package create_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers"
	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/checkout"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/payment"
	createOrder "github.com/m04kA/SMC-HotelCheckout/internal/usecase/create_order"
)

const (
	msgSignInRequired  = "Please sign in to continue"
	msgFixFields       = "Please fix the highlighted fields"
	msgNotAtPayment    = "Continue to the payment step first"
	msgDraftIncomplete = "Select a room and dates first"
	msgOrderFailed     = "Could not start the payment. Please try again."
	msgNoOrderID       = "No order ID returned from server"
)

type Handler struct {
	useCase CreateOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userKey, ok := handlers.UserKey(r)
	if !ok {
		handlers.RespondUnauthorized(w, msgSignInRequired)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createOrder.Request{UserKey: userKey})
	if err != nil {
		var verr *checkout.ValidationError
		switch {
		case errors.As(err, &verr):
			handlers.RespondValidation(w, msgFixFields, verr.Fields)

		case errors.Is(err, hotelapi.ErrUnauthorized):
			h.logger.Warn("POST /checkout/orders - Token rejected by backend: user=%s", userKey)
			handlers.RespondUnauthorized(w, msgSignInRequired)

		case errors.Is(err, createOrder.ErrNotAtPayment):
			handlers.RespondPaymentError(w, http.StatusConflict, msgNotAtPayment, handlers.ActionGoBack)

		case errors.Is(err, createOrder.ErrDraftIncomplete), errors.Is(err, payment.ErrDraftIncomplete):
			handlers.RespondPaymentError(w, http.StatusConflict, msgDraftIncomplete, handlers.ActionGoBack)

		case errors.Is(err, payment.ErrNoOrderID):
			h.logger.Error("POST /checkout/orders - No order id: user=%s, error=%v", userKey, err)
			handlers.RespondPaymentError(w, http.StatusBadGateway, msgNoOrderID, handlers.ActionRetry)

		case errors.Is(err, hotelapi.ErrRejected), errors.Is(err, hotelapi.ErrConflict):
			msg := hotelapi.MessageOf(err)
			if msg == "" {
				msg = msgOrderFailed
			}
			h.logger.Warn("POST /checkout/orders - Booking rejected: user=%s, error=%v", userKey, err)
			handlers.RespondPaymentError(w, http.StatusUnprocessableEntity, msg, handlers.ActionGoBack)

		case payment.IsOrderCreationError(err):
			h.logger.Error("POST /checkout/orders - Order creation failed: user=%s, error=%v", userKey, err)
			handlers.RespondPaymentError(w, http.StatusBadGateway, msgOrderFailed, handlers.ActionRetry)

		default:
			h.logger.Error("POST /checkout/orders - Failed to create order: user=%s, error=%v", userKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkout/orders - Order created: user=%s, order_id=%s", userKey, result.Order.ProviderOrderID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
