package capture_order

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers"
	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/checkout"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/payment"
	captureOrder "github.com/m04kA/SMC-HotelCheckout/internal/usecase/capture_order"
	"github.com/m04kA/SMC-HotelCheckout/pkg/logger"
)

type fakeUseCase struct {
	resp *captureOrder.Response
	err  error
	got  *captureOrder.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *captureOrder.Request) (*captureOrder.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(t *testing.T, uc *fakeUseCase, withUser bool) *httptest.ResponseRecorder {
	t.Helper()
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/checkout/orders/{orderId}/capture", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/orders/ORD-1/capture", nil)
	if withUser {
		req = req.WithContext(handlers.WithUserKey(req.Context(), "user:42"))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeNotification(t *testing.T, rec *httptest.ResponseRecorder) handlers.ErrorResponse {
	t.Helper()
	var n handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))
	return n
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &captureOrder.Response{
		Order: domain.PaymentOrder{ProviderOrderID: "ORD-1", CaptureStatus: domain.CaptureSuccess, Amount: 123.5},
		Checkout: checkout.State{
			Step:               domain.StepConfirmation,
			MaxReached:         domain.StepConfirmation,
			ConfirmationNumber: "HOTEL-48213",
		},
	}}

	rec := serve(t, uc, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &captureOrder.Request{UserKey: "user:42", OrderID: "ORD-1"}, uc.got)

	var body struct {
		ConfirmationNumber string `json:"confirmationNumber"`
		Order              struct {
			OrderID string `json:"orderId"`
			Status  string `json:"status"`
		} `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "HOTEL-48213", body.ConfirmationNumber)
	assert.Equal(t, "ORD-1", body.Order.OrderID)
	assert.Equal(t, string(domain.CaptureSuccess), body.Order.Status)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantSource string
		wantAction string
		wantMsg    string
	}{
		{
			name:       "capture not confirmed",
			err:        fmt.Errorf("capture: %w", &payment.CaptureError{OrderID: "ORD-1", Reason: "Card declined"}),
			wantStatus: http.StatusPaymentRequired,
			wantSource: handlers.SourcePayment,
			wantAction: handlers.ActionRetry,
			wantMsg:    "Card declined",
		},
		{
			name:       "capture without reason",
			err:        &payment.CaptureError{OrderID: "ORD-1"},
			wantStatus: http.StatusPaymentRequired,
			wantSource: handlers.SourcePayment,
			wantAction: handlers.ActionRetry,
			wantMsg:    msgNotConfirmed,
		},
		{
			name:       "backend unavailable keeps order retryable",
			err:        fmt.Errorf("%w: order ORD-1: %w", payment.ErrCaptureIncomplete, hotelapi.ErrUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantSource: handlers.SourceBackend,
			wantAction: handlers.ActionRetry,
			wantMsg:    msgCapturePending,
		},
		{
			name:       "token rejected during capture",
			err:        fmt.Errorf("%w: order ORD-1: %w", payment.ErrCaptureIncomplete, hotelapi.ErrUnauthorized),
			wantStatus: http.StatusUnauthorized,
			wantSource: handlers.SourceAuth,
			wantAction: handlers.ActionSignIn,
		},
		{
			name:       "abandoned order",
			err:        payment.ErrOrderAbandoned,
			wantStatus: http.StatusConflict,
			wantSource: handlers.SourcePayment,
			wantAction: handlers.ActionRetry,
			wantMsg:    msgOrderExpired,
		},
		{
			name:       "unknown order",
			err:        payment.ErrUnknownOrder,
			wantStatus: http.StatusNotFound,
			wantSource: handlers.SourcePayment,
			wantAction: handlers.ActionRetry,
			wantMsg:    msgUnknownOrder,
		},
		{
			name:       "not at payment step",
			err:        captureOrder.ErrNotAtPayment,
			wantStatus: http.StatusConflict,
			wantSource: handlers.SourcePayment,
			wantAction: handlers.ActionGoBack,
			wantMsg:    msgNotAtPayment,
		},
		{
			name:       "unexpected error",
			err:        fmt.Errorf("%w: boom", captureOrder.ErrInternal),
			wantStatus: http.StatusInternalServerError,
			wantSource: handlers.SourceBackend,
			wantAction: handlers.ActionRetry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeUseCase{err: tt.err}, true)

			require.Equal(t, tt.wantStatus, rec.Code)
			n := decodeNotification(t, rec)
			assert.Equal(t, tt.wantStatus, n.Code)
			assert.Equal(t, tt.wantSource, n.Source)
			assert.Equal(t, tt.wantAction, n.Action)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, n.Message)
			}
		})
	}
}

func TestHandle_RequiresUser(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(t, uc, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.got)
}
