package payment_error

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers"
	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/infra/storage/progress"
	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/session"
	"github.com/m04kA/SMC-HotelCheckout/pkg/logger"
)

type fakeBackend struct{}

func (fakeBackend) CreateBooking(context.Context, hotelapi.BookingPayload) (*hotelapi.CreateBookingResponse, error) {
	return &hotelapi.CreateBookingResponse{PaypalOrderID: "PP-1"}, nil
}

func (fakeBackend) CaptureOrder(context.Context, string) (*hotelapi.CaptureResponse, error) {
	return &hotelapi.CaptureResponse{Status: "success", Payment: &hotelapi.Payment{TransactionID: "TX-1"}}, nil
}

func newRouter(reg *session.Registry) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/checkout/orders/{orderId}/error", NewHandler(reg, logger.NewNop()).Handle).Methods(http.MethodPost)
	return r
}

func post(r http.Handler, orderID, body string, withUser bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/orders/"+orderID+"/error", strings.NewReader(body))
	if withUser {
		req = req.WithContext(handlers.WithUserKey(req.Context(), "user:42"))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func openOrder(t *testing.T, reg *session.Registry) *session.Session {
	t.Helper()
	sess := reg.Get(context.Background(), "user:42")
	_, err := sess.Payment.CreateOrder(context.Background(), domain.BookingDraft{
		HotelID:    "h1",
		RoomID:     "r1",
		CheckIn:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		GuestCount: 2,
		Nights:     2,
		TotalPrice: "232.40",
		Nonce:      "n1",
	}, domain.GuestInfo{FirstName: "Ann", LastName: "Lee", Email: "a@b.com", Phone: "1234567890"})
	require.NoError(t, err)
	return sess
}

func TestHandle_AbandonsOrderAndReturnsNotification(t *testing.T) {
	reg := session.NewRegistry(progress.NewMemoryStore(), fakeBackend{}, nil, session.Config{}, logger.NewNop())
	sess := openOrder(t, reg)

	rec := post(newRouter(reg), "PP-1", `{"message":"Payment window closed"}`, true)

	require.Equal(t, http.StatusOK, rec.Code)
	var n handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))
	assert.Equal(t, "Payment window closed", n.Message)
	assert.Equal(t, handlers.SourcePayment, n.Source)
	assert.Equal(t, handlers.ActionRetry, n.Action)

	order, err := sess.Payment.Order("PP-1")
	require.NoError(t, err)
	assert.Equal(t, domain.CaptureFailed, order.CaptureStatus)
	assert.Equal(t, "n1-2", sess.Payment.IdempotencyKey("n1"))
}

func TestHandle_EmptyMessageGetsDefault(t *testing.T) {
	reg := session.NewRegistry(progress.NewMemoryStore(), fakeBackend{}, nil, session.Config{}, logger.NewNop())
	openOrder(t, reg)

	rec := post(newRouter(reg), "PP-1", `{}`, true)

	require.Equal(t, http.StatusOK, rec.Code)
	var n handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))
	assert.NotEmpty(t, n.Message)
	assert.Equal(t, handlers.SourcePayment, n.Source)
}

func TestHandle_Rejects(t *testing.T) {
	reg := session.NewRegistry(progress.NewMemoryStore(), fakeBackend{}, nil, session.Config{}, logger.NewNop())
	r := newRouter(reg)

	t.Run("without user", func(t *testing.T) {
		rec := post(r, "PP-1", `{"message":"x"}`, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, 0, reg.Len())
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := post(r, "PP-1", `{"message":`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
