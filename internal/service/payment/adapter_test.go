package payment

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
	"github.com/m04kA/SMC-HotelCheckout/pkg/logger"
)

type fakeBackend struct {
	mu       sync.Mutex
	payloads []hotelapi.BookingPayload
	creates  atomic.Int32
	captures atomic.Int32

	release   chan struct{}
	createErr error
	noOrderID bool
	capture   func(orderID string) (*hotelapi.CaptureResponse, error)
}

func (f *fakeBackend) CreateBooking(_ context.Context, p hotelapi.BookingPayload) (*hotelapi.CreateBookingResponse, error) {
	n := f.creates.Add(1)
	f.mu.Lock()
	f.payloads = append(f.payloads, p)
	f.mu.Unlock()

	if f.release != nil {
		<-f.release
	}
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.noOrderID {
		return &hotelapi.CreateBookingResponse{}, nil
	}
	return &hotelapi.CreateBookingResponse{PaypalOrderID: fmt.Sprintf("PP-%d", n)}, nil
}

func (f *fakeBackend) CaptureOrder(_ context.Context, orderID string) (*hotelapi.CaptureResponse, error) {
	f.captures.Add(1)
	if f.capture != nil {
		return f.capture(orderID)
	}
	return &hotelapi.CaptureResponse{
		Status: "success",
		Payment: &hotelapi.Payment{
			TransactionID: "TX-" + orderID,
			Amount:        232.40,
			PaymentStatus: "COMPLETED",
		},
	}, nil
}

func (f *fakeBackend) lastPayload() hotelapi.BookingPayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.payloads[len(f.payloads)-1]
}

type countingRecorder struct {
	created, createFailed, captured, captureFailed atomic.Int32
}

func (r *countingRecorder) OrderCreated(ok bool) {
	if ok {
		r.created.Add(1)
	} else {
		r.createFailed.Add(1)
	}
}

func (r *countingRecorder) Capture(ok bool) {
	if ok {
		r.captured.Add(1)
	} else {
		r.captureFailed.Add(1)
	}
}

func testDraft() domain.BookingDraft {
	return domain.BookingDraft{
		HotelID:           "h1",
		RoomID:            "r1",
		CheckIn:           time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:          time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		GuestCount:        2,
		RoomPricePerNight: 100,
		Nights:            2,
		DiscountPercent:   10,
		TotalPrice:        "232.40",
		Nonce:             "n1",
	}
}

func testGuest() domain.GuestInfo {
	return domain.GuestInfo{
		FirstName:       "Ann",
		LastName:        "Lee",
		Email:           "a@b.com",
		Phone:           "1234567890",
		SpecialRequests: "late arrival",
		IsSubscribed:    true,
	}
}

func newTestAdapter(b *fakeBackend) (*Adapter, *countingRecorder) {
	rec := &countingRecorder{}
	return NewAdapter(b, rec, logger.NewNop()), rec
}

func TestAdapter_CreateOrderSendsBooking(t *testing.T) {
	b := &fakeBackend{}
	a, rec := newTestAdapter(b)

	order, err := a.CreateOrder(context.Background(), testDraft(), testGuest())
	require.NoError(t, err)

	assert.Equal(t, "PP-1", order.ProviderOrderID)
	assert.Equal(t, "n1-1", order.IdempotencyKey)
	assert.Equal(t, domain.CapturePending, order.CaptureStatus)
	assert.InDelta(t, 232.40, order.Amount, 1e-9)

	p := b.lastPayload()
	assert.Equal(t, "h1", p.HotelID)
	assert.Equal(t, "2025-06-01", p.CheckIn)
	assert.Equal(t, "2025-06-03", p.CheckOut)
	assert.Equal(t, "100.00", p.RoomPrice)
	assert.Equal(t, "232.40", p.TotalPrice)
	assert.Equal(t, "Ann Lee", p.GuestName)
	assert.Equal(t, "late arrival", p.GuestSpecialRequests)
	assert.True(t, p.GuestIsSubscribed)
	assert.Equal(t, "n1-1", p.IdempotencyKey)
	assert.Equal(t, int32(1), rec.created.Load())
}

func TestAdapter_CreateOrderRejectsIncompleteDraft(t *testing.T) {
	b := &fakeBackend{}
	a, _ := newTestAdapter(b)
	d := testDraft()
	d.CheckOut = time.Time{}

	_, err := a.CreateOrder(context.Background(), d, testGuest())

	var oce *OrderCreationError
	require.ErrorAs(t, err, &oce)
	assert.ErrorIs(t, err, ErrDraftIncomplete)
	assert.Equal(t, int32(0), b.creates.Load())
}

func TestAdapter_CreateOrderBackendFailure(t *testing.T) {
	b := &fakeBackend{createErr: hotelapi.ErrRejected}
	a, rec := newTestAdapter(b)

	_, err := a.CreateOrder(context.Background(), testDraft(), testGuest())
	assert.True(t, IsOrderCreationError(err))
	assert.ErrorIs(t, err, hotelapi.ErrRejected)
	assert.Equal(t, int32(1), rec.createFailed.Load())

	// повтор использует тот же ключ
	b.createErr = nil
	order, err := a.CreateOrder(context.Background(), testDraft(), testGuest())
	require.NoError(t, err)
	assert.Equal(t, "n1-1", order.IdempotencyKey)
}

func TestAdapter_CreateOrderWithoutOrderID(t *testing.T) {
	b := &fakeBackend{noOrderID: true}
	a, _ := newTestAdapter(b)

	_, err := a.CreateOrder(context.Background(), testDraft(), testGuest())
	assert.ErrorIs(t, err, ErrNoOrderID)
	_, ok := a.Current()
	assert.False(t, ok)
}

func TestAdapter_ConcurrentCreateOrderCollapses(t *testing.T) {
	b := &fakeBackend{release: make(chan struct{})}
	a, _ := newTestAdapter(b)

	const callers = 5
	var wg sync.WaitGroup
	ids := make([]string, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			order, err := a.CreateOrder(context.Background(), testDraft(), testGuest())
			errs[i] = err
			if order != nil {
				ids[i] = order.ProviderOrderID
			}
		}(i)
	}

	require.Eventually(t, func() bool { return b.creates.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(b.release)
	wg.Wait()

	assert.Equal(t, int32(1), b.creates.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "PP-1", ids[i])
	}
}

func TestAdapter_SequentialCreateReusesPendingOrder(t *testing.T) {
	b := &fakeBackend{}
	a, _ := newTestAdapter(b)

	first, err := a.CreateOrder(context.Background(), testDraft(), testGuest())
	require.NoError(t, err)
	second, err := a.CreateOrder(context.Background(), testDraft(), testGuest())
	require.NoError(t, err)

	assert.Equal(t, first.ProviderOrderID, second.ProviderOrderID)
	assert.Equal(t, int32(1), b.creates.Load())
}

func TestAdapter_OnApproveCaptures(t *testing.T) {
	b := &fakeBackend{}
	a, rec := newTestAdapter(b)
	order, err := a.CreateOrder(context.Background(), testDraft(), testGuest())
	require.NoError(t, err)

	captured, err := a.OnApprove(context.Background(), order.ProviderOrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.CaptureSuccess, captured.CaptureStatus)
	assert.Equal(t, "TX-PP-1", captured.TransactionID)
	assert.Equal(t, "COMPLETED", captured.PaymentStatus)
	require.NotNil(t, captured.CapturedAt)

	// повторный approve не вызывает capture второй раз
	again, err := a.OnApprove(context.Background(), order.ProviderOrderID)
	require.NoError(t, err)
	assert.Equal(t, captured.TransactionID, again.TransactionID)
	assert.Equal(t, int32(1), b.captures.Load())
	assert.Equal(t, int32(1), rec.captured.Load())
}

func TestAdapter_OnApproveUnknownOrder(t *testing.T) {
	a, _ := newTestAdapter(&fakeBackend{})

	_, err := a.OnApprove(context.Background(), "PP-404")
	assert.ErrorIs(t, err, ErrUnknownOrder)
}

func TestAdapter_CaptureNotConfirmedAbandonsOrder(t *testing.T) {
	b := &fakeBackend{capture: func(string) (*hotelapi.CaptureResponse, error) {
		return &hotelapi.CaptureResponse{Status: "failed"}, nil
	}}
	a, rec := newTestAdapter(b)
	order, err := a.CreateOrder(context.Background(), testDraft(), testGuest())
	require.NoError(t, err)

	_, err = a.OnApprove(context.Background(), order.ProviderOrderID)
	var ce *CaptureError
	require.ErrorAs(t, err, &ce)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Equal(t, msgNotConfirmed, ce.Reason)
	assert.Equal(t, int32(1), rec.captureFailed.Load())

	// тот же заказ повторно не capture-ится
	_, err = a.OnApprove(context.Background(), order.ProviderOrderID)
	assert.ErrorIs(t, err, ErrOrderAbandoned)
	assert.Equal(t, int32(1), b.captures.Load())

	// новая попытка создаёт новый заказ с новым ключом
	retry, err := a.CreateOrder(context.Background(), testDraft(), testGuest())
	require.NoError(t, err)
	assert.Equal(t, "PP-2", retry.ProviderOrderID)
	assert.Equal(t, "n1-2", retry.IdempotencyKey)
}

func TestAdapter_CaptureBackendRejectionAbandonsOrder(t *testing.T) {
	b := &fakeBackend{capture: func(string) (*hotelapi.CaptureResponse, error) {
		return nil, fmt.Errorf("%w: instrument declined", hotelapi.ErrRejected)
	}}
	a, _ := newTestAdapter(b)
	order, err := a.CreateOrder(context.Background(), testDraft(), testGuest())
	require.NoError(t, err)

	_, err = a.OnApprove(context.Background(), order.ProviderOrderID)
	assert.True(t, IsCaptureError(err))

	stored, err := a.Order(order.ProviderOrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.CaptureFailed, stored.CaptureStatus)
}

func TestAdapter_CaptureTransientErrorKeepsOrderPending(t *testing.T) {
	tests := []struct {
		name  string
		cause error
	}{
		{name: "timeout", cause: fmt.Errorf("%w: context deadline exceeded", hotelapi.ErrUnavailable)},
		{name: "backend 5xx", cause: fmt.Errorf("%w: status 502", hotelapi.ErrUnavailable)},
		{name: "token rejected", cause: hotelapi.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			b := &fakeBackend{capture: func(orderID string) (*hotelapi.CaptureResponse, error) {
				if calls.Add(1) == 1 {
					return nil, tt.cause
				}
				return &hotelapi.CaptureResponse{
					Status:  "success",
					Payment: &hotelapi.Payment{TransactionID: "TX-" + orderID, PaymentStatus: "COMPLETED"},
				}, nil
			}}
			a, rec := newTestAdapter(b)
			order, err := a.CreateOrder(context.Background(), testDraft(), testGuest())
			require.NoError(t, err)

			_, err = a.OnApprove(context.Background(), order.ProviderOrderID)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCaptureIncomplete)
			assert.ErrorIs(t, err, tt.cause)
			assert.False(t, IsCaptureError(err))
			assert.Equal(t, int32(1), rec.captureFailed.Load())

			stored, err := a.Order(order.ProviderOrderID)
			require.NoError(t, err)
			assert.Equal(t, domain.CapturePending, stored.CaptureStatus)
			assert.Equal(t, order.IdempotencyKey, a.IdempotencyKey("n1"))

			// повторный approve capture-ит тот же заказ
			captured, err := a.OnApprove(context.Background(), order.ProviderOrderID)
			require.NoError(t, err)
			assert.Equal(t, domain.CaptureSuccess, captured.CaptureStatus)
			assert.Equal(t, "TX-"+order.ProviderOrderID, captured.TransactionID)
			assert.Equal(t, int32(1), b.creates.Load())
		})
	}
}

func TestAdapter_OnErrorAbandonsCurrentOrder(t *testing.T) {
	b := &fakeBackend{}
	a, _ := newTestAdapter(b)
	order, err := a.CreateOrder(context.Background(), testDraft(), testGuest())
	require.NoError(t, err)

	perr := a.OnError("", "User cancelled")
	assert.True(t, IsProviderError(perr))
	assert.Equal(t, order.ProviderOrderID, perr.OrderID)
	assert.Equal(t, "User cancelled", perr.Message)

	_, err = a.OnApprove(context.Background(), order.ProviderOrderID)
	assert.ErrorIs(t, err, ErrOrderAbandoned)

	assert.Equal(t, "n1-2", a.IdempotencyKey("n1"))
}

func TestAdapter_AbandonOpensNewAttempt(t *testing.T) {
	b := &fakeBackend{}
	a, _ := newTestAdapter(b)
	_, err := a.CreateOrder(context.Background(), testDraft(), testGuest())
	require.NoError(t, err)

	a.Abandon()

	order, err := a.CreateOrder(context.Background(), testDraft(), testGuest())
	require.NoError(t, err)
	assert.Equal(t, "n1-2", order.IdempotencyKey)
	assert.Equal(t, int32(2), b.creates.Load())
}

func TestAdapter_CapturedOrderIsNotAbandoned(t *testing.T) {
	b := &fakeBackend{}
	a, _ := newTestAdapter(b)
	order, err := a.CreateOrder(context.Background(), testDraft(), testGuest())
	require.NoError(t, err)
	_, err = a.OnApprove(context.Background(), order.ProviderOrderID)
	require.NoError(t, err)

	a.Abandon()

	stored, err := a.Order(order.ProviderOrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.CaptureSuccess, stored.CaptureStatus)
}

func TestNonceOf(t *testing.T) {
	assert.Equal(t, "6f1c-aa-bb", nonceOf("6f1c-aa-bb-3"))
	assert.Equal(t, "plain", nonceOf("plain"))
}
