package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
)

const msgNotConfirmed = "Payment not confirmed. Please try again."

// Adapter двухфазная оплата через бэкенд: createOrder → (виджет провайдера) → capture
// Один экземпляр на пользовательскую сессию
type Adapter struct {
	client  BackendClient
	clock   TimeProvider
	metrics Recorder
	logger  Logger

	group singleflight.Group

	mu       sync.Mutex
	attempts map[string]int // nonce черновика → номер попытки
	orders   map[string]*domain.PaymentOrder
	current  string
}

// NewAdapter создает платёжный адаптер
func NewAdapter(client BackendClient, metrics Recorder, logger Logger) *Adapter {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Adapter{
		client:   client,
		clock:    &RealTimeProvider{},
		metrics:  metrics,
		logger:   logger,
		attempts: make(map[string]int),
		orders:   make(map[string]*domain.PaymentOrder),
	}
}

// IdempotencyKey ключ текущей попытки оплаты черновика: <nonce>-<attempt>
func (a *Adapter) IdempotencyKey(nonce string) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.keyLocked(nonce)
}

func (a *Adapter) keyLocked(nonce string) string {
	attempt, ok := a.attempts[nonce]
	if !ok {
		attempt = 1
		a.attempts[nonce] = attempt
	}
	return fmt.Sprintf("%s-%d", nonce, attempt)
}

// CreateOrder отправляет бронирование в бэкенд и возвращает заказ провайдера
// Одновременные вызовы с одним ключом схлопываются в один запрос к бэкенду
// Пока заказ текущей попытки не завершён, повторный вызов возвращает его же
func (a *Adapter) CreateOrder(ctx context.Context, draft domain.BookingDraft, guest domain.GuestInfo) (*domain.PaymentOrder, error) {
	if !draft.IsComplete() || draft.Nonce == "" {
		return nil, &OrderCreationError{Err: ErrDraftIncomplete}
	}

	a.mu.Lock()
	key := a.keyLocked(draft.Nonce)
	if cur := a.orders[a.current]; cur != nil && cur.IdempotencyKey == key && cur.CaptureStatus == domain.CapturePending {
		order := *cur
		a.mu.Unlock()
		a.logger.Info("CreateOrder: reusing pending order=%s for key=%s", order.ProviderOrderID, key)
		return &order, nil
	}
	a.mu.Unlock()

	v, err, shared := a.group.Do(key, func() (interface{}, error) {
		return a.createOrder(ctx, key, draft, guest)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		a.logger.Info("CreateOrder: duplicate call collapsed for key=%s", key)
	}

	order := *(v.(*domain.PaymentOrder))
	return &order, nil
}

func (a *Adapter) createOrder(ctx context.Context, key string, draft domain.BookingDraft, guest domain.GuestInfo) (*domain.PaymentOrder, error) {
	a.logger.Info("CreateOrder: hotel=%s, room=%s, key=%s", draft.HotelID, draft.RoomID, key)

	resp, err := a.client.CreateBooking(ctx, buildPayload(draft, guest, key))
	if err != nil {
		a.metrics.OrderCreated(false)
		a.logger.Warn("CreateOrder: backend rejected booking for key=%s: %v", key, err)
		return nil, &OrderCreationError{IdempotencyKey: key, Err: err}
	}
	if resp.PaypalOrderID == "" {
		a.metrics.OrderCreated(false)
		a.logger.Error("CreateOrder: backend returned no order id for key=%s", key)
		return nil, &OrderCreationError{IdempotencyKey: key, Err: ErrNoOrderID}
	}

	amount, _ := strconv.ParseFloat(draft.TotalPrice, 64)
	order := &domain.PaymentOrder{
		ProviderOrderID: resp.PaypalOrderID,
		IdempotencyKey:  key,
		CaptureStatus:   domain.CapturePending,
		Amount:          amount,
		CreatedAt:       a.clock.Now(),
	}

	a.mu.Lock()
	a.orders[order.ProviderOrderID] = order
	a.current = order.ProviderOrderID
	a.mu.Unlock()

	a.metrics.OrderCreated(true)
	a.logger.Info("CreateOrder: order=%s created for key=%s", order.ProviderOrderID, key)
	return order, nil
}

// OnApprove вызывается после одобрения платежа в виджете провайдера: capture через бэкенд
// Проваленный заказ повторно не capture-ится, нужна новая попытка CreateOrder
func (a *Adapter) OnApprove(ctx context.Context, orderID string) (*domain.PaymentOrder, error) {
	a.mu.Lock()
	order, ok := a.orders[orderID]
	if !ok {
		a.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrUnknownOrder, orderID)
	}
	switch order.CaptureStatus {
	case domain.CaptureFailed:
		a.mu.Unlock()
		return nil, &CaptureError{OrderID: orderID, Reason: order.FailureReason, Err: ErrOrderAbandoned}
	case domain.CaptureSuccess:
		captured := *order
		a.mu.Unlock()
		return &captured, nil
	}
	a.mu.Unlock()

	v, err, _ := a.group.Do("capture:"+orderID, func() (interface{}, error) {
		return a.capture(ctx, orderID)
	})
	if err != nil {
		return nil, err
	}

	captured := *(v.(*domain.PaymentOrder))
	return &captured, nil
}

func (a *Adapter) capture(ctx context.Context, orderID string) (*domain.PaymentOrder, error) {
	a.logger.Info("Capture: order=%s", orderID)

	resp, err := a.client.CaptureOrder(ctx, orderID)
	if err != nil {
		// Бросаем заказ, только если бэкенд явно отклонил capture.
		// Сеть, 5xx и 401 оставляют заказ pending: повторный approve capture-ит тот же заказ.
		if errors.Is(err, hotelapi.ErrRejected) {
			reason := hotelapi.MessageOf(err)
			if reason == "" {
				reason = msgNotConfirmed
			}
			a.logger.Warn("Capture: backend rejected order=%s: %v", orderID, err)
			return nil, a.failCapture(orderID, reason, err)
		}
		a.metrics.Capture(false)
		a.logger.Error("Capture: backend call failed for order=%s, order kept pending: %v", orderID, err)
		return nil, fmt.Errorf("%w: order %s: %w", ErrCaptureIncomplete, orderID, err)
	}
	if !resp.Succeeded() {
		reason := resp.Message
		if reason == "" {
			reason = msgNotConfirmed
		}
		a.logger.Warn("Capture: order=%s not confirmed, status=%s", orderID, resp.Status)
		return nil, a.failCapture(orderID, reason, ErrNotConfirmed)
	}

	now := a.clock.Now()

	a.mu.Lock()
	order := a.orders[orderID]
	order.CaptureStatus = domain.CaptureSuccess
	order.TransactionID = resp.Payment.TransactionID
	order.PaymentStatus = resp.Payment.PaymentStatus
	if amount := float64(resp.Payment.Amount); amount > 0 {
		order.Amount = amount
	}
	order.CapturedAt = &now
	captured := *order
	a.mu.Unlock()

	a.metrics.Capture(true)
	a.logger.Info("Capture: order=%s captured, transaction=%s", orderID, captured.TransactionID)
	return &captured, nil
}

// failCapture помечает заказ проваленным и открывает новую попытку
func (a *Adapter) failCapture(orderID, reason string, cause error) error {
	a.mu.Lock()
	a.abandonLocked(orderID, reason)
	a.mu.Unlock()

	a.metrics.Capture(false)
	return &CaptureError{OrderID: orderID, Reason: reason, Err: cause}
}

// OnError вызывается виджетом провайдера при отмене или сбое
// Текущий заказ бросается, следующий CreateOrder создаст новый
func (a *Adapter) OnError(orderID, message string) *ProviderError {
	if message == "" {
		message = "An error occurred during payment."
	}

	a.mu.Lock()
	if orderID == "" {
		orderID = a.current
	}
	a.abandonLocked(orderID, message)
	a.mu.Unlock()

	a.logger.Warn("Payment provider error for order=%s: %s", orderID, message)
	return &ProviderError{OrderID: orderID, Message: message}
}

// Abandon бросает незавершённый заказ (пользователь ушёл со страницы оплаты)
// Провайдеру и бэкенду ничего не отправляется
func (a *Adapter) Abandon() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current != "" {
		a.abandonLocked(a.current, "checkout abandoned")
	}
}

func (a *Adapter) abandonLocked(orderID, reason string) {
	order, ok := a.orders[orderID]
	if !ok || order.CaptureStatus != domain.CapturePending {
		return
	}
	order.CaptureStatus = domain.CaptureFailed
	order.FailureReason = reason

	nonce := nonceOf(order.IdempotencyKey)
	a.attempts[nonce]++
}

// Current возвращает последний созданный заказ
func (a *Adapter) Current() (*domain.PaymentOrder, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	order, ok := a.orders[a.current]
	if !ok {
		return nil, false
	}
	c := *order
	return &c, true
}

// Order возвращает заказ по id провайдера
func (a *Adapter) Order(orderID string) (*domain.PaymentOrder, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	order, ok := a.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOrder, orderID)
	}
	c := *order
	return &c, nil
}

// IsOrderCreationError, IsCaptureError и IsProviderError упрощают разбор ошибок в хендлерах
func IsOrderCreationError(err error) bool {
	var e *OrderCreationError
	return errors.As(err, &e)
}

func IsCaptureError(err error) bool {
	var e *CaptureError
	return errors.As(err, &e)
}

func IsProviderError(err error) bool {
	var e *ProviderError
	return errors.As(err, &e)
}

func buildPayload(draft domain.BookingDraft, guest domain.GuestInfo, key string) hotelapi.BookingPayload {
	return hotelapi.BookingPayload{
		HotelID:              draft.HotelID,
		RoomID:               draft.RoomID,
		CheckIn:              draft.CheckIn.Format(domain.DateFormat),
		CheckOut:             draft.CheckOut.Format(domain.DateFormat),
		Guests:               draft.GuestCount,
		RoomPrice:            hotelapi.FormatPrice(draft.RoomPricePerNight),
		Nights:               draft.Nights,
		TotalPrice:           draft.TotalPrice,
		GuestName:            guest.FullName(),
		GuestEmail:           guest.Email,
		GuestPhone:           guest.Phone,
		GuestSpecialRequests: guest.SpecialRequests,
		GuestIsSubscribed:    guest.IsSubscribed,
		IdempotencyKey:       key,
	}
}

// nonceOf отрезает номер попытки: "<nonce>-<attempt>" → "<nonce>"
func nonceOf(key string) string {
	for i := len(key) - 1; i >= 0; i-- {
		if key[i] == '-' {
			return key[:i]
		}
	}
	return key
}
