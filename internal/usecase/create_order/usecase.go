package create_order

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/checkout"
)

// UseCase use case создания заказа: бронирование уходит в бэкенд, бэкенд открывает заказ у провайдера
type UseCase struct {
	sessions SessionProvider
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionProvider, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		logger:   logger,
	}
}

// Execute выполняет use case создания заказа
// Ошибки адаптера (*payment.OrderCreationError) возвращаются как есть
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateOrder: user=%s", req.UserKey)

	// 1. Валидация входных данных
	if req.UserKey == "" {
		return nil, fmt.Errorf("%w: user key is required", ErrInvalidInput)
	}

	// 2. Проверяем шаг визарда
	sess := uc.sessions.Get(ctx, req.UserKey)
	if step := sess.Checkout.Step(); step != domain.StepPayment {
		uc.logger.Warn("CreateOrder: user=%s is at step=%s", req.UserKey, step)
		return nil, ErrNotAtPayment
	}

	// 3. Проверяем черновик
	draft := sess.Draft.Get()
	if !draft.IsComplete() {
		uc.logger.Warn("CreateOrder: user=%s has an incomplete draft", req.UserKey)
		return nil, ErrDraftIncomplete
	}

	// 4. Данные гостя должны быть валидны и на шаге оплаты
	guest := sess.Checkout.Guest()
	if err := checkout.ValidateGuestInfo(guest); err != nil {
		uc.logger.Warn("CreateOrder: guest info for user=%s is invalid: %v", req.UserKey, err)
		return nil, err
	}

	// 5. Создаём заказ
	order, err := sess.Payment.CreateOrder(ctx, draft, guest)
	if err != nil {
		uc.logger.Warn("CreateOrder: failed for user=%s: %v", req.UserKey, err)
		return nil, err
	}

	uc.logger.Info("CreateOrder: user=%s, order=%s, key=%s", req.UserKey, order.ProviderOrderID, order.IdempotencyKey)
	return &Response{
		Order: *order,
		Draft: draft,
	}, nil
}
