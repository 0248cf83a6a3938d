package capture_order

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
)

// UseCase use case подтверждения оплаты после одобрения в виджете провайдера
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

// Execute выполняет capture и переводит визард в Confirmation
// Ошибки адаптера (*payment.CaptureError) возвращаются как есть, визард остаётся на Payment
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CaptureOrder: user=%s, order=%s", req.UserKey, req.OrderID)

	// 1. Валидация входных данных
	req.OrderID = strings.TrimSpace(req.OrderID)
	if req.UserKey == "" || req.OrderID == "" {
		return nil, fmt.Errorf("%w: user key and order id are required", ErrInvalidInput)
	}

	sess := uc.sessions.Get(ctx, req.UserKey)

	// 2. Повторное одобрение уже оплаченного заказа отдаёт текущее подтверждение
	if st := sess.Checkout.State(); st.Step.IsTerminal() {
		order, err := sess.Payment.Order(req.OrderID)
		if err == nil && order.CaptureStatus == domain.CaptureSuccess {
			uc.logger.Info("CaptureOrder: order=%s already confirmed as %s", req.OrderID, st.ConfirmationNumber)
			return &Response{Order: *order, Checkout: st}, nil
		}
		return nil, ErrNotAtPayment
	}

	// 3. Проверяем шаг визарда
	if step := sess.Checkout.Step(); step != domain.StepPayment {
		uc.logger.Warn("CaptureOrder: user=%s is at step=%s", req.UserKey, step)
		return nil, ErrNotAtPayment
	}

	// 4. Capture через бэкенд
	order, err := sess.Payment.OnApprove(ctx, req.OrderID)
	if err != nil {
		uc.logger.Warn("CaptureOrder: capture failed for user=%s, order=%s: %v", req.UserKey, req.OrderID, err)
		return nil, err
	}

	// 5. Переводим визард в Confirmation
	st, err := sess.Checkout.CompletePayment(ctx)
	if err != nil {
		uc.logger.Error("CaptureOrder: order=%s captured but checkout failed to confirm: %v", req.OrderID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CaptureOrder: user=%s confirmed, confirmation=%s, transaction=%s",
		req.UserKey, st.ConfirmationNumber, order.TransactionID)
	return &Response{Order: *order, Checkout: st}, nil
}
