package session

import (
	"context"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/checkout"
)

// Back шаг назад, уход со страницы оплаты бросает незавершённый заказ
func (s *Session) Back(ctx context.Context) (checkout.State, error) {
	from := s.Checkout.Step()
	st, err := s.Checkout.Back(ctx)
	s.leftPayment(from, st.Step)
	return st, err
}

// Jump переход на ранее пройденный шаг, уход со страницы оплаты бросает незавершённый заказ
func (s *Session) Jump(ctx context.Context, target domain.CheckoutStep) (checkout.State, error) {
	from := s.Checkout.Step()
	st, err := s.Checkout.Jump(ctx, target)
	s.leftPayment(from, st.Step)
	return st, err
}

// Restart готовит сессию к новому выбору комнаты
// Визард возвращается на Review, введённые данные гостя сохраняются, черновик очищается
func (s *Session) Restart(ctx context.Context) error {
	s.Payment.Abandon()

	var err error
	switch step := s.Checkout.Step(); {
	case step.IsTerminal():
		s.Checkout.Reset(ctx)
	case step != domain.StepReview:
		_, err = s.Checkout.Jump(ctx, domain.StepReview)
	}

	s.Draft.Clear()
	return err
}

// Abandon прерывает checkout полностью: заказ, прогресс, черновик и данные гостя
func (s *Session) Abandon(ctx context.Context) checkout.State {
	s.Payment.Abandon()
	return s.Checkout.Reset(ctx)
}

func (s *Session) leftPayment(from, to domain.CheckoutStep) {
	if from == domain.StepPayment && to != domain.StepPayment {
		s.Payment.Abandon()
	}
}
