package checkout

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	progressRepo "github.com/m04kA/SMC-HotelCheckout/internal/infra/storage/progress"
)

// Options параметры визарда
type Options struct {
	TTL                time.Duration
	ConfirmationPrefix string
	Clock              TimeProvider
	// Digits возвращает пятизначное число для номера подтверждения
	Digits  func() int
	Metrics TransitionRecorder
}

// State снимок визарда для отображения
type State struct {
	Step               domain.CheckoutStep
	MaxReached         domain.CheckoutStep
	Guest              domain.GuestInfo
	ConfirmationNumber string
	ConfirmedDraft     *domain.BookingDraft
	CanGoBack          bool
	CanGoNext          bool
}

// Machine визард checkout: Review → GuestInfo → Payment → Confirmation
// Один экземпляр на пользовательскую сессию, переходы сериализуются мьютексом
type Machine struct {
	mu sync.Mutex

	key            string
	step           domain.CheckoutStep
	maxReached     domain.CheckoutStep
	guest          domain.GuestInfo
	confirmation   string
	confirmedDraft *domain.BookingDraft

	progress ProgressStore
	drafts   DraftStore
	opts     Options
	logger   Logger
}

// NewMachine создает визард и восстанавливает сохранённый прогресс
// Прогресс старше TTL удаляется, визард начинает с Review
func NewMachine(ctx context.Context, key string, progress ProgressStore, drafts DraftStore, opts Options, logger Logger) *Machine {
	if opts.TTL <= 0 {
		opts.TTL = domain.ProgressTTL
	}
	if opts.ConfirmationPrefix == "" {
		opts.ConfirmationPrefix = domain.DefaultConfirmationPrefix
	}
	if opts.Clock == nil {
		opts.Clock = &RealTimeProvider{}
	}
	if opts.Digits == nil {
		opts.Digits = func() int { return 10000 + rand.Intn(90000) }
	}
	if opts.Metrics == nil {
		opts.Metrics = nopRecorder{}
	}

	m := &Machine{
		key:      key,
		step:     domain.StepReview,
		progress: progress,
		drafts:   drafts,
		opts:     opts,
		logger:   logger,
	}
	m.restore(ctx)
	return m
}

// restore читает сохранённый прогресс один раз при создании
func (m *Machine) restore(ctx context.Context) {
	saved, err := m.progress.Get(ctx, m.key)
	if err != nil {
		if !errors.Is(err, progressRepo.ErrProgressNotFound) {
			m.logger.Error("Checkout: failed to load progress for key=%s: %v", m.key, err)
		}
		return
	}

	if saved.IsExpired(m.opts.Clock.Now(), m.opts.TTL) || !saved.Step.IsPersistable() {
		m.logger.Info("Checkout: discarding stale progress for key=%s, saved_at=%s, step=%d",
			m.key, saved.Timestamp.Format(time.RFC3339), saved.Step)
		m.deleteProgress(ctx)
		return
	}

	m.step = saved.Step
	m.maxReached = saved.Step
	m.guest = saved.FormData
	m.logger.Info("Checkout: restored progress for key=%s at step=%s", m.key, m.step)
}

// State возвращает текущий снимок визарда
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.snapshot()
}

// Step возвращает текущий шаг
func (m *Machine) Step() domain.CheckoutStep {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.step
}

// Guest возвращает введённые данные гостя
func (m *Machine) Guest() domain.GuestInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.guest
}

// UpdateGuest применяет изменения данных гостя и сохраняет прогресс
// Валидация выполняется только при выходе с шага GuestInfo
func (m *Machine) UpdateGuest(ctx context.Context, patch domain.GuestInfoPatch) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.step.IsTerminal() {
		return m.snapshot(), ErrTerminalStep
	}

	m.guest = m.guest.Apply(patch)
	m.persist(ctx)
	return m.snapshot(), nil
}

// Next переводит визард на следующий шаг
//   - Review: без полного черновика ничего не делает (без ошибки)
//   - GuestInfo: при невалидных данных возвращает *ValidationError
//   - Payment: переход только через CompletePayment
//   - Confirmation: ErrTerminalStep
func (m *Machine) Next(ctx context.Context) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.step {
	case domain.StepReview:
		if !m.drafts.Get().IsComplete() {
			m.logger.Info("Checkout: next ignored at review, draft incomplete for key=%s", m.key)
			return m.snapshot(), nil
		}
	case domain.StepGuestInfo:
		if err := ValidateGuestInfo(m.guest); err != nil {
			m.logger.Info("Checkout: guest info rejected for key=%s: %v", m.key, err)
			return m.snapshot(), err
		}
	case domain.StepPayment:
		return m.snapshot(), ErrPaymentRequired
	case domain.StepConfirmation:
		return m.snapshot(), ErrTerminalStep
	}

	m.moveTo(ctx, m.step+1)
	return m.snapshot(), nil
}

// Back возвращает визард на предыдущий шаг
// С Review ничего не делает, с Confirmation запрещено
func (m *Machine) Back(ctx context.Context) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.step.IsTerminal() {
		return m.snapshot(), ErrTerminalStep
	}
	if m.step == domain.StepReview {
		return m.snapshot(), nil
	}

	m.moveTo(ctx, m.step-1)
	return m.snapshot(), nil
}

// Jump переходит на ранее пройденный шаг
// Confirmation недостижим, переход вперёд повторно проверяет условия пропускаемых шагов
func (m *Machine) Jump(ctx context.Context, target domain.CheckoutStep) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !target.IsValid() {
		return m.snapshot(), fmt.Errorf("%w: %d", ErrInvalidStep, target)
	}
	if m.step.IsTerminal() {
		return m.snapshot(), ErrTerminalStep
	}
	if target.IsTerminal() || target >= m.maxReached {
		return m.snapshot(), fmt.Errorf("%w: %s", ErrStepNotReachable, target)
	}
	if target == m.step {
		return m.snapshot(), nil
	}

	for s := m.step; s < target; s++ {
		if err := m.gate(s); err != nil {
			return m.snapshot(), err
		}
	}

	m.moveTo(ctx, target)
	return m.snapshot(), nil
}

// CompletePayment вызывается платёжным адаптером после успешного capture
// Переводит визард в Confirmation, генерирует номер подтверждения, удаляет прогресс и черновик
func (m *Machine) CompletePayment(ctx context.Context) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.step != domain.StepPayment {
		return m.snapshot(), ErrNotAtPayment
	}

	draft := m.drafts.Get()
	m.confirmedDraft = &draft
	m.confirmation = fmt.Sprintf("%s-%05d", m.opts.ConfirmationPrefix, m.opts.Digits())

	m.moveTo(ctx, domain.StepConfirmation)
	m.deleteProgress(ctx)
	m.drafts.Clear()

	m.logger.Info("Checkout: confirmed key=%s, confirmation=%s", m.key, m.confirmation)
	return m.snapshot(), nil
}

// Reset прерывает checkout: удаляет прогресс и черновик, визард возвращается на Review
func (m *Machine) Reset(ctx context.Context) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.step = domain.StepReview
	m.maxReached = domain.StepReview
	m.guest = domain.GuestInfo{}
	m.confirmation = ""
	m.confirmedDraft = nil

	m.deleteProgress(ctx)
	m.drafts.Clear()

	m.logger.Info("Checkout: reset for key=%s", m.key)
	return m.snapshot()
}

// gate условие выхода с шага s вперёд
func (m *Machine) gate(s domain.CheckoutStep) error {
	switch s {
	case domain.StepReview:
		if !m.drafts.Get().IsComplete() {
			return ErrDraftIncomplete
		}
	case domain.StepGuestInfo:
		return ValidateGuestInfo(m.guest)
	case domain.StepPayment:
		return ErrPaymentRequired
	}
	return nil
}

func (m *Machine) moveTo(ctx context.Context, step domain.CheckoutStep) {
	m.step = step
	if step > m.maxReached {
		m.maxReached = step
	}
	m.opts.Metrics.CheckoutTransition(step.String())
	m.persist(ctx)
}

// persist сохраняет прогресс, пока визард не дошёл до Confirmation
// Ошибка хранилища не блокирует переход
func (m *Machine) persist(ctx context.Context) {
	if !m.step.IsPersistable() {
		return
	}

	p := domain.CheckoutProgress{
		Step:      m.step,
		FormData:  m.guest,
		Timestamp: m.opts.Clock.Now(),
	}
	if err := m.progress.Save(ctx, m.key, p); err != nil {
		m.logger.Error("Checkout: failed to save progress for key=%s: %v", m.key, err)
	}
}

func (m *Machine) deleteProgress(ctx context.Context) {
	if err := m.progress.Delete(ctx, m.key); err != nil && !errors.Is(err, progressRepo.ErrProgressNotFound) {
		m.logger.Error("Checkout: failed to delete progress for key=%s: %v", m.key, err)
	}
}

func (m *Machine) snapshot() State {
	st := State{
		Step:               m.step,
		MaxReached:         m.maxReached,
		Guest:              m.guest,
		ConfirmationNumber: m.confirmation,
		CanGoBack:          m.step > domain.StepReview && !m.step.IsTerminal(),
	}
	switch m.step {
	case domain.StepReview:
		st.CanGoNext = m.drafts.Get().IsComplete()
	case domain.StepGuestInfo:
		st.CanGoNext = true
	}
	if m.confirmedDraft != nil {
		d := *m.confirmedDraft
		st.ConfirmedDraft = &d
	}
	return st
}
