package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/infra/storage/progress"
	"github.com/m04kA/SMC-HotelCheckout/pkg/logger"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakeDrafts struct {
	mu      sync.Mutex
	draft   domain.BookingDraft
	cleared int
}

func (d *fakeDrafts) Get() domain.BookingDraft {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.draft
}

func (d *fakeDrafts) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.draft = domain.BookingDraft{}
	d.cleared++
}

type recorder struct{ steps []string }

func (r *recorder) CheckoutTransition(step string) { r.steps = append(r.steps, step) }

type failingStore struct{ err error }

func (s failingStore) Get(context.Context, string) (*domain.CheckoutProgress, error) {
	return nil, s.err
}
func (s failingStore) Save(context.Context, string, domain.CheckoutProgress) error { return s.err }
func (s failingStore) Delete(context.Context, string) error                       { return s.err }

var t0 = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func completeDraft() domain.BookingDraft {
	return domain.BookingDraft{
		HotelID:    "h1",
		HotelName:  "Sea View",
		RoomID:     "r1",
		CheckIn:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		GuestCount: 2,
		TotalPrice: "232.40",
		Nonce:      "nonce-1",
	}
}

type fixture struct {
	store   *progress.MemoryStore
	drafts  *fakeDrafts
	clock   *fakeClock
	metrics *recorder
}

func newFixture() *fixture {
	return &fixture{
		store:   progress.NewMemoryStore(),
		drafts:  &fakeDrafts{draft: completeDraft()},
		clock:   &fakeClock{now: t0},
		metrics: &recorder{},
	}
}

func (f *fixture) machine() *Machine {
	return NewMachine(context.Background(), "user-1", f.store, f.drafts, Options{
		TTL:                24 * time.Hour,
		ConfirmationPrefix: "HOTEL",
		Clock:              f.clock,
		Digits:             func() int { return 48213 },
		Metrics:            f.metrics,
	}, logger.NewNop())
}

func fillGuest(t *testing.T, m *Machine) {
	t.Helper()
	g := validGuest()
	_, err := m.UpdateGuest(context.Background(), domain.GuestInfoPatch{
		FirstName: &g.FirstName,
		LastName:  &g.LastName,
		Email:     &g.Email,
		Phone:     &g.Phone,
	})
	require.NoError(t, err)
}

func TestMachine_StartsAtReview(t *testing.T) {
	f := newFixture()
	m := f.machine()

	st := m.State()
	assert.Equal(t, domain.StepReview, st.Step)
	assert.False(t, st.CanGoBack)
	assert.True(t, st.CanGoNext)
}

func TestMachine_NextFromReviewWithIncompleteDraftIsNoop(t *testing.T) {
	f := newFixture()
	f.drafts.draft.CheckOut = time.Time{}
	m := f.machine()

	st, err := m.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.StepReview, st.Step)
	assert.False(t, st.CanGoNext)
	assert.Empty(t, f.metrics.steps)
}

func TestMachine_HappyPath(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	m := f.machine()

	st, err := m.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StepGuestInfo, st.Step)

	fillGuest(t, m)

	st, err = m.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StepPayment, st.Step)

	saved, err := f.store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepPayment, saved.Step)
	assert.Equal(t, "a@b.com", saved.FormData.Email)

	st, err = m.CompletePayment(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StepConfirmation, st.Step)
	assert.Equal(t, "HOTEL-48213", st.ConfirmationNumber)
	require.NotNil(t, st.ConfirmedDraft)
	assert.Equal(t, "h1", st.ConfirmedDraft.HotelID)
	assert.False(t, st.CanGoBack)
	assert.False(t, st.CanGoNext)

	_, err = f.store.Get(ctx, "user-1")
	assert.ErrorIs(t, err, progress.ErrProgressNotFound)
	assert.Equal(t, 1, f.drafts.cleared)

	assert.Equal(t, []string{"Guest Info", "Payment", "Confirmation"}, f.metrics.steps)
}

func TestMachine_NextFromGuestInfoValidates(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	m := f.machine()
	_, err := m.Next(ctx)
	require.NoError(t, err)

	email := "a@b"
	_, err = m.UpdateGuest(ctx, domain.GuestInfoPatch{Email: &email})
	require.NoError(t, err)

	st, err := m.Next(ctx)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, msgEmailInvalid, verr.Fields["email"])
	assert.Contains(t, verr.Fields, "firstName")
	assert.Equal(t, domain.StepGuestInfo, st.Step)
}

func TestMachine_NextFromPaymentRequiresCapture(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	m := f.machine()
	_, _ = m.Next(ctx)
	fillGuest(t, m)
	_, _ = m.Next(ctx)

	st, err := m.Next(ctx)
	assert.ErrorIs(t, err, ErrPaymentRequired)
	assert.Equal(t, domain.StepPayment, st.Step)
}

func TestMachine_ConfirmationIsTerminal(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	m := f.machine()
	_, _ = m.Next(ctx)
	fillGuest(t, m)
	_, _ = m.Next(ctx)
	_, err := m.CompletePayment(ctx)
	require.NoError(t, err)

	_, err = m.Next(ctx)
	assert.ErrorIs(t, err, ErrTerminalStep)
	_, err = m.Back(ctx)
	assert.ErrorIs(t, err, ErrTerminalStep)
	_, err = m.Jump(ctx, domain.StepReview)
	assert.ErrorIs(t, err, ErrTerminalStep)
	_, err = m.UpdateGuest(ctx, domain.GuestInfoPatch{})
	assert.ErrorIs(t, err, ErrTerminalStep)
	_, err = m.CompletePayment(ctx)
	assert.ErrorIs(t, err, ErrNotAtPayment)
}

func TestMachine_CompletePaymentOnlyFromPayment(t *testing.T) {
	f := newFixture()
	m := f.machine()

	_, err := m.CompletePayment(context.Background())
	assert.ErrorIs(t, err, ErrNotAtPayment)
	assert.Equal(t, domain.StepReview, m.Step())
}

func TestMachine_Back(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	m := f.machine()

	st, err := m.Back(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StepReview, st.Step)

	_, _ = m.Next(ctx)
	st, err = m.Back(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StepReview, st.Step)
	assert.Equal(t, domain.StepGuestInfo, st.MaxReached)
}

func TestMachine_Jump(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	m := f.machine()
	_, _ = m.Next(ctx)
	fillGuest(t, m)
	_, _ = m.Next(ctx)

	st, err := m.Jump(ctx, domain.StepReview)
	require.NoError(t, err)
	assert.Equal(t, domain.StepReview, st.Step)

	st, err = m.Jump(ctx, domain.StepGuestInfo)
	require.NoError(t, err)
	assert.Equal(t, domain.StepGuestInfo, st.Step)

	_, err = m.Jump(ctx, domain.StepPayment)
	assert.ErrorIs(t, err, ErrStepNotReachable)

	_, err = m.Jump(ctx, domain.StepConfirmation)
	assert.ErrorIs(t, err, ErrStepNotReachable)

	_, err = m.Jump(ctx, domain.CheckoutStep(7))
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestMachine_JumpForwardRechecksGates(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	m := f.machine()
	_, _ = m.Next(ctx)
	fillGuest(t, m)
	_, _ = m.Next(ctx)
	_, _ = m.Jump(ctx, domain.StepReview)

	f.drafts.Clear()

	st, err := m.Jump(ctx, domain.StepGuestInfo)
	assert.ErrorIs(t, err, ErrDraftIncomplete)
	assert.Equal(t, domain.StepReview, st.Step)
}

func TestMachine_JumpNotAllowedToUnvisitedStep(t *testing.T) {
	f := newFixture()
	m := f.machine()

	_, err := m.Jump(context.Background(), domain.StepGuestInfo)
	assert.ErrorIs(t, err, ErrStepNotReachable)
}

func TestMachine_RestoresFreshProgress(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	require.NoError(t, f.store.Save(ctx, "user-1", domain.CheckoutProgress{
		Step:      domain.StepGuestInfo,
		FormData:  domain.GuestInfo{FirstName: "Ann", Email: "a@b.com"},
		Timestamp: t0.Add(-23 * time.Hour),
	}))

	m := f.machine()

	st := m.State()
	assert.Equal(t, domain.StepGuestInfo, st.Step)
	assert.Equal(t, "Ann", st.Guest.FirstName)
	assert.True(t, st.CanGoBack)
}

func TestMachine_DiscardsExpiredProgress(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	require.NoError(t, f.store.Save(ctx, "user-1", domain.CheckoutProgress{
		Step:      domain.StepPayment,
		FormData:  domain.GuestInfo{FirstName: "Ann"},
		Timestamp: t0.Add(-25 * time.Hour),
	}))

	m := f.machine()

	st := m.State()
	assert.Equal(t, domain.StepReview, st.Step)
	assert.True(t, st.Guest.IsEmpty())

	_, err := f.store.Get(ctx, "user-1")
	assert.ErrorIs(t, err, progress.ErrProgressNotFound)
}

func TestMachine_DiscardsConfirmationSnapshot(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	require.NoError(t, f.store.Save(ctx, "user-1", domain.CheckoutProgress{
		Step:      domain.StepConfirmation,
		Timestamp: t0,
	}))

	m := f.machine()
	assert.Equal(t, domain.StepReview, m.Step())
}

func TestMachine_PersistsGuestUpdates(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	m := f.machine()
	_, _ = m.Next(ctx)

	f.clock.now = t0.Add(time.Hour)
	name := "Bob"
	phone := "123-456-7890"
	_, err := m.UpdateGuest(ctx, domain.GuestInfoPatch{FirstName: &name, Phone: &phone})
	require.NoError(t, err)

	saved, err := f.store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Bob", saved.FormData.FirstName)
	assert.Equal(t, "1234567890", saved.FormData.Phone)
	assert.Equal(t, t0.Add(time.Hour), saved.Timestamp)
}

func TestMachine_StoreFailureDoesNotBlockTransitions(t *testing.T) {
	ctx := context.Background()
	store := failingStore{err: errors.New("redis down")}
	m := NewMachine(ctx, "user-1", store, &fakeDrafts{draft: completeDraft()}, Options{}, logger.NewNop())

	st, err := m.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StepGuestInfo, st.Step)
}

func TestMachine_Reset(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	m := f.machine()
	_, _ = m.Next(ctx)
	fillGuest(t, m)

	st := m.Reset(ctx)
	assert.Equal(t, domain.StepReview, st.Step)
	assert.Equal(t, domain.StepReview, st.MaxReached)
	assert.True(t, st.Guest.IsEmpty())
	assert.True(t, f.drafts.Get().IsEmpty())

	_, err := f.store.Get(ctx, "user-1")
	assert.ErrorIs(t, err, progress.ErrProgressNotFound)
}

func TestMachine_DefaultConfirmationNumberFormat(t *testing.T) {
	ctx := context.Background()
	store := progress.NewMemoryStore()
	m := NewMachine(ctx, "user-1", store, &fakeDrafts{draft: completeDraft()}, Options{}, logger.NewNop())
	_, _ = m.Next(ctx)
	fillGuest(t, m)
	_, _ = m.Next(ctx)

	st, err := m.CompletePayment(ctx)
	require.NoError(t, err)
	assert.Regexp(t, `^HOTEL-[1-9][0-9]{4}$`, st.ConfirmationNumber)
}
