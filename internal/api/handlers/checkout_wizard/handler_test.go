package checkout_wizard

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

const testUser = "user:42"

type nopBackend struct{}

func (nopBackend) CreateBooking(context.Context, hotelapi.BookingPayload) (*hotelapi.CreateBookingResponse, error) {
	return &hotelapi.CreateBookingResponse{PaypalOrderID: "PP-1"}, nil
}

func (nopBackend) CaptureOrder(context.Context, string) (*hotelapi.CaptureResponse, error) {
	return &hotelapi.CaptureResponse{Status: "success"}, nil
}

type wizardTest struct {
	router   *mux.Router
	sessions *session.Registry
}

func newWizardTest() *wizardTest {
	reg := session.NewRegistry(progress.NewMemoryStore(), nopBackend{}, nil, session.Config{}, logger.NewNop())
	h := NewHandler(reg, logger.NewNop())

	r := mux.NewRouter()
	r.HandleFunc("/checkout", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/checkout/guest", h.UpdateGuest).Methods(http.MethodPut)
	r.HandleFunc("/checkout/next", h.Next).Methods(http.MethodPost)
	r.HandleFunc("/checkout/back", h.Back).Methods(http.MethodPost)
	r.HandleFunc("/checkout/jump", h.Jump).Methods(http.MethodPost)
	r.HandleFunc("/checkout", h.Reset).Methods(http.MethodDelete)

	return &wizardTest{router: r, sessions: reg}
}

func (wt *wizardTest) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	req = req.WithContext(handlers.WithUserKey(req.Context(), testUser))

	rec := httptest.NewRecorder()
	wt.router.ServeHTTP(rec, req)
	return rec
}

func (wt *wizardTest) selectRoom() {
	hotelID, roomID, nonce := "h-1", "r-1", "nonce-1"
	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)
	wt.sessions.Get(context.Background(), testUser).Draft.Set(domain.DraftPatch{
		HotelID:  &hotelID,
		RoomID:   &roomID,
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
		Nonce:    &nonce,
	})
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) View {
	t.Helper()
	var v View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestWizard_NextWithoutDraftStaysOnReview(t *testing.T) {
	wt := newWizardTest()

	rec := wt.do(t, http.MethodPost, "/checkout/next", "")

	require.Equal(t, http.StatusOK, rec.Code)
	v := decodeView(t, rec)
	assert.Equal(t, int(domain.StepReview), v.Step)
	assert.Nil(t, v.Draft)
	assert.Equal(t, domain.StepNames, v.Steps)
}

func TestWizard_GuestInfoValidation(t *testing.T) {
	wt := newWizardTest()
	wt.selectRoom()

	rec := wt.do(t, http.MethodPost, "/checkout/next", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int(domain.StepGuestInfo), decodeView(t, rec).Step)

	rec = wt.do(t, http.MethodPut, "/checkout/guest", `{"firstName":"Asha","email":"not-an-email"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = wt.do(t, http.MethodPost, "/checkout/next", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var n handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))
	assert.Equal(t, handlers.ActionFixFields, n.Action)
	assert.Contains(t, n.Fields, "email")
	assert.Contains(t, n.Fields, "lastName")
	assert.Contains(t, n.Fields, "phone")
}

func TestWizard_FullGuestInfoReachesPayment(t *testing.T) {
	wt := newWizardTest()
	wt.selectRoom()

	wt.do(t, http.MethodPost, "/checkout/next", "")
	wt.do(t, http.MethodPut, "/checkout/guest",
		`{"firstName":"Asha","lastName":"Rao","email":"asha@example.com","phone":"(987) 654-3210"}`)
	rec := wt.do(t, http.MethodPost, "/checkout/next", "")

	require.Equal(t, http.StatusOK, rec.Code)
	v := decodeView(t, rec)
	assert.Equal(t, int(domain.StepPayment), v.Step)
	assert.Equal(t, "9876543210", v.Guest.Phone)

	// С Payment вперёд только через оплату
	rec = wt.do(t, http.MethodPost, "/checkout/next", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Прыжки только на пройденные шаги
	rec = wt.do(t, http.MethodPost, "/checkout/jump", `{"step":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int(domain.StepReview), decodeView(t, rec).Step)

	rec = wt.do(t, http.MethodPost, "/checkout/jump", `{"step":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	v = decodeView(t, rec)
	assert.Equal(t, int(domain.StepGuestInfo), v.Step)
	assert.Equal(t, int(domain.StepPayment), v.MaxReached)

	rec = wt.do(t, http.MethodPost, "/checkout/jump", `{"step":2}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestWizard_JumpErrors(t *testing.T) {
	wt := newWizardTest()

	rec := wt.do(t, http.MethodPost, "/checkout/jump", `{"step":3}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = wt.do(t, http.MethodPost, "/checkout/jump", `{"step":9}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = wt.do(t, http.MethodPost, "/checkout/jump", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWizard_ResetClearsEverything(t *testing.T) {
	wt := newWizardTest()
	wt.selectRoom()
	wt.do(t, http.MethodPost, "/checkout/next", "")
	wt.do(t, http.MethodPut, "/checkout/guest", `{"firstName":"Asha"}`)

	rec := wt.do(t, http.MethodDelete, "/checkout", "")

	require.Equal(t, http.StatusOK, rec.Code)
	v := decodeView(t, rec)
	assert.Equal(t, int(domain.StepReview), v.Step)
	assert.Equal(t, int(domain.StepReview), v.MaxReached)
	assert.True(t, v.Guest.IsEmpty())
	assert.Nil(t, v.Draft)
}

func TestWizard_RequiresUser(t *testing.T) {
	wt := newWizardTest()
	rec := httptest.NewRecorder()
	wt.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkout", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
