package submit_review

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers"
	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/bookings"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/bookings/models"
	"github.com/m04kA/SMC-HotelCheckout/pkg/logger"
)

type fakeService struct {
	list   []domain.Booking
	err    error
	called bool
	gotID  string
	gotReq models.ReviewRequest
}

func (f *fakeService) SubmitReview(_ context.Context, bookingID string, req models.ReviewRequest) ([]domain.Booking, error) {
	f.called = true
	f.gotID = bookingID
	f.gotReq = req
	return f.list, f.err
}

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}/review", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPut)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/bookings/b-7/review", strings.NewReader(body)))
	return rec
}

func TestHandle_Success(t *testing.T) {
	review := "Great stay"
	svc := &fakeService{list: []domain.Booking{
		{ID: "b-7", Status: domain.StatusCompleted, Rating: 5, Review: &review},
	}}

	rec := serve(svc, `{"rating":5,"review":"Great stay"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "b-7", svc.gotID)
	assert.Equal(t, models.ReviewRequest{Rating: 5, Text: "Great stay"}, svc.gotReq)

	var body SubmitReviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, msgReviewSaved, body.Message)
	require.Len(t, body.Bookings.Bookings, 1)
	assert.Equal(t, 5, body.Bookings.Bookings[0].Rating)
}

func TestHandle_InvalidBody(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, `{"rating":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, svc.called)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantSource string
		wantAction string
		wantField  string
	}{
		{
			name:       "rating out of range",
			err:        bookings.ErrInvalidRating,
			wantStatus: http.StatusUnprocessableEntity,
			wantSource: handlers.SourceValidation,
			wantAction: handlers.ActionFixFields,
			wantField:  "rating",
		},
		{
			name:       "review too long",
			err:        bookings.ErrReviewTooLong,
			wantStatus: http.StatusUnprocessableEntity,
			wantSource: handlers.SourceValidation,
			wantAction: handlers.ActionFixFields,
			wantField:  "review",
		},
		{
			name:       "booking not found",
			err:        bookings.ErrBookingNotFound,
			wantStatus: http.StatusNotFound,
			wantSource: handlers.SourceValidation,
		},
		{
			name:       "stay not completed",
			err:        bookings.ErrCannotReview,
			wantStatus: http.StatusConflict,
			wantSource: handlers.SourceValidation,
		},
		{
			name:       "token rejected",
			err:        bookings.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantSource: handlers.SourceAuth,
			wantAction: handlers.ActionSignIn,
		},
		{
			name:       "backend unavailable",
			err:        bookings.ErrUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantSource: handlers.SourceBackend,
			wantAction: handlers.ActionRetry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, `{"rating":4,"review":"ok"}`)

			require.Equal(t, tt.wantStatus, rec.Code)
			var n handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))
			assert.Equal(t, tt.wantSource, n.Source)
			assert.Equal(t, tt.wantAction, n.Action)
			if tt.wantField != "" {
				assert.Contains(t, n.Fields, tt.wantField)
			}
		})
	}
}
