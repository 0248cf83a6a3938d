package select_room

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers"
	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/pricing"
	selectRoom "github.com/m04kA/SMC-HotelCheckout/internal/usecase/select_room"
	"github.com/m04kA/SMC-HotelCheckout/pkg/logger"
)

const validBody = `{"hotelId":"h1","roomId":"r1","checkIn":"2025-06-01","checkOut":"2025-06-03","guests":2}`

type fakeUseCase struct {
	resp *selectRoom.Response
	err  error
	got  *selectRoom.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *selectRoom.Request) (*selectRoom.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/checkout/draft", strings.NewReader(body))
	req = req.WithContext(handlers.WithUserKey(req.Context(), "user:42"))
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &selectRoom.Response{
		Draft: domain.BookingDraft{
			HotelID:    "h1",
			RoomID:     "r1",
			CheckIn:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			CheckOut:   time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
			GuestCount: 2,
			Nights:     2,
			TotalPrice: "232.40",
		},
		Price: pricing.Formatted{Total: "232.40"},
	}}

	rec := serve(uc, validBody)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "user:42", uc.got.UserKey)
	assert.Equal(t, "h1", uc.got.HotelID)
	assert.Equal(t, 2, uc.got.Guests)
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), uc.got.CheckOut)

	var body struct {
		Draft struct {
			HotelID    string `json:"hotelId"`
			CheckIn    string `json:"checkIn"`
			TotalPrice string `json:"totalPrice"`
		} `json:"draft"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "h1", body.Draft.HotelID)
	assert.Equal(t, "2025-06-01", body.Draft.CheckIn)
	assert.Equal(t, "232.40", body.Draft.TotalPrice)
}

func TestHandle_BadDatesNeverReachUseCase(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(uc, `{"hotelId":"h1","roomId":"r1","checkIn":"06/01/2025","checkOut":"2025-06-03"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Nil(t, uc.got)
	var n handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))
	assert.Equal(t, handlers.ActionFixFields, n.Action)
	assert.Contains(t, n.Fields, "checkIn")
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
			name:       "room not found",
			err:        selectRoom.ErrRoomNotFound,
			wantStatus: http.StatusNotFound,
			wantSource: handlers.SourceValidation,
		},
		{
			name:       "hotel not found",
			err:        selectRoom.ErrHotelNotFound,
			wantStatus: http.StatusNotFound,
			wantSource: handlers.SourceValidation,
		},
		{
			name:       "check-out not after check-in",
			err:        selectRoom.ErrInvalidDate,
			wantStatus: http.StatusUnprocessableEntity,
			wantSource: handlers.SourceValidation,
			wantAction: handlers.ActionFixFields,
			wantField:  "checkOut",
		},
		{
			name:       "too many guests",
			err:        selectRoom.ErrTooManyGuests,
			wantStatus: http.StatusUnprocessableEntity,
			wantSource: handlers.SourceValidation,
			wantAction: handlers.ActionFixFields,
			wantField:  "guests",
		},
		{
			name:       "invalid room rate",
			err:        selectRoom.ErrInvalidRoomRate,
			wantStatus: http.StatusConflict,
			wantSource: handlers.SourceValidation,
		},
		{
			name:       "backend unavailable",
			err:        selectRoom.ErrUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantSource: handlers.SourceBackend,
			wantAction: handlers.ActionRetry,
		},
		{
			name:       "unexpected error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantSource: handlers.SourceBackend,
			wantAction: handlers.ActionRetry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, validBody)

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
