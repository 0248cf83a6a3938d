package download_invoice

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/bookings"
)

const (
	msgInvalidBookingID = "Invalid booking ID"
	msgNotFound         = "Invoice not found"
	msgSignInRequired   = "Please sign in to download invoices"
	msgUnavailable      = "Invoice is unavailable right now. Please try again."

	defaultContentType = "application/pdf"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/invoice
// PDF передаётся потоком, без буферизации в памяти
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := strings.TrimSpace(mux.Vars(r)["bookingId"])
	if bookingID == "" {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	invoice, err := h.service.DownloadInvoice(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgSignInRequired)

		case errors.Is(err, bookings.ErrUnavailable):
			handlers.RespondUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("GET /bookings/{id}/invoice - Failed to download invoice: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}
	defer invoice.Body.Close()

	contentType := invoice.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}
	filename := invoice.Filename
	if filename == "" {
		filename = fmt.Sprintf("invoice-%s.pdf", bookingID)
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if invoice.ContentLength > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(invoice.ContentLength, 10))
	}
	w.WriteHeader(http.StatusOK)

	n, err := io.Copy(w, invoice.Body)
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/invoice - Stream interrupted: booking_id=%s, written=%d, error=%v", bookingID, n, err)
		return
	}
	h.logger.Info("GET /bookings/{id}/invoice - Invoice sent: booking_id=%s, bytes=%d", bookingID, n)
}
