package hotelapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// CreateBooking POST /bookings
// Бэкенд создаёт бронирование и заказ у платёжного провайдера
func (c *Client) CreateBooking(ctx context.Context, payload BookingPayload) (*CreateBookingResponse, error) {
	var resp CreateBookingResponse
	if err := c.doJSON(ctx, http.MethodPost, "/bookings", bookingEnvelope{Booking: payload}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CaptureOrder POST /orders/{orderId}/capture
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*CaptureResponse, error) {
	var resp CaptureResponse
	path := fmt.Sprintf("/orders/%s/capture", url.PathEscape(orderID))
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListBookings GET /bookings
func (c *Client) ListBookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := c.doJSON(ctx, http.MethodGet, "/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []Booking{}
	}
	return bookings, nil
}

// CancelBooking PUT /bookings/{id}/cancel
func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	path := fmt.Sprintf("/bookings/%s/cancel", url.PathEscape(bookingID))
	return c.doJSON(ctx, http.MethodPut, path, nil, nil)
}

// UpsertReview PUT /bookings/{id}/review
// Создаёт отзыв или заменяет существующий
func (c *Client) UpsertReview(ctx context.Context, bookingID string, review ReviewPayload) error {
	path := fmt.Sprintf("/bookings/%s/review", url.PathEscape(bookingID))
	return c.doJSON(ctx, http.MethodPut, path, reviewEnvelope{Review: review}, nil)
}

// DownloadInvoice GET /bookings/{id}/download_pdf
func (c *Client) DownloadInvoice(ctx context.Context, bookingID string) (*Invoice, error) {
	path := fmt.Sprintf("/bookings/%s/download_pdf", url.PathEscape(bookingID))
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/pdf"
	}

	return &Invoice{
		Body:          resp.Body,
		ContentType:   contentType,
		ContentLength: resp.ContentLength,
		Filename:      "booking-" + bookingID + ".pdf",
	}, nil
}

// FormatPrice форматирует цену для полей бэкенда, которые ожидают строку
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
