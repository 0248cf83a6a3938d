package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/bookings/models"
)

// Service контроллер списка бронирований пользователя
// Список всегда перечитывается целиком, фильтрация и сортировка выполняются локально
type Service struct {
	client BackendClient
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(client BackendClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Fetch получает все бронирования пользователя
func (s *Service) Fetch(ctx context.Context) ([]domain.Booking, error) {
	raw, err := s.client.ListBookings(ctx)
	if err != nil {
		s.logger.Error("Fetch: backend error: %v", err)
		return nil, mapBackendError("Fetch", err)
	}

	bookings := make([]domain.Booking, 0, len(raw))
	for _, b := range raw {
		bookings = append(bookings, toDomain(b))
	}
	return bookings, nil
}

// List получает бронирования, фильтрует по статусу и сортирует
func (s *Service) List(ctx context.Context, req models.ListRequest) (*models.BookingListResponse, error) {
	if err := req.Normalize(); err != nil {
		s.logger.Warn("List: invalid request status=%s sort=%s: %v", req.Status, req.Sort, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	result := models.SortBookings(models.FilterByStatus(bookings, req.Status), req.Sort)
	s.logger.Info("List: %d of %d bookings, status=%s, sort=%s", len(result), len(bookings), req.Status, req.Sort)
	return models.FromDomainBookingList(result, req), nil
}

// Cancel отменяет бронирование и перечитывает список
// Отменить можно только подтверждённое бронирование
func (s *Service) Cancel(ctx context.Context, bookingID string) ([]domain.Booking, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", bookingID)

	booking, err := s.find(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	if err := s.client.CancelBooking(ctx, bookingID); err != nil {
		s.logger.Error("Cancel: backend error for booking id=%s: %v", bookingID, err)
		return nil, mapBackendError("Cancel", err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return s.Fetch(ctx)
}

// SubmitReview создаёт или обновляет отзыв о завершённом проживании и перечитывает список
func (s *Service) SubmitReview(ctx context.Context, bookingID string, req models.ReviewRequest) ([]domain.Booking, error) {
	s.logger.Info("SubmitReview: booking id=%s, rating=%d", bookingID, req.Rating)

	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return nil, ErrInvalidRating
	}
	text := strings.TrimSpace(req.Text)
	if utf8.RuneCountInString(text) > domain.MaxReviewLength {
		return nil, ErrReviewTooLong
	}

	booking, err := s.find(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeReviewed() {
		s.logger.Warn("SubmitReview: booking id=%s cannot be reviewed, status=%s", bookingID, booking.Status)
		return nil, ErrCannotReview
	}

	review := hotelapi.ReviewPayload{Rating: req.Rating, Comment: text}
	if err := s.client.UpsertReview(ctx, bookingID, review); err != nil {
		s.logger.Error("SubmitReview: backend error for booking id=%s: %v", bookingID, err)
		return nil, mapBackendError("SubmitReview", err)
	}

	if booking.IsRated() {
		s.logger.Info("SubmitReview: updated review for booking id=%s", bookingID)
	} else {
		s.logger.Info("SubmitReview: created review for booking id=%s", bookingID)
	}
	return s.Fetch(ctx)
}

// DownloadInvoice возвращает PDF бронирования, Body закрывает вызывающий код
func (s *Service) DownloadInvoice(ctx context.Context, bookingID string) (*hotelapi.Invoice, error) {
	invoice, err := s.client.DownloadInvoice(ctx, bookingID)
	if err != nil {
		s.logger.Error("DownloadInvoice: backend error for booking id=%s: %v", bookingID, err)
		return nil, mapBackendError("DownloadInvoice", err)
	}
	return invoice, nil
}

// Вспомогательные методы

// find ищет бронирование в свежем списке пользователя
func (s *Service) find(ctx context.Context, bookingID string) (*domain.Booking, error) {
	bookings, err := s.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == bookingID {
			return &bookings[i], nil
		}
	}
	s.logger.Warn("find: booking id=%s not found", bookingID)
	return nil, ErrBookingNotFound
}

func mapBackendError(op string, err error) error {
	switch {
	case errors.Is(err, hotelapi.ErrUnauthorized):
		return ErrUnauthorized
	case errors.Is(err, hotelapi.ErrNotFound):
		return ErrBookingNotFound
	case errors.Is(err, hotelapi.ErrRejected), errors.Is(err, hotelapi.ErrConflict):
		return fmt.Errorf("%w: %s - %v", ErrInvalidInput, op, err)
	case errors.Is(err, hotelapi.ErrUnavailable):
		return fmt.Errorf("%w: %s - %v", ErrUnavailable, op, err)
	default:
		return fmt.Errorf("%w: %s - backend error: %v", ErrInternal, op, err)
	}
}

func toDomain(b hotelapi.Booking) domain.Booking {
	return domain.Booking{
		ID:         b.ID,
		HotelName:  b.Hotel.Name,
		RoomName:   b.Room.Name,
		RoomImage:  b.Room.Image,
		CheckIn:    parseDate(b.CheckIn),
		CheckOut:   parseDate(b.CheckOut),
		GuestCount: b.Guests,
		Nights:     b.Nights,
		Status:     domain.BookingStatus(strings.ToLower(b.Status)),
		TotalPrice: float64(b.TotalPrice),
		Rating:     b.Rating,
		Review:     b.Review,
	}
}

// parseDate принимает "2025-06-01" и RFC3339, нераспознанная дата становится нулевой
func parseDate(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse(domain.DateFormat, s); err == nil {
		return t
	}
	return time.Time{}
}
