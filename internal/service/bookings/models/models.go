package models

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном фильтре статуса
	ErrInvalidStatus = errors.New("invalid booking status filter")

	// ErrInvalidSort возвращается при неизвестном ключе сортировки
	ErrInvalidSort = errors.New("invalid booking sort key")
)

// StatusAll фильтр, пропускающий все бронирования
const StatusAll = "all"

// SortKey ключ клиентской сортировки
type SortKey string

const (
	SortDateDesc  SortKey = "date-desc"
	SortDateAsc   SortKey = "date-asc"
	SortPriceDesc SortKey = "price-desc"
	SortPriceAsc  SortKey = "price-asc"

	// DefaultSort сортировка по умолчанию: сначала поздние заезды
	DefaultSort = SortDateDesc
)

// Request модели

// ListRequest параметры списка бронирований
type ListRequest struct {
	Status string  `json:"status"` // all | pending | confirmed | completed | cancelled
	Sort   SortKey `json:"sort"`
}

// Normalize подставляет значения по умолчанию и проверяет параметры
func (r *ListRequest) Normalize() error {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if r.Status == "" {
		r.Status = StatusAll
	}
	if r.Status != StatusAll && !domain.BookingStatus(r.Status).IsValid() {
		return ErrInvalidStatus
	}

	if r.Sort == "" {
		r.Sort = DefaultSort
	}
	switch r.Sort {
	case SortDateDesc, SortDateAsc, SortPriceDesc, SortPriceAsc:
	default:
		return ErrInvalidSort
	}
	return nil
}

// ReviewRequest оценка и отзыв о завершённом проживании
type ReviewRequest struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// Фильтрация и сортировка

// FilterByStatus возвращает бронирования с указанным статусом ("all" пропускает все)
func FilterByStatus(bookings []domain.Booking, status string) []domain.Booking {
	out := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if status == StatusAll || string(b.Status) == status {
			out = append(out, b)
		}
	}
	return out
}

// SortBookings сортирует копию списка, равные элементы сохраняют исходный порядок
func SortBookings(bookings []domain.Booking, key SortKey) []domain.Booking {
	out := make([]domain.Booking, len(bookings))
	copy(out, bookings)

	var less func(i, j int) bool
	switch key {
	case SortDateAsc:
		less = func(i, j int) bool { return out[i].CheckIn.Before(out[j].CheckIn) }
	case SortPriceDesc:
		less = func(i, j int) bool { return out[i].TotalPrice > out[j].TotalPrice }
	case SortPriceAsc:
		less = func(i, j int) bool { return out[i].TotalPrice < out[j].TotalPrice }
	default:
		less = func(i, j int) bool { return out[i].CheckIn.After(out[j].CheckIn) }
	}

	sort.SliceStable(out, less)
	return out
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          string  `json:"id"`
	HotelName   string  `json:"hotelName"`
	RoomName    string  `json:"roomName"`
	RoomImage   string  `json:"roomImage"`
	CheckIn     string  `json:"checkIn"`  // "2025-06-01"
	CheckOut    string  `json:"checkOut"` // "2025-06-04"
	GuestCount  int     `json:"guestCount"`
	Nights      int     `json:"nights"`
	Status      string  `json:"status"`
	TotalPrice  float64 `json:"totalPrice"`
	Rating      int     `json:"rating"`
	Review      *string `json:"review,omitempty"`
	Cancellable bool    `json:"cancellable"`
	Reviewable  bool    `json:"reviewable"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Status   string            `json:"status"`
	Sort     SortKey           `json:"sort"`
	Total    int               `json:"total"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		HotelName:   b.HotelName,
		RoomName:    b.RoomName,
		RoomImage:   b.RoomImage,
		CheckIn:     formatDate(b.CheckIn),
		CheckOut:    formatDate(b.CheckOut),
		GuestCount:  b.GuestCount,
		Nights:      b.Nights,
		Status:      string(b.Status),
		TotalPrice:  b.TotalPrice,
		Rating:      b.Rating,
		Review:      b.Review,
		Cancellable: b.CanBeCancelled(),
		Reviewable:  b.CanBeReviewed(),
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []domain.Booking, req ListRequest) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
		Status:   req.Status,
		Sort:     req.Sort,
		Total:    len(bookings),
	}
	for i, b := range bookings {
		resp.Bookings[i] = FromDomainBooking(b)
	}
	return resp
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateFormat)
}
