package domain

import "time"

// BookingStatus represents the server-owned status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// AllStatuses список известных статусов бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// IsValid returns true if the status is one of the known statuses
func (s BookingStatus) IsValid() bool {
	for _, st := range AllStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Booking is a finalized booking as returned by the backend. Read-only for this service.
type Booking struct {
	ID         string
	HotelName  string
	RoomName   string
	RoomImage  string
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int
	Nights     int
	Status     BookingStatus
	TotalPrice float64
	Rating     int     // 0 = unrated
	Review     *string // nil = no review
}

// CanBeCancelled returns true if the client may request cancellation
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CanBeReviewed returns true if the client may attach a rating/review
func (b *Booking) CanBeReviewed() bool {
	return b.Status == StatusCompleted
}

// IsRated returns true if the guest has already rated the stay
func (b *Booking) IsRated() bool {
	return b.Rating > 0
}
