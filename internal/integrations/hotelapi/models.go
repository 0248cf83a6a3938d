package hotelapi

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"time"
)

// Hotel модель отеля из бэкенда
type Hotel struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Country       string   `json:"country"`
	Zip           string   `json:"zip"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	IsFeatured    bool     `json:"is_featured"`
	GalleryImages []string `json:"gallery_images"`
}

// RoomFeatures удобства комнаты
type RoomFeatures struct {
	AirConditioning  bool `json:"air_conditioning"`
	AttachedBathroom bool `json:"attached_bathroom"`
	Balcony          bool `json:"balcony"`
	DoubleBed        bool `json:"double_bed"`
	Geyser           bool `json:"geyser"`
	Heating          bool `json:"heating"`
	KingBed          bool `json:"king_bed"`
	RoomService      bool `json:"room_service"`
	TV               bool `json:"tv"`
}

// Room модель комнаты из бэкенда
type Room struct {
	ID           string       `json:"_id"`
	HotelID      string       `json:"hotel_id"`
	Name         string       `json:"name"`
	RoomNumber   int          `json:"room_number"`
	RoomType     string       `json:"room_type"`
	Description  string       `json:"description"`
	Image        string       `json:"image"`
	Price        Amount       `json:"price"`
	Discount     Amount       `json:"discount"`
	Capacity     int          `json:"capacity"`
	Adults       int          `json:"adults"`
	Children     int          `json:"children"`
	Availability bool         `json:"availability"`
	Features     RoomFeatures `json:"features"`
}

// SearchParams параметры поиска отелей
type SearchParams struct {
	Destination string
	CheckIn     time.Time
	CheckOut    time.Time
	Guests      int
}

// BookingPayload тело POST /bookings
type BookingPayload struct {
	HotelID              string `json:"hotel_id"`
	RoomID               string `json:"room_id"`
	CheckIn              string `json:"check_in"`
	CheckOut             string `json:"check_out"`
	Guests               int    `json:"guests"`
	RoomPrice            string `json:"roomPrice"`
	Nights               int    `json:"nights"`
	TotalPrice           string `json:"total_price"`
	GuestName            string `json:"guest_name"`
	GuestEmail           string `json:"guest_email"`
	GuestPhone           string `json:"guest_phone"`
	GuestSpecialRequests string `json:"guest_special_requests"`
	GuestIsSubscribed    bool   `json:"guest_is_subscribed"`
	IdempotencyKey       string `json:"idempotency_key"`
}

type bookingEnvelope struct {
	Booking BookingPayload `json:"booking"`
}

// CreateBookingResponse ответ POST /bookings
type CreateBookingResponse struct {
	PaypalOrderID string `json:"paypal_order_id"`
}

// Payment данные платежа после capture
type Payment struct {
	TransactionID string `json:"transaction_id"`
	Amount        Amount `json:"amount"`
	PaymentStatus string `json:"payment_status"`
	PaymentDate   string `json:"payment_date"`
}

// CaptureResponse ответ POST /orders/{id}/capture
type CaptureResponse struct {
	Status  string   `json:"status"`
	Payment *Payment `json:"payment"`
	Message string   `json:"message,omitempty"`
}

// Succeeded returns true only for a confirmed capture carrying payment details
func (r *CaptureResponse) Succeeded() bool {
	return r.Status == "success" && r.Payment != nil
}

// BookingRef вложенная ссылка на отель или комнату в бронировании
type BookingRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Booking запись бронирования из GET /bookings
type Booking struct {
	ID         string     `json:"_id"`
	Hotel      BookingRef `json:"hotel"`
	Room       BookingRef `json:"room"`
	CheckIn    string     `json:"check_in"`
	CheckOut   string     `json:"check_out"`
	Guests     int        `json:"guests"`
	Nights     int        `json:"nights"`
	Status     string     `json:"status"`
	TotalPrice Amount     `json:"total_price"`
	Rating     int        `json:"rating"`
	Review     *string    `json:"review"`
}

// ReviewPayload тело PUT /bookings/{id}/review
type ReviewPayload struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type reviewEnvelope struct {
	Review ReviewPayload `json:"review"`
}

// User профиль пользователя
type User struct {
	ID           json.Number `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	MobileNumber string      `json:"mobile_number"`
	Bio          string      `json:"bio"`
	ProfileImage string      `json:"profile_image"`
}

// Credentials email/пароль для входа
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupPayload данные регистрации
type SignupPayload struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation,omitempty"`
}

// ProfilePayload изменяемые поля профиля
type ProfilePayload struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	MobileNumber *string `json:"mobile_number,omitempty"`
	Bio          *string `json:"bio,omitempty"`
}

// AuthResponse ответ POST /login
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Invoice PDF бронирования, Body закрывает вызывающий код
type Invoice struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
	Filename      string
}

// ErrorResponse модель ошибки от бэкенда
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Amount денежное значение, которое бэкенд отдаёт числом или строкой
type Amount float64

// UnmarshalJSON принимает 12.5, "12.50" и null
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*a = Amount(v)
	return nil
}
