package domain

import "time"

// Pricing constants
const (
	// GSTRate ставка налога, применяемая к цене после скидки
	GSTRate = 0.18
	// PlatformFee фиксированный сбор платформы с каждого бронирования
	PlatformFee = 20.0
	// MaxDiscountPercent верхняя граница скидки комнаты
	MaxDiscountPercent = 100.0
)

// Checkout constants
const (
	// ProgressTTL срок жизни сохранённого прогресса checkout
	ProgressTTL = 24 * time.Hour
	// DefaultConfirmationPrefix префикс номера подтверждения (HOTEL-48213)
	DefaultConfirmationPrefix = "HOTEL"
	// PhoneDigits количество цифр в телефоне гостя
	PhoneDigits = 10
	// DefaultGuestCount количество гостей по умолчанию
	DefaultGuestCount = 1
)

// Review constants
const (
	MinRating = 1
	MaxRating = 5
	// MaxReviewLength ограничение длины текста отзыва
	MaxReviewLength = 2000
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
