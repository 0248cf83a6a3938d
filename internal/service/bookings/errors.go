package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel возвращается, когда бронирование не в статусе confirmed
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrCannotReview возвращается, когда бронирование не в статусе completed
	ErrCannotReview = errors.New("booking cannot be reviewed")

	// ErrInvalidRating возвращается при оценке вне диапазона 1..5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrReviewTooLong возвращается при слишком длинном тексте отзыва
	ErrReviewTooLong = errors.New("review text is too long")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnauthorized возвращается, когда бэкенд не принял токен пользователя
	ErrUnauthorized = errors.New("sign in required")

	// ErrUnavailable возвращается при недоступности бэкенда
	ErrUnavailable = errors.New("bookings backend unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
