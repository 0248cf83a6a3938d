package pricing

import "errors"

var (
	// ErrMissingDates возвращается, когда не указана одна из дат проживания
	ErrMissingDates = errors.New("pricing: check-in and check-out dates are required")

	// ErrInvalidDateRange возвращается, когда выезд не позже заезда
	ErrInvalidDateRange = errors.New("pricing: check-out must be after check-in")

	// ErrInvalidPrice возвращается при отрицательной цене за ночь
	ErrInvalidPrice = errors.New("pricing: price per night must not be negative")

	// ErrInvalidDiscount возвращается при скидке вне диапазона [0, 100]
	ErrInvalidDiscount = errors.New("pricing: discount must be between 0 and 100")
)
