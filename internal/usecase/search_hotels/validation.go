package search_hotels

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	req.Destination = strings.TrimSpace(req.Destination)

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed on %s", ErrInvalidInput, strings.ToLower(fe.Field()), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Проверяем, что даты заданы
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	return nil
}

// validateDates проверяет, что заезд не в прошлом и выезд позже заезда
func validateDates(checkIn, checkOut, now time.Time) error {
	if isDateInPast(checkIn, now) {
		return fmt.Errorf("%w: check-in date is in the past", ErrInvalidDate)
	}
	if !checkOut.After(checkIn) {
		return fmt.Errorf("%w: check-out must be after check-in", ErrInvalidDate)
	}
	return nil
}

// isDateInPast сравнивает только даты, без времени
func isDateInPast(date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(today)
}
