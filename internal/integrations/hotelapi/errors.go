package hotelapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound возвращается на 404 от бэкенда
	ErrNotFound = errors.New("hotelapi client: resource not found")

	// ErrUnauthorized возвращается на 401: токен отсутствует, истёк или отозван
	ErrUnauthorized = errors.New("hotelapi client: unauthorized")

	// ErrForbidden возвращается на 403
	ErrForbidden = errors.New("hotelapi client: forbidden")

	// ErrConflict возвращается на 409 (например, пользователь уже существует)
	ErrConflict = errors.New("hotelapi client: conflict")

	// ErrRejected возвращается на 400/422: бэкенд отклонил данные
	ErrRejected = errors.New("hotelapi client: request rejected")

	// ErrUnavailable возвращается при сетевых ошибках и 5xx
	ErrUnavailable = errors.New("hotelapi client: backend unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("hotelapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от бэкенда
	ErrInvalidResponse = errors.New("hotelapi client: invalid response")
)

// APIError ошибка бэкенда с текстом из тела ответа
// Unwrap отдаёт сентинел по статус-коду, поэтому работает errors.Is(err, ErrNotFound)
type APIError struct {
	Status  int
	Message string
	kind    error
}

// NewAPIError строит ошибку бэкенда, сентинел выбирается по статус-коду
func NewAPIError(status int, message string) *APIError {
	e := &APIError{Status: status, Message: message}
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		e.kind = ErrRejected
	case status == http.StatusUnauthorized:
		e.kind = ErrUnauthorized
	case status == http.StatusForbidden:
		e.kind = ErrForbidden
	case status == http.StatusNotFound:
		e.kind = ErrNotFound
	case status == http.StatusConflict:
		e.kind = ErrConflict
	case status >= http.StatusInternalServerError:
		e.kind = ErrUnavailable
	default:
		e.kind = ErrInvalidResponse
	}
	return e
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v: status %d", e.kind, e.Status)
	}
	return fmt.Sprintf("%v: status %d: %s", e.kind, e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// MessageOf возвращает текст ошибки бэкенда, если он есть
func MessageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
