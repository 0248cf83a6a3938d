package search_hotels

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах поиска
	ErrInvalidInput = errors.New("search_hotels: invalid input data")

	// ErrInvalidDate возвращается, когда заезд в прошлом или выезд не позже заезда
	ErrInvalidDate = errors.New("search_hotels: invalid stay dates")

	// ErrUnavailable возвращается при недоступности бэкенда
	ErrUnavailable = errors.New("search_hotels: backend unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_hotels: internal error")
)
