package select_room

import "errors"

var (
	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("select_room: hotel not found")

	// ErrRoomNotFound возвращается, когда комната не найдена в отеле
	ErrRoomNotFound = errors.New("select_room: room not found")

	// ErrInvalidDate возвращается при отсутствующих датах или выезде не позже заезда
	ErrInvalidDate = errors.New("select_room: invalid stay dates")

	// ErrTooManyGuests возвращается, когда гостей больше вместимости комнаты
	ErrTooManyGuests = errors.New("select_room: guest count exceeds room capacity")

	// ErrInvalidRoomRate возвращается, когда бэкенд отдал некорректную цену или скидку
	ErrInvalidRoomRate = errors.New("select_room: room has an invalid rate")

	// ErrUnavailable возвращается при недоступности бэкенда
	ErrUnavailable = errors.New("select_room: backend unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("select_room: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("select_room: internal error")
)
