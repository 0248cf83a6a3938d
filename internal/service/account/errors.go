package account

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserExists возвращается при регистрации на занятый email
	ErrUserExists = errors.New("user already exists")

	// ErrUnauthorized возвращается, когда бэкенд не принял токен пользователя
	ErrUnauthorized = errors.New("sign in required")

	// ErrUnsupportedImage возвращается для аватара не в формате jpg, png, gif или webp
	ErrUnsupportedImage = errors.New("unsupported image type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnavailable возвращается при недоступности бэкенда
	ErrUnavailable = errors.New("account backend unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
