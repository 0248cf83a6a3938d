package account

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Service аккаунт пользователя: вход, регистрация, профиль, аватар, выход
type Service struct {
	client   BackendClient
	sessions SessionStore
	validate *validator.Validate
	logger   Logger
}

// NewService создает новый экземпляр сервиса аккаунта
func NewService(client BackendClient, sessions SessionStore, logger Logger) *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return len(domain.DigitsOnly(fl.Field().String())) == domain.PhoneDigits
	})

	return &Service{
		client:   client,
		sessions: sessions,
		validate: v,
		logger:   logger,
	}
}

// Login проверяет учётные данные в бэкенде и возвращает пользователя с токеном
func (s *Service) Login(ctx context.Context, req LoginRequest) (*hotelapi.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.check(req); err != nil {
		return nil, err
	}

	resp, err := s.client.Login(ctx, hotelapi.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		if errors.Is(err, hotelapi.ErrUnauthorized) || errors.Is(err, hotelapi.ErrRejected) || errors.Is(err, hotelapi.ErrNotFound) {
			s.logger.Warn("Login: rejected for email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		return nil, s.mapError("Login", err)
	}

	s.logger.Info("Login: user id=%s signed in", resp.User.ID)
	return resp, nil
}

// Signup регистрирует пользователя
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*hotelapi.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.check(req); err != nil {
		return nil, err
	}

	user, err := s.client.Signup(ctx, hotelapi.SignupPayload{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		if errors.Is(err, hotelapi.ErrConflict) {
			s.logger.Warn("Signup: email=%s already registered", req.Email)
			return nil, ErrUserExists
		}
		if errors.Is(err, hotelapi.ErrRejected) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidInput, hotelapi.MessageOf(err))
		}
		return nil, s.mapError("Signup", err)
	}

	s.logger.Info("Signup: user id=%s registered", user.ID)
	return user, nil
}

// Profile получает профиль текущего пользователя
func (s *Service) Profile(ctx context.Context) (*hotelapi.User, error) {
	user, err := s.client.GetProfile(ctx)
	if err != nil {
		return nil, s.mapError("Profile", err)
	}
	return user, nil
}

// UpdateProfile обновляет профиль текущего пользователя
// ID пользователя берётся из профиля, поэтому клиент не может изменить чужой аккаунт
func (s *Service) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*hotelapi.User, error) {
	if err := s.check(upd); err != nil {
		return nil, err
	}

	// 1. Получаем ID текущего пользователя
	current, err := s.client.GetProfile(ctx)
	if err != nil {
		return nil, s.mapError("UpdateProfile", err)
	}

	// 2. Отправляем изменения
	payload := hotelapi.ProfilePayload{
		Name:         trimmed(upd.Name),
		Email:        trimmed(upd.Email),
		MobileNumber: digits(upd.MobileNumber),
		Bio:          upd.Bio,
	}
	user, err := s.client.UpdateUser(ctx, current.ID.String(), payload)
	if err != nil {
		if errors.Is(err, hotelapi.ErrConflict) {
			return nil, ErrUserExists
		}
		if errors.Is(err, hotelapi.ErrRejected) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidInput, hotelapi.MessageOf(err))
		}
		return nil, s.mapError("UpdateProfile", err)
	}

	s.logger.Info("UpdateProfile: user id=%s updated", user.ID)
	return user, nil
}

// UpdateAvatar загружает новое изображение профиля
func (s *Service) UpdateAvatar(ctx context.Context, filename string, image io.Reader) (*hotelapi.User, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExt[ext] {
		s.logger.Warn("UpdateAvatar: rejected file %q", filename)
		return nil, ErrUnsupportedImage
	}

	user, err := s.client.UpdateAvatar(ctx, filepath.Base(filename), image)
	if err != nil {
		if errors.Is(err, hotelapi.ErrRejected) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidInput, hotelapi.MessageOf(err))
		}
		return nil, s.mapError("UpdateAvatar", err)
	}

	s.logger.Info("UpdateAvatar: user id=%s updated avatar", user.ID)
	return user, nil
}

// Logout выгружает сессию пользователя из памяти
// Токен хранит браузер, бэкенд о выходе не уведомляется
func (s *Service) Logout(key string) {
	s.sessions.Drop(key)
	s.logger.Info("Logout: key=%s", key)
}

// Вспомогательные методы

func (s *Service) check(v interface{}) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s failed on %s", ErrInvalidInput, strings.ToLower(fe.Field()), fe.Tag())
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

func (s *Service) mapError(op string, err error) error {
	switch {
	case errors.Is(err, hotelapi.ErrUnauthorized), errors.Is(err, hotelapi.ErrForbidden):
		s.logger.Warn("%s: unauthorized: %v", op, err)
		return ErrUnauthorized
	case errors.Is(err, hotelapi.ErrUnavailable):
		s.logger.Error("%s: backend unavailable: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	default:
		s.logger.Error("%s: backend error: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}

func digits(v *string) *string {
	if v == nil {
		return nil
	}
	d := domain.DigitsOnly(*v)
	return &d
}
