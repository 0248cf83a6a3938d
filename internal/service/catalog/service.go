package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
)

// Service каталог отелей и комнат, данные берутся из бэкенда без изменений
type Service struct {
	client BackendClient
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(client BackendClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// ListHotels получает все отели
func (s *Service) ListHotels(ctx context.Context) ([]hotelapi.Hotel, error) {
	hotels, err := s.client.ListHotels(ctx)
	if err != nil {
		return nil, s.mapError("ListHotels", err, ErrHotelNotFound)
	}
	return hotels, nil
}

// GetHotel получает отель по ID
func (s *Service) GetHotel(ctx context.Context, hotelID string) (*hotelapi.Hotel, error) {
	hotelID = strings.TrimSpace(hotelID)
	if hotelID == "" {
		return nil, fmt.Errorf("%w: hotel id is required", ErrInvalidInput)
	}

	hotel, err := s.client.GetHotel(ctx, hotelID)
	if err != nil {
		return nil, s.mapError("GetHotel", err, ErrHotelNotFound)
	}
	return hotel, nil
}

// ListRooms получает комнаты отеля
func (s *Service) ListRooms(ctx context.Context, hotelID string) ([]hotelapi.Room, error) {
	hotelID = strings.TrimSpace(hotelID)
	if hotelID == "" {
		return nil, fmt.Errorf("%w: hotel id is required", ErrInvalidInput)
	}

	rooms, err := s.client.ListRooms(ctx, hotelID)
	if err != nil {
		return nil, s.mapError("ListRooms", err, ErrHotelNotFound)
	}
	return rooms, nil
}

// GetRoom получает комнату отеля
func (s *Service) GetRoom(ctx context.Context, hotelID, roomID string) (*hotelapi.Room, error) {
	hotelID = strings.TrimSpace(hotelID)
	roomID = strings.TrimSpace(roomID)
	if hotelID == "" || roomID == "" {
		return nil, fmt.Errorf("%w: hotel id and room id are required", ErrInvalidInput)
	}

	room, err := s.client.GetRoom(ctx, hotelID, roomID)
	if err != nil {
		return nil, s.mapError("GetRoom", err, ErrRoomNotFound)
	}
	return room, nil
}

// FeaturedHotels получает избранные отели
func (s *Service) FeaturedHotels(ctx context.Context) ([]hotelapi.Hotel, error) {
	hotels, err := s.client.FeaturedHotels(ctx)
	if err != nil {
		return nil, s.mapError("FeaturedHotels", err, ErrHotelNotFound)
	}
	return hotels, nil
}

// FeaturedRooms получает избранные комнаты
func (s *Service) FeaturedRooms(ctx context.Context) ([]hotelapi.Room, error) {
	rooms, err := s.client.FeaturedRooms(ctx)
	if err != nil {
		return nil, s.mapError("FeaturedRooms", err, ErrRoomNotFound)
	}
	return rooms, nil
}

func (s *Service) mapError(op string, err error, notFound error) error {
	switch {
	case errors.Is(err, hotelapi.ErrNotFound):
		s.logger.Warn("%s: %v", op, err)
		return notFound
	case errors.Is(err, hotelapi.ErrUnavailable):
		s.logger.Error("%s: backend unavailable: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	default:
		s.logger.Error("%s: backend error: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}
}
