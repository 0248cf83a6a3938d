package search_hotels

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/pricing"
)

// UseCase use case поиска отелей по направлению, датам и числу гостей
type UseCase struct {
	catalog      CatalogClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog CatalogClient, logger Logger) *UseCase {
	return &UseCase{
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет поиск
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchHotels: destination=%q, checkIn=%s, checkOut=%s, guests=%d",
		req.Destination, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SearchHotels: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем даты относительно текущего дня
	if err := validateDates(req.CheckIn, req.CheckOut, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("SearchHotels: date validation failed: %v", err)
		return nil, err
	}

	// 3. Запрашиваем бэкенд
	hotels, err := uc.catalog.SearchHotels(ctx, hotelapi.SearchParams{
		Destination: req.Destination,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Guests:      req.Guests,
	})
	if err != nil {
		if errors.Is(err, hotelapi.ErrRejected) {
			uc.logger.Warn("SearchHotels: backend rejected search: %v", err)
			return nil, fmt.Errorf("%w: %s", ErrInvalidInput, hotelapi.MessageOf(err))
		}
		if errors.Is(err, hotelapi.ErrUnavailable) {
			uc.logger.Error("SearchHotels: backend unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		uc.logger.Error("SearchHotels: failed to search hotels: %v", err)
		return nil, fmt.Errorf("%w: failed to search hotels: %v", ErrInternal, err)
	}

	uc.logger.Info("SearchHotels: found %d hotels for destination=%q", len(hotels), req.Destination)

	return &Response{
		Destination: req.Destination,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Guests:      req.Guests,
		Nights:      pricing.CountNights(req.CheckIn, req.CheckOut),
		Hotels:      hotels,
	}, nil
}
