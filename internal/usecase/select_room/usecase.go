package select_room

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/pricing"
)

// UseCase use case выбора комнаты: заполняет черновик бронирования
type UseCase struct {
	catalog  CatalogClient
	sessions SessionProvider
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog CatalogClient, sessions SessionProvider, logger Logger) *UseCase {
	return &UseCase{
		catalog:  catalog,
		sessions: sessions,
		logger:   logger,
	}
}

// Execute выполняет use case выбора комнаты
// Новый выбор всегда получает новый nonce, незавершённый заказ прошлого выбора бросается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SelectRoom: user=%s, hotel=%s, room=%s, checkIn=%s, checkOut=%s, guests=%d",
		req.UserKey, req.HotelID, req.RoomID,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SelectRoom: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем комнату
	room, err := uc.catalog.GetRoom(ctx, req.HotelID, req.RoomID)
	if err != nil {
		if errors.Is(err, hotelapi.ErrNotFound) {
			uc.logger.Warn("SelectRoom: room id=%s not found in hotel id=%s", req.RoomID, req.HotelID)
			return nil, ErrRoomNotFound
		}
		return nil, uc.backendError("get room", err)
	}

	// 3. Проверяем вместимость
	if err := validateCapacity(room, req.Guests); err != nil {
		uc.logger.Warn("SelectRoom: %v", err)
		return nil, err
	}

	// 4. Получаем отель
	hotel, err := uc.catalog.GetHotel(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, hotelapi.ErrNotFound) {
			uc.logger.Warn("SelectRoom: hotel id=%s not found", req.HotelID)
			return nil, ErrHotelNotFound
		}
		return nil, uc.backendError("get hotel", err)
	}

	// 5. Считаем стоимость
	price, err := pricing.Quote(float64(room.Price), float64(room.Discount), req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Error("SelectRoom: room id=%s price=%v discount=%v: %v", room.ID, room.Price, room.Discount, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoomRate, err)
	}

	// 6. Сбрасываем прошлый выбор в сессии пользователя
	sess := uc.sessions.Get(ctx, req.UserKey)
	if err := sess.Restart(ctx); err != nil {
		uc.logger.Warn("SelectRoom: failed to return checkout to review for user=%s: %v", req.UserKey, err)
	}

	// 7. Записываем новый черновик
	patch := price.DraftPatch()
	patch.HotelID = &req.HotelID
	patch.HotelName = &hotel.Name
	patch.RoomID = &req.RoomID
	patch.RoomName = &room.Name
	patch.RoomType = &room.RoomType
	patch.RoomImage = &room.Image
	patch.CheckIn = &req.CheckIn
	patch.CheckOut = &req.CheckOut
	patch.GuestCount = &req.Guests

	draft := sess.Draft.Set(patch)

	uc.logger.Info("SelectRoom: draft for user=%s, nights=%d, total=%s, nonce=%s",
		req.UserKey, draft.Nights, draft.TotalPrice, draft.Nonce)

	return &Response{
		Draft: draft,
		Price: price.Formatted(),
	}, nil
}

func (uc *UseCase) backendError(op string, err error) error {
	if errors.Is(err, hotelapi.ErrUnavailable) {
		uc.logger.Error("SelectRoom: backend unavailable on %s: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	uc.logger.Error("SelectRoom: failed to %s: %v", op, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
}
