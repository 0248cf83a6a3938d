package select_room

import (
	"time"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/pricing"
)

// Request модель запроса на выбор комнаты и дат
type Request struct {
	UserKey  string    // Ключ сессии пользователя
	HotelID  string    // ID отеля
	RoomID   string    // ID комнаты
	CheckIn  time.Time // Дата заезда
	CheckOut time.Time // Дата выезда
	Guests   int       // Количество гостей (0 = по умолчанию)
}

// Response модель ответа с новым черновиком
type Response struct {
	Draft domain.BookingDraft
	Price pricing.Formatted
}
