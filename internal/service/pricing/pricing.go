package pricing

import (
	"math"
	"strconv"
	"time"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
)

const day = 24 * time.Hour

// Breakdown расчёт стоимости проживания без округления
// Округление выполняется только при форматировании (Formatted)
type Breakdown struct {
	PricePerNight   float64
	Nights          int
	DiscountPercent float64
	BasePrice       float64
	DiscountedPrice float64
	GST             float64
	PlatformFee     float64
	Total           float64
}

// Formatted денежные значения, отформатированные до 2 знаков
type Formatted struct {
	BasePrice       string `json:"basePrice"`
	DiscountedPrice string `json:"discountedPrice"`
	GST             string `json:"gst"`
	PlatformFee     string `json:"platformFee"`
	Total           string `json:"total"`
}

// Compute считает стоимость проживания
// nights >= 1 и discountPercent в [0, 100] проверяет вызывающий код
func Compute(pricePerNight float64, nights int, discountPercent float64) Breakdown {
	base := pricePerNight * float64(nights)
	discounted := base * (1 - discountPercent/100)
	gst := discounted * domain.GSTRate

	return Breakdown{
		PricePerNight:   pricePerNight,
		Nights:          nights,
		DiscountPercent: discountPercent,
		BasePrice:       base,
		DiscountedPrice: discounted,
		GST:             gst,
		PlatformFee:     domain.PlatformFee,
		Total:           discounted + gst + domain.PlatformFee,
	}
}

// Formatted возвращает значения, округлённые до копеек
func (b Breakdown) Formatted() Formatted {
	return Formatted{
		BasePrice:       FormatAmount(b.BasePrice),
		DiscountedPrice: FormatAmount(b.DiscountedPrice),
		GST:             FormatAmount(b.GST),
		PlatformFee:     FormatAmount(b.PlatformFee),
		Total:           FormatAmount(b.Total),
	}
}

// DraftPatch возвращает патч черновика с ценовыми полями
func (b Breakdown) DraftPatch() domain.DraftPatch {
	f := b.Formatted()
	price := b.PricePerNight
	nights := b.Nights
	discount := b.DiscountPercent
	return domain.DraftPatch{
		RoomPricePerNight: &price,
		Nights:            &nights,
		DiscountPercent:   &discount,
		DiscountedPrice:   &f.DiscountedPrice,
		GSTAmount:         &f.GST,
		PlatformFee:       &f.PlatformFee,
		TotalPrice:        &f.Total,
	}
}

// FormatAmount форматирует сумму с двумя знаками после точки
func FormatAmount(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', 2, 64)
}

// Round2 округляет до двух знаков (половина от нуля)
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CountNights возвращает max(1, ceil((checkOut - checkIn) / 1 день))
// Одинаковые или перевёрнутые даты дают 1 ночь, отклонять их должен ValidateStay
func CountNights(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	nights := int(math.Ceil(float64(diff) / float64(day)))
	if nights < 1 {
		return 1
	}
	return nights
}

// ValidateStay проверяет, что обе даты заданы и выезд строго позже заезда
func ValidateStay(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return ErrMissingDates
	}
	if !checkOut.After(checkIn) {
		return ErrInvalidDateRange
	}
	return nil
}

// ValidateRate проверяет цену за ночь и скидку комнаты
func ValidateRate(pricePerNight, discountPercent float64) error {
	if pricePerNight < 0 || math.IsNaN(pricePerNight) || math.IsInf(pricePerNight, 0) {
		return ErrInvalidPrice
	}
	if discountPercent < 0 || discountPercent > domain.MaxDiscountPercent || math.IsNaN(discountPercent) {
		return ErrInvalidDiscount
	}
	return nil
}

// Quote проверяет входные данные и считает стоимость проживания
func Quote(pricePerNight, discountPercent float64, checkIn, checkOut time.Time) (Breakdown, error) {
	if err := ValidateStay(checkIn, checkOut); err != nil {
		return Breakdown{}, err
	}
	if err := ValidateRate(pricePerNight, discountPercent); err != nil {
		return Breakdown{}, err
	}
	return Compute(pricePerNight, CountNights(checkIn, checkOut), discountPercent), nil
}
