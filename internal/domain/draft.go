package domain

import "time"

// BookingDraft выбор пользователя до оплаты: отель, комната, даты, гости и расчёт цены
type BookingDraft struct {
	HotelID           string    `json:"hotelId"`
	HotelName         string    `json:"hotelName"`
	RoomID            string    `json:"roomId"`
	RoomName          string    `json:"roomName"`
	RoomType          string    `json:"roomType"`
	RoomImage         string    `json:"roomImage"`
	CheckIn           time.Time `json:"checkIn"`
	CheckOut          time.Time `json:"checkOut"`
	GuestCount        int       `json:"guestCount"`
	RoomPricePerNight float64   `json:"roomPricePerNight"`
	Nights            int       `json:"nights"`
	DiscountPercent   float64   `json:"discountPercent"`
	DiscountedPrice   string    `json:"discountedPrice"`
	GSTAmount         string    `json:"gstAmount"`
	PlatformFee       string    `json:"platformFee"`
	TotalPrice        string    `json:"totalPrice"`

	// Nonce идентифицирует выбор и служит основой ключа идемпотентности заказа
	Nonce string `json:"nonce"`
}

// DraftPatch частичное обновление черновика (nil = поле не меняется)
type DraftPatch struct {
	HotelID           *string
	HotelName         *string
	RoomID            *string
	RoomName          *string
	RoomType          *string
	RoomImage         *string
	CheckIn           *time.Time
	CheckOut          *time.Time
	GuestCount        *int
	RoomPricePerNight *float64
	Nights            *int
	DiscountPercent   *float64
	DiscountedPrice   *string
	GSTAmount         *string
	PlatformFee       *string
	TotalPrice        *string
	Nonce             *string
}

// IsComplete returns true if hotel, room and both dates are set
func (d BookingDraft) IsComplete() bool {
	return d.HotelID != "" && d.RoomID != "" && !d.CheckIn.IsZero() && !d.CheckOut.IsZero()
}

// IsEmpty returns true for a cleared draft
func (d BookingDraft) IsEmpty() bool {
	return d == BookingDraft{}
}

// Merge возвращает копию черновика с применёнными полями патча
func (d BookingDraft) Merge(p DraftPatch) BookingDraft {
	setString(&d.HotelID, p.HotelID)
	setString(&d.HotelName, p.HotelName)
	setString(&d.RoomID, p.RoomID)
	setString(&d.RoomName, p.RoomName)
	setString(&d.RoomType, p.RoomType)
	setString(&d.RoomImage, p.RoomImage)
	if p.CheckIn != nil {
		d.CheckIn = *p.CheckIn
	}
	if p.CheckOut != nil {
		d.CheckOut = *p.CheckOut
	}
	if p.GuestCount != nil {
		d.GuestCount = *p.GuestCount
	}
	if p.RoomPricePerNight != nil {
		d.RoomPricePerNight = *p.RoomPricePerNight
	}
	if p.Nights != nil {
		d.Nights = *p.Nights
	}
	if p.DiscountPercent != nil {
		d.DiscountPercent = *p.DiscountPercent
	}
	setString(&d.DiscountedPrice, p.DiscountedPrice)
	setString(&d.GSTAmount, p.GSTAmount)
	setString(&d.PlatformFee, p.PlatformFee)
	setString(&d.TotalPrice, p.TotalPrice)
	setString(&d.Nonce, p.Nonce)
	return d
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
