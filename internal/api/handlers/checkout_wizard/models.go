package checkout_wizard

import (
	"time"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/checkout"
)

// GuestInfoRequest HTTP request model (частичное обновление)
type GuestInfoRequest struct {
	FirstName       *string `json:"firstName,omitempty"`
	LastName        *string `json:"lastName,omitempty"`
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	IsSubscribed    *bool   `json:"isSubscribed,omitempty"`
}

// JumpRequest HTTP request model
type JumpRequest struct {
	Step *int `json:"step"`
}

// View HTTP response model: всё, что нужно странице checkout
type View struct {
	Step               int              `json:"step"`
	StepName           string           `json:"stepName"`
	Steps              []string         `json:"steps"`
	MaxReached         int              `json:"maxReached"`
	CanGoBack          bool             `json:"canGoBack"`
	CanGoNext          bool             `json:"canGoNext"`
	Guest              domain.GuestInfo `json:"guest"`
	Draft              *DraftView       `json:"draft"`
	ConfirmationNumber string           `json:"confirmationNumber,omitempty"`
	ConfirmedBooking   *DraftView       `json:"confirmedBooking,omitempty"`
	Order              *OrderView       `json:"order,omitempty"`
}

// DraftView HTTP response model черновика
type DraftView struct {
	HotelID           string  `json:"hotelId"`
	HotelName         string  `json:"hotelName"`
	RoomID            string  `json:"roomId"`
	RoomName          string  `json:"roomName"`
	RoomType          string  `json:"roomType"`
	RoomImage         string  `json:"roomImage"`
	CheckIn           string  `json:"checkIn"`  // "2025-06-01"
	CheckOut          string  `json:"checkOut"` // "2025-06-04"
	GuestCount        int     `json:"guestCount"`
	Nights            int     `json:"nights"`
	RoomPricePerNight float64 `json:"roomPricePerNight"`
	DiscountPercent   float64 `json:"discountPercent"`
	DiscountedPrice   string  `json:"discountedPrice"`
	GSTAmount         string  `json:"gstAmount"`
	PlatformFee       string  `json:"platformFee"`
	TotalPrice        string  `json:"totalPrice"`
}

// OrderView HTTP response model заказа у провайдера
type OrderView struct {
	OrderID       string  `json:"orderId"`
	Status        string  `json:"status"`
	TransactionID string  `json:"transactionId,omitempty"`
	PaymentStatus string  `json:"paymentStatus,omitempty"`
	Amount        float64 `json:"amount"`
	CapturedAt    string  `json:"capturedAt,omitempty"`
	FailureReason string  `json:"failureReason,omitempty"`
}

// ToPatch конвертирует HTTP запрос в патч данных гостя
func (r *GuestInfoRequest) ToPatch() domain.GuestInfoPatch {
	return domain.GuestInfoPatch{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		SpecialRequests: r.SpecialRequests,
		IsSubscribed:    r.IsSubscribed,
	}
}

// NewView собирает ответ из состояния визарда, черновика и текущего заказа
func NewView(st checkout.State, draft domain.BookingDraft, order *domain.PaymentOrder) *View {
	v := &View{
		Step:               int(st.Step),
		StepName:           st.Step.String(),
		Steps:              domain.StepNames,
		MaxReached:         int(st.MaxReached),
		CanGoBack:          st.CanGoBack,
		CanGoNext:          st.CanGoNext,
		Guest:              st.Guest,
		ConfirmationNumber: st.ConfirmationNumber,
	}
	if !draft.IsEmpty() {
		v.Draft = NewDraftView(draft)
	}
	if st.ConfirmedDraft != nil {
		v.ConfirmedBooking = NewDraftView(*st.ConfirmedDraft)
	}
	if order != nil {
		v.Order = NewOrderView(*order)
	}
	return v
}

// NewDraftView конвертирует черновик в DTO
func NewDraftView(d domain.BookingDraft) *DraftView {
	return &DraftView{
		HotelID:           d.HotelID,
		HotelName:         d.HotelName,
		RoomID:            d.RoomID,
		RoomName:          d.RoomName,
		RoomType:          d.RoomType,
		RoomImage:         d.RoomImage,
		CheckIn:           formatDate(d.CheckIn),
		CheckOut:          formatDate(d.CheckOut),
		GuestCount:        d.GuestCount,
		Nights:            d.Nights,
		RoomPricePerNight: d.RoomPricePerNight,
		DiscountPercent:   d.DiscountPercent,
		DiscountedPrice:   d.DiscountedPrice,
		GSTAmount:         d.GSTAmount,
		PlatformFee:       d.PlatformFee,
		TotalPrice:        d.TotalPrice,
	}
}

// NewOrderView конвертирует заказ в DTO
func NewOrderView(o domain.PaymentOrder) *OrderView {
	v := &OrderView{
		OrderID:       o.ProviderOrderID,
		Status:        string(o.CaptureStatus),
		TransactionID: o.TransactionID,
		PaymentStatus: o.PaymentStatus,
		Amount:        o.Amount,
		FailureReason: o.FailureReason,
	}
	if o.CapturedAt != nil {
		v.CapturedAt = o.CapturedAt.Format(time.RFC3339)
	}
	return v
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateFormat)
}
