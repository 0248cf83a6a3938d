package domain

import "strings"

// GuestInfo contact details collected on the guest info step
type GuestInfo struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"specialRequests"`
	IsSubscribed    bool   `json:"isSubscribed"`
}

// GuestInfoPatch частичное обновление данных гостя (nil = поле не меняется)
type GuestInfoPatch struct {
	FirstName       *string
	LastName        *string
	Email           *string
	Phone           *string
	SpecialRequests *string
	IsSubscribed    *bool
}

// FullName returns "First Last"
func (g GuestInfo) FullName() string {
	return strings.TrimSpace(g.FirstName + " " + g.LastName)
}

// IsEmpty returns true if nothing has been entered yet
func (g GuestInfo) IsEmpty() bool {
	return g == GuestInfo{}
}

// Apply возвращает копию с применённым патчем
// Телефон нормализуется до цифр, как это делает поле ввода
func (g GuestInfo) Apply(p GuestInfoPatch) GuestInfo {
	if p.FirstName != nil {
		g.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		g.LastName = *p.LastName
	}
	if p.Email != nil {
		g.Email = *p.Email
	}
	if p.Phone != nil {
		g.Phone = DigitsOnly(*p.Phone)
	}
	if p.SpecialRequests != nil {
		g.SpecialRequests = *p.SpecialRequests
	}
	if p.IsSubscribed != nil {
		g.IsSubscribed = *p.IsSubscribed
	}
	return g
}

// DigitsOnly strips every non-digit rune
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
