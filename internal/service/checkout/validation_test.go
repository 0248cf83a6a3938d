package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
)

func validGuest() domain.GuestInfo {
	return domain.GuestInfo{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "a@b.com",
		Phone:     "1234567890",
	}
}

func TestValidateGuestInfo(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(g *domain.GuestInfo)
		fields map[string]string
	}{
		{
			name:   "valid",
			mutate: func(g *domain.GuestInfo) {},
		},
		{
			name:   "email without domain dot",
			mutate: func(g *domain.GuestInfo) { g.Email = "a@b" },
			fields: map[string]string{"email": msgEmailInvalid},
		},
		{
			name:   "email with spaces",
			mutate: func(g *domain.GuestInfo) { g.Email = "a b@c.com" },
			fields: map[string]string{"email": msgEmailInvalid},
		},
		{
			name:   "short phone",
			mutate: func(g *domain.GuestInfo) { g.Phone = "12345" },
			fields: map[string]string{"phone": msgPhoneInvalid},
		},
		{
			name:   "formatted phone with ten digits",
			mutate: func(g *domain.GuestInfo) { g.Phone = "(123) 456-7890" },
		},
		{
			name:   "eleven digits",
			mutate: func(g *domain.GuestInfo) { g.Phone = "+11234567890" },
			fields: map[string]string{"phone": msgPhoneInvalid},
		},
		{
			name:   "blank names",
			mutate: func(g *domain.GuestInfo) { g.FirstName = "  "; g.LastName = "" },
			fields: map[string]string{"firstName": msgFirstNameRequired, "lastName": msgLastNameRequired},
		},
		{
			name: "everything missing",
			mutate: func(g *domain.GuestInfo) {
				*g = domain.GuestInfo{}
			},
			fields: map[string]string{
				"firstName": msgFirstNameRequired,
				"lastName":  msgLastNameRequired,
				"email":     msgEmailRequired,
				"phone":     msgPhoneRequired,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validGuest()
			tt.mutate(&g)

			err := ValidateGuestInfo(g)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.fields, verr.Fields)
			assert.ErrorIs(t, err, ErrInvalidGuestInfo)
		})
	}
}

func TestValidationError_MessageIsStable(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"phone": "bad", "email": "bad"}}
	assert.Equal(t, "checkout: guest info is invalid: email: bad; phone: bad", err.Error())
}
