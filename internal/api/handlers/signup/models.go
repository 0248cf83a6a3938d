package signup

import (
	"github.com/m04kA/SMC-HotelCheckout/internal/service/account"
)

// SignupRequest HTTP request model
type SignupRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SignupRequest) ToServiceRequest() account.SignupRequest {
	return account.SignupRequest{
		Name:                 r.Name,
		Email:                r.Email,
		Password:             r.Password,
		PasswordConfirmation: r.PasswordConfirmation,
	}
}
