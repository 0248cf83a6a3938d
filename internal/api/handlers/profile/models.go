package profile

import (
	"github.com/m04kA/SMC-HotelCheckout/internal/service/account"
)

// UpdateProfileRequest HTTP request model (отсутствующие поля не меняются)
type UpdateProfileRequest struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	MobileNumber *string `json:"mobileNumber,omitempty"`
	Bio          *string `json:"bio,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateProfileRequest) ToServiceRequest() account.ProfileUpdate {
	return account.ProfileUpdate{
		Name:         r.Name,
		Email:        r.Email,
		MobileNumber: r.MobileNumber,
		Bio:          r.Bio,
	}
}
