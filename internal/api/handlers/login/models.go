package login

import (
	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/account"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model: токен SPA передаёт в заголовке Authorization
type LoginResponse struct {
	User  hotelapi.User `json:"user"`
	Token string        `json:"token"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *LoginRequest) ToServiceRequest() account.LoginRequest {
	return account.LoginRequest{
		Email:    r.Email,
		Password: r.Password,
	}
}
