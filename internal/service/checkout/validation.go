package checkout

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
)

const (
	msgFirstNameRequired = "First name is required"
	msgLastNameRequired  = "Last name is required"
	msgEmailRequired     = "Email is required"
	msgEmailInvalid      = "Please enter a valid email"
	msgPhoneRequired     = "Phone number is required"
	msgPhoneInvalid      = "Please enter a valid 10-digit phone number"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterValidation("guest_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return len(domain.DigitsOnly(fl.Field().String())) == domain.PhoneDigits
	})

	return v
}

// guestForm поля, обязательные для выхода с шага GuestInfo
type guestForm struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,guest_email"`
	Phone     string `validate:"required,phone10"`
}

var fieldNames = map[string]string{
	"FirstName": "firstName",
	"LastName":  "lastName",
	"Email":     "email",
	"Phone":     "phone",
}

// ValidateGuestInfo проверяет данные гостя
// Возвращает *ValidationError с сообщениями по каждому невалидному полю
func ValidateGuestInfo(g domain.GuestInfo) error {
	form := guestForm{
		FirstName: strings.TrimSpace(g.FirstName),
		LastName:  strings.TrimSpace(g.LastName),
		Email:     strings.TrimSpace(g.Email),
		Phone:     strings.TrimSpace(g.Phone),
	}

	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldNames[fe.Field()]] = messageFor(fe)
	}
	return &ValidationError{Fields: fields}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "FirstName":
		return msgFirstNameRequired
	case "LastName":
		return msgLastNameRequired
	case "Email":
		if fe.Tag() == "required" {
			return msgEmailRequired
		}
		return msgEmailInvalid
	case "Phone":
		if fe.Tag() == "required" {
			return msgPhoneRequired
		}
		return msgPhoneInvalid
	default:
		return fe.Error()
	}
}
