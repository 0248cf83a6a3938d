package account

// LoginRequest данные формы входа
type LoginRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// SignupRequest данные формы регистрации
type SignupRequest struct {
	Name                 string `validate:"required,max=100"`
	Email                string `validate:"required,email"`
	Password             string `validate:"required,min=6,max=128"`
	PasswordConfirmation string `validate:"omitempty,eqfield=Password"`
}

// ProfileUpdate частичное обновление профиля (nil = поле не меняется)
type ProfileUpdate struct {
	Name         *string `validate:"omitempty,min=1,max=100"`
	Email        *string `validate:"omitempty,email"`
	MobileNumber *string `validate:"omitempty,phone10"`
	Bio          *string `validate:"omitempty,max=500"`
}
