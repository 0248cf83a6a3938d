package signup

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/account"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidInput       = "Please provide a name, a valid email and a password of at least 6 characters"
	msgUserExists         = "An account with this email already exists"
	msgUnavailable        = "Sign up is unavailable right now. Please try again."
)

type Handler struct {
	service AccountService
	logger  Logger
}

func NewHandler(service AccountService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/signup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /signup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Signup(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidInput):
			h.logger.Warn("POST /signup - Validation failed: %v", err)
			handlers.RespondValidation(w, msgInvalidInput, nil)

		case errors.Is(err, account.ErrUserExists):
			handlers.RespondConflict(w, msgUserExists)

		case errors.Is(err, account.ErrUnavailable):
			handlers.RespondUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("POST /signup - Failed to sign up: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /signup - User registered: user_id=%s", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, user)
}
