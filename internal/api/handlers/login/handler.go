package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/account"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidInput       = "Email and password are required"
	msgInvalidCredentials = "Invalid email or password"
	msgUnavailable        = "Sign in is unavailable right now. Please try again."
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

// Handle POST /api/v1/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Login(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidInput):
			handlers.RespondValidation(w, msgInvalidInput, nil)

		case errors.Is(err, account.ErrInvalidCredentials):
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, account.ErrUnavailable):
			handlers.RespondUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("POST /login - Failed to sign in: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /login - Signed in: user_id=%s", resp.User.ID)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{User: resp.User, Token: resp.Token})
}
