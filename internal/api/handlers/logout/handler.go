package logout

import (
	"net/http"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers"
)

const msgSignedOut = "Signed out"

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

// Handle POST /api/v1/logout
// Прогресс checkout сохраняется до следующего входа
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if userKey, ok := handlers.UserKey(r); ok {
		h.service.Logout(userKey)
		h.logger.Info("POST /logout - Signed out: user=%s", userKey)
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": msgSignedOut})
}
