package profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/account"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidInput       = "Please check the highlighted profile fields"
	msgSignInRequired     = "Please sign in to continue"
	msgEmailTaken         = "This email is already in use"
	msgUnsupportedImage   = "Only JPG, PNG, GIF and WEBP images are supported"
	msgImageRequired      = "Image file is required"
	msgUnavailable        = "Profile is unavailable right now. Please try again."

	// maxAvatarSize ограничение размера загружаемого изображения
	maxAvatarSize = 5 << 20
	avatarField   = "image"
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

// Get GET /api/v1/profile
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Profile(r.Context())
	if err != nil {
		h.respondError(w, "GET /profile", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, user)
}

// Update PUT /api/v1/profile
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.respondError(w, "PUT /profile", err)
		return
	}

	h.logger.Info("PUT /profile - Profile updated: user_id=%s", user.ID)
	handlers.RespondJSON(w, http.StatusOK, user)
}

// UpdateAvatar PATCH /api/v1/profile/avatar (multipart/form-data, поле image)
func (h *Handler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarSize)
	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		h.logger.Warn("PATCH /profile/avatar - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgImageRequired)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(avatarField)
	if err != nil {
		handlers.RespondBadRequest(w, msgImageRequired)
		return
	}
	defer file.Close()

	user, err := h.service.UpdateAvatar(r.Context(), header.Filename, file)
	if err != nil {
		h.respondError(w, "PATCH /profile/avatar", err)
		return
	}

	h.logger.Info("PATCH /profile/avatar - Avatar updated: user_id=%s", user.ID)
	handlers.RespondJSON(w, http.StatusOK, user)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, account.ErrUnsupportedImage):
		handlers.RespondValidation(w, msgUnsupportedImage, map[string]string{avatarField: msgUnsupportedImage})

	case errors.Is(err, account.ErrInvalidInput):
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondValidation(w, msgInvalidInput, nil)

	case errors.Is(err, account.ErrUserExists):
		handlers.RespondConflict(w, msgEmailTaken)

	case errors.Is(err, account.ErrUnauthorized):
		handlers.RespondUnauthorized(w, msgSignInRequired)

	case errors.Is(err, account.ErrUnavailable):
		handlers.RespondUnavailable(w, msgUnavailable)

	default:
		h.logger.Error("%s - Request failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
