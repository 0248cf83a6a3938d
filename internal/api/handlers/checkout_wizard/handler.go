package checkout_wizard

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelCheckout/internal/api/handlers"
	"github.com/m04kA/SMC-HotelCheckout/internal/domain"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/checkout"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/session"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgSignInRequired     = "Please sign in to continue"
	msgFixFields          = "Please fix the highlighted fields"
	msgAlreadyConfirmed   = "This booking is already confirmed"
	msgPaymentRequired    = "Complete the payment to continue"
	msgDraftIncomplete    = "Select a room and dates first"
	msgStepNotReachable   = "This step is not available yet"
	msgInvalidStep        = "Unknown checkout step"
)

type Handler struct {
	sessions SessionProvider
	logger   Logger
}

func NewHandler(sessions SessionProvider, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Get GET /api/v1/checkout
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	h.respondView(w, sess, sess.Checkout.State())
}

// UpdateGuest PUT /api/v1/checkout/guest
func (h *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req GuestInfoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /checkout/guest - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	st, err := sess.Checkout.UpdateGuest(r.Context(), req.ToPatch())
	if err != nil {
		h.respondError(w, "PUT /checkout/guest", sess.Key, err)
		return
	}
	h.respondView(w, sess, st)
}

// Next POST /api/v1/checkout/next
func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "POST /checkout/next", func(ctx context.Context, sess *session.Session) (checkout.State, error) {
		return sess.Checkout.Next(ctx)
	})
}

// Back POST /api/v1/checkout/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "POST /checkout/back", func(ctx context.Context, sess *session.Session) (checkout.State, error) {
		return sess.Back(ctx)
	})
}

// Jump POST /api/v1/checkout/jump
func (h *Handler) Jump(w http.ResponseWriter, r *http.Request) {
	var req JumpRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.Step == nil {
		h.logger.Warn("POST /checkout/jump - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	target := domain.CheckoutStep(*req.Step)
	h.transition(w, r, "POST /checkout/jump", func(ctx context.Context, sess *session.Session) (checkout.State, error) {
		return sess.Jump(ctx, target)
	})
}

// Reset DELETE /api/v1/checkout
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	st := sess.Abandon(r.Context())
	h.logger.Info("DELETE /checkout - Checkout abandoned: user=%s", sess.Key)
	h.respondView(w, sess, st)
}

// ClearDraft DELETE /api/v1/checkout/draft
func (h *Handler) ClearDraft(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := sess.Restart(r.Context()); err != nil {
		h.logger.Warn("DELETE /checkout/draft - Failed to return to review: user=%s, error=%v", sess.Key, err)
	}
	h.logger.Info("DELETE /checkout/draft - Selection cleared: user=%s", sess.Key)
	h.respondView(w, sess, sess.Checkout.State())
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, route string,
	move func(ctx context.Context, sess *session.Session) (checkout.State, error)) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	st, err := move(r.Context(), sess)
	if err != nil {
		h.respondError(w, route, sess.Key, err)
		return
	}

	h.logger.Info("%s - user=%s, step=%s", route, sess.Key, st.Step)
	h.respondView(w, sess, st)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	key, ok := handlers.UserKey(r)
	if !ok {
		handlers.RespondUnauthorized(w, msgSignInRequired)
		return nil, false
	}
	return h.sessions.Get(r.Context(), key), true
}

func (h *Handler) respondView(w http.ResponseWriter, sess *session.Session, st checkout.State) {
	var order *domain.PaymentOrder
	if o, ok := sess.Payment.Current(); ok {
		order = o
	}
	handlers.RespondJSON(w, http.StatusOK, NewView(st, sess.Draft.Get(), order))
}

// respondError ошибки визарда: валидация не логируется как ошибка
func (h *Handler) respondError(w http.ResponseWriter, route, user string, err error) {
	var verr *checkout.ValidationError
	switch {
	case errors.As(err, &verr):
		handlers.RespondValidation(w, msgFixFields, verr.Fields)

	case errors.Is(err, checkout.ErrTerminalStep):
		handlers.RespondNotification(w, handlers.ErrorResponse{
			Code:    http.StatusConflict,
			Message: msgAlreadyConfirmed,
			Source:  handlers.SourceValidation,
		})

	case errors.Is(err, checkout.ErrPaymentRequired):
		handlers.RespondConflict(w, msgPaymentRequired)

	case errors.Is(err, checkout.ErrDraftIncomplete):
		handlers.RespondNotification(w, handlers.ErrorResponse{
			Code:    http.StatusConflict,
			Message: msgDraftIncomplete,
			Source:  handlers.SourceValidation,
			Action:  handlers.ActionGoBack,
		})

	case errors.Is(err, checkout.ErrStepNotReachable):
		handlers.RespondConflict(w, msgStepNotReachable)

	case errors.Is(err, checkout.ErrInvalidStep):
		handlers.RespondBadRequest(w, msgInvalidStep)

	default:
		h.logger.Error("%s - Checkout failed: user=%s, error=%v", route, user, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("%s - Rejected: user=%s, reason=%v", route, user, err)
}
