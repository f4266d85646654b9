package http

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/you-humble/noventa-support/internal/model"
	"github.com/you-humble/noventa-support/internal/transport/http/response"
)

const (
	ErrFlagMissingIdentity = "missing_identity_id"
	ErrFlagCheckoutFailed  = "checkout_failed"

	unknownReason = "Unknown payment provider error"
)

type CheckoutService interface {
	Create(ctx context.Context, identityID string) (model.CheckoutSession, error)
}

type handler struct {
	svc CheckoutService
}

func NewPaymentHandler(svc CheckoutService) *handler {
	return &handler{svc: svc}
}

func (h *handler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.Create(r.Context(), r.URL.Query().Get("externalIdentityId"))
	if err != nil {
		if errors.Is(err, model.ErrMissingIdentity) {
			response.RedirectHome(w, r, ErrFlagMissingIdentity, nil)
			return
		}

		response.RedirectHome(w, r, ErrFlagCheckoutFailed, url.Values{"errorMessage": {reason(err)}})
		return
	}

	http.Redirect(w, r, session.URL, http.StatusFound)
}

func reason(err error) string {
	var rejection *model.RejectionError
	if errors.As(err, &rejection) && rejection.Body != "" {
		return rejection.Body
	}
	return unknownReason
}
