package http

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/you-humble/noventa-support/internal/model"
	"github.com/you-humble/noventa-support/internal/transport/http/response"
	"github.com/you-humble/noventa-support/platform/logger"
)

const (
	ErrFlagAuthFailed          = "identity_auth_failed"
	ErrFlagTokenExchangeFailed = "identity_token_exchange_failed"
	ErrFlagFetchFailed         = "identity_fetch_failed"

	checkoutPath = "/api/payment/create-checkout"
)

type IdentityService interface {
	AuthorizeURL() string
	Authenticate(ctx context.Context, code string) (model.ExternalIdentity, error)
}

type handler struct {
	svc IdentityService
}

func NewAuthHandler(svc IdentityService) *handler {
	return &handler{svc: svc}
}

func (h *handler) Login(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.svc.AuthorizeURL(), http.StatusFound)
}

// Callback receives the provider redirect and forwards the resolved identity
// to checkout.
func (h *handler) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	if denied := q.Get("error"); denied != "" {
		logger.Warn(ctx, "identity provider returned an error",
			logger.String("error", denied),
			logger.String("error_description", q.Get("error_description")),
		)
		response.RedirectHome(w, r, ErrFlagAuthFailed, nil)
		return
	}

	identity, err := h.svc.Authenticate(ctx, q.Get("code"))
	if err != nil {
		response.RedirectHome(w, r, errorFlag(err), nil)
		return
	}

	next := url.Values{}
	next.Set("externalIdentityId", identity.ID)

	http.Redirect(w, r, checkoutPath+"?"+next.Encode(), http.StatusFound)
}

func errorFlag(err error) string {
	switch {
	case errors.Is(err, model.ErrTokenExchange):
		return ErrFlagTokenExchangeFailed
	case errors.Is(err, model.ErrIdentityFetch):
		return ErrFlagFetchFailed
	default:
		return ErrFlagAuthFailed
	}
}
