package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/you-humble/noventa-support/internal/model"
	"github.com/you-humble/noventa-support/platform/logger"
)

// The provider substitutes the placeholder when redirecting back.
const successPath = "/success?session_id={CHECKOUT_SESSION_ID}"

type CheckoutProvider interface {
	CreateCheckoutSession(ctx context.Context, params model.CreateCheckoutParams) (model.CheckoutSession, error)
}

type service struct {
	provider CheckoutProvider
	priceID  string
	baseURL  string
}

func NewCheckoutService(provider CheckoutProvider, priceID, baseURL string) *service {
	return &service{
		provider: provider,
		priceID:  priceID,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

func (svc *service) Create(ctx context.Context, identityID string) (model.CheckoutSession, error) {
	const op = "checkout.service.Create"
	log := logger.With(logger.String("identity_id", identityID))

	if !model.IsIdentityID(identityID) {
		log.Error(ctx, "missing or invalid identity id for checkout")
		return model.CheckoutSession{}, fmt.Errorf("%s: %w", op, model.ErrMissingIdentity)
	}

	params := model.CreateCheckoutParams{
		IdentityID: identityID,
		PriceID:    svc.priceID,
		SuccessURL: svc.baseURL + successPath,
		CancelURL:  svc.baseURL + "/",
	}

	log.Debug(ctx, "creating checkout session",
		logger.String("price_id", params.PriceID),
		logger.String("success_url", params.SuccessURL),
		logger.String("cancel_url", params.CancelURL),
	)

	session, err := svc.provider.CreateCheckoutSession(ctx, params)
	if err != nil {
		log.Error(ctx, "provider create checkout session", logger.ErrorF(err))
		return model.CheckoutSession{}, fmt.Errorf("%s: %w: %w", op, model.ErrCheckoutCreate, err)
	}

	if session.URL == "" {
		log.Error(ctx, "checkout session has no hosted url", logger.String("session_id", session.ID))
		return model.CheckoutSession{}, fmt.Errorf("%s: %w: session url not found", op, model.ErrCheckoutCreate)
	}

	log.Info(ctx, "checkout session created", logger.String("session_id", session.ID))

	return session, nil
}
