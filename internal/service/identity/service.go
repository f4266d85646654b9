package service

import (
	"context"
	"fmt"

	"github.com/you-humble/noventa-support/internal/model"
	"github.com/you-humble/noventa-support/platform/logger"
)

type IdentityProvider interface {
	AuthCodeURL() string
	ExchangeCode(ctx context.Context, code string) (string, error)
	CurrentUser(ctx context.Context, accessToken string) (model.ExternalIdentity, error)
}

type service struct {
	provider IdentityProvider
}

func NewIdentityService(provider IdentityProvider) *service {
	return &service{provider: provider}
}

func (svc *service) AuthorizeURL() string {
	return svc.provider.AuthCodeURL()
}

// Authenticate never returns an identity with an empty id without an error.
func (svc *service) Authenticate(ctx context.Context, code string) (model.ExternalIdentity, error) {
	const op = "identity.service.Authenticate"

	if code == "" {
		logger.Error(ctx, "no authorization code received")
		return model.ExternalIdentity{}, fmt.Errorf("%s: %w", op, model.ErrMissingCode)
	}

	accessToken, err := svc.provider.ExchangeCode(ctx, code)
	if err != nil {
		logger.Error(ctx, "exchange authorization code", logger.ErrorF(err))
		return model.ExternalIdentity{}, fmt.Errorf("%s: %w: %w", op, model.ErrTokenExchange, err)
	}
	if accessToken == "" {
		logger.Error(ctx, "token endpoint returned empty access token")
		return model.ExternalIdentity{}, fmt.Errorf("%s: %w: empty access token", op, model.ErrTokenExchange)
	}

	identity, err := svc.provider.CurrentUser(ctx, accessToken)
	if err != nil {
		logger.Error(ctx, "fetch current user", logger.ErrorF(err))
		return model.ExternalIdentity{}, fmt.Errorf("%s: %w: %w", op, model.ErrIdentityFetch, err)
	}
	if identity.ID == "" {
		logger.Error(ctx, "identity provider returned empty user id")
		return model.ExternalIdentity{}, fmt.Errorf("%s: %w: empty user id", op, model.ErrIdentityFetch)
	}

	logger.Info(ctx, "identity resolved",
		logger.String("identity_id", identity.ID),
		logger.String("username", identity.Username),
	)

	return identity, nil
}
