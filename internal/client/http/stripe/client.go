package stripeclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/you-humble/noventa-support/internal/client/converter"
	"github.com/you-humble/noventa-support/internal/model"
)

type Client struct {
	api           *client.API
	webhookSecret string
}

func NewClient(api *client.API, webhookSecret string) *Client {
	return &Client{api: api, webhookSecret: webhookSecret}
}

func (c *Client) CreateCheckoutSession(
	ctx context.Context,
	params model.CreateCheckoutParams,
) (model.CheckoutSession, error) {
	const op = "stripe.client.CreateCheckoutSession"

	p := converter.CreateCheckoutParamsToStripe(params)
	p.Context = ctx

	s, err := c.api.CheckoutSessions.New(p)
	if err != nil {
		return model.CheckoutSession{}, fmt.Errorf("%s: %w", op, describe(err))
	}

	return converter.CheckoutSessionToModel(s), nil
}

func (c *Client) CheckoutSession(ctx context.Context, id string) (model.CheckoutSession, error) {
	const op = "stripe.client.CheckoutSession"

	p := &stripe.CheckoutSessionParams{}
	p.Context = ctx

	s, err := c.api.CheckoutSessions.Get(id, p)
	if err != nil {
		return model.CheckoutSession{}, fmt.Errorf("%s: %w", op, describe(err))
	}

	return converter.CheckoutSessionToModel(s), nil
}

// ConstructEvent verifies the signature over the exact bytes received and
// only then decodes the event.
func (c *Client) ConstructEvent(payload []byte, signature string) (model.WebhookEvent, error) {
	const op = "stripe.client.ConstructEvent"

	event, err := webhook.ConstructEventWithOptions(
		payload,
		signature,
		c.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		if isSignatureError(err) {
			return model.WebhookEvent{}, fmt.Errorf("%s: %w: %w", op, model.ErrInvalidSignature, err)
		}
		return model.WebhookEvent{}, fmt.Errorf("%s: %w: %w", op, model.ErrMalformedInput, err)
	}

	evt, err := converter.EventToModel(event)
	if err != nil {
		return model.WebhookEvent{}, fmt.Errorf("%s: %w: %w", op, model.ErrMalformedInput, err)
	}

	return evt, nil
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrTooOld)
}

// describe keeps the provider message, which ends up in the error redirect.
func describe(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return &model.RejectionError{Status: stripeErr.HTTPStatusCode, Body: stripeErr.Msg}
	}
	return fmt.Errorf("%w: %w", model.ErrUpstreamTransport, err)
}
