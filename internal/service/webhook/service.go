package service

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/you-humble/noventa-support/internal/metrics"
	"github.com/you-humble/noventa-support/internal/model"
	"github.com/you-humble/noventa-support/platform/logger"
)

var observedEvents = []string{
	model.EventCheckoutSessionCompleted,
	model.EventCustomerSubscriptionDeleted,
}

type EventVerifier interface {
	ConstructEvent(payload []byte, signature string) (model.WebhookEvent, error)
}

// service only observes events. Role grants belong to the return-page
// reconciler, so this path holds no community client at all.
type service struct {
	verifier EventVerifier
}

func NewWebhookService(verifier EventVerifier) *service {
	return &service{verifier: verifier}
}

// Receive must be given the request body exactly as it arrived.
func (svc *service) Receive(ctx context.Context, payload []byte, signature string) (model.WebhookEvent, error) {
	const op = "webhook.service.Receive"

	if len(payload) == 0 {
		metrics.WebhookRejections.Inc()
		logger.Error(ctx, "webhook without body")
		return model.WebhookEvent{}, fmt.Errorf("%s: %w: empty body", op, model.ErrMalformedInput)
	}

	if signature == "" {
		metrics.WebhookRejections.Inc()
		logger.Error(ctx, "webhook without signature header")
		return model.WebhookEvent{}, fmt.Errorf("%s: %w: missing signature", op, model.ErrInvalidSignature)
	}

	event, err := svc.verifier.ConstructEvent(payload, signature)
	if err != nil {
		metrics.WebhookRejections.Inc()
		logger.Error(ctx, "webhook verification failed", logger.ErrorF(err))
		return model.WebhookEvent{}, fmt.Errorf("%s: %w", op, err)
	}

	log := logger.With(
		logger.String("event_id", event.ID),
		logger.String("event_type", event.Type),
	)
	log.Info(ctx, "webhook signature verified")

	metrics.WebhookEvents.WithLabelValues(lo.Ternary(lo.Contains(observedEvents, event.Type), event.Type, "other")).Inc()

	switch event.Type {
	case model.EventCheckoutSessionCompleted:
		svc.checkoutCompleted(ctx, event)
	case model.EventCustomerSubscriptionDeleted:
		// TODO: revoke the subscriber role once the mapping from subscription to member id is stored somewhere.
		log.Info(ctx, "subscription deleted, role left in place",
			logger.String("subscription_id", event.SubscriptionID),
		)
	default:
		log.Info(ctx, "unhandled webhook event type")
	}

	return event, nil
}

func (svc *service) checkoutCompleted(ctx context.Context, event model.WebhookEvent) {
	if event.Session == nil {
		logger.Warn(ctx, "checkout completed event without session object", logger.String("event_id", event.ID))
		return
	}

	s := event.Session
	log := logger.With(
		logger.String("session_id", s.ID),
		logger.String("payment_status", string(s.PaymentStatus)),
		logger.String("client_reference_id", s.ClientReferenceID),
	)

	if s.PaymentStatus == model.PaymentStatusPaid {
		log.Info(ctx, "webhook confirmed payment, role grant handled by return page")
		return
	}

	log.Info(ctx, "webhook received completed session that is not paid")
}
