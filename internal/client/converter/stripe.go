package converter

import (
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v82"

	"github.com/you-humble/noventa-support/internal/model"
)

func CheckoutSessionToModel(s *stripe.CheckoutSession) model.CheckoutSession {
	if s == nil {
		return model.CheckoutSession{}
	}

	return model.CheckoutSession{
		ID:                s.ID,
		URL:               s.URL,
		ClientReferenceID: s.ClientReferenceID,
		PaymentStatus:     model.PaymentStatus(s.PaymentStatus),
		Status:            model.SessionStatus(s.Status),
	}
}

func CreateCheckoutParamsToStripe(p model.CreateCheckoutParams) *stripe.CheckoutSessionParams {
	return &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(p.SuccessURL),
		CancelURL:         stripe.String(p.CancelURL),
		ClientReferenceID: stripe.String(p.IdentityID),
	}
}

// EventToModel keeps the raw object and decodes only what the receiver logs.
func EventToModel(e stripe.Event) (model.WebhookEvent, error) {
	event := model.WebhookEvent{
		ID:   e.ID,
		Type: string(e.Type),
	}
	if e.Data == nil {
		return event, nil
	}
	event.Payload = e.Data.Raw

	switch event.Type {
	case model.EventCheckoutSessionCompleted:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(e.Data.Raw, &s); err != nil {
			return model.WebhookEvent{}, fmt.Errorf("decode checkout session: %w", err)
		}
		session := CheckoutSessionToModel(&s)
		event.Session = &session
	case model.EventCustomerSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(e.Data.Raw, &sub); err != nil {
			return model.WebhookEvent{}, fmt.Errorf("decode subscription: %w", err)
		}
		event.SubscriptionID = sub.ID
	}

	return event, nil
}
