package model

import "encoding/json"

const (
	EventCheckoutSessionCompleted    = "checkout.session.completed"
	EventCustomerSubscriptionDeleted = "customer.subscription.deleted"
)

// WebhookEvent is a verified provider event. It is logged and discarded.
type WebhookEvent struct {
	ID      string
	Type    string
	Payload json.RawMessage

	// Set for checkout.session.completed.
	Session *CheckoutSession
	// Set for customer.subscription.deleted.
	SubscriptionID string
}
