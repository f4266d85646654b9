package model

type (
	PaymentStatus string
	SessionStatus string
)

const (
	PaymentStatusUnpaid            PaymentStatus = "unpaid"
	PaymentStatusPaid              PaymentStatus = "paid"
	PaymentStatusNoPaymentRequired PaymentStatus = "no_payment_required"
)

const (
	SessionStatusOpen     SessionStatus = "open"
	SessionStatusComplete SessionStatus = "complete"
	SessionStatusExpired  SessionStatus = "expired"
)

type CheckoutSession struct {
	ID string
	// Hosted payment page. Only set on freshly created sessions.
	URL string
	// Identity id that initiated the session; set at creation, never mutated.
	ClientReferenceID string
	PaymentStatus     PaymentStatus
	Status            SessionStatus
}

type CreateCheckoutParams struct {
	IdentityID string
	PriceID    string
	SuccessURL string
	CancelURL  string
}
