package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/you-humble/noventa-support/internal/metrics"
	"github.com/you-humble/noventa-support/internal/model"
	"github.com/you-humble/noventa-support/platform/logger"
)

const (
	msgMissingSession   = "Could not find session information. Please return to the site and try again or contact support."
	msgRetrieveFailed   = "An error occurred while checking your payment. Please refresh this page in a moment or contact support."
	msgGranted          = "Payment successful! Your community role has been assigned. You can now access the subscriber channels."
	msgGrantFailed      = "Payment was successful, but there was an error assigning your community role: %s Please contact support with your Discord ID (%s)."
	msgMissingReference = "Payment successful, but we could not retrieve your Discord ID to assign the role. Please contact support."
	msgStillProcessing  = "Your payment is still processing. Please wait a moment and refresh this page, or check your email."
	msgNotPaid          = "Payment status: %s. Your payment was not successful. Please try again or contact support."
)

type SessionReader interface {
	CheckoutSession(ctx context.Context, id string) (model.CheckoutSession, error)
}

type RoleGranter interface {
	Grant(ctx context.Context, identityID string) model.RoleGrantOutcome
}

type service struct {
	sessions SessionReader
	granter  RoleGranter
}

func NewReconcileService(sessions SessionReader, granter RoleGranter) *service {
	return &service{sessions: sessions, granter: granter}
}

// Reconcile re-reads the checkout session and decides what the return page
// shows. A paid session triggers the grant on every call; deduplication is
// left to the grant being idempotent.
func (svc *service) Reconcile(ctx context.Context, sessionID string) model.Completion {
	c := svc.reconcile(ctx, sessionID)
	metrics.Completions.WithLabelValues(string(c.State)).Inc()
	return c
}

func (svc *service) reconcile(ctx context.Context, sessionID string) model.Completion {
	log := logger.With(
		logger.String("attempt_id", uuid.NewString()),
		logger.String("session_id", sessionID),
	)

	if sessionID == "" {
		log.Error(ctx, "return page visited without session id")
		return model.Completion{State: model.CompletionError, Message: msgMissingSession}
	}

	session, err := svc.sessions.CheckoutSession(ctx, sessionID)
	if err != nil {
		log.Error(ctx, "retrieve checkout session", logger.ErrorF(err))
		return model.Completion{
			State:     model.CompletionError,
			Message:   msgRetrieveFailed,
			SessionID: sessionID,
		}
	}

	log = log.With(
		logger.String("payment_status", string(session.PaymentStatus)),
		logger.String("session_status", string(session.Status)),
		logger.String("identity_id", session.ClientReferenceID),
	)

	c := model.Completion{SessionID: session.ID, IdentityID: session.ClientReferenceID}
	if c.SessionID == "" {
		c.SessionID = sessionID
	}

	switch {
	case session.PaymentStatus == model.PaymentStatusPaid && session.ClientReferenceID != "":
		log.Info(ctx, "payment confirmed, granting role")

		outcome := svc.granter.Grant(ctx, session.ClientReferenceID)
		if !outcome.Success {
			log.Error(ctx, "role grant failed after successful payment",
				logger.String("failure", string(outcome.Failure)),
				logger.String("outcome_message", outcome.Message),
				logger.String("detail", outcome.Detail),
			)
			c.State = model.CompletionError
			c.Message = fmt.Sprintf(msgGrantFailed, outcome.Message, session.ClientReferenceID)
			return c
		}

		c.State = model.CompletionSuccess
		c.Message = msgGranted
		return c

	case session.PaymentStatus == model.PaymentStatusPaid:
		log.Error(ctx, "paid session without client reference id")
		c.State = model.CompletionError
		c.Message = msgMissingReference
		return c

	case session.Status == model.SessionStatusOpen:
		log.Info(ctx, "checkout session still open")
		c.State = model.CompletionProcessing
		c.Message = msgStillProcessing
		return c

	default:
		log.Warn(ctx, "checkout session resolved without payment")
		c.State = model.CompletionError
		c.Message = fmt.Sprintf(msgNotPaid, session.PaymentStatus)
		return c
	}
}
