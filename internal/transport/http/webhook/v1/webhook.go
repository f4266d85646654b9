package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/you-humble/noventa-support/internal/model"
	"github.com/you-humble/noventa-support/internal/transport/http/response"
	"github.com/you-humble/noventa-support/platform/logger"
)

const (
	maxPayloadBytes = 65536

	SignatureHeader      = "Stripe-Signature"
	SignatureHeaderAlias = "Signature"
)

type WebhookService interface {
	Receive(ctx context.Context, payload []byte, signature string) (model.WebhookEvent, error)
}

type received struct {
	Received bool `json:"received"`
}

type handler struct {
	svc WebhookService
}

func NewWebhookHandler(svc WebhookService) *handler {
	return &handler{svc: svc}
}

// Payment reads the body as raw bytes. Nothing decodes it before the
// signature is checked.
func (h *handler) Payment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
	if err != nil {
		logger.Error(ctx, "read webhook body", logger.ErrorF(err))

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.JSON(w, r, http.StatusRequestEntityTooLarge, response.Error{Error: "Payload too large"})
			return
		}
		response.JSON(w, r, http.StatusBadRequest, response.Error{Error: "Could not read body"})
		return
	}

	signature := r.Header.Get(SignatureHeader)
	if signature == "" {
		signature = r.Header.Get(SignatureHeaderAlias)
	}

	if _, err := h.svc.Receive(ctx, payload, signature); err != nil {
		switch {
		case errors.Is(err, model.ErrMalformedInput):
			response.JSON(w, r, http.StatusBadRequest, response.Error{Error: "Missing or malformed body"})
		case errors.Is(err, model.ErrInvalidSignature):
			response.JSON(w, r, http.StatusBadRequest, response.Error{Error: "Webhook signature verification failed"})
		default:
			response.JSON(w, r, http.StatusInternalServerError, response.Error{Error: "Webhook handler failed"})
		}
		return
	}

	response.JSON(w, r, http.StatusOK, received{Received: true})
}
