package client

import (
	"context"
	"errors"
	"net/http"

	"scriptmarket/internal/model"
)

var (
	ErrProviderNotConfigured = errors.New("payment provider not configured")
	ErrInvalidSignature      = errors.New("webhook signature verification failed")
	ErrInvalidPayload        = errors.New("invalid webhook payload")
)

// SessionIDPlaceholder is replaced by the provider with the created session id.
const SessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"

type PaymentProvider interface {
	Name() string
	Configured() bool
	CreateCheckoutSession(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutSession, error)
	// ParseWebhookEvent verifies (when a secret is configured) and decodes a webhook delivery.
	ParseWebhookEvent(ctx context.Context, headers http.Header, body []byte) (*model.PaymentEvent, error)
}
