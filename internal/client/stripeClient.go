package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"scriptmarket/internal/config"
	"scriptmarket/internal/model"

	"github.com/stripe/stripe-go/v76"
	stripeclient "github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	StripeSignatureHeader               = "Stripe-Signature"
	StripeEventCheckoutSessionCompleted = "checkout.session.completed"
)

type stripeClientImpl struct {
	api           *stripeclient.API
	configured    bool
	webhookSecret string
	currency      string
}

// NewStripeClient builds a Stripe provider. backends may be nil to use the live API.
func NewStripeClient(cfg *config.Stripe, currency string, backends *stripe.Backends) PaymentProvider {
	c := &stripeClientImpl{
		configured:    cfg.SecretKey != "",
		webhookSecret: cfg.WebhookSecret,
		currency:      currency,
	}
	if c.configured {
		c.api = stripeclient.New(cfg.SecretKey, backends)
	}
	return c
}

func (c *stripeClientImpl) Name() string {
	return model.ProviderStripe
}

func (c *stripeClientImpl) Configured() bool {
	return c.configured
}

func (c *stripeClientImpl) CreateCheckoutSession(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutSession, error) {
	if !c.configured {
		return nil, ErrProviderNotConfigured
	}

	currency := req.Currency
	if currency == "" {
		currency = c.currency
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Lines))
	for _, line := range req.Lines {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(line.Title),
					Metadata: map[string]string{
						"script_id": fmt.Sprint(line.ScriptID),
					},
				},
				UnitAmount: stripe.Int64(line.UnitAmount),
			},
			Quantity: stripe.Int64(line.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create checkout session: %w", err)
	}

	return &model.CheckoutSession{
		ID:  sess.ID,
		URL: sess.URL,
	}, nil
}

func (c *stripeClientImpl) ParseWebhookEvent(ctx context.Context, headers http.Header, body []byte) (*model.PaymentEvent, error) {
	var event stripe.Event

	if c.webhookSecret != "" {
		signature := headers.Get(StripeSignatureHeader)
		if signature == "" {
			return nil, fmt.Errorf("%w: missing %s header", ErrInvalidSignature, StripeSignatureHeader)
		}

		var err error
		event, err = webhook.ConstructEventWithOptions(body, signature, c.webhookSecret, webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
	} else if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	result := &model.PaymentEvent{
		ID:       event.ID,
		Provider: model.ProviderStripe,
		Type:     string(event.Type),
		Verified: c.webhookSecret != "",
	}

	if result.Type != StripeEventCheckoutSessionCompleted {
		return result, nil
	}

	if event.Data == nil || len(event.Data.Raw) == 0 {
		return nil, fmt.Errorf("%w: event has no data object", ErrInvalidPayload)
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, fmt.Errorf("%w: decode checkout session: %v", ErrInvalidPayload, err)
	}

	result.Completed = true
	result.SessionID = session.ID
	result.AmountTotal = session.AmountTotal
	result.Metadata = session.Metadata
	if session.PaymentIntent != nil {
		result.PaymentIntentID = session.PaymentIntent.ID
	}

	return result, nil
}
