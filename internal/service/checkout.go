package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"scriptmarket/internal/client"
	"scriptmarket/internal/dto"
	"scriptmarket/internal/model"

	"github.com/rs/zerolog"
)

type CheckoutService interface {
	// Ready reports ErrPaymentNotConfigured when no usable provider is wired.
	Ready() error
	// CreateSession starts a hosted checkout for the given cart lines.
	CreateSession(ctx context.Context, userID string, items []*dto.CheckoutItem, origin string) (*dto.CheckoutResponse, error)
}

type checkoutServiceImpl struct {
	provider       client.PaymentProvider
	currency       string
	baseURL        string
	allowedOrigins map[string]bool
}

func NewCheckoutService(
	provider client.PaymentProvider,
	currency string,
	baseURL string,
	allowedOrigins []string,
) CheckoutService {
	origins := make(map[string]bool, len(allowedOrigins)+1)
	for _, o := range allowedOrigins {
		origins[strings.TrimRight(o, "/")] = true
	}
	origins[strings.TrimRight(baseURL, "/")] = true

	return &checkoutServiceImpl{
		provider:       provider,
		currency:       currency,
		baseURL:        strings.TrimRight(baseURL, "/"),
		allowedOrigins: origins,
	}
}

func (s *checkoutServiceImpl) redirectOrigin(origin string) string {
	origin = strings.TrimRight(origin, "/")
	if origin != "" && s.allowedOrigins[origin] {
		return origin
	}
	return s.baseURL
}

func (s *checkoutServiceImpl) Ready() error {
	if s.provider == nil || !s.provider.Configured() {
		return ErrPaymentNotConfigured
	}
	return nil
}

func (s *checkoutServiceImpl) CreateSession(ctx context.Context, userID string, items []*dto.CheckoutItem, origin string) (*dto.CheckoutResponse, error) {
	logger := zerolog.Ctx(ctx)

	if err := s.Ready(); err != nil {
		logger.Error().Msg("payment provider is not configured")
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	lines := make([]model.CheckoutLine, 0, len(items))
	scriptIDs := make([]int64, 0, len(items))
	for _, item := range items {
		if item == nil || item.ID <= 0 || item.Quantity < 1 || item.Price.IsNegative() {
			return nil, ErrInvalidCartItem
		}

		title := strings.TrimSpace(item.Title)
		if title == "" {
			title = fmt.Sprintf("Script #%d", item.ID)
		}

		lines = append(lines, model.CheckoutLine{
			ScriptID:   item.ID.Int64(),
			Title:      title,
			UnitAmount: model.ToCents(item.Price),
			Quantity:   item.Quantity,
		})
		scriptIDs = append(scriptIDs, item.ID.Int64())
	}

	base := s.redirectOrigin(origin)
	req := &model.CheckoutRequest{
		Lines:      lines,
		Currency:   s.currency,
		SuccessURL: base + "?purchase=success&session_id=" + client.SessionIDPlaceholder,
		CancelURL:  base + "?purchase=cancelled",
		Metadata: map[string]string{
			model.MetadataUserID:    userID,
			model.MetadataScriptIDs: model.EncodeScriptIDs(scriptIDs),
		},
	}

	logger.Info().
		Str("provider", s.provider.Name()).
		Int("item_count", len(lines)).
		Int64("total_cents", req.TotalCents()).
		Msg("creating checkout session")

	sess, err := s.provider.CreateCheckoutSession(ctx, req)
	if errors.Is(err, client.ErrProviderNotConfigured) {
		return nil, ErrPaymentNotConfigured
	}
	if err != nil {
		logger.Error().Err(err).Str("provider", s.provider.Name()).Msg("create checkout session failed")
		return nil, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}
	if sess.URL == "" {
		logger.Error().Str("session_id", sess.ID).Msg("provider returned no checkout url")
		return nil, fmt.Errorf("%w: no checkout url", ErrCheckoutFailed)
	}

	return &dto.CheckoutResponse{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}
