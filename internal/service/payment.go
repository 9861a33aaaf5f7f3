package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"scriptmarket/internal/client"
	"scriptmarket/internal/model"
	"scriptmarket/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type PaymentService interface {
	// HandleWebhook returns an error only when the event is rejected outright.
	HandleWebhook(ctx context.Context, provider string, headers http.Header, body []byte) error
	CapturePaypalOrder(ctx context.Context, orderID string) error
}

type paymentServiceImpl struct {
	providers        map[string]client.PaymentProvider
	paypalClient     client.PaypalClient
	purchaseRepo     repository.PurchaseRepository
	webhookEventRepo repository.WebhookEventRepository
	cartRepo         repository.CartRepository
}

// NewPaymentService wires webhook handling. paypalClient and cartRepo may be nil.
func NewPaymentService(
	providers []client.PaymentProvider,
	paypalClient client.PaypalClient,
	purchaseRepo repository.PurchaseRepository,
	webhookEventRepo repository.WebhookEventRepository,
	cartRepo repository.CartRepository,
) PaymentService {
	byName := make(map[string]client.PaymentProvider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}

	return &paymentServiceImpl{
		providers:        byName,
		paypalClient:     paypalClient,
		purchaseRepo:     purchaseRepo,
		webhookEventRepo: webhookEventRepo,
		cartRepo:         cartRepo,
	}
}

func (s *paymentServiceImpl) HandleWebhook(ctx context.Context, provider string, headers http.Header, body []byte) error {
	logger := zerolog.Ctx(ctx).With().Str("provider", provider).Logger()

	p, ok := s.providers[provider]
	if !ok {
		return ErrUnknownProvider
	}

	event, err := p.ParseWebhookEvent(ctx, headers, body)
	switch {
	case errors.Is(err, client.ErrInvalidPayload):
		logger.Warn().Err(err).Msg("failed to parse webhook body")
		return ErrInvalidWebhookPayload
	case err != nil:
		logger.Warn().Err(err).Msg("webhook signature verification failed")
		return ErrWebhookRejected
	}

	logger = logger.With().Str("event_id", event.ID).Str("event_type", event.Type).Logger()
	if !event.Verified {
		logger.Warn().Msg("accepting unverified webhook, no secret configured")
	}

	if event.ID != "" {
		processed, err := s.webhookEventRepo.Exists(ctx, event.ID)
		if err != nil {
			logger.Error().Err(err).Msg("check processed webhook event")
		} else if processed {
			logger.Info().Msg("webhook event already processed")
			return nil
		}
	}

	if !event.Completed {
		logger.Debug().Msg("unhandled webhook event type")
		return nil
	}

	if s.recordPurchases(logger.WithContext(ctx), event) && event.ID != "" {
		if err := s.webhookEventRepo.MarkProcessed(ctx, event.ID, event.Provider, event.Type); err != nil {
			logger.Error().Err(err).Msg("mark webhook event processed")
		}
	}

	return nil
}

// recordPurchases writes one row per script id and reports whether every row is in place.
func (s *paymentServiceImpl) recordPurchases(ctx context.Context, event *model.PaymentEvent) bool {
	logger := zerolog.Ctx(ctx)

	userID := event.Metadata[model.MetadataUserID]
	rawIDs := event.Metadata[model.MetadataScriptIDs]
	if userID == "" || rawIDs == "" {
		logger.Error().Str("session_id", event.SessionID).Msg("missing metadata in checkout session")
		return false
	}

	scriptIDs, err := model.ParseScriptIDs(rawIDs)
	if err != nil || len(scriptIDs) == 0 {
		logger.Error().Err(err).Str("script_ids", rawIDs).Msg("unusable script ids in checkout session")
		return false
	}
	scriptIDs = uniqueScriptIDs(scriptIDs)

	share := model.FromCents(event.AmountTotal).
		Div(decimal.NewFromInt(int64(len(scriptIDs)))).
		Round(2)

	ok := true
	recorded := 0
	for _, scriptID := range scriptIDs {
		inserted, err := s.purchaseRepo.CreateIfAbsent(ctx, &model.Purchase{
			UserID:           userID,
			ScriptID:         scriptID,
			AmountPaid:       share,
			PaymentProvider:  event.Provider,
			PaymentSessionID: event.SessionID,
			PaymentIntentID:  event.PaymentIntentID,
			Status:           model.PurchaseStatusCompleted,
		})
		if err != nil {
			ok = false
			logger.Error().Err(err).Int64("script_id", scriptID).Msg("failed to record purchase")
			continue
		}
		if inserted {
			recorded++
			continue
		}

		existing, err := s.purchaseRepo.Find(ctx, userID, scriptID)
		if err == nil && existing.Status == model.PurchaseStatusDemo {
			logger.Warn().
				Str("session_id", event.SessionID).
				Int64("script_id", scriptID).
				Msg("paid purchase not recorded, demo purchase already exists")
		} else {
			logger.Info().Int64("script_id", scriptID).Msg("purchase already recorded")
		}
	}

	logger.Info().
		Str("user_id", userID).
		Int("recorded", recorded).
		Int("script_count", len(scriptIDs)).
		Msg("recorded purchases")

	if s.cartRepo != nil {
		if err := s.cartRepo.Delete(ctx, userID); err != nil {
			logger.Warn().Err(err).Str("user_id", userID).Msg("failed to clear cart after purchase")
		}
	}

	return ok
}

// uniqueScriptIDs drops repeated ids, keeping first-seen order.
func uniqueScriptIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s *paymentServiceImpl) CapturePaypalOrder(ctx context.Context, orderID string) error {
	if s.paypalClient == nil || !s.paypalClient.Configured() {
		return ErrPaymentNotConfigured
	}

	if err := s.paypalClient.CaptureOrder(ctx, orderID); err != nil {
		return fmt.Errorf("paypal api capture order: %w", err)
	}
	return nil
}
