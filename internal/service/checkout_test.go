package service

import (
	"context"
	"errors"
	"testing"

	"scriptmarket/internal/client"
	"scriptmarket/internal/dto"
	"scriptmarket/internal/model"

	"github.com/shopspring/decimal"
)

func exampleItems() []*dto.CheckoutItem {
	return []*dto.CheckoutItem{
		{ID: 1, Title: "Classic Traditional Wedding Ceremony", Price: decimal.RequireFromString("29.99"), Quantity: 1},
		{ID: 3, Title: "Modern Secular Wedding Script", Price: decimal.RequireFromString("24.99"), Quantity: 2},
	}
}

func TestCreateSessionBuildsProviderRequest(t *testing.T) {
	provider := &stubProvider{
		configured: true,
		session:    &model.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.example/cs_test_1"},
	}
	svc := NewCheckoutService(provider, "usd", "http://localhost:3000", []string{"https://shop.example"})

	resp, err := svc.CreateSession(context.Background(), "user-1", exampleItems(), "https://shop.example")
	if err != nil {
		t.Fatalf("CreateSession returned error: %v", err)
	}
	if resp.SessionID != "cs_test_1" || resp.URL != "https://checkout.example/cs_test_1" {
		t.Fatalf("unexpected response %+v", resp)
	}

	req := provider.lastReq
	if req.TotalCents() != 7997 {
		t.Fatalf("expected 7997 cents, got %d", req.TotalCents())
	}
	if req.Lines[0].UnitAmount != 2999 || req.Lines[1].UnitAmount != 2499 || req.Lines[1].Quantity != 2 {
		t.Fatalf("unexpected lines %+v", req.Lines)
	}
	if req.SuccessURL != "https://shop.example?purchase=success&session_id="+client.SessionIDPlaceholder {
		t.Fatalf("unexpected success url %q", req.SuccessURL)
	}
	if req.CancelURL != "https://shop.example?purchase=cancelled" {
		t.Fatalf("unexpected cancel url %q", req.CancelURL)
	}
	if req.Metadata[model.MetadataUserID] != "user-1" || req.Metadata[model.MetadataScriptIDs] != "[1,3]" {
		t.Fatalf("unexpected metadata %v", req.Metadata)
	}
}

func TestCreateSessionIgnoresUnknownOrigin(t *testing.T) {
	provider := &stubProvider{
		configured: true,
		session:    &model.CheckoutSession{ID: "cs_1", URL: "https://checkout.example/cs_1"},
	}
	svc := NewCheckoutService(provider, "usd", "http://localhost:3000/", nil)

	if _, err := svc.CreateSession(context.Background(), "user-1", exampleItems(), "https://evil.example"); err != nil {
		t.Fatalf("CreateSession returned error: %v", err)
	}
	if provider.lastReq.CancelURL != "http://localhost:3000?purchase=cancelled" {
		t.Fatalf("unexpected cancel url %q", provider.lastReq.CancelURL)
	}
}

func TestCreateSessionErrors(t *testing.T) {
	configured := &stubProvider{configured: true, session: &model.CheckoutSession{ID: "x", URL: "https://x"}}

	tests := []struct {
		name     string
		provider client.PaymentProvider
		userID   string
		items    []*dto.CheckoutItem
		want     error
	}{
		{name: "not configured", provider: &stubProvider{}, userID: "", items: nil, want: ErrPaymentNotConfigured},
		{name: "nil provider", provider: nil, userID: "user-1", items: exampleItems(), want: ErrPaymentNotConfigured},
		{name: "empty cart before auth", provider: configured, userID: "", items: nil, want: ErrNoItems},
		{name: "no user", provider: configured, userID: "", items: exampleItems(), want: ErrUnauthenticated},
		{name: "zero quantity", provider: configured, userID: "user-1", items: []*dto.CheckoutItem{{ID: 1, Price: decimal.NewFromInt(1)}}, want: ErrInvalidCartItem},
		{name: "bad id", provider: configured, userID: "user-1", items: []*dto.CheckoutItem{{ID: 0, Price: decimal.NewFromInt(1), Quantity: 1}}, want: ErrInvalidCartItem},
		{name: "negative price", provider: configured, userID: "user-1", items: []*dto.CheckoutItem{{ID: 1, Price: decimal.NewFromInt(-1), Quantity: 1}}, want: ErrInvalidCartItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var svc CheckoutService
			if sp, ok := tt.provider.(*stubProvider); ok {
				svc = NewCheckoutService(sp, "usd", "http://localhost:3000", nil)
			} else {
				svc = NewCheckoutService(nil, "usd", "http://localhost:3000", nil)
			}

			_, err := svc.CreateSession(context.Background(), tt.userID, tt.items, "")
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateSessionProviderFailure(t *testing.T) {
	provider := &stubProvider{configured: true, createErr: errors.New("card_declined: secret detail")}
	svc := NewCheckoutService(provider, "usd", "http://localhost:3000", nil)

	_, err := svc.CreateSession(context.Background(), "user-1", exampleItems(), "")
	if !errors.Is(err, ErrCheckoutFailed) {
		t.Fatalf("expected ErrCheckoutFailed, got %v", err)
	}

	provider.createErr = nil
	provider.session = &model.CheckoutSession{ID: "cs_1"}
	_, err = svc.CreateSession(context.Background(), "user-1", exampleItems(), "")
	if !errors.Is(err, ErrCheckoutFailed) {
		t.Fatalf("expected ErrCheckoutFailed for missing url, got %v", err)
	}
}
