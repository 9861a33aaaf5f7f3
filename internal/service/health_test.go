package service

import (
	"context"
	"testing"
)

func TestHealthCheck(t *testing.T) {
	r := newTestRepos(t)
	svc := NewHealthService(r.db, HealthOptions{PaymentProvider: "stripe", StripeConfigured: true})

	resp := svc.Check(context.Background())
	if resp.Status != "ok" || resp.Database != "ok" {
		t.Fatalf("unexpected health %+v", resp)
	}
	if resp.PaymentProvider != "stripe" || !resp.StripeConfigured || resp.PaypalConfigured {
		t.Fatalf("unexpected flags %+v", resp)
	}

	sqlDB, err := r.db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	_ = sqlDB.Close()

	resp = svc.Check(context.Background())
	if resp.Status != "degraded" || resp.Database != "error" {
		t.Fatalf("expected degraded health, got %+v", resp)
	}
}
