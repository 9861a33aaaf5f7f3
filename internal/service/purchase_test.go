package service

import (
	"context"
	"errors"
	"testing"

	"scriptmarket/internal/model"
)

func TestDemoPurchase(t *testing.T) {
	ctx := context.Background()
	r := newTestRepos(t)
	svc := NewPurchaseService(r.purchases, r.scripts)

	resp, err := svc.DemoPurchase(ctx, "user-1", []int64{1, 404, 3})
	if err != nil {
		t.Fatalf("DemoPurchase returned error: %v", err)
	}
	if resp.Success {
		t.Fatal("expected partial failure")
	}
	if !equalIDs(resp.PurchasedScriptIDs, []int64{1, 3}) {
		t.Fatalf("unexpected purchased ids %v", resp.PurchasedScriptIDs)
	}
	if resp.Message != "Successfully purchased 2 script(s)" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if len(resp.Failures) != 1 || resp.Failures[0].ScriptID != 404 {
		t.Fatalf("unexpected failures %+v", resp.Failures)
	}

	// repeating is idempotent
	resp, err = svc.DemoPurchase(ctx, "user-1", []int64{1})
	if err != nil || !resp.Success {
		t.Fatalf("unexpected repeat result %+v %v", resp, err)
	}

	purchases, err := r.purchases.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(purchases) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(purchases))
	}
	for _, p := range purchases {
		if p.Status != model.PurchaseStatusDemo || !p.AmountPaid.IsZero() {
			t.Errorf("unexpected demo row %+v", p)
		}
	}
}

func TestDemoPurchaseErrors(t *testing.T) {
	r := newTestRepos(t)
	svc := NewPurchaseService(r.purchases, r.scripts)

	if _, err := svc.DemoPurchase(context.Background(), "", []int64{1}); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.DemoPurchase(context.Background(), "user-1", nil); !errors.Is(err, ErrNoItems) {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
}
