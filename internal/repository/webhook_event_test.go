package repository

import (
	"context"
	"testing"
)

func TestWebhookEventMarkProcessed(t *testing.T) {
	ctx := context.Background()
	repo := NewWebhookEventRepository(newTestDB(t))

	exists, err := repo.Exists(ctx, "evt_1")
	if err != nil || exists {
		t.Fatalf("expected unseen event, got %v %v", exists, err)
	}

	for i := 0; i < 2; i++ {
		if err := repo.MarkProcessed(ctx, "evt_1", "stripe", "checkout.session.completed"); err != nil {
			t.Fatalf("MarkProcessed #%d: %v", i+1, err)
		}
	}

	exists, err = repo.Exists(ctx, "evt_1")
	if err != nil || !exists {
		t.Fatalf("expected processed event, got %v %v", exists, err)
	}
}
