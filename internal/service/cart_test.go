package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"scriptmarket/internal/model"
	"scriptmarket/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

func newCartService(t *testing.T) (CartService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	r := newTestRepos(t)
	return NewCartService(repository.NewCartRepository(rdb, time.Hour), r.scripts), mr
}

func TestCartLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, mr := newCartService(t)

	if _, err := svc.AddItem(ctx, "user-1", 1); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}
	if _, err := svc.AddItem(ctx, "user-1", 3); err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}
	cart, err := svc.AddItem(ctx, "user-1", 3)
	if err != nil {
		t.Fatalf("AddItem returned error: %v", err)
	}

	if cart.Count != 3 || !cart.Total.Equal(decimal.RequireFromString("79.97")) {
		t.Fatalf("unexpected cart total %s count %d", cart.Total, cart.Count)
	}
	if cart.Items[0].Title != "Classic Traditional Wedding Ceremony" || cart.Items[1].Quantity != 2 {
		t.Fatalf("unexpected items %+v", cart.Items)
	}
	if !mr.Exists("cart:user-1") {
		t.Fatal("cart not persisted")
	}

	cart, err = svc.UpdateQuantity(ctx, "user-1", 1, 4)
	if err != nil {
		t.Fatalf("UpdateQuantity returned error: %v", err)
	}
	if cart.Count != 6 {
		t.Fatalf("expected count 6, got %d", cart.Count)
	}

	cart, err = svc.UpdateQuantity(ctx, "user-1", 1, 0)
	if err != nil {
		t.Fatalf("UpdateQuantity returned error: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].ScriptID != 3 {
		t.Fatalf("expected only script 3, got %+v", cart.Items)
	}

	cart, err = svc.RemoveItem(ctx, "user-1", 3)
	if err != nil {
		t.Fatalf("RemoveItem returned error: %v", err)
	}
	if len(cart.Items) != 0 || cart.Count != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
	if mr.Exists("cart:user-1") {
		t.Fatal("empty cart should not be stored")
	}
}

func TestCartReplaceUsesCatalogPrices(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCartService(t)

	cart, err := svc.Replace(ctx, "user-1", []model.CartItem{
		{ScriptID: 6, Title: "cheap", Price: decimal.RequireFromString("0.01"), Quantity: 2},
		{ScriptID: 4, Quantity: 0},
	})
	if err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Title != "Jewish Wedding Ceremony" {
		t.Fatalf("unexpected items %+v", cart.Items)
	}
	if !cart.Total.Equal(decimal.RequireFromString("79.98")) {
		t.Fatalf("expected catalog total 79.98, got %s", cart.Total)
	}

	if _, err := svc.Replace(ctx, "user-1", []model.CartItem{{ScriptID: 404, Quantity: 1}}); !errors.Is(err, ErrScriptNotFound) {
		t.Fatalf("expected ErrScriptNotFound, got %v", err)
	}

	if err := svc.Clear(ctx, "user-1"); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	got, err := svc.Get(ctx, "user-1")
	if err != nil || len(got.Items) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v %v", got, err)
	}
}

func TestCartErrors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCartService(t)

	if _, err := svc.AddItem(ctx, "user-1", 404); !errors.Is(err, ErrScriptNotFound) {
		t.Fatalf("expected ErrScriptNotFound, got %v", err)
	}
	if _, err := svc.Get(ctx, ""); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if err := svc.Clear(ctx, ""); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
