package repository

import (
	"context"
	"testing"
	"time"

	"scriptmarket/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

func newMiniRedisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return mr, client
}

func TestCartSaveAndGet(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newMiniRedisClient(t)
	repo := NewCartRepository(rdb, time.Hour)

	empty, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !empty.IsEmpty() || empty.Items == nil {
		t.Fatalf("expected empty cart, got %+v", empty)
	}

	cart := &model.Cart{}
	cart.Add(model.CartItem{ScriptID: 1, Title: "Classic Traditional Wedding Ceremony", Price: decimal.RequireFromString("29.99")})
	cart.Add(model.CartItem{ScriptID: 1, Title: "Classic Traditional Wedding Ceremony", Price: decimal.RequireFromString("29.99")})
	if err := repo.Save(ctx, "user-1", cart); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if ttl := mr.TTL("cart:user-1"); ttl != time.Hour {
		t.Fatalf("expected ttl of 1h, got %s", ttl)
	}

	loaded, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(loaded.Items) != 1 || loaded.Items[0].Quantity != 2 {
		t.Fatalf("unexpected cart %+v", loaded)
	}
	if !loaded.Total().Equal(decimal.RequireFromString("59.98")) {
		t.Fatalf("unexpected total %s", loaded.Total())
	}
}

func TestCartSaveEmptyDeletes(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newMiniRedisClient(t)
	repo := NewCartRepository(rdb, time.Hour)

	cart := &model.Cart{}
	cart.Add(model.CartItem{ScriptID: 3, Price: decimal.RequireFromString("24.99")})
	if err := repo.Save(ctx, "user-1", cart); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	cart.Clear()
	if err := repo.Save(ctx, "user-1", cart); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if mr.Exists("cart:user-1") {
		t.Fatal("empty cart must delete the key")
	}
}

func TestCartGetCorruptValue(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newMiniRedisClient(t)
	repo := NewCartRepository(rdb, time.Hour)

	if err := mr.Set("cart:user-1", "{not json"); err != nil {
		t.Fatalf("seed redis: %v", err)
	}

	if _, err := repo.Get(ctx, "user-1"); err == nil {
		t.Fatal("expected decode error")
	}
}
