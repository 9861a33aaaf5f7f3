package client

import (
	"context"
	"testing"

	"scriptmarket/internal/config"

	"github.com/alicebob/miniredis/v2"
)

func TestNewRedisClient(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	rdb, err := NewRedisClient(context.Background(), &config.Redis{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("NewRedisClient returned error: %v", err)
	}
	defer func() { _ = rdb.Close() }()

	if rdb == nil {
		t.Fatal("expected client")
	}
}

func TestNewRedisClientDisabled(t *testing.T) {
	rdb, err := NewRedisClient(context.Background(), &config.Redis{})
	if err != nil || rdb != nil {
		t.Fatalf("expected nil client and nil error, got %v, %v", rdb, err)
	}
}

func TestNewRedisClientUnreachable(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	addr := mr.Addr()
	mr.Close()

	if _, err := NewRedisClient(context.Background(), &config.Redis{Addr: addr}); err == nil {
		t.Fatal("expected ping error")
	}
}
