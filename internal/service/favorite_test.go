package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestFavorites(t *testing.T) {
	ctx := context.Background()
	r := newTestRepos(t)
	svc := NewFavoriteService(r.favorites, r.scripts)

	for i := 0; i < 2; i++ {
		if err := svc.Add(ctx, "user-1", 3); err != nil {
			t.Fatalf("Add #%d returned error: %v", i, err)
		}
	}
	if err := svc.Add(ctx, "user-1", 1); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	ids, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if fmt.Sprint(ids) != "[3 1]" {
		t.Fatalf("expected [3 1], got %v", ids)
	}

	for i := 0; i < 2; i++ {
		if err := svc.Remove(ctx, "user-1", 3); err != nil {
			t.Fatalf("Remove #%d returned error: %v", i, err)
		}
	}

	ids, _ = svc.List(ctx, "user-1")
	if fmt.Sprint(ids) != "[1]" {
		t.Fatalf("expected [1], got %v", ids)
	}

	other, _ := svc.List(ctx, "user-2")
	if len(other) != 0 {
		t.Fatalf("favorites leaked across users: %v", other)
	}
}

func TestFavoritesErrors(t *testing.T) {
	ctx := context.Background()
	r := newTestRepos(t)
	svc := NewFavoriteService(r.favorites, r.scripts)

	if err := svc.Add(ctx, "user-1", 999); !errors.Is(err, ErrScriptNotFound) {
		t.Fatalf("expected ErrScriptNotFound, got %v", err)
	}
	if err := svc.Add(ctx, "", 1); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if err := svc.Remove(ctx, "", 1); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := svc.List(ctx, ""); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
