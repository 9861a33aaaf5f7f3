package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"scriptmarket/internal/model"

	"github.com/redis/go-redis/v9"
)

const cartPrefix = "cart:"

type CartRepository interface {
	Get(ctx context.Context, userID string) (*model.Cart, error)
	Save(ctx context.Context, userID string, cart *model.Cart) error
	Delete(ctx context.Context, userID string) error
}

type cartRepoImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCartRepository(client *redis.Client, ttl time.Duration) CartRepository {
	return &cartRepoImpl{
		client: client,
		ttl:    ttl,
	}
}

func cartKey(userID string) string {
	return cartPrefix + userID
}

// Get returns an empty cart when nothing is stored for the user.
func (r *cartRepoImpl) Get(ctx context.Context, userID string) (*model.Cart, error) {
	raw, err := r.client.Get(ctx, cartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &model.Cart{Items: []model.CartItem{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	var cart model.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []model.CartItem{}
	}

	return &cart, nil
}

func (r *cartRepoImpl) Save(ctx context.Context, userID string, cart *model.Cart) error {
	if cart.IsEmpty() {
		return r.Delete(ctx, userID)
	}

	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}

	if err := r.client.Set(ctx, cartKey(userID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (r *cartRepoImpl) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
