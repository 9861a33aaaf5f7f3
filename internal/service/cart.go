package service

import (
	"context"
	"errors"
	"fmt"

	"scriptmarket/internal/dto"
	"scriptmarket/internal/model"
	"scriptmarket/internal/repository"

	"gorm.io/gorm"
)

type CartService interface {
	Get(ctx context.Context, userID string) (*dto.CartResponse, error)
	Replace(ctx context.Context, userID string, items []model.CartItem) (*dto.CartResponse, error)
	AddItem(ctx context.Context, userID string, scriptID int64) (*dto.CartResponse, error)
	UpdateQuantity(ctx context.Context, userID string, scriptID int64, quantity int) (*dto.CartResponse, error)
	RemoveItem(ctx context.Context, userID string, scriptID int64) (*dto.CartResponse, error)
	Clear(ctx context.Context, userID string) error
}

type cartServiceImpl struct {
	cartRepo   repository.CartRepository
	scriptRepo repository.ScriptRepository
}

func NewCartService(
	cartRepo repository.CartRepository,
	scriptRepo repository.ScriptRepository,
) CartService {
	return &cartServiceImpl{
		cartRepo:   cartRepo,
		scriptRepo: scriptRepo,
	}
}

func (s *cartServiceImpl) Get(ctx context.Context, userID string) (*dto.CartResponse, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	cart, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewCartResponse(cart), nil
}

// lineFor builds a cart line from the catalog so stored prices never come from the client.
func (s *cartServiceImpl) lineFor(ctx context.Context, scriptID int64) (model.CartItem, error) {
	script, err := s.scriptRepo.FindByID(ctx, scriptID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartItem{}, ErrScriptNotFound
	}
	if err != nil {
		return model.CartItem{}, fmt.Errorf("find script: %w", err)
	}

	return model.CartItem{
		ScriptID: script.ID,
		Title:    script.Title,
		Price:    script.Price,
		Quantity: 1,
		Author:   script.Author,
		Language: script.Language,
		Category: script.Category,
		Type:     script.Type,
	}, nil
}

func (s *cartServiceImpl) Replace(ctx context.Context, userID string, items []model.CartItem) (*dto.CartResponse, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	cart := &model.Cart{Items: []model.CartItem{}}
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		line, err := s.lineFor(ctx, item.ScriptID)
		if err != nil {
			return nil, err
		}
		cart.Add(line)
		cart.UpdateQuantity(line.ScriptID, item.Quantity)
	}

	if err := s.cartRepo.Save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return dto.NewCartResponse(cart), nil
}

func (s *cartServiceImpl) AddItem(ctx context.Context, userID string, scriptID int64) (*dto.CartResponse, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	line, err := s.lineFor(ctx, scriptID)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, userID, func(cart *model.Cart) {
		cart.Add(line)
	})
}

func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, userID string, scriptID int64, quantity int) (*dto.CartResponse, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	return s.mutate(ctx, userID, func(cart *model.Cart) {
		cart.UpdateQuantity(scriptID, quantity)
	})
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, userID string, scriptID int64) (*dto.CartResponse, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	return s.mutate(ctx, userID, func(cart *model.Cart) {
		cart.Remove(scriptID)
	})
}

func (s *cartServiceImpl) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	return s.cartRepo.Delete(ctx, userID)
}

func (s *cartServiceImpl) mutate(ctx context.Context, userID string, fn func(*model.Cart)) (*dto.CartResponse, error) {
	cart, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	fn(cart)

	if err := s.cartRepo.Save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return dto.NewCartResponse(cart), nil
}
