package service

import (
	"context"
	"errors"
	"fmt"

	"scriptmarket/internal/repository"

	"gorm.io/gorm"
)

type FavoriteService interface {
	List(ctx context.Context, userID string) ([]int64, error)
	Add(ctx context.Context, userID string, scriptID int64) error
	Remove(ctx context.Context, userID string, scriptID int64) error
}

type favoriteServiceImpl struct {
	favoriteRepo repository.FavoriteRepository
	scriptRepo   repository.ScriptRepository
}

func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	scriptRepo repository.ScriptRepository,
) FavoriteService {
	return &favoriteServiceImpl{
		favoriteRepo: favoriteRepo,
		scriptRepo:   scriptRepo,
	}
}

func (s *favoriteServiceImpl) List(ctx context.Context, userID string) ([]int64, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	ids, err := s.favoriteRepo.ListScriptIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

// Add is idempotent; adding an existing favorite is not an error.
func (s *favoriteServiceImpl) Add(ctx context.Context, userID string, scriptID int64) error {
	if userID == "" {
		return ErrUnauthenticated
	}

	if _, err := s.scriptRepo.FindByID(ctx, scriptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScriptNotFound
		}
		return fmt.Errorf("find script: %w", err)
	}

	if err := s.favoriteRepo.Add(ctx, userID, scriptID); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// Remove is idempotent; removing a missing favorite is not an error.
func (s *favoriteServiceImpl) Remove(ctx context.Context, userID string, scriptID int64) error {
	if userID == "" {
		return ErrUnauthenticated
	}

	if err := s.favoriteRepo.Remove(ctx, userID, scriptID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}
