package repository

import (
	"context"

	"scriptmarket/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID string, scriptID int64) error
	Remove(ctx context.Context, userID string, scriptID int64) error
	ListScriptIDs(ctx context.Context, userID string) ([]int64, error)
}

type favoriteRepoImpl struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepoImpl{
		db: db,
	}
}

func (r *favoriteRepoImpl) Add(ctx context.Context, userID string, scriptID int64) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "script_id"}},
		DoNothing: true,
	}).Create(&model.Favorite{
		UserID:   userID,
		ScriptID: scriptID,
	}).Error
}

func (r *favoriteRepoImpl) Remove(ctx context.Context, userID string, scriptID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND script_id = ?", userID, scriptID).
		Delete(&model.Favorite{}).Error
}

func (r *favoriteRepoImpl) ListScriptIDs(ctx context.Context, userID string) ([]int64, error) {
	ids := []int64{}
	err := r.db.WithContext(ctx).
		Model(&model.Favorite{}).
		Where("user_id = ?", userID).
		Order("created_at, script_id").
		Pluck("script_id", &ids).Error

	if err != nil {
		return nil, err
	}

	return ids, nil
}
