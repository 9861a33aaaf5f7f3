package repository

import (
	"context"

	"scriptmarket/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PurchaseRepository interface {
	// CreateIfAbsent reports whether a new row was written.
	CreateIfAbsent(ctx context.Context, purchase *model.Purchase) (bool, error)
	Exists(ctx context.Context, userID string, scriptID int64) (bool, error)
	Find(ctx context.Context, userID string, scriptID int64) (*model.Purchase, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Purchase, error)
	ListScriptIDs(ctx context.Context, userID string) ([]int64, error)
}

type purchaseRepoImpl struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepoImpl{
		db: db,
	}
}

func (r *purchaseRepoImpl) CreateIfAbsent(ctx context.Context, purchase *model.Purchase) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "script_id"}},
		DoNothing: true,
	}).Create(purchase)

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

func (r *purchaseRepoImpl) Exists(ctx context.Context, userID string, scriptID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Purchase{}).
		Where("user_id = ? AND script_id = ?", userID, scriptID).
		Count(&count).Error

	return count > 0, err
}

func (r *purchaseRepoImpl) Find(ctx context.Context, userID string, scriptID int64) (*model.Purchase, error) {
	var purchase model.Purchase
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND script_id = ?", userID, scriptID).
		First(&purchase).Error

	if err != nil {
		return nil, err
	}

	return &purchase, nil
}

func (r *purchaseRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.Purchase, error) {
	var purchases []*model.Purchase
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&purchases).Error

	if err != nil {
		return nil, err
	}

	return purchases, nil
}

func (r *purchaseRepoImpl) ListScriptIDs(ctx context.Context, userID string) ([]int64, error) {
	ids := []int64{}
	err := r.db.WithContext(ctx).
		Model(&model.Purchase{}).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Pluck("script_id", &ids).Error

	if err != nil {
		return nil, err
	}

	return ids, nil
}
