package repository

import (
	"context"

	"scriptmarket/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScriptRepository interface {
	Seed(ctx context.Context, scripts []model.Script) error
	List(ctx context.Context) ([]*model.Script, error)
	FindByID(ctx context.Context, scriptID int64) (*model.Script, error)
	FindMany(ctx context.Context, scriptIDs []int64) ([]*model.Script, error)
}

type scriptRepoImpl struct {
	db *gorm.DB
}

func NewScriptRepository(db *gorm.DB) ScriptRepository {
	return &scriptRepoImpl{
		db: db,
	}
}

// Seed inserts scripts whose id is not present yet.
func (r *scriptRepoImpl) Seed(ctx context.Context, scripts []model.Script) error {
	if len(scripts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&scripts).Error
}

func (r *scriptRepoImpl) List(ctx context.Context) ([]*model.Script, error) {
	var scripts []*model.Script
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&scripts).Error

	if err != nil {
		return nil, err
	}

	return scripts, nil
}

func (r *scriptRepoImpl) FindByID(ctx context.Context, scriptID int64) (*model.Script, error) {
	var script model.Script
	err := r.db.WithContext(ctx).
		Where("id = ?", scriptID).
		First(&script).Error

	if err != nil {
		return nil, err
	}

	return &script, nil
}

func (r *scriptRepoImpl) FindMany(ctx context.Context, scriptIDs []int64) ([]*model.Script, error) {
	scripts := []*model.Script{}
	if len(scriptIDs) == 0 {
		return scripts, nil
	}

	err := r.db.WithContext(ctx).
		Where("id IN ?", scriptIDs).
		Order("id").
		Find(&scripts).Error

	if err != nil {
		return nil, err
	}

	return scripts, nil
}
