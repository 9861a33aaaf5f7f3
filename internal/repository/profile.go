package repository

import (
	"context"
	"strings"

	"scriptmarket/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	FindByID(ctx context.Context, userID string) (*model.Profile, error)
	FindByEmail(ctx context.Context, email string) (*model.Profile, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) (*model.Profile, error)
}

type profileRepoImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepoImpl{
		db: db,
	}
}

// Create returns gorm.ErrDuplicatedKey when the email is taken.
func (r *profileRepoImpl) Create(ctx context.Context, profile *model.Profile) error {
	profile.Email = strings.ToLower(strings.TrimSpace(profile.Email))
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepoImpl) FindByID(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&profile).Error

	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepoImpl) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&profile).Error

	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepoImpl) Update(ctx context.Context, userID string, updates map[string]interface{}) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Profile{}).
			Where("id = ?", userID).
			Updates(updates)

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Where("id = ?", userID).First(&profile).Error
	})
	if err != nil {
		return nil, err
	}

	return &profile, nil
}
