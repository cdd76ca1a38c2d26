package repositories

import (
	"context"

	"gorm.io/gorm"

	"tradeacademy/internal/models/db_models"
)

type FeatureRepositoryInterface interface {
	GetAll(ctx context.Context) ([]db_models.Feature, error)
	Create(ctx context.Context, feature *db_models.Feature) error
	Update(ctx context.Context, feature *db_models.Feature) error
	Delete(ctx context.Context, id uint) error
}

func NewFeatureRepository(db *gorm.DB) FeatureRepositoryInterface {
	return &FeatureRepository{db: db}
}

type FeatureRepository struct {
	db *gorm.DB
}

func (r FeatureRepository) GetAll(ctx context.Context) ([]db_models.Feature, error) {
	var features []db_models.Feature
	if err := r.db.WithContext(ctx).Order("id").Find(&features).Error; err != nil {
		return nil, err
	}
	return features, nil
}

func (r FeatureRepository) Create(ctx context.Context, feature *db_models.Feature) error {
	return r.db.WithContext(ctx).Create(feature).Error
}

func (r FeatureRepository) Update(ctx context.Context, feature *db_models.Feature) error {
	var existing db_models.Feature
	if err := r.db.WithContext(ctx).First(&existing, feature.ID).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(feature).Error
}

func (r FeatureRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&db_models.Feature{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
