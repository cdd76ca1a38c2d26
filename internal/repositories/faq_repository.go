package repositories

import (
	"context"

	"gorm.io/gorm"

	"tradeacademy/internal/models/db_models"
)

type FAQRepositoryInterface interface {
	GetAll(ctx context.Context) ([]db_models.FAQ, error)
	Create(ctx context.Context, faq *db_models.FAQ) error
	Update(ctx context.Context, faq *db_models.FAQ) error
	Delete(ctx context.Context, id uint) error
}

func NewFAQRepository(db *gorm.DB) FAQRepositoryInterface {
	return &FAQRepository{db: db}
}

type FAQRepository struct {
	db *gorm.DB
}

func (r FAQRepository) GetAll(ctx context.Context) ([]db_models.FAQ, error) {
	var faqs []db_models.FAQ
	if err := r.db.WithContext(ctx).Order("id").Find(&faqs).Error; err != nil {
		return nil, err
	}
	return faqs, nil
}

func (r FAQRepository) Create(ctx context.Context, faq *db_models.FAQ) error {
	return r.db.WithContext(ctx).Create(faq).Error
}

func (r FAQRepository) Update(ctx context.Context, faq *db_models.FAQ) error {
	var existing db_models.FAQ
	if err := r.db.WithContext(ctx).First(&existing, faq.ID).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(faq).Error
}

func (r FAQRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&db_models.FAQ{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
