package repositories

import (
	"context"

	"gorm.io/gorm"

	"tradeacademy/internal/models/db_models"
)

type TestimonialRepositoryInterface interface {
	GetAll(ctx context.Context) ([]db_models.Testimonial, error)
	Create(ctx context.Context, testimonial *db_models.Testimonial) error
	Update(ctx context.Context, testimonial *db_models.Testimonial) error
	Delete(ctx context.Context, id uint) error
}

func NewTestimonialRepository(db *gorm.DB) TestimonialRepositoryInterface {
	return &TestimonialRepository{db: db}
}

type TestimonialRepository struct {
	db *gorm.DB
}

func (r TestimonialRepository) GetAll(ctx context.Context) ([]db_models.Testimonial, error) {
	var testimonials []db_models.Testimonial
	if err := r.db.WithContext(ctx).Order("id").Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r TestimonialRepository) Create(ctx context.Context, testimonial *db_models.Testimonial) error {
	return r.db.WithContext(ctx).Create(testimonial).Error
}

func (r TestimonialRepository) Update(ctx context.Context, testimonial *db_models.Testimonial) error {
	var existing db_models.Testimonial
	if err := r.db.WithContext(ctx).First(&existing, testimonial.ID).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(testimonial).Error
}

func (r TestimonialRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&db_models.Testimonial{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
