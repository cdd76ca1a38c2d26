package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tradeacademy/internal/models/db_models"
)

type HeroRepositoryInterface interface {
	Get(ctx context.Context) (*db_models.HeroContent, error)
	Update(ctx context.Context, hero *db_models.HeroContent) error
}

func NewHeroRepository(db *gorm.DB) HeroRepositoryInterface {
	return &HeroRepository{db: db}
}

type HeroRepository struct {
	db *gorm.DB
}

func (r HeroRepository) Get(ctx context.Context) (*db_models.HeroContent, error) {
	var hero db_models.HeroContent
	err := r.db.WithContext(ctx).Where("id = ?", db_models.HeroContentID).First(&hero).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hero, nil
}

func (r HeroRepository) Update(ctx context.Context, hero *db_models.HeroContent) error {
	hero.ID = db_models.HeroContentID
	return r.db.WithContext(ctx).Save(hero).Error
}
