package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tradeacademy/internal/models/db_models"
)

type AdminRepositoryInterface interface {
	FindByUsername(ctx context.Context, username string) (*db_models.AdminUser, error)
}

func NewAdminRepository(db *gorm.DB) AdminRepositoryInterface {
	return &AdminRepository{db: db}
}

type AdminRepository struct {
	db *gorm.DB
}

func (r AdminRepository) FindByUsername(ctx context.Context, username string) (*db_models.AdminUser, error) {
	var admin db_models.AdminUser
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}
