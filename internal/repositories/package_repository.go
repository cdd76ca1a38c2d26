package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tradeacademy/internal/models/db_models"
)

type PackageRepositoryInterface interface {
	GetAll(ctx context.Context) ([]db_models.Package, error)
	FindByID(ctx context.Context, id uint) (*db_models.Package, error)
	Create(ctx context.Context, pkg *db_models.Package) error
	Update(ctx context.Context, pkg *db_models.Package) error
	Delete(ctx context.Context, id uint) error
}

func NewPackageRepository(db *gorm.DB) PackageRepositoryInterface {
	return &PackageRepository{db: db}
}

type PackageRepository struct {
	db *gorm.DB
}

func (r PackageRepository) GetAll(ctx context.Context) ([]db_models.Package, error) {
	var packages []db_models.Package
	if err := r.db.WithContext(ctx).Order("price").Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

func (r PackageRepository) FindByID(ctx context.Context, id uint) (*db_models.Package, error) {
	var pkg db_models.Package
	err := r.db.WithContext(ctx).First(&pkg, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pkg, nil
}

func (r PackageRepository) Create(ctx context.Context, pkg *db_models.Package) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r PackageRepository) Update(ctx context.Context, pkg *db_models.Package) error {
	var existing db_models.Package
	if err := r.db.WithContext(ctx).First(&existing, pkg.ID).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(pkg).Error
}

// Delete removes a package. Subscriptions referencing it keep their row with
// product_id set to null by the foreign key constraint.
func (r PackageRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&db_models.Package{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
