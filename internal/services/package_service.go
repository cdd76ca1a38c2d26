package services

import (
	"context"
	"encoding/json"

	"tradeacademy/internal/models/db_models"
	"tradeacademy/internal/models/request_models"
	"tradeacademy/internal/repositories"
	"tradeacademy/pkg/utils"
)

type PackageServiceInterface interface {
	ListPackages(ctx context.Context) ([]db_models.Package, error)
	CreatePackage(ctx context.Context, request request_models.PackageRequest) (*db_models.Package, error)
	UpdatePackage(ctx context.Context, id uint, request request_models.PackageRequest) (*db_models.Package, error)
	DeletePackage(ctx context.Context, id uint) error
}

type PackageService struct {
	packageRepo repositories.PackageRepositoryInterface
}

func NewPackageService(packageRepo repositories.PackageRepositoryInterface) PackageServiceInterface {
	return &PackageService{
		packageRepo: packageRepo,
	}
}

func (s *PackageService) ListPackages(ctx context.Context) ([]db_models.Package, error) {
	packages, err := s.packageRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return packages, nil
}

func (s *PackageService) CreatePackage(ctx context.Context, request request_models.PackageRequest) (*db_models.Package, error) {
	pkg, err := packageFromRequest(0, request)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return pkg, nil
}

func (s *PackageService) UpdatePackage(ctx context.Context, id uint, request request_models.PackageRequest) (*db_models.Package, error) {
	pkg, err := packageFromRequest(id, request)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		return nil, mapRepoError(err)
	}
	return pkg, nil
}

func (s *PackageService) DeletePackage(ctx context.Context, id uint) error {
	if err := s.packageRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}
	return nil
}

func packageFromRequest(id uint, request request_models.PackageRequest) (*db_models.Package, error) {
	features := request.Features
	if features == nil {
		features = []string{}
	}
	featuresJSON, err := json.Marshal(features)
	if err != nil {
		return nil, err
	}

	return &db_models.Package{
		ID:            id,
		Name:          request.Name,
		Price:         request.Price,
		Description:   request.Description,
		Features:      featuresJSON,
		Popular:       request.Popular,
		DiscordRoleID: request.DiscordRoleID,
		PaymentLink:   request.PaymentLink,
	}, nil
}
