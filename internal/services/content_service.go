package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tradeacademy/internal/models/db_models"
	"tradeacademy/internal/models/request_models"
	"tradeacademy/internal/repositories"
	"tradeacademy/pkg/utils"
)

// ContentServiceInterface covers the landing page content: the hero
// singleton plus the feature, testimonial and FAQ collections.
type ContentServiceInterface interface {
	GetHero(ctx context.Context) (*db_models.HeroContent, error)
	UpdateHero(ctx context.Context, request request_models.HeroUpdateRequest) (*db_models.HeroContent, error)

	ListFeatures(ctx context.Context) ([]db_models.Feature, error)
	CreateFeature(ctx context.Context, request request_models.FeatureRequest) (*db_models.Feature, error)
	UpdateFeature(ctx context.Context, id uint, request request_models.FeatureRequest) (*db_models.Feature, error)
	DeleteFeature(ctx context.Context, id uint) error

	ListTestimonials(ctx context.Context) ([]db_models.Testimonial, error)
	CreateTestimonial(ctx context.Context, request request_models.TestimonialRequest) (*db_models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id uint, request request_models.TestimonialRequest) (*db_models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uint) error

	ListFAQs(ctx context.Context) ([]db_models.FAQ, error)
	CreateFAQ(ctx context.Context, request request_models.FAQRequest) (*db_models.FAQ, error)
	UpdateFAQ(ctx context.Context, id uint, request request_models.FAQRequest) (*db_models.FAQ, error)
	DeleteFAQ(ctx context.Context, id uint) error
}

type ContentService struct {
	heroRepo        repositories.HeroRepositoryInterface
	featureRepo     repositories.FeatureRepositoryInterface
	testimonialRepo repositories.TestimonialRepositoryInterface
	faqRepo         repositories.FAQRepositoryInterface
}

func NewContentService(
	heroRepo repositories.HeroRepositoryInterface,
	featureRepo repositories.FeatureRepositoryInterface,
	testimonialRepo repositories.TestimonialRepositoryInterface,
	faqRepo repositories.FAQRepositoryInterface,
) ContentServiceInterface {
	return &ContentService{
		heroRepo:        heroRepo,
		featureRepo:     featureRepo,
		testimonialRepo: testimonialRepo,
		faqRepo:         faqRepo,
	}
}

func mapRepoError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrRecordNotFound
	}
	return utils.ErrDatabaseError
}

func (s *ContentService) GetHero(ctx context.Context) (*db_models.HeroContent, error) {
	hero, err := s.heroRepo.Get(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if hero == nil {
		return nil, utils.ErrRecordNotFound
	}
	return hero, nil
}

func (s *ContentService) UpdateHero(ctx context.Context, request request_models.HeroUpdateRequest) (*db_models.HeroContent, error) {
	hero := &db_models.HeroContent{
		ID:                db_models.HeroContentID,
		Title:             request.Title,
		Subtitle:          request.Subtitle,
		Description:       request.Description,
		WhatsappNumber:    request.WhatsappNumber,
		DiscordInviteLink: request.DiscordInviteLink,
	}
	if err := s.heroRepo.Update(ctx, hero); err != nil {
		return nil, mapRepoError(err)
	}
	return hero, nil
}

func (s *ContentService) ListFeatures(ctx context.Context) ([]db_models.Feature, error) {
	features, err := s.featureRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return features, nil
}

func (s *ContentService) CreateFeature(ctx context.Context, request request_models.FeatureRequest) (*db_models.Feature, error) {
	feature := &db_models.Feature{
		Icon:        request.Icon,
		Title:       request.Title,
		Description: request.Description,
	}
	if err := s.featureRepo.Create(ctx, feature); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return feature, nil
}

func (s *ContentService) UpdateFeature(ctx context.Context, id uint, request request_models.FeatureRequest) (*db_models.Feature, error) {
	feature := &db_models.Feature{
		ID:          id,
		Icon:        request.Icon,
		Title:       request.Title,
		Description: request.Description,
	}
	if err := s.featureRepo.Update(ctx, feature); err != nil {
		return nil, mapRepoError(err)
	}
	return feature, nil
}

func (s *ContentService) DeleteFeature(ctx context.Context, id uint) error {
	if err := s.featureRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}
	return nil
}

func (s *ContentService) ListTestimonials(ctx context.Context) ([]db_models.Testimonial, error) {
	testimonials, err := s.testimonialRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return testimonials, nil
}

func (s *ContentService) CreateTestimonial(ctx context.Context, request request_models.TestimonialRequest) (*db_models.Testimonial, error) {
	rating := request.Rating
	if rating == 0 {
		rating = 5
	}
	testimonial := &db_models.Testimonial{
		Name:    request.Name,
		Role:    request.Role,
		Content: request.Content,
		Rating:  rating,
	}
	if err := s.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return testimonial, nil
}

func (s *ContentService) UpdateTestimonial(ctx context.Context, id uint, request request_models.TestimonialRequest) (*db_models.Testimonial, error) {
	testimonial := &db_models.Testimonial{
		ID:      id,
		Name:    request.Name,
		Role:    request.Role,
		Content: request.Content,
		Rating:  request.Rating,
	}
	if err := s.testimonialRepo.Update(ctx, testimonial); err != nil {
		return nil, mapRepoError(err)
	}
	return testimonial, nil
}

func (s *ContentService) DeleteTestimonial(ctx context.Context, id uint) error {
	if err := s.testimonialRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}
	return nil
}

func (s *ContentService) ListFAQs(ctx context.Context) ([]db_models.FAQ, error) {
	faqs, err := s.faqRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return faqs, nil
}

func (s *ContentService) CreateFAQ(ctx context.Context, request request_models.FAQRequest) (*db_models.FAQ, error) {
	faq := &db_models.FAQ{
		Question: request.Question,
		Answer:   request.Answer,
	}
	if err := s.faqRepo.Create(ctx, faq); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return faq, nil
}

func (s *ContentService) UpdateFAQ(ctx context.Context, id uint, request request_models.FAQRequest) (*db_models.FAQ, error) {
	faq := &db_models.FAQ{
		ID:       id,
		Question: request.Question,
		Answer:   request.Answer,
	}
	if err := s.faqRepo.Update(ctx, faq); err != nil {
		return nil, mapRepoError(err)
	}
	return faq, nil
}

func (s *ContentService) DeleteFAQ(ctx context.Context, id uint) error {
	if err := s.faqRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}
	return nil
}
