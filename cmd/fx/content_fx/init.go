package content_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tradeacademy/internal/api/controllers"
	"tradeacademy/internal/repositories"
	"tradeacademy/internal/services"
)

var Module = fx.Provide(
	provideHeroRepo, provideFeatureRepo, provideTestimonialRepo, provideFAQRepo,
	provideContentService, provideContentController)

func provideHeroRepo(db *gorm.DB) repositories.HeroRepositoryInterface {
	return repositories.NewHeroRepository(db)
}

func provideFeatureRepo(db *gorm.DB) repositories.FeatureRepositoryInterface {
	return repositories.NewFeatureRepository(db)
}

func provideTestimonialRepo(db *gorm.DB) repositories.TestimonialRepositoryInterface {
	return repositories.NewTestimonialRepository(db)
}

func provideFAQRepo(db *gorm.DB) repositories.FAQRepositoryInterface {
	return repositories.NewFAQRepository(db)
}

func provideContentService(
	heroRepo repositories.HeroRepositoryInterface,
	featureRepo repositories.FeatureRepositoryInterface,
	testimonialRepo repositories.TestimonialRepositoryInterface,
	faqRepo repositories.FAQRepositoryInterface,
) services.ContentServiceInterface {
	return services.NewContentService(heroRepo, featureRepo, testimonialRepo, faqRepo)
}

func provideContentController(contentService services.ContentServiceInterface) *controllers.ContentController {
	return controllers.NewContentController(contentService)
}
