package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tradeacademy/internal/models/db_models"
	"tradeacademy/internal/models/request_models"
	"tradeacademy/pkg/utils"
)

type fakeHeroRepo struct {
	hero *db_models.HeroContent
}

func (f *fakeHeroRepo) Get(ctx context.Context) (*db_models.HeroContent, error) {
	return f.hero, nil
}

func (f *fakeHeroRepo) Update(ctx context.Context, hero *db_models.HeroContent) error {
	f.hero = hero
	return nil
}

type fakeFeatureRepo struct {
	features map[uint]*db_models.Feature
	nextID   uint
}

func newFakeFeatureRepo() *fakeFeatureRepo {
	return &fakeFeatureRepo{features: make(map[uint]*db_models.Feature), nextID: 1}
}

func (f *fakeFeatureRepo) GetAll(ctx context.Context) ([]db_models.Feature, error) {
	var out []db_models.Feature
	for _, feature := range f.features {
		out = append(out, *feature)
	}
	return out, nil
}

func (f *fakeFeatureRepo) Create(ctx context.Context, feature *db_models.Feature) error {
	feature.ID = f.nextID
	f.nextID++
	f.features[feature.ID] = feature
	return nil
}

func (f *fakeFeatureRepo) Update(ctx context.Context, feature *db_models.Feature) error {
	if _, ok := f.features[feature.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.features[feature.ID] = feature
	return nil
}

func (f *fakeFeatureRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := f.features[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.features, id)
	return nil
}

type fakeTestimonialRepo struct {
	created []*db_models.Testimonial
}

func (f *fakeTestimonialRepo) GetAll(ctx context.Context) ([]db_models.Testimonial, error) {
	return nil, nil
}

func (f *fakeTestimonialRepo) Create(ctx context.Context, testimonial *db_models.Testimonial) error {
	f.created = append(f.created, testimonial)
	return nil
}

func (f *fakeTestimonialRepo) Update(ctx context.Context, testimonial *db_models.Testimonial) error {
	return gorm.ErrRecordNotFound
}

func (f *fakeTestimonialRepo) Delete(ctx context.Context, id uint) error {
	return gorm.ErrRecordNotFound
}

type fakeFAQRepo struct{}

func (f *fakeFAQRepo) GetAll(ctx context.Context) ([]db_models.FAQ, error)  { return nil, nil }
func (f *fakeFAQRepo) Create(ctx context.Context, faq *db_models.FAQ) error { return nil }
func (f *fakeFAQRepo) Update(ctx context.Context, faq *db_models.FAQ) error { return nil }
func (f *fakeFAQRepo) Delete(ctx context.Context, id uint) error            { return nil }

func newContentFixture() (ContentServiceInterface, *fakeHeroRepo, *fakeFeatureRepo, *fakeTestimonialRepo) {
	heroRepo := &fakeHeroRepo{hero: &db_models.HeroContent{ID: db_models.HeroContentID, Title: "Old"}}
	featureRepo := newFakeFeatureRepo()
	testimonialRepo := &fakeTestimonialRepo{}
	svc := NewContentService(heroRepo, featureRepo, testimonialRepo, &fakeFAQRepo{})
	return svc, heroRepo, featureRepo, testimonialRepo
}

func TestUpdateHeroReplacesSingleton(t *testing.T) {
	svc, heroRepo, _, _ := newContentFixture()

	hero, err := svc.UpdateHero(context.Background(), request_models.HeroUpdateRequest{
		Title:             "New title",
		Subtitle:          "New subtitle",
		Description:       "New description",
		WhatsappNumber:    "628111",
		DiscordInviteLink: "https://discord.gg/abc",
	})

	require.NoError(t, err)
	assert.Equal(t, db_models.HeroContentID, hero.ID)
	assert.Equal(t, "New title", heroRepo.hero.Title)
	assert.Equal(t, "https://discord.gg/abc", heroRepo.hero.DiscordInviteLink)
}

func TestUpdateFeatureNotFound(t *testing.T) {
	svc, _, _, _ := newContentFixture()

	_, err := svc.UpdateFeature(context.Background(), 42, request_models.FeatureRequest{
		Icon:        "chart",
		Title:       "Signals",
		Description: "Daily signals",
	})

	assert.ErrorIs(t, err, utils.ErrRecordNotFound)
}

func TestDeleteFeatureNotFound(t *testing.T) {
	svc, _, _, _ := newContentFixture()

	err := svc.DeleteFeature(context.Background(), 42)
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)
}

func TestCreateTestimonialDefaultsRating(t *testing.T) {
	svc, _, _, testimonialRepo := newContentFixture()

	testimonial, err := svc.CreateTestimonial(context.Background(), request_models.TestimonialRequest{
		Name:    "Budi",
		Content: "Great mentors",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, testimonial.Rating)
	require.Len(t, testimonialRepo.created, 1)
}

func TestCreateAndUpdateFeature(t *testing.T) {
	svc, _, featureRepo, _ := newContentFixture()

	feature, err := svc.CreateFeature(context.Background(), request_models.FeatureRequest{
		Icon:        "chart",
		Title:       "Signals",
		Description: "Daily signals",
	})
	require.NoError(t, err)
	require.NotZero(t, feature.ID)

	updated, err := svc.UpdateFeature(context.Background(), feature.ID, request_models.FeatureRequest{
		Icon:        "bell",
		Title:       "Alerts",
		Description: "Realtime alerts",
	})
	require.NoError(t, err)
	assert.Equal(t, "bell", updated.Icon)
	assert.Equal(t, "Alerts", featureRepo.features[feature.ID].Title)
}
