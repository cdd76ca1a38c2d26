package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tradeacademy/internal/models/db_models"
)

type SubscriptionRepositoryInterface interface {
	// UpsertByOrderID inserts the subscription, or on an existing order_id
	// overwrites only status, payment_id and discord_id. Start/end dates and
	// the package reference keep their first-delivery values, so re-delivery
	// never extends an entitlement window.
	UpsertByOrderID(ctx context.Context, sub *db_models.Subscription) error

	UpdateStatusByOrderID(ctx context.Context, orderID string, status db_models.SubscriptionStatus) error
	FindByOrderID(ctx context.Context, orderID string) (*db_models.Subscription, error)
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepositoryInterface {
	return &SubscriptionRepository{db: db}
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func (r SubscriptionRepository) UpsertByOrderID(ctx context.Context, sub *db_models.Subscription) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "payment_id", "discord_id"}),
	}).Create(sub).Error
}

func (r SubscriptionRepository) UpdateStatusByOrderID(ctx context.Context, orderID string, status db_models.SubscriptionStatus) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("order_id = ?", orderID).
		Update("status", status).Error
}

func (r SubscriptionRepository) FindByOrderID(ctx context.Context, orderID string) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}
