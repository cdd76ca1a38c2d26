package db_models

import (
	"time"
)

type SubscriptionStatus = string

const (
	SubStatusPendingGrant SubscriptionStatus = "pending_grant"
	SubStatusActive       SubscriptionStatus = "active"
	SubStatusGrantFailed  SubscriptionStatus = "grant_failed"
)

// Subscription records one granted entitlement window tied to a payment
// order. OrderID carries the unique constraint that makes webhook
// re-delivery idempotent. ProductID is nullable so the row survives
// deletion of its package.
type Subscription struct {
	ID            uint               `gorm:"primaryKey" json:"id"`
	OrderID       string             `gorm:"size:255;not null;uniqueIndex" json:"order_id"`
	PaymentID     string             `gorm:"size:255" json:"payment_id"`
	DiscordID     string             `gorm:"size:255" json:"discord_id"`
	WalletAddress string             `gorm:"size:255" json:"wallet_address"`
	ProductID     *uint              `gorm:"index" json:"product_id"`
	Status        SubscriptionStatus `gorm:"size:50;not null" json:"status"`
	StartDate     time.Time          `gorm:"not null" json:"start_date"`
	EndDate       time.Time          `gorm:"not null" json:"end_date"`
	CreatedAt     time.Time          `gorm:"autoCreateTime" json:"created_at"`

	Product *Package `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"-"`
}
