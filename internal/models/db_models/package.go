package db_models

import (
	"gorm.io/datatypes"
)

// Package is a purchasable subscription tier. DiscordRoleID maps a paid
// order to the role granted on the community server; PaymentLink is the
// external checkout page the frontend redirects to.
type Package struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Price         float64        `gorm:"not null" json:"price"`
	Description   string         `json:"description"`
	Features      datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"features"`
	Popular       bool           `gorm:"default:false" json:"popular"`
	DiscordRoleID string         `gorm:"size:255" json:"discord_role_id"`
	PaymentLink   string         `json:"payment_link"`
}
