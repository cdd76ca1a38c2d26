package request_models

type PackageRequest struct {
	Name          string   `json:"name" binding:"required"`
	Price         float64  `json:"price"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	Popular       bool     `json:"popular"`
	DiscordRoleID string   `json:"discord_role_id"`
	PaymentLink   string   `json:"payment_link"`
}
