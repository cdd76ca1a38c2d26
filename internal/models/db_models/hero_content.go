package db_models

// HeroContent is a singleton row: id is always HeroContentID. It is seeded at
// boot and only ever updated, never deleted.
type HeroContent struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	Title             string `gorm:"size:255" json:"title"`
	Subtitle          string `gorm:"size:255" json:"subtitle"`
	Description       string `json:"description"`
	WhatsappNumber    string `gorm:"size:50" json:"whatsappNumber"`
	DiscordInviteLink string `gorm:"size:255" json:"discord_invite_link"`
}

const HeroContentID uint = 1
