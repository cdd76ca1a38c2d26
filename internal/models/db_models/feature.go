package db_models

type Feature struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Icon        string `gorm:"size:50;not null" json:"icon"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
}
