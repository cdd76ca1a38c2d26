package db_models

type Testimonial struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255;not null" json:"name"`
	Role    string `gorm:"size:100" json:"role"`
	Content string `gorm:"not null" json:"content"`
	Rating  int    `gorm:"default:5" json:"rating"`
}
