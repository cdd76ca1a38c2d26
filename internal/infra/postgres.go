package infra

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tradeacademy/internal/config"
	"tradeacademy/internal/models/db_models"
	"tradeacademy/pkg/utils"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "Admin123!"
)

func InitPostgres(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := db.AutoMigrate(
		&db_models.AdminUser{},
		&db_models.HeroContent{},
		&db_models.Feature{},
		&db_models.Testimonial{},
		&db_models.FAQ{},
		&db_models.Package{},
		&db_models.Subscription{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	if err := seedDefaults(db); err != nil {
		log.Fatalf("Error seeding database: %v", err)
	}

	log.Println("Connected to PostgreSQL")
	return db
}

// seedDefaults creates the single admin account and the hero singleton on
// first boot. There is no registration flow, so the admin row only ever
// comes from here.
func seedDefaults(db *gorm.DB) error {
	var count int64
	if err := db.Model(&db_models.AdminUser{}).
		Where("username = ?", defaultAdminUsername).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		hash, err := utils.HashPassword(defaultAdminPassword)
		if err != nil {
			return err
		}
		admin := db_models.AdminUser{
			Username:     defaultAdminUsername,
			PasswordHash: hash,
			Role:         "admin",
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("Seeded default admin account")
	}

	hero := db_models.HeroContent{
		ID:                db_models.HeroContentID,
		Title:             "Master the Art of Cryptocurrency Trading",
		Subtitle:          "TRADING CRYPTO ACADEMY",
		Description:       "The best trading education platform with experienced mentors.",
		WhatsappNumber:    "6281234567890",
		DiscordInviteLink: "https://discord.gg/your-invite-code",
	}
	return db.Where(db_models.HeroContent{ID: db_models.HeroContentID}).
		FirstOrCreate(&hero).Error
}

func ClosePostgres(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed")
	}
}
