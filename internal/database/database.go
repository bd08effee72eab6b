package database

import (
	"fmt"
	"log"

	"github.com/arjungibson/trivia-api/internal/config"
	"github.com/arjungibson/trivia-api/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Category{},
		&models.Question{},
	)
	if err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("database migrated")
}

// Seed inserts the six stock trivia categories on first boot. It is a no-op
// once any category exists.
func Seed(db *gorm.DB) {
	var count int64
	db.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return
	}

	for _, t := range []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"} {
		if err := db.Create(&models.Category{Type: t}).Error; err != nil {
			log.Fatalf("failed to seed categories: %v", err)
		}
	}
	log.Println("seeded default categories")
}
