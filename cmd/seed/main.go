package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/cookbookd/backend/config"
	"github.com/cookbookd/backend/internal/database"
	"github.com/cookbookd/backend/internal/models"
	"github.com/cookbookd/backend/internal/service"
)

// Seeds the admin account and a starter catalog. Safe to run repeatedly;
// existing rows are left alone.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logrus.Fatalf("failed to migrate schema: %v", err)
	}

	if err := seedAdmin(db); err != nil {
		logrus.Fatalf("failed to seed admin user: %v", err)
	}
	if err := seedCatalog(db); err != nil {
		logrus.Fatalf("failed to seed catalog: %v", err)
	}

	logrus.Info("seeding complete")
}

func seedAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logrus.Warn("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin user")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		logrus.WithField("email", email).Info("admin user already exists")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logrus.WithField("email", email).Info("created admin user")
	return nil
}

func seedCatalog(db *gorm.DB) error {
	categories := []models.Category{
		{Name: "Breakfast", Description: "Start-of-day dishes"},
		{Name: "Mains", Description: "Lunch and dinner entrees"},
		{Name: "Desserts", Description: "Sweets and baked goods"},
		{Name: "Drinks", Description: "Hot and cold beverages"},
	}
	for _, c := range categories {
		var count int64
		if err := db.Model(&models.Category{}).Where("name = ?", c.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		category := c
		if err := db.Create(&category).Error; err != nil {
			return err
		}
		logrus.WithField("name", c.Name).Info("created category")
	}

	tags := []string{"quick", "vegetarian", "vegan", "gluten-free", "spicy"}
	for _, name := range tags {
		var count int64
		if err := db.Model(&models.Tag{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		tag := models.Tag{Name: name}
		if err := db.Create(&tag).Error; err != nil {
			return err
		}
		logrus.WithField("name", name).Info("created tag")
	}

	return nil
}
