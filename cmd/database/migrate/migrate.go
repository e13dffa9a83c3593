package migration

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RefreshToken{}); err != nil {
		log.Fatalf("Error migrating refresh token database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeStep{}); err != nil {
		log.Fatalf("Error migrating recipe step database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeIngredient{}, &entities.RecipeCategory{}); err != nil {
		log.Fatalf("Error migrating recipe link tables: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ReviewStatus{}, &entities.Review{}); err != nil {
		log.Fatalf("Error migrating review database: %v", err)
		return err
	}

	if err := SeedReviewStatuses(db); err != nil {
		log.Fatalf("Error seeding review statuses: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

// SeedReviewStatuses inserts the moderation lookup rows the review flow
// depends on. Re-running is harmless; existing rows are kept.
func SeedReviewStatuses(db *gorm.DB) error {
	for _, name := range []string{domain.ReviewStatusPending, domain.ReviewStatusApproved} {
		var count int64
		if err := db.Model(&entities.ReviewStatus{}).Where("LOWER(name) = LOWER(?)", name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&entities.ReviewStatus{Name: name}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
