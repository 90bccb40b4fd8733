// Package sqlite provides SQLite database setup and configuration
package sqlite

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mealcart/engine/internal/domain/tagging"
	gormModels "github.com/mealcart/engine/internal/infrastructure/persistence/gorm"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ParseLogLevel maps a config string to the GORM logger level.
// Unknown values fall back to warn.
func ParseLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	// Use in-memory database if no path provided
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run auto-migration
	err = db.AutoMigrate(
		&gormModels.CuisineModel{},
		&gormModels.MealTypeModel{},
		&gormModels.DietaryLabelModel{},
		&gormModels.CategoryOverrideModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedDatabase populates the lookup tables with every cuisine, meal type
// and dietary label the tagger can emit.
func SeedDatabase(db *gorm.DB) error {
	// Check if data already exists
	var cuisineCount int64
	db.Model(&gormModels.CuisineModel{}).Count(&cuisineCount)
	if cuisineCount > 0 {
		return nil // Already seeded
	}

	for _, name := range tagging.CuisineNames() {
		row := gormModels.CuisineModel{ID: uuid.New(), Name: name}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed cuisine %q: %w", name, err)
		}
	}

	for _, name := range tagging.MealTypeNames() {
		row := gormModels.MealTypeModel{ID: uuid.New(), Name: name}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed meal type %q: %w", name, err)
		}
	}

	for _, name := range tagging.DietaryLabelNames() {
		row := gormModels.DietaryLabelModel{ID: uuid.New(), Name: name}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed dietary label %q: %w", name, err)
		}
	}

	return nil
}
