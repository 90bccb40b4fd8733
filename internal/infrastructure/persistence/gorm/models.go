// Package gorm provides GORM model definitions and repository
// implementations for the engine's collaborator stores.
package gorm

import (
	"time"

	"github.com/google/uuid"
)

// CuisineModel is one row of the cuisines lookup table.
type CuisineModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default pluralization.
func (CuisineModel) TableName() string { return "cuisines" }

// MealTypeModel is one row of the meal_types lookup table.
type MealTypeModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MealTypeModel) TableName() string { return "meal_types" }

// DietaryLabelModel is one row of the dietary_labels lookup table.
type DietaryLabelModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DietaryLabelModel) TableName() string { return "dietary_labels" }

// CategoryOverrideModel stores a user-learned grocery category for one
// canonical ingredient key.
type CategoryOverrideModel struct {
	IngredientKey string `gorm:"type:varchar(255);primaryKey"`
	Category      string `gorm:"type:varchar(50);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (CategoryOverrideModel) TableName() string { return "category_overrides" }
