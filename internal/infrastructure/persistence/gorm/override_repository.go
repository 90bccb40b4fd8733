package gorm

import (
	"context"
	"errors"

	"github.com/mealcart/engine/internal/ports/outbound"
	apperrors "github.com/mealcart/engine/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryOverrideRepository implements manual category overrides using GORM.
type CategoryOverrideRepository struct {
	db *gorm.DB
}

// NewCategoryOverrideRepository creates a new category override repository.
func NewCategoryOverrideRepository(db *gorm.DB) outbound.CategoryOverrideRepository {
	return &CategoryOverrideRepository{db: db}
}

// FindCategory returns the stored category for a canonical ingredient key.
// The second return value reports whether an override exists.
func (r *CategoryOverrideRepository) FindCategory(ctx context.Context, key string) (string, bool, error) {
	var model CategoryOverrideModel
	err := r.db.WithContext(ctx).First(&model, "ingredient_key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, apperrors.NewDatabaseError("find category override", err)
	}
	return model.Category, true, nil
}

// SaveOverride stores or replaces the category override for a key.
func (r *CategoryOverrideRepository) SaveOverride(ctx context.Context, key, category string) error {
	model := CategoryOverrideModel{
		IngredientKey: key,
		Category:      category,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ingredient_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"category", "updated_at"}),
		}).
		Create(&model).Error
	if err != nil {
		return apperrors.NewDatabaseError("save category override", err)
	}
	return nil
}
