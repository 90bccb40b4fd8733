package gorm

import (
	"context"

	"github.com/google/uuid"
	"github.com/mealcart/engine/internal/ports/outbound"
	apperrors "github.com/mealcart/engine/pkg/errors"
	"gorm.io/gorm"
)

// TagLabelRepository implements the tag label lookup using GORM.
type TagLabelRepository struct {
	db *gorm.DB
}

// NewTagLabelRepository creates a new tag label repository.
func NewTagLabelRepository(db *gorm.DB) outbound.TagLabelRepository {
	return &TagLabelRepository{db: db}
}

// CuisineIDs loads the cuisine name → id map.
func (r *TagLabelRepository) CuisineIDs(ctx context.Context) (map[string]uuid.UUID, error) {
	var models []CuisineModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, apperrors.NewDatabaseError("load cuisines", err)
	}
	ids := make(map[string]uuid.UUID, len(models))
	for _, m := range models {
		ids[m.Name] = m.ID
	}
	return ids, nil
}

// MealTypeIDs loads the meal type name → id map.
func (r *TagLabelRepository) MealTypeIDs(ctx context.Context) (map[string]uuid.UUID, error) {
	var models []MealTypeModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, apperrors.NewDatabaseError("load meal types", err)
	}
	ids := make(map[string]uuid.UUID, len(models))
	for _, m := range models {
		ids[m.Name] = m.ID
	}
	return ids, nil
}

// DietaryLabelIDs loads the dietary label name → id map.
func (r *TagLabelRepository) DietaryLabelIDs(ctx context.Context) (map[string]uuid.UUID, error) {
	var models []DietaryLabelModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, apperrors.NewDatabaseError("load dietary labels", err)
	}
	ids := make(map[string]uuid.UUID, len(models))
	for _, m := range models {
		ids[m.Name] = m.ID
	}
	return ids, nil
}
