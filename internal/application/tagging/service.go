// Package tagging provides the application layer for recipe auto-tagging:
// it runs the pure keyword classifier and resolves the resulting label names
// to external identifiers through a lazily loaded cache.
package tagging

import (
	"context"

	"github.com/mealcart/engine/internal/domain/tagging"
	"github.com/mealcart/engine/internal/ports/inbound"
	"github.com/mealcart/engine/internal/ports/outbound"
	"go.uber.org/zap"
)

// Service implements the tagging use cases.
type Service struct {
	labels     outbound.TagLabelRepository
	cache      *LabelIDCache
	resolveIDs bool
	logger     *zap.Logger
}

// NewService creates a new tagging service with its own label-id cache.
// With resolveIDs false the label store is never consulted and results carry
// names only.
func NewService(labels outbound.TagLabelRepository, resolveIDs bool, logger *zap.Logger) inbound.TaggingService {
	return &Service{
		labels:     labels,
		cache:      NewLabelIDCache(),
		resolveIDs: resolveIDs,
		logger:     logger.Named("tagging-service"),
	}
}

// TagRecipe classifies the recipe and resolves label names to identifiers.
// When the label store is unavailable the classification still succeeds and
// the id lists come back empty — tagging must never fail a save or import.
func (s *Service) TagRecipe(ctx context.Context, cmd inbound.TagRecipeCommand) (*inbound.RecipeTagsDTO, error) {
	result := tagging.Tag(tagging.RecipeInput{
		Title:       cmd.Title,
		Description: cmd.Description,
		Ingredients: cmd.Ingredients,
	})

	dto := &inbound.RecipeTagsDTO{
		Cuisines:      result.Cuisines,
		MealTypes:     result.MealTypes,
		DietaryLabels: result.DietaryLabels,
	}

	if s.resolveIDs {
		cuisines, meals, dietary, err := s.cache.maps(ctx, s.labels)
		if err != nil {
			s.logger.Warn("Label id lookup unavailable, returning names only",
				zap.String("title", cmd.Title),
				zap.Error(err),
			)
			return dto, nil
		}
		dto.CuisineIDs = resolve(cuisines, result.Cuisines)
		dto.MealTypeIDs = resolve(meals, result.MealTypes)
		dto.DietaryLabelIDs = resolve(dietary, result.DietaryLabels)
	}

	s.logger.Info("Recipe tagged",
		zap.String("title", cmd.Title),
		zap.Strings("cuisines", result.Cuisines),
		zap.Strings("meal_types", result.MealTypes),
		zap.Strings("dietary_labels", result.DietaryLabels),
	)
	return dto, nil
}

// InvalidateLabelCache clears the label-id cache. The next TagRecipe call
// reloads from the store.
func (s *Service) InvalidateLabelCache() {
	s.cache.Invalidate()
}
