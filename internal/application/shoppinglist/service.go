// Package shoppinglist provides the application layer for shopping-list
// consolidation. It wires the pure aggregation engine to the collaborator
// ports and owns logging and graceful degradation.
package shoppinglist

import (
	"context"

	"github.com/mealcart/engine/internal/domain/ingredient"
	"github.com/mealcart/engine/internal/domain/shoppinglist"
	"github.com/mealcart/engine/internal/ports/inbound"
	"github.com/mealcart/engine/internal/ports/outbound"
	"go.uber.org/zap"
)

// Service implements the shopping-list use cases.
type Service struct {
	overrides outbound.CategoryOverrideRepository
	logger    *zap.Logger
}

// NewService creates a new shopping-list service. The override repository is
// optional; pass nil to categorize with the built-in table only.
func NewService(overrides outbound.CategoryOverrideRepository, logger *zap.Logger) inbound.ShoppingListService {
	return &Service{
		overrides: overrides,
		logger:    logger.Named("shopping-list-service"),
	}
}

// BuildShoppingList aggregates the submitted ingredient lines and assigns a
// grocery category to each resulting item. Lines that cannot be resolved to
// a canonical key are dropped, never surfaced as errors.
func (s *Service) BuildShoppingList(ctx context.Context, cmd inbound.BuildShoppingListCommand) ([]inbound.ShoppingListItemDTO, error) {
	s.logger.Info("Building shopping list",
		zap.Int("line_count", len(cmd.Lines)),
	)

	lines := make([]ingredient.Line, 0, len(cmd.Lines))
	for _, in := range cmd.Lines {
		// Callers may pre-fill units in any alias form ("cups", "Tbsp.");
		// canonicalize so pre-parsed lines still sum with parsed ones.
		unit := ingredient.Unit(in.Unit)
		if in.Unit != "" {
			if normalized, ok := ingredient.NormalizeUnit(in.Unit); ok {
				unit = normalized
			}
		}
		lines = append(lines, ingredient.Line{
			RecipeID: in.RecipeID,
			Text:     in.Text,
			Quantity: in.Quantity,
			Unit:     unit,
			Name:     in.Name,
		})
	}

	items := shoppinglist.Aggregate(lines)

	dtos := make([]inbound.ShoppingListItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, inbound.ShoppingListItemDTO{
			DisplayName:  item.DisplayName,
			CanonicalKey: item.CanonicalKey,
			Total:        item.Total,
			Unit:         string(item.Unit),
			Category:     s.categorize(ctx, item.CanonicalKey),
			Components:   componentDTOs(item.Components),
			SourceLines:  sourceLineDTOs(item.SourceLines),
			Notes:        item.Notes,
		})
	}

	s.logger.Info("Shopping list built",
		zap.Int("line_count", len(cmd.Lines)),
		zap.Int("item_count", len(dtos)),
	)
	return dtos, nil
}

// categorize prefers a stored override; the static table is the fallback.
// Override lookup failures degrade to the static table rather than failing
// the whole list.
func (s *Service) categorize(ctx context.Context, key string) shoppinglist.Category {
	if s.overrides != nil {
		category, found, err := s.overrides.FindCategory(ctx, key)
		if err != nil {
			s.logger.Warn("Category override lookup failed",
				zap.String("ingredient_key", key),
				zap.Error(err),
			)
		} else if found && shoppinglist.ValidCategory(category) {
			return shoppinglist.Category(category)
		}
	}
	return shoppinglist.Categorize(key)
}

// RecordCategoryOverride stores a user's category correction. Failures are
// logged and swallowed: recording is a side effect that must never block
// the update it rides along with.
func (s *Service) RecordCategoryOverride(ctx context.Context, ingredientKey, category string) {
	if s.overrides == nil {
		return
	}
	if !shoppinglist.ValidCategory(category) {
		s.logger.Warn("Ignoring override with unknown category",
			zap.String("ingredient_key", ingredientKey),
			zap.String("category", category),
		)
		return
	}
	if err := s.overrides.SaveOverride(ctx, ingredientKey, category); err != nil {
		s.logger.Warn("Failed to record category override",
			zap.String("ingredient_key", ingredientKey),
			zap.String("category", category),
			zap.Error(err),
		)
	}
}

func componentDTOs(components []shoppinglist.Component) []inbound.ComponentDTO {
	if len(components) == 0 {
		return nil
	}
	dtos := make([]inbound.ComponentDTO, len(components))
	for i, c := range components {
		dtos[i] = inbound.ComponentDTO{
			Label:    c.Label,
			Quantity: c.Quantity,
			Unit:     string(c.Unit),
		}
	}
	return dtos
}

func sourceLineDTOs(lines []shoppinglist.SourceLine) []inbound.SourceLineDTO {
	dtos := make([]inbound.SourceLineDTO, len(lines))
	for i, sl := range lines {
		dtos[i] = inbound.SourceLineDTO{
			RecipeID: sl.RecipeID,
			Text:     sl.Text,
			Quantity: sl.Parsed.Quantity,
			Unit:     string(sl.Parsed.Unit),
			Name:     sl.Parsed.Name,
		}
	}
	return dtos
}
