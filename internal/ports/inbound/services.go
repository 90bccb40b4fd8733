// Package inbound defines the interfaces for inbound ports (primary/driving
// adapters). These are the use cases the engine exposes to the surrounding
// service.
package inbound

import (
	"context"

	"github.com/google/uuid"
	"github.com/mealcart/engine/internal/domain/shoppinglist"
)

// ShoppingListService merges ingredient lines from one or more recipes into
// a deduplicated, categorized shopping list.
type ShoppingListService interface {
	BuildShoppingList(ctx context.Context, cmd BuildShoppingListCommand) ([]ShoppingListItemDTO, error)

	// RecordCategoryOverride stores a user's category correction.
	// Best-effort: a storage failure is logged, never returned.
	RecordCategoryOverride(ctx context.Context, ingredientKey, category string)
}

// TaggingService classifies a recipe's cuisine, meal type and dietary
// attributes and resolves them to external identifiers.
type TaggingService interface {
	TagRecipe(ctx context.Context, cmd TagRecipeCommand) (*RecipeTagsDTO, error)

	// InvalidateLabelCache clears the label-id cache so the next call
	// reloads from the store. Intended for tests and admin tooling.
	InvalidateLabelCache()
}

// IngredientLineInput is one raw ingredient mention. Quantity, Unit and Name
// may be pre-filled when the caller already parsed the line; otherwise they
// are derived from Text.
type IngredientLineInput struct {
	RecipeID uuid.UUID
	Text     string
	Quantity *float64
	Unit     string
	Name     string
}

// BuildShoppingListCommand carries the ingredient lines of every recipe the
// user selected.
type BuildShoppingListCommand struct {
	Lines []IngredientLineInput
}

// SourceLineDTO preserves provenance for one contributing line.
type SourceLineDTO struct {
	RecipeID uuid.UUID
	Text     string
	Quantity *float64
	Unit     string
	Name     string
}

// ComponentDTO is one slice of a per-variant breakdown.
type ComponentDTO struct {
	Label    string
	Quantity float64
	Unit     string
}

// ShoppingListItemDTO is one consolidated item ready for persistence.
type ShoppingListItemDTO struct {
	DisplayName  string
	CanonicalKey string
	Total        *float64
	Unit         string
	Category     shoppinglist.Category
	Components   []ComponentDTO
	SourceLines  []SourceLineDTO
	Notes        string
}

// TagRecipeCommand carries the recipe text used for classification.
type TagRecipeCommand struct {
	Title       string
	Description string
	Ingredients []string
}

// RecipeTagsDTO holds resolved identifiers for join-table persistence. The
// slices are empty, never nil errors, when the label store is unavailable.
type RecipeTagsDTO struct {
	CuisineIDs      []uuid.UUID
	MealTypeIDs     []uuid.UUID
	DietaryLabelIDs []uuid.UUID

	// Names kept alongside ids for logging and display.
	Cuisines      []string
	MealTypes     []string
	DietaryLabels []string
}
