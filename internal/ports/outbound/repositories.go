// Package outbound defines the interfaces for outbound ports (secondary/
// driven adapters). These are the collaborators the engine consumes; their
// implementations live under internal/infrastructure.
package outbound

import (
	"context"

	"github.com/google/uuid"
)

// CategoryOverrideRepository supplies user-learned grocery categories that
// take precedence over the built-in categorization table. Saving is
// best-effort: callers must tolerate failures without aborting their own
// operation.
type CategoryOverrideRepository interface {
	// FindCategory returns the override for an ingredient key, if any.
	FindCategory(ctx context.Context, ingredientKey string) (string, bool, error)

	// SaveOverride records a category correction for an ingredient key.
	SaveOverride(ctx context.Context, ingredientKey, category string) error
}

// TagLabelRepository resolves label names to the identifiers the surrounding
// service persists against. The three maps are loaded once per process and
// cached by the tagging service.
type TagLabelRepository interface {
	CuisineIDs(ctx context.Context) (map[string]uuid.UUID, error)
	MealTypeIDs(ctx context.Context) (map[string]uuid.UUID, error)
	DietaryLabelIDs(ctx context.Context) (map[string]uuid.UUID, error)
}
