package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mealcart/engine/internal/domain/tagging"
	"github.com/mealcart/engine/internal/ports/outbound"
)

// TagLabelRepository serves tag label ids from maps generated at
// construction time. Every name the tagger can emit gets a stable id for
// the lifetime of the repository.
type TagLabelRepository struct {
	cuisines map[string]uuid.UUID
	meals    map[string]uuid.UUID
	dietary  map[string]uuid.UUID
	mutex    sync.RWMutex
}

// NewTagLabelRepository creates a new in-memory tag label repository
// pre-populated with the full tagging vocabulary.
func NewTagLabelRepository() *TagLabelRepository {
	return &TagLabelRepository{
		cuisines: idsFor(tagging.CuisineNames()),
		meals:    idsFor(tagging.MealTypeNames()),
		dietary:  idsFor(tagging.DietaryLabelNames()),
	}
}

var _ outbound.TagLabelRepository = (*TagLabelRepository)(nil)

func idsFor(names []string) map[string]uuid.UUID {
	ids := make(map[string]uuid.UUID, len(names))
	for _, name := range names {
		ids[name] = uuid.New()
	}
	return ids
}

// CuisineIDs returns a copy of the cuisine name → id map.
func (r *TagLabelRepository) CuisineIDs(ctx context.Context) (map[string]uuid.UUID, error) {
	return r.copyOf(r.cuisines), nil
}

// MealTypeIDs returns a copy of the meal type name → id map.
func (r *TagLabelRepository) MealTypeIDs(ctx context.Context) (map[string]uuid.UUID, error) {
	return r.copyOf(r.meals), nil
}

// DietaryLabelIDs returns a copy of the dietary label name → id map.
func (r *TagLabelRepository) DietaryLabelIDs(ctx context.Context) (map[string]uuid.UUID, error) {
	return r.copyOf(r.dietary), nil
}

func (r *TagLabelRepository) copyOf(src map[string]uuid.UUID) map[string]uuid.UUID {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make(map[string]uuid.UUID, len(src))
	for name, id := range src {
		out[name] = id
	}
	return out
}
