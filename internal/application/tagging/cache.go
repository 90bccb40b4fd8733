package tagging

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mealcart/engine/internal/ports/outbound"
)

// LabelIDCache holds the three label-name → identifier maps, loaded from the
// store at most once per process. First-call races are guarded: concurrent
// callers block on one load instead of each issuing their own. The maps are
// never mutated after publication and are handed out under the lock, so a
// concurrent Invalidate cannot race a reader.
type LabelIDCache struct {
	mu       sync.Mutex
	loaded   bool
	cuisines map[string]uuid.UUID
	meals    map[string]uuid.UUID
	dietary  map[string]uuid.UUID
}

// NewLabelIDCache creates an empty, unloaded cache.
func NewLabelIDCache() *LabelIDCache {
	return &LabelIDCache{}
}

// maps returns the three id maps, loading them from the repository on first
// use. A failed load leaves the cache unloaded so a later call can retry.
func (c *LabelIDCache) maps(ctx context.Context, repo outbound.TagLabelRepository) (cuisines, meals, dietary map[string]uuid.UUID, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		if err := c.load(ctx, repo); err != nil {
			return nil, nil, nil, err
		}
	}
	return c.cuisines, c.meals, c.dietary, nil
}

// load fills the cache from the repository. Callers must hold c.mu.
func (c *LabelIDCache) load(ctx context.Context, repo outbound.TagLabelRepository) error {
	cuisines, err := repo.CuisineIDs(ctx)
	if err != nil {
		return err
	}
	meals, err := repo.MealTypeIDs(ctx)
	if err != nil {
		return err
	}
	dietary, err := repo.DietaryLabelIDs(ctx)
	if err != nil {
		return err
	}

	c.cuisines = cuisines
	c.meals = meals
	c.dietary = dietary
	c.loaded = true
	return nil
}

// Invalidate clears the cache so the next use reloads from the store.
func (c *LabelIDCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.cuisines = nil
	c.meals = nil
	c.dietary = nil
}

// resolve maps label names to identifiers, skipping names the store doesn't
// know about.
func resolve(ids map[string]uuid.UUID, names []string) []uuid.UUID {
	resolved := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		if id, ok := ids[name]; ok {
			resolved = append(resolved, id)
		}
	}
	return resolved
}
