// Package memory provides in-memory repository implementations for tests
// and the demo binary.
package memory

import (
	"context"
	"sync"

	"github.com/mealcart/engine/internal/ports/outbound"
)

// CategoryOverrideRepository implements category overrides backed by a map.
type CategoryOverrideRepository struct {
	overrides map[string]string
	mutex     sync.RWMutex
}

// NewCategoryOverrideRepository creates a new in-memory override repository.
func NewCategoryOverrideRepository() *CategoryOverrideRepository {
	return &CategoryOverrideRepository{
		overrides: make(map[string]string),
	}
}

var _ outbound.CategoryOverrideRepository = (*CategoryOverrideRepository)(nil)

// FindCategory returns the stored category for a canonical ingredient key.
func (r *CategoryOverrideRepository) FindCategory(ctx context.Context, key string) (string, bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	category, ok := r.overrides[key]
	return category, ok, nil
}

// SaveOverride stores or replaces the category override for a key.
func (r *CategoryOverrideRepository) SaveOverride(ctx context.Context, key, category string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.overrides[key] = category
	return nil
}
