package repo

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/smart-retail-ops/internal/models"
)

// InMemoryItemRepository is an in-memory implementation of ItemRepository.
type InMemoryItemRepository struct {
	mu     sync.RWMutex
	items  []models.Item
	nextID int
}

// NewInMemoryItemRepository creates a new instance of InMemoryItemRepository.
func NewInMemoryItemRepository() *InMemoryItemRepository {
	return &InMemoryItemRepository{
		items:  []models.Item{},
		nextID: 1,
	}
}

// Create appends an item and assigns its ID.
func (r *InMemoryItemRepository) Create(_ context.Context, item models.Item) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, item)
	return item, nil
}

// GetAll returns a copy of all items in insertion order.
func (r *InMemoryItemRepository) GetAll(_ context.Context) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *InMemoryItemRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = []models.Item{}
	r.nextID = 1
}
