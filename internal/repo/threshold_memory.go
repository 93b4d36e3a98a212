package repo

import (
	"context"
	"maps"
	"sync"

	"github.com/rogerio-castellano/smart-retail-ops/internal/models"
)

type InMemoryThresholdRepository struct {
	mu         sync.RWMutex
	thresholds map[string]models.Bounds
}

func NewInMemoryThresholdRepository() *InMemoryThresholdRepository {
	return &InMemoryThresholdRepository{thresholds: map[string]models.Bounds{}}
}

func (r *InMemoryThresholdRepository) GetAll(_ context.Context) (map[string]models.Bounds, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.thresholds), nil
}

func (r *InMemoryThresholdRepository) Upsert(_ context.Context, t models.Threshold) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.thresholds[t.ItemName] = models.Bounds{Min: t.Min, Max: t.Max}
	return nil
}

func (r *InMemoryThresholdRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.thresholds = map[string]models.Bounds{}
}
