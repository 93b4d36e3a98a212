package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/smart-retail-ops/internal/models"
)

// ItemRepository persists inventory rows. Rows are never updated or deleted.
type ItemRepository interface {
	Create(ctx context.Context, item models.Item) (models.Item, error)
	// GetAll returns every item in insertion order.
	GetAll(ctx context.Context) ([]models.Item, error)
}

// ThresholdRepository persists one min/max pair per item name.
type ThresholdRepository interface {
	GetAll(ctx context.Context) (map[string]models.Bounds, error)
	// Upsert inserts the threshold or overwrites the bounds of the existing
	// row with the same item name.
	Upsert(ctx context.Context, t models.Threshold) error
}

// ErrStorage wraps every failure coming from the persistence backend.
var ErrStorage = errors.New("storage unavailable")

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
