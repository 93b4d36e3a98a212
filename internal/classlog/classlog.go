// Package classlog keeps an audit trail of classification replies. It is a
// write-mostly log for operators, never a lookup cache for classification.
package classlog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/smart-retail-ops/internal/models"
)

type Entry struct {
	ID           string          `json:"id"`
	ItemName     string          `json:"item_name"`
	ABCClass     models.ABCClass `json:"abc_class"`
	Reply        string          `json:"reply"`
	Model        string          `json:"model,omitempty"`
	ClassifiedAt time.Time       `json:"classified_at"`
}

// NewEntry stamps an entry with a fresh id and the current time.
func NewEntry(itemName string, class models.ABCClass, reply, model string) Entry {
	return Entry{
		ID:           uuid.NewString(),
		ItemName:     itemName,
		ABCClass:     class,
		Reply:        reply,
		Model:        model,
		ClassifiedAt: time.Now().UTC(),
	}
}

// Recorder stores entries and returns the most recent ones first.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
}
