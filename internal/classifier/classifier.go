// Package classifier assigns ABC categories to inventory items by asking a
// text-generation service and scanning its free-form reply.
package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rogerio-castellano/smart-retail-ops/internal/models"
	"github.com/shopspring/decimal"
)

// ErrUnavailable is returned when the text-generation service cannot produce
// a reply (transport failure, auth error, empty or malformed response).
var ErrUnavailable = errors.New("classification unavailable")

// Completer sends a single prompt and returns the completion text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Result is a classified candidate item.
type Result struct {
	Name       string
	Quantity   int
	UnitCost   decimal.Decimal
	TotalValue decimal.Decimal
	ABCClass   models.ABCClass
	// Reply is the raw completion the class was parsed from.
	Reply string
}

type Classifier struct {
	completer Completer
}

func New(c Completer) *Classifier {
	return &Classifier{completer: c}
}

// Classify computes the total value locally and asks the completer for the
// category. Every call queries the service; nothing is cached.
func (c *Classifier) Classify(ctx context.Context, name string, quantity int, unitCost decimal.Decimal) (Result, error) {
	total := unitCost.Mul(decimal.NewFromInt(int64(quantity)))

	reply, err := c.completer.Complete(ctx, Prompt(name, quantity, unitCost, total))
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return Result{
		Name:       name,
		Quantity:   quantity,
		UnitCost:   unitCost,
		TotalValue: total,
		ABCClass:   ParseClass(reply),
		Reply:      reply,
	}, nil
}

// Prompt builds the ABC-analysis question for one item.
func Prompt(name string, quantity int, unitCost, total decimal.Decimal) string {
	return "Classify the following item using ABC analysis. " +
		"A items: High-value, low-quantity. B items: Moderate value/quantity. C items: Low-value, high-quantity. " +
		fmt.Sprintf("Item: %s, Quantity: %d, Unit Cost: %s, Total Value: %s. ", name, quantity, unitCost.String(), total.String()) +
		"Return only the class (A, B, or C) and a short reason."
}

// ParseClass returns the first of A, B, C (in that order) that appears
// anywhere in the reply as a capital letter. It defaults to C.
//
// The check is a plain substring match, so "Category A item, but B overall"
// yields A. Swap this function out for a structured-output contract if the
// service can be constrained to a single letter.
func ParseClass(reply string) models.ABCClass {
	for _, c := range models.Classes {
		if strings.Contains(reply, string(c)) {
			return c
		}
	}
	return models.ClassC
}
