package models

import "github.com/shopspring/decimal"

// ABCClass is the inventory category assigned by ABC analysis.
type ABCClass string

const (
	ClassA ABCClass = "A"
	ClassB ABCClass = "B"
	ClassC ABCClass = "C"
)

// Classes lists the categories in priority order.
var Classes = []ABCClass{ClassA, ClassB, ClassC}

// Item represents an inventory row. Items are append-only.
type Item struct {
	ID       int             `json:"id" db:"id"`
	Name     string          `json:"name" db:"name"`
	Quantity int             `json:"quantity" db:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost" db:"unit_cost"`
	ABCClass ABCClass        `json:"abc_class" db:"abc_class"`
}

// TotalValue is quantity * unit cost. It is never persisted.
func (i Item) TotalValue() decimal.Decimal {
	return i.UnitCost.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
