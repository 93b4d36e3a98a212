package inventory

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxQuantity is the largest quantity or threshold the INTEGER columns hold.
const MaxQuantity = math.MaxInt32

type AddItemInput struct {
	Name     string
	Quantity int
	UnitCost decimal.Decimal
}

func (in AddItemInput) Validate() error {
	errs := ValidationErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Description: "Name is required"})
	}
	if in.Quantity < 0 {
		errs = append(errs, FieldError{Field: "quantity", Description: "Quantity cannot be negative"})
	}
	if in.Quantity > MaxQuantity {
		errs = append(errs, FieldError{Field: "quantity", Description: fmt.Sprintf("Quantity cannot exceed %d", MaxQuantity)})
	}
	if in.UnitCost.IsNegative() {
		errs = append(errs, FieldError{Field: "unit_cost", Description: "Unit cost cannot be negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetThresholdInput struct {
	ItemName string
	Min      int
	Max      int
}

// Validate does not compare Min and Max; any ordering is accepted.
func (in SetThresholdInput) Validate() error {
	errs := ValidationErrors{}
	if strings.TrimSpace(in.ItemName) == "" {
		errs = append(errs, FieldError{Field: "item_name", Description: "Item name is required"})
	}
	if in.Min < 0 {
		errs = append(errs, FieldError{Field: "min_threshold", Description: "Minimum threshold cannot be negative"})
	}
	if in.Min > MaxQuantity {
		errs = append(errs, FieldError{Field: "min_threshold", Description: fmt.Sprintf("Minimum threshold cannot exceed %d", MaxQuantity)})
	}
	if in.Max < 0 {
		errs = append(errs, FieldError{Field: "max_threshold", Description: "Maximum threshold cannot be negative"})
	}
	if in.Max > MaxQuantity {
		errs = append(errs, FieldError{Field: "max_threshold", Description: fmt.Sprintf("Maximum threshold cannot exceed %d", MaxQuantity)})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParseAddItem converts raw form values. Missing or non-numeric values are
// reported per field together with the range checks of Validate.
func ParseAddItem(name, quantity, unitCost string) (AddItemInput, error) {
	in := AddItemInput{Name: name}
	errs := ValidationErrors{}

	q, err := strconv.Atoi(strings.TrimSpace(quantity))
	if err != nil {
		errs = append(errs, FieldError{Field: "quantity", Description: "Quantity must be a whole number"})
	}
	in.Quantity = q

	c, err := decimal.NewFromString(strings.TrimSpace(unitCost))
	if err != nil {
		errs = append(errs, FieldError{Field: "unit_cost", Description: "Unit cost must be a number"})
	}
	in.UnitCost = c

	if verr, ok := in.Validate().(ValidationErrors); ok {
		for _, fe := range verr {
			if !errs.Has(fe.Field) {
				errs = append(errs, fe)
			}
		}
	}
	if len(errs) > 0 {
		return AddItemInput{}, errs
	}
	return in, nil
}

func ParseThreshold(itemName, minValue, maxValue string) (SetThresholdInput, error) {
	in := SetThresholdInput{ItemName: itemName}
	errs := ValidationErrors{}

	lo, err := strconv.Atoi(strings.TrimSpace(minValue))
	if err != nil {
		errs = append(errs, FieldError{Field: "min_threshold", Description: "Minimum threshold must be a whole number"})
	}
	in.Min = lo

	hi, err := strconv.Atoi(strings.TrimSpace(maxValue))
	if err != nil {
		errs = append(errs, FieldError{Field: "max_threshold", Description: "Maximum threshold must be a whole number"})
	}
	in.Max = hi

	if verr, ok := in.Validate().(ValidationErrors); ok {
		for _, fe := range verr {
			if !errs.Has(fe.Field) {
				errs = append(errs, fe)
			}
		}
	}
	if len(errs) > 0 {
		return SetThresholdInput{}, errs
	}
	return in, nil
}
