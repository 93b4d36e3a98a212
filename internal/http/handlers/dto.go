package handlers

import (
	"github.com/rogerio-castellano/smart-retail-ops/internal/inventory"
	"github.com/rogerio-castellano/smart-retail-ops/internal/models"
	"github.com/shopspring/decimal"
)

// ItemRequest carries a new item. Quantity and UnitCost are pointers so a
// missing field can be told apart from zero.
type ItemRequest struct {
	Name     string           `json:"name"`
	Quantity *int             `json:"quantity"`
	UnitCost *decimal.Decimal `json:"unit_cost" swaggertype:"number"`
}

type ItemResponse struct {
	Id         int             `json:"id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost" swaggertype:"string"`
	TotalValue decimal.Decimal `json:"total_value" swaggertype:"string"`
	ABCClass   string          `json:"abc_class"`
}

func toItemResponse(it models.Item) ItemResponse {
	return ItemResponse{
		Id:         it.ID,
		Name:       it.Name,
		Quantity:   it.Quantity,
		UnitCost:   it.UnitCost,
		TotalValue: it.TotalValue(),
		ABCClass:   string(it.ABCClass),
	}
}

type ThresholdRequest struct {
	ItemName     string `json:"item_name"`
	MinThreshold *int   `json:"min_threshold"`
	MaxThreshold *int   `json:"max_threshold"`
}

type ThresholdResponse struct {
	ItemName     string `json:"item_name"`
	MinThreshold int    `json:"min_threshold"`
	MaxThreshold int    `json:"max_threshold"`
	Message      string `json:"message"`
}

type ThresholdsResult map[string]models.Bounds

type ThresholdStatusResult struct {
	Data []inventory.ThresholdView `json:"data"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type ImportItemsResult struct {
	ImportedItemsCount int                    `json:"imported"`
	Items              []ItemResponse         `json:"items"`
	Errors             []inventory.FieldError `json:"errors"`
}
