package inventory

import (
	"context"

	"github.com/rogerio-castellano/smart-retail-ops/internal/models"
	"github.com/shopspring/decimal"
)

const recentLimit = 5

// Chart holds one quantity series per class, labelled by item name.
type Chart struct {
	Labels []string                  `json:"labels"`
	Series map[models.ABCClass][]int `json:"series"`
}

// Summary backs the dashboard.
type Summary struct {
	Counts         map[models.ABCClass]int `json:"counts"`
	TotalItems     int                     `json:"total_items"`
	TotalValue     decimal.Decimal         `json:"total_value"`
	LowStockCount  int                     `json:"low_stock_count"`
	OverstockCount int                     `json:"overstock_count"`
	Recent         []models.Item           `json:"recent"`
	Chart          Chart                   `json:"chart"`
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	items, err := s.items.GetAll(ctx)
	if err != nil {
		return Summary{}, err
	}
	thresholds, err := s.thresholds.GetAll(ctx)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		Counts:     map[models.ABCClass]int{},
		TotalItems: len(items),
		TotalValue: decimal.Zero,
		Chart:      buildChart(items),
	}
	for _, c := range models.Classes {
		sum.Counts[c] = 0
	}
	for _, it := range items {
		sum.Counts[it.ABCClass]++
		sum.TotalValue = sum.TotalValue.Add(it.TotalValue())
	}

	onHand, known := quantitiesByName(items)
	for name, b := range thresholds {
		switch stockStatus(onHand[name], known[name], b) {
		case StockLow:
			sum.LowStockCount++
		case StockOver:
			sum.OverstockCount++
		}
	}

	start := max(len(items)-recentLimit, 0)
	sum.Recent = append([]models.Item{}, items[start:]...)
	return sum, nil
}

// buildChart pads empty series with a single zero and falls back to a
// "No Data" label so the chart always has something to draw.
func buildChart(items []models.Item) Chart {
	chart := Chart{Labels: []string{}, Series: map[models.ABCClass][]int{}}
	for _, it := range items {
		chart.Series[it.ABCClass] = append(chart.Series[it.ABCClass], it.Quantity)
		chart.Labels = append(chart.Labels, it.Name)
	}
	for _, c := range models.Classes {
		if len(chart.Series[c]) == 0 {
			chart.Series[c] = []int{0}
		}
	}
	if len(chart.Labels) == 0 {
		chart.Labels = []string{"No Data"}
	}
	return chart
}
