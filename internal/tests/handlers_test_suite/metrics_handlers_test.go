package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/smart-retail-ops/internal/http/handlers"
	"github.com/rogerio-castellano/smart-retail-ops/internal/inventory"
	"github.com/rogerio-castellano/smart-retail-ops/internal/models"
	"github.com/shopspring/decimal"
)

func TestDashboardMetricsHandler(t *testing.T) {
	t.Cleanup(clearAll)

	completer.reply("Laptop", "A")
	completer.reply("Mouse", "B")
	items := []map[string]any{
		{"name": "Laptop", "quantity": 2, "unit_cost": 1500},
		{"name": "Mouse", "quantity": 1, "unit_cost": 20},
		{"name": "Cable", "quantity": 100, "unit_cost": "0.50"},
	}
	for _, it := range items {
		if w := createItem(r, it); w.Code != http.StatusCreated {
			t.Fatalf("item creation failed: %d", w.Code)
		}
	}
	putThreshold(r, handler.ThresholdRequest{ItemName: "Mouse", MinThreshold: intPtr(5), MaxThreshold: intPtr(20)})
	putThreshold(r, handler.ThresholdRequest{ItemName: "Cable", MinThreshold: intPtr(5), MaxThreshold: intPtr(20)})

	w := get(r, "/api/metrics/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var metrics inventory.Summary
	if err := json.NewDecoder(w.Body).Decode(&metrics); err != nil {
		t.Fatalf("failed to decode metrics: %v", err)
	}

	if metrics.TotalItems != 3 {
		t.Errorf("expected 3 items, got %d", metrics.TotalItems)
	}
	for class, want := range map[models.ABCClass]int{models.ClassA: 1, models.ClassB: 1, models.ClassC: 1} {
		if metrics.Counts[class] != want {
			t.Errorf("class %s: expected %d, got %d", class, want, metrics.Counts[class])
		}
	}
	if !metrics.TotalValue.Equal(decimal.NewFromInt(3070)) {
		t.Errorf("expected total value 3070, got %s", metrics.TotalValue)
	}
	if metrics.LowStockCount != 1 {
		t.Errorf("expected 1 low stock item, got %d", metrics.LowStockCount)
	}
	if metrics.OverstockCount != 1 {
		t.Errorf("expected 1 overstocked item, got %d", metrics.OverstockCount)
	}
	if len(metrics.Chart.Labels) != 3 {
		t.Errorf("expected 3 chart labels, got %v", metrics.Chart.Labels)
	}
}
