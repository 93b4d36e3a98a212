package handlers_test_suite

import (
	"html"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestIndexRedirectsToDashboard(t *testing.T) {
	w := get(r, "/")
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302 Found, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("expected redirect to /dashboard, got %s", loc)
	}
}

func TestDashboardPage(t *testing.T) {
	t.Cleanup(clearAll)

	w := get(r, "/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No items yet.") {
		t.Errorf("expected empty inventory message")
	}

	createItem(r, map[string]any{"name": "Widget", "quantity": 1200, "unit_cost": "2.50"})

	body := get(r, "/dashboard").Body.String()
	for _, want := range []string{"Widget", "$3,000.00", `action="/export-report"`} {
		if !strings.Contains(body, want) {
			t.Errorf("expected dashboard to contain %q", want)
		}
	}
}

func TestInventoryManagementPage(t *testing.T) {
	t.Cleanup(clearAll)

	t.Run("valid item", func(t *testing.T) {
		w := postForm(r, "/inventory-management", url.Values{"name": {"Widget"}, "quantity": {"10"}, "unit_cost": {"2.50"}})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), html.EscapeString("Added 'Widget' as class C")) {
			t.Errorf("expected confirmation, got %s", w.Body.String())
		}
	})

	t.Run("non-numeric quantity", func(t *testing.T) {
		w := postForm(r, "/inventory-management", url.Values{"name": {"Gadget"}, "quantity": {"ten"}, "unit_cost": {"1"}})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 Bad Request, got %d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, "Quantity must be a whole number") {
			t.Errorf("expected the field error to be shown")
		}
		if !strings.Contains(body, `value="Gadget"`) {
			t.Errorf("expected the submitted name to be kept")
		}
	})

	items, _ := itemRepo.GetAll(t.Context())
	if len(items) != 1 {
		t.Errorf("expected only the valid item stored, got %d", len(items))
	}
}

func TestThresholdPages(t *testing.T) {
	t.Cleanup(clearAll)

	w := get(r, "/threshold-list")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No thresholds set yet.") {
		t.Errorf("expected empty thresholds message")
	}

	w = postForm(r, "/threshold", url.Values{"item_name": {"Widget"}, "min_threshold": {"5"}, "max_threshold": {"50"}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), html.EscapeString("Thresholds for 'Widget' saved: Min=5, Max=50")) {
		t.Errorf("expected confirmation, got %s", w.Body.String())
	}

	w = postForm(r, "/threshold", url.Values{"item_name": {""}, "min_threshold": {"x"}, "max_threshold": {"1"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	body := get(r, "/threshold-list").Body.String()
	if !strings.Contains(body, "<td>Widget</td>") || !strings.Contains(body, "untracked") {
		t.Errorf("expected Widget row with untracked status, got %s", body)
	}
}

func TestThresholdPage_OffersInventoryNames(t *testing.T) {
	t.Cleanup(clearAll)

	for _, name := range []string{"Widget", "Gadget", "Widget"} {
		createItem(r, map[string]any{"name": name, "quantity": 1, "unit_cost": 1})
	}

	w := get(r, "/threshold")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `list="item-names"`) {
		t.Errorf("expected the item name input to use the inventory list")
	}
	for _, name := range []string{"Widget", "Gadget"} {
		if n := strings.Count(body, `<option value="`+name+`">`); n != 1 {
			t.Errorf("expected one option for %s, got %d", name, n)
		}
	}
}

func TestHealthz(t *testing.T) {
	if w := get(r, "/healthz"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
}
