package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rogerio-castellano/smart-retail-ops/internal/classifier"
	"github.com/rogerio-castellano/smart-retail-ops/internal/classlog"
	"github.com/rogerio-castellano/smart-retail-ops/internal/config"
	handler "github.com/rogerio-castellano/smart-retail-ops/internal/http/handlers"
	"github.com/rogerio-castellano/smart-retail-ops/internal/http/router"
	"github.com/rogerio-castellano/smart-retail-ops/internal/inventory"
	"github.com/rogerio-castellano/smart-retail-ops/internal/repo"
)

// replyByName answers with "A" for names starting with "Premium" and "C"
// otherwise.
type replyByName struct{}

func (replyByName) Complete(_ context.Context, prompt string) (string, error) {
	if strings.Contains(prompt, "Item: Premium") {
		return "A - high value", nil
	}
	return "C - low value", nil
}

// databaseConfig uses DATABASE_URL (postgres) when set and a temporary
// SQLite file otherwise.
func databaseConfig(dir string) config.DatabaseConfig {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return config.DatabaseConfig{Driver: "postgres", DSN: dsn, QueryTimeout: 3 * time.Second}
	}
	return config.DatabaseConfig{
		Driver:       "sqlite",
		DSN:          filepath.Join(dir, "inventory.db"),
		QueryTimeout: 3 * time.Second,
	}
}

func openRouter(cfg config.DatabaseConfig) (http.Handler, *repo.Store) {
	store, err := repo.Open(context.Background(), cfg)
	if err != nil {
		log.Fatal("❌ Could not open inventory store:", err)
	}

	svc := inventory.NewService(inventory.Deps{
		Items:      store.Items,
		Thresholds: store.Thresholds,
		Classifier: classifier.New(replyByName{}),
		Log:        classlog.NewMemoryRecorder(10),
	})
	return router.NewRouter(handler.NewHandler(svc), router.Options{}), store
}

func createItem(r http.Handler, name string, qty int, cost string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]any{"name": name, "quantity": qty, "unit_cost": cost})
	req := httptest.NewRequest(http.MethodPost, "/api/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func putThreshold(r http.Handler, name string, lo, hi int) *httptest.ResponseRecorder {
	body := fmt.Sprintf(`{"item_name":%q,"min_threshold":%d,"max_threshold":%d}`, name, lo, hi)
	req := httptest.NewRequest(http.MethodPut, "/api/thresholds", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
