package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/rogerio-castellano/smart-retail-ops/internal/classifier"
	"github.com/rogerio-castellano/smart-retail-ops/internal/classlog"
	handler "github.com/rogerio-castellano/smart-retail-ops/internal/http/handlers"
	"github.com/rogerio-castellano/smart-retail-ops/internal/http/router"
	"github.com/rogerio-castellano/smart-retail-ops/internal/inventory"
	"github.com/rogerio-castellano/smart-retail-ops/internal/repo"
)

// scriptedCompleter answers with the reply registered for the item named in
// the prompt, or "C" when none is registered.
type scriptedCompleter struct {
	mu      sync.Mutex
	replies map[string]string
	err     error
	calls   int
}

func (s *scriptedCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	for name, reply := range s.replies {
		if strings.Contains(prompt, "Item: "+name+",") {
			return reply, nil
		}
	}
	return "C - low value", nil
}

func (s *scriptedCompleter) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = map[string]string{}
	s.err = nil
	s.calls = 0
}

func (s *scriptedCompleter) reply(name, reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[name] = reply
}

func (s *scriptedCompleter) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

var (
	itemRepo      *repo.InMemoryItemRepository
	thresholdRepo *repo.InMemoryThresholdRepository
	completer     = &scriptedCompleter{replies: map[string]string{}}
	classLog      *classlog.MemoryRecorder
	svc           *inventory.Service
	r             http.Handler
)

func init() {
	setupTestRepos()
}

func setupTestRepos() {
	itemRepo = repo.NewInMemoryItemRepository()
	thresholdRepo = repo.NewInMemoryThresholdRepository()
	classLog = classlog.NewMemoryRecorder(50)

	svc = inventory.NewService(inventory.Deps{
		Items:      itemRepo,
		Thresholds: thresholdRepo,
		Classifier: classifier.New(completer),
		Log:        classLog,
		Model:      "test-model",
	})
	r = newRouter(router.Options{})
}

func newRouter(opts router.Options) http.Handler {
	return router.NewRouter(handler.NewHandler(svc), opts)
}

func clearAll() {
	classLog.Clear()
	itemRepo.Clear()
	thresholdRepo.Clear()
	completer.reset()
}

func intPtr(v int) *int { return &v }

func createItem(r http.Handler, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/items", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func putThreshold(r http.Handler, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPut, "/api/thresholds", bytes.NewReader(payload))
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

func postForm(r http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
