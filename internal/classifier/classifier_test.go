package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/smart-retail-ops/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func TestParseClass(t *testing.T) {
	tests := []struct {
		reply string
		want  models.ABCClass
	}{
		{"A", models.ClassA},
		{"Class: B - moderate value", models.ClassB},
		{"C. Low value, high quantity.", models.ClassC},
		{"B, though it could be an A item", models.ClassA},
		{"Category C, close to B", models.ClassB},
		{"ABC", models.ClassA},
		{"low value, high quantity", models.ClassC},
		{"", models.ClassC},
		{"class b or a (lowercase)", models.ClassC},
	}

	for _, tt := range tests {
		t.Run(tt.reply, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseClass(tt.reply))
		})
	}
}

func TestClassify_ComputesTotalLocally(t *testing.T) {
	tests := []struct {
		qty  int
		cost string
		want string
	}{
		{10, "2.50", "25"},
		{1, "500.00", "500"},
		{0, "19.99", "0"},
		{3, "0.1", "0.3"},
		{7, "0", "0"},
	}

	for _, tt := range tests {
		fc := &fakeCompleter{reply: "B"}
		res, err := New(fc).Classify(context.Background(), "Widget", tt.qty, decimal.RequireFromString(tt.cost))
		require.NoError(t, err)

		assert.True(t, res.TotalValue.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", res.TotalValue, tt.want)
		assert.Equal(t, "Widget", res.Name)
		assert.Equal(t, tt.qty, res.Quantity)
		assert.Equal(t, models.ClassB, res.ABCClass)
		assert.Equal(t, "B", res.Reply)
	}
}

func TestClassify_PromptEmbedsItem(t *testing.T) {
	fc := &fakeCompleter{reply: "A - expensive"}
	_, err := New(fc).Classify(context.Background(), "Gadget", 2, decimal.RequireFromString("250.5"))
	require.NoError(t, err)

	require.Len(t, fc.prompts, 1)
	p := fc.prompts[0]
	assert.Contains(t, p, "Item: Gadget")
	assert.Contains(t, p, "Quantity: 2")
	assert.Contains(t, p, "Unit Cost: 250.5")
	assert.Contains(t, p, "Total Value: 501")
	assert.Contains(t, p, "A items: High-value, low-quantity.")
}

func TestClassify_NoCaching(t *testing.T) {
	fc := &fakeCompleter{reply: "C"}
	c := New(fc)
	for range 3 {
		_, err := c.Classify(context.Background(), "Bolt", 1000, decimal.RequireFromString("0.05"))
		require.NoError(t, err)
	}
	assert.Len(t, fc.prompts, 3)
}

func TestClassify_ErrorPropagates(t *testing.T) {
	fc := &fakeCompleter{err: errors.New("connection refused")}
	_, err := New(fc).Classify(context.Background(), "Widget", 1, decimal.NewFromInt(1))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}

func chatServer(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func completer(url string) *OpenAICompleter {
	return NewOpenAICompleter(OpenAIConfig{
		BaseURL: url,
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: 5 * time.Second,
	})
}

func TestOpenAICompleter_Complete(t *testing.T) {
	srv := chatServer(t, http.StatusOK, map[string]any{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"model":  "test-model",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": "B - moderate value and quantity"},
		}},
	})

	oc := completer(srv.URL)
	assert.Equal(t, "test-model", oc.Model())

	res, err := New(oc).Classify(context.Background(), "Widget", 10, decimal.RequireFromString("2.50"))
	require.NoError(t, err)
	assert.Equal(t, models.ClassB, res.ABCClass)
}

func TestOpenAICompleter_ServiceError(t *testing.T) {
	srv := chatServer(t, http.StatusUnauthorized, map[string]any{
		"error": map[string]any{"message": "invalid api key", "type": "invalid_request_error"},
	})

	_, err := completer(srv.URL).Complete(context.Background(), "hi")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOpenAICompleter_NoChoices(t *testing.T) {
	srv := chatServer(t, http.StatusOK, map[string]any{"id": "x", "choices": []any{}})

	_, err := completer(srv.URL).Complete(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrUnavailable)
}
