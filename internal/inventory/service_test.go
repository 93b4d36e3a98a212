package inventory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rogerio-castellano/smart-retail-ops/internal/classifier"
	"github.com/rogerio-castellano/smart-retail-ops/internal/classlog"
	"github.com/rogerio-castellano/smart-retail-ops/internal/models"
	"github.com/rogerio-castellano/smart-retail-ops/internal/repo"
	"github.com/rogerio-castellano/smart-retail-ops/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) Complete(context.Context, string) (string, error) {
	s.calls++
	return s.reply, s.err
}

type failingItems struct{}

func (failingItems) Create(context.Context, models.Item) (models.Item, error) {
	return models.Item{}, fmt.Errorf("%w: disk full", repo.ErrStorage)
}

func (failingItems) GetAll(context.Context) ([]models.Item, error) {
	return nil, fmt.Errorf("%w: connection refused", repo.ErrStorage)
}

type failingRecorder struct{}

func (failingRecorder) Record(context.Context, classlog.Entry) error { return errors.New("redis down") }
func (failingRecorder) Recent(context.Context, int) ([]classlog.Entry, error) {
	return nil, errors.New("redis down")
}

type fixture struct {
	svc       *Service
	completer *stubCompleter
	store     *repo.Store
	log       *classlog.MemoryRecorder
}

func newFixture(reply string) fixture {
	sc := &stubCompleter{reply: reply}
	store := repo.NewInMemoryStore()
	log := classlog.NewMemoryRecorder(10)
	svc := NewService(Deps{
		Items:      store.Items,
		Thresholds: store.Thresholds,
		Classifier: classifier.New(sc),
		Log:        log,
		Model:      "test-model",
	})
	return fixture{svc: svc, completer: sc, store: store, log: log}
}

func add(t *testing.T, svc *Service, name string, qty int, cost string) models.Item {
	t.Helper()
	it, err := svc.AddItem(context.Background(), AddItemInput{Name: name, Quantity: qty, UnitCost: decimal.RequireFromString(cost)})
	require.NoError(t, err)
	return it
}

func TestAddItem_ClassifiesAndStores(t *testing.T) {
	f := newFixture("A - high value, low quantity")

	it := add(t, f.svc, "Gadget", 1, "500.00")
	assert.Equal(t, models.ClassA, it.ABCClass)
	assert.NotZero(t, it.ID)
	assert.True(t, it.TotalValue().Equal(decimal.NewFromInt(500)))

	items, err := f.svc.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Gadget", items[0].Name)

	entries, err := f.svc.RecentClassifications(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "A - high value, low quantity", entries[0].Reply)
	assert.Equal(t, "test-model", entries[0].Model)
}

func TestAddItem_ValidationStopsBeforeClassifier(t *testing.T) {
	f := newFixture("A")

	_, err := f.svc.AddItem(context.Background(), AddItemInput{Name: " ", Quantity: -1, UnitCost: decimal.NewFromInt(-2)})

	var verr ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("name"))
	assert.True(t, verr.Has("quantity"))
	assert.True(t, verr.Has("unit_cost"))
	assert.Zero(t, f.completer.calls)
}

func TestAddItem_QuantityAboveColumnRange(t *testing.T) {
	f := newFixture("C")

	_, err := f.svc.AddItem(context.Background(), AddItemInput{Name: "Grain", Quantity: MaxQuantity + 1, UnitCost: decimal.NewFromInt(1)})

	var verr ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("quantity"))
	assert.Zero(t, f.completer.calls)

	_, err = f.svc.AddItem(context.Background(), AddItemInput{Name: "Grain", Quantity: MaxQuantity, UnitCost: decimal.NewFromInt(1)})
	require.NoError(t, err)

	_, err = f.svc.SetThreshold(context.Background(), SetThresholdInput{ItemName: "Grain", Min: 0, Max: MaxQuantity + 1})
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("max_threshold"))
}

func TestAddItem_ClassifierUnavailable(t *testing.T) {
	f := newFixture("")
	f.completer.err = errors.New("503 service unavailable")

	_, err := f.svc.AddItem(context.Background(), AddItemInput{Name: "Widget", Quantity: 1, UnitCost: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, classifier.ErrUnavailable)

	items, _ := f.svc.ListItems(context.Background())
	assert.Empty(t, items)
}

func TestAddItem_StorageError(t *testing.T) {
	svc := NewService(Deps{
		Items:      failingItems{},
		Thresholds: repo.NewInMemoryThresholdRepository(),
		Classifier: classifier.New(&stubCompleter{reply: "B"}),
	})

	_, err := svc.AddItem(context.Background(), AddItemInput{Name: "Widget", Quantity: 1, UnitCost: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, repo.ErrStorage)
}

func TestAddItem_LogFailureDoesNotFailAdd(t *testing.T) {
	store := repo.NewInMemoryStore()
	svc := NewService(Deps{
		Items:      store.Items,
		Thresholds: store.Thresholds,
		Classifier: classifier.New(&stubCompleter{reply: "C"}),
		Log:        failingRecorder{},
	})

	_, err := svc.AddItem(context.Background(), AddItemInput{Name: "Bolt", Quantity: 1000, UnitCost: decimal.RequireFromString("0.05")})
	require.NoError(t, err)
}

func TestSetThreshold(t *testing.T) {
	f := newFixture("C")
	ctx := context.Background()

	_, err := f.svc.SetThreshold(ctx, SetThresholdInput{ItemName: "Widget", Min: 10, Max: 5})
	require.NoError(t, err, "min > max is accepted")
	_, err = f.svc.SetThreshold(ctx, SetThresholdInput{ItemName: "Widget", Min: 2, Max: 20})
	require.NoError(t, err)

	got, err := f.svc.ListThresholds(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]models.Bounds{"Widget": {Min: 2, Max: 20}}, got)

	_, err = f.svc.SetThreshold(ctx, SetThresholdInput{ItemName: "", Min: -1})
	var verr ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("item_name"))
	assert.True(t, verr.Has("min_threshold"))
}

func TestThresholdStatus(t *testing.T) {
	f := newFixture("B")
	ctx := context.Background()
	add(t, f.svc, "Widget", 3, "1")
	add(t, f.svc, "Widget", 4, "1")
	add(t, f.svc, "Gadget", 50, "1")
	add(t, f.svc, "Nut", 5, "1")

	for _, in := range []SetThresholdInput{
		{ItemName: "Widget", Min: 10, Max: 100},
		{ItemName: "Gadget", Min: 1, Max: 20},
		{ItemName: "Nut", Min: 1, Max: 10},
		{ItemName: "Ghost", Min: 1, Max: 2},
	} {
		_, err := f.svc.SetThreshold(ctx, in)
		require.NoError(t, err)
	}

	views, err := f.svc.ThresholdStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, []ThresholdView{
		{ItemName: "Gadget", Min: 1, Max: 20, OnHand: 50, Status: StockOver},
		{ItemName: "Ghost", Min: 1, Max: 2, OnHand: 0, Status: StockUntracked},
		{ItemName: "Nut", Min: 1, Max: 10, OnHand: 5, Status: StockOK},
		{ItemName: "Widget", Min: 10, Max: 100, OnHand: 7, Status: StockLow},
	}, views)
}

func TestSummary(t *testing.T) {
	f := newFixture("")
	ctx := context.Background()

	empty, err := f.svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[models.ABCClass]int{models.ClassA: 0, models.ClassB: 0, models.ClassC: 0}, empty.Counts)
	assert.Equal(t, []string{"No Data"}, empty.Chart.Labels)
	assert.Equal(t, []int{0}, empty.Chart.Series[models.ClassA])
	assert.Empty(t, empty.Recent)
	assert.True(t, empty.TotalValue.IsZero())

	replies := []string{"A", "C", "C", "B", "C", "C", "A"}
	for i, r := range replies {
		f.completer.reply = r
		add(t, f.svc, fmt.Sprintf("item-%d", i), i+1, "2.00")
	}
	_, err = f.svc.SetThreshold(ctx, SetThresholdInput{ItemName: "item-0", Min: 5, Max: 10})
	require.NoError(t, err)

	sum, err := f.svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Counts[models.ClassA])
	assert.Equal(t, 1, sum.Counts[models.ClassB])
	assert.Equal(t, 4, sum.Counts[models.ClassC])
	assert.Equal(t, 7, sum.TotalItems)
	assert.True(t, sum.TotalValue.Equal(decimal.NewFromInt(56)), "got %s", sum.TotalValue)
	assert.Equal(t, 1, sum.LowStockCount)
	assert.Equal(t, []int{1, 7}, sum.Chart.Series[models.ClassA])
	assert.Equal(t, []int{4}, sum.Chart.Series[models.ClassB])
	require.Len(t, sum.Recent, 5)
	assert.Equal(t, "item-2", sum.Recent[0].Name)
	assert.Equal(t, "item-6", sum.Recent[4].Name)
}

func TestReport(t *testing.T) {
	f := newFixture("C")
	add(t, f.svc, "Widget", 10, "2.50")

	a, err := f.svc.Report(context.Background(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "inventory_report.csv", a.Filename)
	assert.Contains(t, string(a.Data), "Widget,10,2.50,10")

	a, err = f.svc.Report(context.Background(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", a.ContentType)

	a, err = f.svc.SimpleExport(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(a.Data), "Widget,10,2.50,25.00,C")
}

func TestReport_FormatCheckedBeforeStore(t *testing.T) {
	svc := NewService(Deps{Items: failingItems{}, Thresholds: repo.NewInMemoryThresholdRepository()})

	_, err := svc.Report(context.Background(), "xml")
	assert.ErrorIs(t, err, report.ErrUnsupportedFormat)

	_, err = svc.Report(context.Background(), "csv")
	assert.ErrorIs(t, err, repo.ErrStorage)
}

func TestParseAddItem(t *testing.T) {
	tests := []struct {
		name       string
		qty, cost  string
		wantFields []string
	}{
		{"valid", "10", "2.50", nil},
		{"non-numeric quantity", "ten", "2.50", []string{"quantity"}},
		{"decimal quantity", "1.5", "2.50", []string{"quantity"}},
		{"missing cost", "1", "", []string{"unit_cost"}},
		{"negative both", "-1", "-0.01", []string{"quantity", "unit_cost"}},
		{"quantity above range", "2147483648", "1", []string{"quantity"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseAddItem("Widget", tt.qty, tt.cost)
			if tt.wantFields == nil {
				require.NoError(t, err)
				assert.Equal(t, 10, in.Quantity)
				assert.Equal(t, "2.5", in.UnitCost.String())
				return
			}
			var verr ValidationErrors
			require.ErrorAs(t, err, &verr)
			assert.Len(t, verr, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.True(t, verr.Has(f), f)
			}
		})
	}
}

func TestParseThreshold(t *testing.T) {
	in, err := ParseThreshold("Widget", "5", "1")
	require.NoError(t, err)
	assert.Equal(t, SetThresholdInput{ItemName: "Widget", Min: 5, Max: 1}, in)

	_, err = ParseThreshold("", "x", "-3")
	var verr ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr, 3)
}
