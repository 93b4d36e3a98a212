// Package inventory implements the add-item, threshold and export flows on
// top of the classifier, the store and the report builder.
package inventory

import (
	"context"
	"sort"

	"github.com/rogerio-castellano/smart-retail-ops/internal/classifier"
	"github.com/rogerio-castellano/smart-retail-ops/internal/classlog"
	"github.com/rogerio-castellano/smart-retail-ops/internal/logging"
	"github.com/rogerio-castellano/smart-retail-ops/internal/models"
	"github.com/rogerio-castellano/smart-retail-ops/internal/repo"
	"github.com/rogerio-castellano/smart-retail-ops/internal/report"
	"github.com/shopspring/decimal"
)

// Classifier is satisfied by *classifier.Classifier.
type Classifier interface {
	Classify(ctx context.Context, name string, quantity int, unitCost decimal.Decimal) (classifier.Result, error)
}

// Deps are the collaborators of a Service. Log may be nil.
type Deps struct {
	Items      repo.ItemRepository
	Thresholds repo.ThresholdRepository
	Classifier Classifier
	Log        classlog.Recorder
	// Model is written to the classification log only.
	Model string
}

type Service struct {
	items      repo.ItemRepository
	thresholds repo.ThresholdRepository
	classifier Classifier
	log        classlog.Recorder
	model      string
}

func NewService(d Deps) *Service {
	return &Service{
		items:      d.Items,
		thresholds: d.Thresholds,
		classifier: d.Classifier,
		log:        d.Log,
		model:      d.Model,
	}
}

// AddItem validates the input, classifies it and appends it to the
// inventory. Classifier failures wrap classifier.ErrUnavailable and store
// failures wrap repo.ErrStorage; nothing is persisted in either case.
func (s *Service) AddItem(ctx context.Context, in AddItemInput) (models.Item, error) {
	if err := in.Validate(); err != nil {
		return models.Item{}, err
	}

	res, err := s.classifier.Classify(ctx, in.Name, in.Quantity, in.UnitCost)
	if err != nil {
		return models.Item{}, err
	}

	created, err := s.items.Create(ctx, models.Item{
		Name:     res.Name,
		Quantity: res.Quantity,
		UnitCost: res.UnitCost,
		ABCClass: res.ABCClass,
	})
	if err != nil {
		return models.Item{}, err
	}

	if s.log != nil {
		entry := classlog.NewEntry(created.Name, created.ABCClass, res.Reply, s.model)
		if err := s.log.Record(ctx, entry); err != nil {
			logging.FromContext(ctx).Warn("could not record classification", "item", created.Name, "error", err)
		}
	}
	return created, nil
}

func (s *Service) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.items.GetAll(ctx)
}

// SetThreshold upserts the bounds for an item name. The name does not need
// to match an existing item.
func (s *Service) SetThreshold(ctx context.Context, in SetThresholdInput) (models.Threshold, error) {
	if err := in.Validate(); err != nil {
		return models.Threshold{}, err
	}

	t := models.Threshold{ItemName: in.ItemName, Min: in.Min, Max: in.Max}
	if err := s.thresholds.Upsert(ctx, t); err != nil {
		return models.Threshold{}, err
	}
	return t, nil
}

func (s *Service) ListThresholds(ctx context.Context) (map[string]models.Bounds, error) {
	return s.thresholds.GetAll(ctx)
}

// StockStatus compares on-hand quantity to the configured bounds.
type StockStatus string

const (
	StockLow       StockStatus = "low"
	StockOK        StockStatus = "ok"
	StockOver      StockStatus = "over"
	StockUntracked StockStatus = "untracked"
)

// ThresholdView is one threshold row with the quantity currently on hand
// for that name (summed over rows with the same name).
type ThresholdView struct {
	ItemName string      `json:"item_name"`
	Min      int         `json:"min"`
	Max      int         `json:"max"`
	OnHand   int         `json:"on_hand"`
	Status   StockStatus `json:"status"`
}

// ThresholdStatus lists every threshold sorted by item name.
func (s *Service) ThresholdStatus(ctx context.Context) ([]ThresholdView, error) {
	thresholds, err := s.thresholds.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.items.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	onHand, known := quantitiesByName(items)
	views := make([]ThresholdView, 0, len(thresholds))
	for name, b := range thresholds {
		views = append(views, ThresholdView{
			ItemName: name,
			Min:      b.Min,
			Max:      b.Max,
			OnHand:   onHand[name],
			Status:   stockStatus(onHand[name], known[name], b),
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ItemName < views[j].ItemName })
	return views, nil
}

func quantitiesByName(items []models.Item) (map[string]int, map[string]bool) {
	onHand := map[string]int{}
	known := map[string]bool{}
	for _, it := range items {
		onHand[it.Name] += it.Quantity
		known[it.Name] = true
	}
	return onHand, known
}

func stockStatus(qty int, known bool, b models.Bounds) StockStatus {
	switch {
	case !known:
		return StockUntracked
	case qty < b.Min:
		return StockLow
	case qty > b.Max:
		return StockOver
	}
	return StockOK
}

// SimpleExport renders the inventory with totals and classes as CSV.
func (s *Service) SimpleExport(ctx context.Context) (report.Artifact, error) {
	items, err := s.items.GetAll(ctx)
	if err != nil {
		return report.Artifact{}, err
	}
	return report.Simple(items)
}

// Report renders the formatted inventory report. The format is checked
// before the store is read.
func (s *Service) Report(ctx context.Context, format string) (report.Artifact, error) {
	f, err := report.ParseFormat(format)
	if err != nil {
		return report.Artifact{}, err
	}
	items, err := s.items.GetAll(ctx)
	if err != nil {
		return report.Artifact{}, err
	}
	return report.Formatted(items, f)
}

func (s *Service) RecentClassifications(ctx context.Context, limit int) ([]classlog.Entry, error) {
	if s.log == nil {
		return []classlog.Entry{}, nil
	}
	return s.log.Recent(ctx, limit)
}
