package repo

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rogerio-castellano/smart-retail-ops/internal/models"
)

// SQLiteItemRepository stores items in a local SQLite file through sqlx.
type SQLiteItemRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewSQLiteItemRepository(db *sqlx.DB, timeout time.Duration) *SQLiteItemRepository {
	return &SQLiteItemRepository{db: db, timeout: timeout}
}

func (r *SQLiteItemRepository) Create(ctx context.Context, item models.Item) (models.Item, error) {
	query := `INSERT INTO inventory (name, quantity, unit_cost, abc_class) VALUES (:name, :quantity, :unit_cost, :abc_class)`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.NamedExecContext(ctx, query, sqliteItem{
		Name:     item.Name,
		Quantity: item.Quantity,
		UnitCost: item.UnitCost.InexactFloat64(),
		ABCClass: string(item.ABCClass),
	})
	if err != nil {
		return models.Item{}, storageErr("insert item", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Item{}, storageErr("insert item", err)
	}
	item.ID = int(id)
	return item, nil
}

func (r *SQLiteItemRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var rows []sqliteItem
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, name, quantity, unit_cost, abc_class FROM inventory ORDER BY id`); err != nil {
		return nil, storageErr("list items", err)
	}

	items := make([]models.Item, len(rows))
	for i, row := range rows {
		items[i] = row.toModel()
	}
	return items, nil
}

// sqliteItem mirrors the inventory table. unit_cost is a REAL column.
type sqliteItem struct {
	ID       int     `db:"id"`
	Name     string  `db:"name"`
	Quantity int     `db:"quantity"`
	UnitCost float64 `db:"unit_cost"`
	ABCClass string  `db:"abc_class"`
}

func (s sqliteItem) toModel() models.Item {
	return models.Item{
		ID:       s.ID,
		Name:     s.Name,
		Quantity: s.Quantity,
		UnitCost: decimalFromReal(s.UnitCost),
		ABCClass: models.ABCClass(s.ABCClass),
	}
}

type SQLiteThresholdRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewSQLiteThresholdRepository(db *sqlx.DB, timeout time.Duration) *SQLiteThresholdRepository {
	return &SQLiteThresholdRepository{db: db, timeout: timeout}
}

func (r *SQLiteThresholdRepository) GetAll(ctx context.Context) (map[string]models.Bounds, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var rows []models.Threshold
	if err := r.db.SelectContext(ctx, &rows, `SELECT item_name, min_threshold, max_threshold FROM thresholds ORDER BY id`); err != nil {
		return nil, storageErr("list thresholds", err)
	}

	thresholds := make(map[string]models.Bounds, len(rows))
	for _, t := range rows {
		thresholds[t.ItemName] = models.Bounds{Min: t.Min, Max: t.Max}
	}
	return thresholds, nil
}

// Upsert updates the rows for the name and inserts one when none exists.
// It does not rely on a UNIQUE constraint, so inventory files created
// without one keep working.
func (r *SQLiteThresholdRepository) Upsert(ctx context.Context, t models.Threshold) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return storageErr("upsert threshold", err)
	}
	defer tx.Rollback()

	res, err := tx.NamedExecContext(ctx, `
		UPDATE thresholds SET min_threshold = :min_threshold, max_threshold = :max_threshold
		WHERE item_name = :item_name
	`, t)
	if err != nil {
		return storageErr("upsert threshold", err)
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return storageErr("upsert threshold", err)
	}
	if updated == 0 {
		if _, err := tx.NamedExecContext(ctx, `
			INSERT INTO thresholds (item_name, min_threshold, max_threshold)
			VALUES (:item_name, :min_threshold, :max_threshold)
		`, t); err != nil {
			return storageErr("upsert threshold", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("upsert threshold", err)
	}
	return nil
}
