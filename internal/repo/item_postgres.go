package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/rogerio-castellano/smart-retail-ops/internal/models"
)

type PostgresItemRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresItemRepository(db *sql.DB, timeout time.Duration) *PostgresItemRepository {
	return &PostgresItemRepository{db: db, timeout: timeout}
}

func (r *PostgresItemRepository) Create(ctx context.Context, item models.Item) (models.Item, error) {
	query := `INSERT INTO inventory (name, quantity, unit_cost, abc_class) VALUES ($1, $2, $3, $4) RETURNING id`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, item.Name, item.Quantity, item.UnitCost, string(item.ABCClass)).Scan(&item.ID)
	if err != nil {
		return models.Item{}, storageErr("insert item", err)
	}
	return item, nil
}

func (r *PostgresItemRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	query := `SELECT id, name, quantity, unit_cost, abc_class FROM inventory ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storageErr("list items", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var it models.Item
		var class string
		if err := rows.Scan(&it.ID, &it.Name, &it.Quantity, &it.UnitCost, &class); err != nil {
			return nil, storageErr("scan item", err)
		}
		it.ABCClass = models.ABCClass(class)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list items", err)
	}
	return items, nil
}
