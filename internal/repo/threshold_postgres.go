package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/rogerio-castellano/smart-retail-ops/internal/models"
)

type PostgresThresholdRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresThresholdRepository(db *sql.DB, timeout time.Duration) *PostgresThresholdRepository {
	return &PostgresThresholdRepository{db: db, timeout: timeout}
}

func (r *PostgresThresholdRepository) GetAll(ctx context.Context) (map[string]models.Bounds, error) {
	query := `SELECT item_name, min_threshold, max_threshold FROM thresholds ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storageErr("list thresholds", err)
	}
	defer rows.Close()

	thresholds := map[string]models.Bounds{}
	for rows.Next() {
		var t models.Threshold
		if err := rows.Scan(&t.ItemName, &t.Min, &t.Max); err != nil {
			return nil, storageErr("scan threshold", err)
		}
		thresholds[t.ItemName] = models.Bounds{Min: t.Min, Max: t.Max}
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list thresholds", err)
	}
	return thresholds, nil
}

func (r *PostgresThresholdRepository) Upsert(ctx context.Context, t models.Threshold) error {
	query := `
		INSERT INTO thresholds (item_name, min_threshold, max_threshold)
		VALUES ($1, $2, $3)
		ON CONFLICT (item_name)
		DO UPDATE SET min_threshold = EXCLUDED.min_threshold, max_threshold = EXCLUDED.max_threshold
	`
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, query, t.ItemName, t.Min, t.Max); err != nil {
		return storageErr("upsert threshold", err)
	}
	return nil
}
