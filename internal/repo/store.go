package repo

import (
	"context"
	"fmt"
	"io"

	"github.com/rogerio-castellano/smart-retail-ops/internal/config"
	"github.com/rogerio-castellano/smart-retail-ops/internal/db"
	"github.com/shopspring/decimal"
)

// Store bundles the repositories of one backend.
type Store struct {
	Items      ItemRepository
	Thresholds ThresholdRepository
	closer     io.Closer
}

// Close releases the underlying connection pool, if any.
func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// NewInMemoryStore returns a Store backed by process memory.
func NewInMemoryStore() *Store {
	return &Store{
		Items:      NewInMemoryItemRepository(),
		Thresholds: NewInMemoryThresholdRepository(),
	}
}

// Open connects to the configured backend and makes sure both tables exist.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	switch cfg.Driver {
	case "memory":
		return NewInMemoryStore(), nil

	case "postgres":
		conn, err := db.ConnectPostgres(ctx, cfg.DSN)
		if err != nil {
			return nil, storageErr("connect", err)
		}
		if err := ensureSchema(ctx, conn, postgresSchema, cfg.QueryTimeout); err != nil {
			conn.Close()
			return nil, err
		}
		return &Store{
			Items:      NewPostgresItemRepository(conn, cfg.QueryTimeout),
			Thresholds: NewPostgresThresholdRepository(conn, cfg.QueryTimeout),
			closer:     conn,
		}, nil

	case "sqlite":
		conn, err := db.OpenSQLite(ctx, cfg.DSN)
		if err != nil {
			return nil, storageErr("connect", err)
		}
		if err := ensureSchema(ctx, conn, sqliteSchema, cfg.QueryTimeout); err != nil {
			conn.Close()
			return nil, err
		}
		return &Store{
			Items:      NewSQLiteItemRepository(conn, cfg.QueryTimeout),
			Thresholds: NewSQLiteThresholdRepository(conn, cfg.QueryTimeout),
			closer:     conn,
		}, nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

func decimalFromReal(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
