package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/JoyasAPI_Go/internal/domain"
	"github.com/osse101/JoyasAPI_Go/internal/logger"
	"github.com/osse101/JoyasAPI_Go/internal/metrics"
	"github.com/osse101/JoyasAPI_Go/internal/query"
	"github.com/osse101/JoyasAPI_Go/internal/repository"
)

// InventoryRepository implements repository.Inventory for PostgreSQL
type InventoryRepository struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(pool *pgxpool.Pool) repository.Inventory {
	return &InventoryRepository{pool: pool}
}

// Query executes stmt and collects every row
func (r *InventoryRepository) Query(ctx context.Context, stmt query.Statement) ([]domain.InventoryItem, error) {
	start := time.Now()
	items, err := r.collect(ctx, stmt)
	metrics.ObserveInventoryQuery(stmt.Kind, time.Since(start), len(items), err)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// QueryOne executes stmt and returns its first row
func (r *InventoryRepository) QueryOne(ctx context.Context, stmt query.Statement) (*domain.InventoryItem, error) {
	start := time.Now()
	rows, err := r.pool.Query(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		err = classifyError(err)
		metrics.ObserveInventoryQuery(stmt.Kind, time.Since(start), 0, err)
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryInventory, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.InventoryItem])
	if errors.Is(err, pgx.ErrNoRows) {
		metrics.ObserveInventoryQuery(stmt.Kind, time.Since(start), 0, nil)
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		err = classifyError(err)
		metrics.ObserveInventoryQuery(stmt.Kind, time.Since(start), 0, err)
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanInventory, err)
	}

	metrics.ObserveInventoryQuery(stmt.Kind, time.Since(start), 1, nil)
	return &item, nil
}

func (r *InventoryRepository) collect(ctx context.Context, stmt query.Statement) ([]domain.InventoryItem, error) {
	logger.FromContext(ctx).Debug("Executing inventory statement",
		"kind", stmt.Kind,
		"sql", stmt.SQL,
		"args", len(stmt.Args))

	rows, err := r.pool.Query(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryInventory, classifyError(err))
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.InventoryItem])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanInventory, classifyError(err))
	}

	if items == nil {
		items = []domain.InventoryItem{}
	}
	return items, nil
}
