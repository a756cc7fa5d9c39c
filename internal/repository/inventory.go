package repository

import (
	"context"

	"github.com/osse101/JoyasAPI_Go/internal/domain"
	"github.com/osse101/JoyasAPI_Go/internal/query"
)

// Inventory executes built statements against the inventory store.
// Implementations map driver failures onto domain.ErrConnection and domain.ErrQuery.
type Inventory interface {
	// Query returns every row produced by stmt, in store order
	Query(ctx context.Context, stmt query.Statement) ([]domain.InventoryItem, error)

	// QueryOne returns the first row of stmt, or domain.ErrItemNotFound
	QueryOne(ctx context.Context, stmt query.Statement) (*domain.InventoryItem, error)
}
