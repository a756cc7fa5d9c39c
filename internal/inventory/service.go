package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/JoyasAPI_Go/internal/domain"
	"github.com/osse101/JoyasAPI_Go/internal/logger"
	"github.com/osse101/JoyasAPI_Go/internal/query"
	"github.com/osse101/JoyasAPI_Go/internal/repository"
)

// Service defines the interface for inventory read operations
type Service interface {
	ListItems(ctx context.Context, q domain.ListingQuery) (*domain.ListingEnvelope, error)
	FilterItems(ctx context.Context, f domain.FilterQuery) ([]domain.InventoryItem, error)
	GetItem(ctx context.Context, id int) (*domain.InventoryItem, error)
}

type service struct {
	repo repository.Inventory
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory) Service {
	return &service{repo: repo}
}

// ListItems returns one sorted page wrapped in the hypermedia envelope
func (s *service) ListItems(ctx context.Context, q domain.ListingQuery) (*domain.ListingEnvelope, error) {
	log := logger.FromContext(ctx)

	stmt, err := query.BuildListing(q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBuildListing, err)
	}
	log.Debug(LogMsgListingItems, "limit", q.Limit, "page", q.Page, "sort", q.Sort.Column, "direction", q.Sort.Direction)

	items, err := s.repo.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListItems, err)
	}

	env := Shape(items)
	return &env, nil
}

// FilterItems returns the matching rows as-is, without an envelope
func (s *service) FilterItems(ctx context.Context, f domain.FilterQuery) ([]domain.InventoryItem, error) {
	stmt := query.BuildFilter(f)
	logger.FromContext(ctx).Debug(LogMsgFilteringItems, "filters", f.PresentCount())

	items, err := s.repo.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFilterItems, err)
	}
	if items == nil {
		items = []domain.InventoryItem{}
	}
	return items, nil
}

func (s *service) GetItem(ctx context.Context, id int) (*domain.InventoryItem, error) {
	if id < 1 {
		return nil, domain.InvalidInputf(ErrMsgInvalidItemID, id)
	}
	logger.FromContext(ctx).Debug(LogMsgGettingItem, "id", id)

	item, err := s.repo.QueryOne(ctx, query.BuildByID(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetItem, err)
	}
	return item, nil
}
