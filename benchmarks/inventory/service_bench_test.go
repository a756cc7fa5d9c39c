package inventory_bench

import (
	"context"
	"fmt"
	"testing"

	"github.com/osse101/JoyasAPI_Go/internal/domain"
	"github.com/osse101/JoyasAPI_Go/internal/inventory"
	"github.com/osse101/JoyasAPI_Go/internal/query"
)

// --- Stubs (Zero-overhead mocks for benchmarking) ---

type StubRepository struct {
	rows []domain.InventoryItem
}

func (s *StubRepository) Query(ctx context.Context, stmt query.Statement) ([]domain.InventoryItem, error) {
	return s.rows, nil
}

func (s *StubRepository) QueryOne(ctx context.Context, stmt query.Statement) (*domain.InventoryItem, error) {
	item := s.rows[0]
	return &item, nil
}

func makeRows(n int) []domain.InventoryItem {
	rows := make([]domain.InventoryItem, n)
	for i := range rows {
		rows[i] = domain.InventoryItem{
			ID:       i + 1,
			Name:     fmt.Sprintf("Joya %d", i+1),
			Category: "aros",
			Metal:    "plata",
			Price:    10000 + i*100,
			Stock:    i % 7,
		}
	}
	return rows
}

// --- Benchmarks ---

func BenchmarkParseSort(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := query.ParseSort("precio_DESC"); err != nil {
			b.Fatalf("ParseSort failed: %v", err)
		}
	}
}

func BenchmarkBuildListing(b *testing.B) {
	q := domain.ListingQuery{
		Limit: 10,
		Page:  3,
		Sort:  domain.SortSpec{Column: domain.ColumnPrice, Direction: domain.SortAscending},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := query.BuildListing(q); err != nil {
			b.Fatalf("BuildListing failed: %v", err)
		}
	}
}

func BenchmarkBuildFilter_AllPredicates(b *testing.B) {
	minPrice, maxPrice := 5000, 30000
	category, metal := "aros", "oro"
	f := domain.FilterQuery{MinPrice: &minPrice, MaxPrice: &maxPrice, Category: &category, Metal: &metal}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = query.BuildFilter(f)
	}
}

// BenchmarkShape measures envelope construction for pages of increasing size
func BenchmarkShape(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		rows := makeRows(n)
		b.Run(fmt.Sprintf("rows=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = inventory.Shape(rows)
			}
		})
	}
}

// BenchmarkListItems covers bind-validated query to envelope with the store stubbed out
func BenchmarkListItems(b *testing.B) {
	svc := inventory.NewService(&StubRepository{rows: makeRows(10)})
	ctx := context.Background()
	q := domain.ListingQuery{
		Limit: 10,
		Page:  1,
		Sort:  domain.SortSpec{Column: domain.ColumnPrice, Direction: domain.SortDescending},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.ListItems(ctx, q); err != nil {
			b.Fatalf("ListItems failed: %v", err)
		}
	}
}
