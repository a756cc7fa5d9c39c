package query

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JoyasAPI_Go/internal/domain"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestParseSort(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.SortSpec
		wantErr string
	}{
		{"price ascending", "precio_ASC", domain.SortSpec{Column: "precio", Direction: "ASC"}, ""},
		{"default", domain.DefaultOrderBy, domain.SortSpec{Column: "precio", Direction: "DESC"}, ""},
		{"lowercase direction", "stock_desc", domain.SortSpec{Column: "stock", Direction: "DESC"}, ""},
		{"bare column", "precio", domain.SortSpec{}, "must be <column>_<ASC|DESC>"},
		{"empty", "", domain.SortSpec{}, "must be <column>_<ASC|DESC>"},
		{"too many separators", "precio_ASC_x", domain.SortSpec{}, "must be <column>_<ASC|DESC>"},
		{"missing direction", "precio_", domain.SortSpec{}, "must be <column>_<ASC|DESC>"},
		{"unknown column", "password_ASC", domain.SortSpec{}, "cannot sort by column"},
		{"injected column", "1;DROP TABLE inventario--_ASC", domain.SortSpec{}, "cannot sort by column"},
		{"unknown direction", "precio_SIDEWAYS", domain.SortSpec{}, "must be ASC or DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSort(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildListing(t *testing.T) {
	t.Run("page two of two", func(t *testing.T) {
		stmt, err := BuildListing(domain.ListingQuery{
			Limit: 2,
			Page:  2,
			Sort:  domain.SortSpec{Column: "precio", Direction: "ASC"},
		})

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(stmt.SQL, "ORDER BY precio ASC LIMIT 2 OFFSET 2"), stmt.SQL)
		assert.True(t, strings.HasPrefix(stmt.SQL, "SELECT id, nombre, categoria, metal, precio, stock FROM inventario"))
		assert.Empty(t, stmt.Args)
		assert.Equal(t, KindListing, stmt.Kind)
	})

	t.Run("offset follows page and limit", func(t *testing.T) {
		cases := []struct {
			limit, page, offset int
		}{
			{10, 1, 0},
			{10, 3, 20},
			{5, 0, 0},
			{5, -4, 0},
			{7, 4, 21},
		}
		for _, c := range cases {
			stmt, err := BuildListing(domain.ListingQuery{
				Limit: c.limit,
				Page:  c.page,
				Sort:  domain.SortSpec{Column: "id", Direction: "DESC"},
			})
			require.NoError(t, err)
			assert.Contains(t, stmt.SQL, " LIMIT "+strconv.Itoa(c.limit)+" OFFSET "+strconv.Itoa(c.offset))
		}
	})

	t.Run("rejects non-positive limit", func(t *testing.T) {
		_, err := BuildListing(domain.ListingQuery{
			Limit: 0,
			Page:  1,
			Sort:  domain.SortSpec{Column: "precio", Direction: "ASC"},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects page whose offset overflows", func(t *testing.T) {
		for _, limit := range []int{2, 10, math.MaxInt} {
			_, err := BuildListing(domain.ListingQuery{
				Limit: limit,
				Page:  math.MaxInt,
				Sort:  domain.SortSpec{Column: "precio", Direction: "ASC"},
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "limit %d", limit)
		}
	})

	t.Run("largest page that fits is accepted", func(t *testing.T) {
		stmt, err := BuildListing(domain.ListingQuery{
			Limit: 2,
			Page:  math.MaxInt/2 + 1,
			Sort:  domain.SortSpec{Column: "precio", Direction: "ASC"},
		})
		require.NoError(t, err)
		assert.Contains(t, stmt.SQL, "OFFSET "+strconv.Itoa(math.MaxInt/2*2))
	})

	t.Run("huge negative page still reads the first page", func(t *testing.T) {
		stmt, err := BuildListing(domain.ListingQuery{
			Limit: 10,
			Page:  math.MinInt,
			Sort:  domain.SortSpec{Column: "precio", Direction: "ASC"},
		})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(stmt.SQL, "LIMIT 10 OFFSET 0"), stmt.SQL)
	})

	t.Run("rejects hand-built sort outside allow-list", func(t *testing.T) {
		_, err := BuildListing(domain.ListingQuery{
			Limit: 10,
			Page:  1,
			Sort:  domain.SortSpec{Column: "precio; DELETE FROM inventario", Direction: "ASC"},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestBuildFilter(t *testing.T) {
	t.Run("no filters returns every row", func(t *testing.T) {
		stmt := BuildFilter(domain.FilterQuery{})

		assert.NotContains(t, stmt.SQL, "WHERE")
		assert.Empty(t, stmt.Args)
		assert.Equal(t, KindFilter, stmt.Kind)
	})

	t.Run("price range and category", func(t *testing.T) {
		stmt := BuildFilter(domain.FilterQuery{
			MinPrice: intPtr(10),
			MaxPrice: intPtr(50),
			Category: strPtr("ring"),
		})

		assert.True(t, strings.HasSuffix(stmt.SQL, " WHERE precio > $1 AND precio < $2 AND categoria = $3"), stmt.SQL)
		assert.Equal(t, []any{10, 50, "ring"}, stmt.Args)
		assert.NotContains(t, stmt.SQL, "metal =")
	})

	t.Run("parameters are renumbered for sparse filters", func(t *testing.T) {
		stmt := BuildFilter(domain.FilterQuery{
			MaxPrice: intPtr(30000),
			Metal:    strPtr("oro"),
		})

		assert.True(t, strings.HasSuffix(stmt.SQL, " WHERE precio < $1 AND metal = $2"), stmt.SQL)
		assert.Equal(t, []any{30000, "oro"}, stmt.Args)
	})

	t.Run("predicate count matches present filters", func(t *testing.T) {
		filters := []domain.FilterQuery{
			{},
			{Metal: strPtr("plata")},
			{MinPrice: intPtr(1), Metal: strPtr("plata")},
			{MinPrice: intPtr(1), MaxPrice: intPtr(2), Category: strPtr("aros")},
			{MinPrice: intPtr(1), MaxPrice: intPtr(2), Category: strPtr("aros"), Metal: strPtr("oro")},
		}
		for _, f := range filters {
			stmt := BuildFilter(f)
			assert.Len(t, stmt.Args, f.PresentCount())
			assert.Equal(t, f.PresentCount(), strings.Count(stmt.SQL, "$"))
		}
	})

	t.Run("values are never interpolated", func(t *testing.T) {
		stmt := BuildFilter(domain.FilterQuery{Category: strPtr("'; DROP TABLE inventario; --")})

		assert.NotContains(t, stmt.SQL, "DROP")
		assert.Equal(t, []any{"'; DROP TABLE inventario; --"}, stmt.Args)
	})
}

func TestBuildByID(t *testing.T) {
	stmt := BuildByID(42)

	assert.True(t, strings.HasSuffix(stmt.SQL, " WHERE id = $1"))
	assert.Equal(t, []any{42}, stmt.Args)
	assert.Equal(t, KindByID, stmt.Kind)
}
