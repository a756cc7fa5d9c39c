// Package query turns bound listing and filter parameters into parameterized
// SQL for the inventario table.
//
// Column names and sort directions never come from the caller verbatim: they
// are checked against a fixed allow-list before they are written into the
// statement. Filter values are always bound as positional parameters.
package query

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/JoyasAPI_Go/internal/domain"
)

// Statement is SQL text plus its positional arguments ($1..$n).
type Statement struct {
	Kind string
	SQL  string
	Args []any
}

var validate = validator.New(validator.WithRequiredStructEnabled())

var selectInventory = fmt.Sprintf("SELECT %s FROM %s",
	strings.Join(domain.InventoryColumns, ", "), domain.InventoryTable)

// ParseSort splits an order_by value such as "precio_DESC" into an allow-listed SortSpec.
// A value without exactly one separator is rejected.
func ParseSort(raw string) (domain.SortSpec, error) {
	parts := strings.Split(raw, domain.SortSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return domain.SortSpec{}, domain.InvalidInputf(ErrMsgSortFormat, raw)
	}

	sort := domain.SortSpec{
		Column:    parts[0],
		Direction: strings.ToUpper(parts[1]),
	}
	if err := validateSort(sort); err != nil {
		return domain.SortSpec{}, err
	}
	return sort, nil
}

func validateSort(sort domain.SortSpec) error {
	if err := validate.Struct(sort); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 && fieldErrs[0].Field() == "Direction" {
			return domain.InvalidInputf(ErrMsgSortDirection, sort.Direction)
		}
		return domain.InvalidInputf(ErrMsgSortColumn, sort.Column)
	}
	return nil
}

// BuildListing builds the paginated, sorted listing statement.
// The sort is re-validated here so a hand-built ListingQuery cannot bypass the allow-list.
func BuildListing(q domain.ListingQuery) (Statement, error) {
	if err := validateSort(q.Sort); err != nil {
		return Statement{}, err
	}
	if err := validate.Struct(q); err != nil {
		return Statement{}, domain.InvalidInputf(ErrMsgLimit, q.Limit)
	}
	if err := ValidatePage(q.Limit, q.Page); err != nil {
		return Statement{}, err
	}

	sql := fmt.Sprintf("%s ORDER BY %s %s LIMIT %d OFFSET %d",
		selectInventory, q.Sort.Column, q.Sort.Direction, q.Limit, q.Offset())

	return Statement{Kind: KindListing, SQL: sql}, nil
}

// ValidatePage rejects pages whose offset (page-1)*limit does not fit in an int.
// limit must already be positive.
func ValidatePage(limit, page int) error {
	if page > 1 && page-1 > math.MaxInt/limit {
		return domain.InvalidInputf(ErrMsgPageRange, page, limit)
	}
	return nil
}

// predicate is one optional WHERE condition. value reports whether the filter is present.
type predicate struct {
	column   string
	operator string
	value    func(domain.FilterQuery) (any, bool)
}

// filterPredicates is applied in order: min price, max price, category, metal.
var filterPredicates = []predicate{
	{domain.ColumnPrice, ">", func(f domain.FilterQuery) (any, bool) {
		if f.MinPrice == nil {
			return nil, false
		}
		return *f.MinPrice, true
	}},
	{domain.ColumnPrice, "<", func(f domain.FilterQuery) (any, bool) {
		if f.MaxPrice == nil {
			return nil, false
		}
		return *f.MaxPrice, true
	}},
	{domain.ColumnCategory, "=", func(f domain.FilterQuery) (any, bool) {
		if f.Category == nil {
			return nil, false
		}
		return *f.Category, true
	}},
	{domain.ColumnMetal, "=", func(f domain.FilterQuery) (any, bool) {
		if f.Metal == nil {
			return nil, false
		}
		return *f.Metal, true
	}},
}

// BuildFilter builds the filtered statement. With no filters present there is no WHERE clause.
func BuildFilter(f domain.FilterQuery) Statement {
	var (
		conditions []string
		args       []any
	)
	for _, p := range filterPredicates {
		v, ok := p.value(f)
		if !ok {
			continue
		}
		args = append(args, v)
		conditions = append(conditions, fmt.Sprintf("%s %s $%d", p.column, p.operator, len(args)))
	}

	sql := selectInventory
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}

	return Statement{Kind: KindFilter, SQL: sql, Args: args}
}

// BuildByID builds the single-item lookup behind item links.
func BuildByID(id int) Statement {
	return Statement{
		Kind: KindByID,
		SQL:  fmt.Sprintf("%s WHERE %s = $1", selectInventory, domain.ColumnID),
		Args: []any{id},
	}
}
