package domain

// InventoryItem is a single row of the inventario table.
// JSON keys mirror the column names because the filter endpoint returns rows as-is.
type InventoryItem struct {
	ID       int    `json:"id" db:"id"`
	Name     string `json:"nombre" db:"nombre"`
	Category string `json:"categoria" db:"categoria"`
	Metal    string `json:"metal" db:"metal"`
	Price    int    `json:"precio" db:"precio"`
	Stock    int    `json:"stock" db:"stock"`
}

// SortSpec is an allow-listed ORDER BY column and direction
type SortSpec struct {
	Column    string `validate:"required,oneof=id nombre precio categoria metal stock"`
	Direction string `validate:"required,oneof=ASC DESC"`
}

// ListingQuery carries pagination and sort for the default listing
type ListingQuery struct {
	Limit int `validate:"min=1"`
	Page  int
	Sort  SortSpec
}

// Offset returns max(page-1, 0) * limit. The product must fit in an int.
func (q ListingQuery) Offset() int {
	if q.Page <= 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// FilterQuery holds optional attribute filters. A nil field imposes no constraint.
type FilterQuery struct {
	MinPrice *int
	MaxPrice *int
	Category *string
	Metal    *string
}

// PresentCount returns how many filters are set
func (f FilterQuery) PresentCount() int {
	n := 0
	if f.MinPrice != nil {
		n++
	}
	if f.MaxPrice != nil {
		n++
	}
	if f.Category != nil {
		n++
	}
	if f.Metal != nil {
		n++
	}
	return n
}

// ItemLink references a single item by its canonical path
type ItemLink struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// ListingEnvelope is the hypermedia response for the default listing
type ListingEnvelope struct {
	TotalItems int        `json:"totalItems"`
	TotalStock int        `json:"totalStock"`
	Results    []ItemLink `json:"results"`
}
