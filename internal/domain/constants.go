package domain

import "fmt"

// Inventory table and column names. The table is owned outside this service.
const (
	InventoryTable = "inventario"

	ColumnID       = "id"
	ColumnName     = "nombre"
	ColumnCategory = "categoria"
	ColumnMetal    = "metal"
	ColumnPrice    = "precio"
	ColumnStock    = "stock"
)

// InventoryColumns is the column list selected for every inventory statement
var InventoryColumns = []string{
	ColumnID,
	ColumnName,
	ColumnCategory,
	ColumnMetal,
	ColumnPrice,
	ColumnStock,
}

// Sort directions
const (
	SortAscending  = "ASC"
	SortDescending = "DESC"
)

// Listing defaults
const (
	DefaultLimit   = 10
	DefaultPage    = 1
	DefaultOrderBy = ColumnPrice + SortSeparator + SortDescending

	// SortSeparator splits order_by into column and direction (precio_DESC)
	SortSeparator = "_"
)

// ItemHrefPrefix is the path prefix of item link descriptors
const ItemHrefPrefix = "/items/item/"

// ItemHref builds the link target for an item id
func ItemHref(id int) string {
	return fmt.Sprintf("%s%d", ItemHrefPrefix, id)
}
