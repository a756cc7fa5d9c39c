package inventory

import "github.com/osse101/JoyasAPI_Go/internal/domain"

// Shape builds the hypermedia envelope for one page of items.
// Totals cover only the rows passed in, not the whole table.
func Shape(items []domain.InventoryItem) domain.ListingEnvelope {
	env := domain.ListingEnvelope{
		Results: make([]domain.ItemLink, 0, len(items)),
	}
	for _, item := range items {
		env.TotalStock += item.Stock
		env.Results = append(env.Results, domain.ItemLink{
			Name: item.Name,
			Href: domain.ItemHref(item.ID),
		})
	}
	env.TotalItems = len(env.Results)
	return env
}
