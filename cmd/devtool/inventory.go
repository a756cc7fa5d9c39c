package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/osse101/JoyasAPI_Go/internal/database/postgres"
	"github.com/osse101/JoyasAPI_Go/internal/domain"
	"github.com/osse101/JoyasAPI_Go/internal/inventory"
)

// InventoryCommand prints what the API would serve, through the same service and repository
type InventoryCommand struct{}

func (c *InventoryCommand) Name() string {
	return "inventory"
}

func (c *InventoryCommand) Description() string {
	return "Print inventory rows and stock per category [categoria] [metal]"
}

func (c *InventoryCommand) Run(args []string) error {
	var filter domain.FilterQuery
	if len(args) > 0 && args[0] != "" {
		filter.Category = &args[0]
	}
	if len(args) > 1 && args[1] != "" {
		filter.Metal = &args[1]
	}

	ctx := context.Background()
	pool, err := connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	svc := inventory.NewService(postgres.NewInventoryRepository(pool))
	items, err := svc.FilterItems(ctx, filter)
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("%d items", len(items)))
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNOMBRE\tCATEGORIA\tMETAL\tPRECIO\tSTOCK")
	for _, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\n", it.ID, it.Name, it.Category, it.Metal, it.Price, it.Stock)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	PrintHeader("Stock by category")
	for _, line := range stockByCategory(items) {
		PrintInfo("%-12s %d", line.category, line.stock)
	}
	return nil
}

type categoryStock struct {
	category string
	stock    int
}

// stockByCategory sums stock per category, sorted by category name
func stockByCategory(items []domain.InventoryItem) []categoryStock {
	totals := make(map[string]int)
	for _, it := range items {
		totals[it.Category] += it.Stock
	}

	out := make([]categoryStock, 0, len(totals))
	for cat, stock := range totals {
		out = append(out, categoryStock{category: cat, stock: stock})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].category < out[j].category })
	return out
}
