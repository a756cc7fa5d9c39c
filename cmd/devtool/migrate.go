package main

import (
	"context"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/osse101/JoyasAPI_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply or inspect the bundled inventario migrations (up, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, status")
	}

	ctx := context.Background()
	pool, err := connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch args[0] {
	case "up":
		PrintHeader("Applying migrations...")
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
		return nil
	case "status":
		status, err := database.MigrationStatus(ctx, pool)
		if err != nil {
			return err
		}
		PrintHeader("Migration status")
		for _, s := range status {
			if s.State == goose.StateApplied {
				PrintSuccess("%-40s applied %s", s.Source.Path, s.AppliedAt.Format("2006-01-02 15:04:05"))
			} else {
				PrintInfo("%-40s pending", s.Source.Path)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown migrate subcommand %q: want up or status", args[0])
	}
}
