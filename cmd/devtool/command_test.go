package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JoyasAPI_Go/internal/domain"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(&WaitForDBCommand{})
	r.Register(&MigrateCommand{})
	r.Register(&InventoryCommand{})

	cmds := r.List()
	require.Len(t, cmds, 3)
	assert.Equal(t, "inventory", cmds[0].Name())
	assert.Equal(t, "migrate", cmds[1].Name())
	assert.Equal(t, "wait-for-db", cmds[2].Name())

	_, ok := r.Get("deploy")
	assert.False(t, ok)
}

func TestMigrateCommand_RequiresSubcommand(t *testing.T) {
	err := (&MigrateCommand{}).Run(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subcommand required")
}

func TestWaitForDBCommand_RejectsBadAttempts(t *testing.T) {
	for _, arg := range []string{"zero", "0", "-3"} {
		err := (&WaitForDBCommand{}).Run([]string{arg})
		require.Error(t, err, arg)
		assert.Contains(t, err.Error(), "positive integer")
	}
}

func TestStockByCategory(t *testing.T) {
	items := []domain.InventoryItem{
		{Category: "collar", Stock: 2},
		{Category: "aros", Stock: 4},
		{Category: "aros", Stock: 2},
		{Category: "anillo", Stock: 0},
	}

	got := stockByCategory(items)

	assert.Equal(t, []categoryStock{
		{category: "anillo", stock: 0},
		{category: "aros", stock: 6},
		{category: "collar", stock: 2},
	}, got)
	assert.Empty(t, stockByCategory(nil))
}
