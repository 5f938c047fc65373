package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRootCommands(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "migrate")
}

func TestMigrateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", path)
	t.Setenv("APP_ENV", "test")

	root := newRootCmd()
	root.SetArgs([]string{"migrate", "--foreign-keys=false"})
	require.NoError(t, root.ExecuteContext(context.Background()))

	database, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, table := range []string{"users", "workshops", "goods", "contracts", "orders"} {
		assert.True(t, database.Migrator().HasTable(table), table)
	}
}

func TestMigrateCommandRequiresDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")

	root := newRootCmd()
	root.SetArgs([]string{"migrate"})
	assert.ErrorContains(t, root.ExecuteContext(context.Background()), "DB_DSN is required")
}
