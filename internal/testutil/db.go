package testutil

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nurpe/factory-records/internal/config"
	"github.com/nurpe/factory-records/internal/db"
)

// NewTestDB opens a migrated in-memory sqlite store that is closed when t ends.
func NewTestDB(t testing.TB) *gorm.DB {
	return NewTestDBWithForeignKeys(t, true)
}

func NewTestDBWithForeignKeys(t testing.TB, foreignKeys bool) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DB: config.DBConfig{
			Driver:      config.DriverSQLite,
			DSN:         "file::memory:",
			AutoMigrate: true,
			ForeignKeys: foreignKeys,
		},
	}
	database, err := db.New(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(database) })
	return database
}
