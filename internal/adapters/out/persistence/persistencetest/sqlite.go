// Package persistencetest provides database fixtures for tests of packages
// that depend on the persistence adapter.
package persistencetest

import (
	"testing"

	"ordering/internal/adapters/out/persistence"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewSQLiteDB opens a private, migrated in-memory SQLite database with
// foreign keys enforced. It is closed when the test ends.
func NewSQLiteDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := persistence.Open(persistence.Config{Driver: persistence.DriverSQLite}, nil)
	require.NoError(tb, err)
	require.NoError(tb, persistence.Migrate(db))

	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
