package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/bidbook/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a private, fully migrated in-memory store that is closed
// when the test ends.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err, "opening in-memory store")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
