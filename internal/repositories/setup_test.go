package repositories

import (
	"context"
	"testing"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/femwell/femwell-backend/internal/storage"
)

// setupSQLite opens a fresh in-memory database with the schema applied but
// no seed data, so each test starts from empty tables and id 1.
func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := storage.Open(context.Background(), storage.DriverSQLite, ":memory:", 0, 0)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, storage.Bootstrap(context.Background(), db))
	return db
}

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }
