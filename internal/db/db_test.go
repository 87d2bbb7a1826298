package db_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wqy7711/e-novel-api/internal/db"
)

func TestBuildDSN(t *testing.T) {
	dsn := db.BuildDSN("/tmp/novels.db")

	require.Contains(t, dsn, "file:/tmp/novels.db?")
	require.Contains(t, dsn, "journal_mode%28WAL%29")
	require.Contains(t, dsn, "foreign_keys%28ON%29")
	require.Contains(t, dsn, "busy_timeout%2830000%29")
	require.Contains(t, dsn, "synchronous%28NORMAL%29")
}

func TestOpenMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "novels.db")

	conn, err := db.Open(path)
	require.NoError(t, err)
	defer conn.Close()

	for _, table := range []string{"novels", "translations"} {
		var name string
		err := conn.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s must exist after Open", table)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "novels.db")

	conn, err := db.Open(path)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	// Reopening an existing database must not fail on the migrations.
	conn, err = db.Open(path)
	require.NoError(t, err)
	require.NoError(t, conn.Close())
}
