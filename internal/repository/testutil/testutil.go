// Package testutil provides shared sqlite fixtures for repository tests.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/wqy7711/e-novel-api/internal/db"
	"github.com/wqy7711/e-novel-api/internal/model"
	"github.com/wqy7711/e-novel-api/internal/snowflake"
)

func init() {
	// Repositories mint snowflake IDs on write.
	if err := snowflake.Init(1); err != nil {
		panic(err)
	}
}

// NewTestDB opens a migrated throwaway database for one test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// SeedNovel inserts a novel directly, bypassing the repository under test.
func SeedNovel(t *testing.T, conn *sql.DB, n model.Novel) {
	t.Helper()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := conn.Exec(
		`INSERT INTO novels (novel_id, title, author, description, genre, published, page_count, rating, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.NovelID, n.Title, n.Author, n.Description, n.Genre, boolToInt(n.Published), n.PageCount, n.Rating, now, now,
	)
	if err != nil {
		t.Fatalf("seed novel: %v", err)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
