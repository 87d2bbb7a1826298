package db

import (
	"database/sql"
	"fmt"
)

// novels holds the catalog; novel_id is assigned by the API (string form of a
// snowflake ID) and immutable after creation.
//
// translations is the persistent translation cache. One live row per
// (novel_id, translation_key) where translation_key is "{field}_{language}".
// Rows carry the original source text for audit and an absolute expiry;
// expired rows are reaped by the background sweeper, not filtered on read.
const schema = `
CREATE TABLE IF NOT EXISTS novels (
  novel_id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  author TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  genre TEXT NOT NULL DEFAULT '',
  published INTEGER NOT NULL DEFAULT 0,
  page_count INTEGER NOT NULL DEFAULT 0,
  rating REAL NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_novels_author ON novels(author);
CREATE INDEX IF NOT EXISTS idx_novels_genre ON novels(genre);

CREATE TABLE IF NOT EXISTS translations (
  id INTEGER PRIMARY KEY,
  novel_id TEXT NOT NULL,
  translation_key TEXT NOT NULL,
  translated_text TEXT NOT NULL,
  source_language TEXT NOT NULL,
  target_language TEXT NOT NULL,
  original_text TEXT NOT NULL,
  created_at TEXT NOT NULL,
  expires_at TEXT NOT NULL,
  UNIQUE (novel_id, translation_key),
  FOREIGN KEY (novel_id) REFERENCES novels(novel_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_translations_expires_at ON translations(expires_at);
`

// Migrate applies the schema. Statements are idempotent so this runs on every
// startup.
func Migrate(conn *sql.DB) error {
	if _, err := conn.Exec(schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
