package repository

import (
	"context"
	"strings"
	"time"

	"github.com/wqy7711/e-novel-api/internal/model"
	"github.com/wqy7711/e-novel-api/internal/snowflake"
)

// TranslationRepository is the persistent translation cache. Lookups do not
// filter on expires_at: expiry is advisory, enforced by DeleteExpired sweeps,
// so a reader may briefly observe a logically expired row.
type TranslationRepository interface {
	// GetBatch fetches the cached entries for the given translation keys in a
	// single query. Keys without a cached entry are absent from the result.
	GetBatch(ctx context.Context, novelID string, keys []string) (map[string]model.Translation, error)
	// Save upserts an entry for (novel id, translation key).
	Save(ctx context.Context, t model.Translation) error
	// DeleteByNovelID drops all cached translations for a novel.
	DeleteByNovelID(ctx context.Context, novelID string) error
	// DeleteExpired reaps entries whose expiry is at or before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type translationRepository struct {
	db dbtx
}

func NewTranslationRepository(db dbtx) TranslationRepository {
	return &translationRepository{db: db}
}

func (r *translationRepository) GetBatch(ctx context.Context, novelID string, keys []string) (map[string]model.Translation, error) {
	result := make(map[string]model.Translation, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	placeholders := strings.Repeat("?, ", len(keys)-1) + "?"
	args := make([]any, 0, len(keys)+1)
	args = append(args, novelID)
	for _, key := range keys {
		args = append(args, key)
	}

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, novel_id, translation_key, translated_text, source_language, target_language, original_text, created_at, expires_at
		 FROM translations WHERE novel_id = ? AND translation_key IN (`+placeholders+`)`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var t model.Translation
		var createdAt, expiresAt string

		err := rows.Scan(
			&t.ID, &t.NovelID, &t.TranslationKey, &t.TranslatedText,
			&t.SourceLanguage, &t.TargetLanguage, &t.OriginalText,
			&createdAt, &expiresAt,
		)
		if err != nil {
			return nil, err
		}

		t.CreatedAt, _ = parseTime(createdAt)
		t.ExpiresAt, _ = parseTime(expiresAt)
		result[t.TranslationKey] = t
	}
	return result, rows.Err()
}

func (r *translationRepository) Save(ctx context.Context, t model.Translation) error {
	id := snowflake.NextID()

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO translations (id, novel_id, translation_key, translated_text, source_language, target_language, original_text, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(novel_id, translation_key) DO UPDATE SET
		   translated_text = excluded.translated_text,
		   source_language = excluded.source_language,
		   target_language = excluded.target_language,
		   original_text = excluded.original_text,
		   created_at = excluded.created_at,
		   expires_at = excluded.expires_at`,
		id, t.NovelID, t.TranslationKey, t.TranslatedText,
		t.SourceLanguage, t.TargetLanguage, t.OriginalText,
		formatTime(t.CreatedAt), formatTime(t.ExpiresAt),
	)
	return err
}

func (r *translationRepository) DeleteByNovelID(ctx context.Context, novelID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM translations WHERE novel_id = ?`, novelID)
	return err
}

func (r *translationRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM translations WHERE expires_at <= ?`, formatTime(now))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
