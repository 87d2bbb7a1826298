package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wqy7711/e-novel-api/internal/model"
	"github.com/wqy7711/e-novel-api/internal/repository"
	"github.com/wqy7711/e-novel-api/internal/repository/testutil"
)

func cacheEntry(novelID, key, text string, ttl time.Duration) model.Translation {
	now := time.Now().UTC()
	return model.Translation{
		NovelID:        novelID,
		TranslationKey: key,
		TranslatedText: text,
		SourceLanguage: "en",
		TargetLanguage: "fr",
		OriginalText:   "Hello",
		CreatedAt:      now,
		ExpiresAt:      now.Add(ttl),
	}
}

func TestTranslationRepository_SaveAndGetBatch(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(conn)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, cacheEntry("1", "title_fr", "Bonjour", time.Hour)))
	require.NoError(t, repo.Save(ctx, cacheEntry("1", "description_fr", "Une histoire", time.Hour)))
	require.NoError(t, repo.Save(ctx, cacheEntry("2", "title_fr", "Salut", time.Hour)))

	got, err := repo.GetBatch(ctx, "1", []string{"title_fr", "description_fr", "genre_fr"})
	require.NoError(t, err)
	require.Len(t, got, 2, "uncached keys are absent, other novels' entries invisible")
	require.Equal(t, "Bonjour", got["title_fr"].TranslatedText)
	require.Equal(t, "Une histoire", got["description_fr"].TranslatedText)
	require.Equal(t, "en", got["title_fr"].SourceLanguage)
	require.Equal(t, "fr", got["title_fr"].TargetLanguage)
	require.Equal(t, "Hello", got["title_fr"].OriginalText)
}

func TestTranslationRepository_GetBatchEmptyKeys(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(conn)

	got, err := repo.GetBatch(context.Background(), "1", nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestTranslationRepository_SaveUpserts(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(conn)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, cacheEntry("1", "title_fr", "Bonjour", time.Hour)))
	require.NoError(t, repo.Save(ctx, cacheEntry("1", "title_fr", "Salut", 2*time.Hour)))

	got, err := repo.GetBatch(ctx, "1", []string{"title_fr"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Salut", got["title_fr"].TranslatedText)

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM translations`).Scan(&count))
	require.Equal(t, 1, count, "upsert must not duplicate the row")
}

func TestTranslationRepository_ExpiredEntriesStillReadable(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(conn)
	ctx := context.Background()

	// Expiry is advisory: reads return the row until a sweep removes it.
	require.NoError(t, repo.Save(ctx, cacheEntry("1", "title_fr", "Bonjour", -time.Hour)))

	got, err := repo.GetBatch(ctx, "1", []string{"title_fr"})
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestTranslationRepository_DeleteExpired(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(conn)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, cacheEntry("1", "title_fr", "Bonjour", -time.Hour)))
	require.NoError(t, repo.Save(ctx, cacheEntry("1", "description_fr", "Une histoire", -time.Minute)))
	require.NoError(t, repo.Save(ctx, cacheEntry("1", "genre_fr", "Drame", time.Hour)))

	deleted, err := repo.DeleteExpired(ctx, time.Now())
	require.NoError(t, err)
	require.EqualValues(t, 2, deleted)

	got, err := repo.GetBatch(ctx, "1", []string{"title_fr", "description_fr", "genre_fr"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Contains(t, got, "genre_fr")
}

func TestTranslationRepository_DeleteByNovelID(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(conn)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, cacheEntry("1", "title_fr", "Bonjour", time.Hour)))
	require.NoError(t, repo.Save(ctx, cacheEntry("1", "description_fr", "Une histoire", time.Hour)))
	require.NoError(t, repo.Save(ctx, cacheEntry("2", "title_fr", "Salut", time.Hour)))

	require.NoError(t, repo.DeleteByNovelID(ctx, "1"))

	gone, err := repo.GetBatch(ctx, "1", []string{"title_fr", "description_fr"})
	require.NoError(t, err)
	require.Empty(t, gone)

	kept, err := repo.GetBatch(ctx, "2", []string{"title_fr"})
	require.NoError(t, err)
	require.Len(t, kept, 1)
}

func TestTranslationRepository_TimestampsRoundTrip(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(conn)
	ctx := context.Background()

	entry := cacheEntry("1", "title_fr", "Bonjour", 30*24*time.Hour)
	require.NoError(t, repo.Save(ctx, entry))

	got, err := repo.GetBatch(ctx, "1", []string{"title_fr"})
	require.NoError(t, err)
	require.True(t, got["title_fr"].CreatedAt.Equal(entry.CreatedAt))
	require.True(t, got["title_fr"].ExpiresAt.Equal(entry.ExpiresAt))
}
