package repository

import (
	"context"
	"strings"
	"time"

	"github.com/wqy7711/e-novel-api/internal/model"
)

type NovelListFilter struct {
	Author    *string
	Genre     *string
	Published *bool
}

// NovelDelta carries a partial update; nil fields are left untouched.
type NovelDelta struct {
	Title       *string
	Author      *string
	Description *string
	Genre       *string
	Published   *bool
	PageCount   *int
	Rating      *float64
}

// Empty reports whether the delta changes nothing.
func (d NovelDelta) Empty() bool {
	return d.Title == nil && d.Author == nil && d.Description == nil &&
		d.Genre == nil && d.Published == nil && d.PageCount == nil && d.Rating == nil
}

// TouchesText reports whether the delta changes any translatable text field,
// in which case cached translations for the novel are stale.
func (d NovelDelta) TouchesText() bool {
	return d.Title != nil || d.Author != nil || d.Description != nil || d.Genre != nil
}

type NovelRepository interface {
	GetByID(ctx context.Context, novelID string) (model.Novel, error)
	List(ctx context.Context, filter NovelListFilter) ([]model.Novel, error)
	Create(ctx context.Context, novel model.Novel) error
	Update(ctx context.Context, novelID string, delta NovelDelta) error
	Count(ctx context.Context) (int, error)
}

type novelRepository struct {
	db dbtx
}

func NewNovelRepository(db dbtx) NovelRepository {
	return &novelRepository{db: db}
}

func (r *novelRepository) GetByID(ctx context.Context, novelID string) (model.Novel, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT novel_id, title, author, description, genre, published, page_count, rating, created_at, updated_at
		 FROM novels WHERE novel_id = ?`,
		novelID,
	)
	return scanNovel(row)
}

func (r *novelRepository) List(ctx context.Context, filter NovelListFilter) ([]model.Novel, error) {
	query := `SELECT novel_id, title, author, description, genre, published, page_count, rating, created_at, updated_at
		 FROM novels`

	var conditions []string
	var args []any

	if filter.Author != nil {
		conditions = append(conditions, "author = ?")
		args = append(args, *filter.Author)
	}
	if filter.Genre != nil {
		conditions = append(conditions, "genre = ?")
		args = append(args, *filter.Genre)
	}
	if filter.Published != nil {
		conditions = append(conditions, "published = ?")
		args = append(args, boolToInt(*filter.Published))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY novel_id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var novels []model.Novel
	for rows.Next() {
		n, err := scanNovel(rows)
		if err != nil {
			return nil, err
		}
		novels = append(novels, n)
	}
	return novels, rows.Err()
}

func (r *novelRepository) Create(ctx context.Context, novel model.Novel) error {
	now := formatTime(time.Now())
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO novels (novel_id, title, author, description, genre, published, page_count, rating, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		novel.NovelID, novel.Title, novel.Author, novel.Description, novel.Genre,
		boolToInt(novel.Published), novel.PageCount, novel.Rating, now, now,
	)
	return err
}

func (r *novelRepository) Update(ctx context.Context, novelID string, delta NovelDelta) error {
	var sets []string
	var args []any

	set := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if delta.Title != nil {
		set("title", *delta.Title)
	}
	if delta.Author != nil {
		set("author", *delta.Author)
	}
	if delta.Description != nil {
		set("description", *delta.Description)
	}
	if delta.Genre != nil {
		set("genre", *delta.Genre)
	}
	if delta.Published != nil {
		set("published", boolToInt(*delta.Published))
	}
	if delta.PageCount != nil {
		set("page_count", *delta.PageCount)
	}
	if delta.Rating != nil {
		set("rating", *delta.Rating)
	}

	if len(sets) == 0 {
		return nil
	}
	set("updated_at", formatTime(time.Now()))
	args = append(args, novelID)

	_, err := r.db.ExecContext(
		ctx,
		"UPDATE novels SET "+strings.Join(sets, ", ")+" WHERE novel_id = ?",
		args...,
	)
	return err
}

func (r *novelRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM novels`).Scan(&count)
	return count, err
}

func scanNovel(scanner interface{ Scan(dest ...any) error }) (model.Novel, error) {
	var n model.Novel
	var published int
	var createdAt, updatedAt string

	err := scanner.Scan(
		&n.NovelID, &n.Title, &n.Author, &n.Description, &n.Genre,
		&published, &n.PageCount, &n.Rating, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Novel{}, err
	}

	n.Published = published == 1
	n.CreatedAt, _ = parseTime(createdAt)
	n.UpdatedAt, _ = parseTime(updatedAt)
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
