package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wqy7711/e-novel-api/internal/logger"
	"github.com/wqy7711/e-novel-api/internal/model"
	"github.com/wqy7711/e-novel-api/internal/repository"
	"github.com/wqy7711/e-novel-api/internal/snowflake"
)

type NovelListParams struct {
	Author    *string
	Genre     *string
	Published *bool
}

// NovelInput carries the attributes for a new novel.
type NovelInput struct {
	Title       string
	Author      string
	Description string
	Genre       string
	Published   bool
	PageCount   int
	Rating      float64
}

type NovelService interface {
	List(ctx context.Context, params NovelListParams) ([]model.Novel, error)
	GetByID(ctx context.Context, novelID string) (model.Novel, error)
	Create(ctx context.Context, input NovelInput) (model.Novel, error)
	// Update applies a field delta. Changing any translatable text field
	// invalidates the novel's cached translations.
	Update(ctx context.Context, novelID string, delta repository.NovelDelta) (model.Novel, error)
}

type novelService struct {
	novels       repository.NovelRepository
	translations repository.TranslationRepository
}

func NewNovelService(novels repository.NovelRepository, translations repository.TranslationRepository) NovelService {
	return &novelService{
		novels:       novels,
		translations: translations,
	}
}

func (s *novelService) List(ctx context.Context, params NovelListParams) ([]model.Novel, error) {
	filter := repository.NovelListFilter{
		Author:    params.Author,
		Genre:     params.Genre,
		Published: params.Published,
	}
	return s.novels.List(ctx, filter)
}

func (s *novelService) GetByID(ctx context.Context, novelID string) (model.Novel, error) {
	novel, err := s.novels.GetByID(ctx, novelID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Novel{}, ErrNotFound
		}
		return model.Novel{}, err
	}
	return novel, nil
}

func (s *novelService) Create(ctx context.Context, input NovelInput) (model.Novel, error) {
	if input.Title == "" {
		return model.Novel{}, fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if input.Author == "" {
		return model.Novel{}, fmt.Errorf("%w: author is required", ErrInvalid)
	}

	novel := model.Novel{
		NovelID:     snowflake.NextString(),
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
		Genre:       input.Genre,
		Published:   input.Published,
		PageCount:   input.PageCount,
		Rating:      input.Rating,
	}

	if err := s.novels.Create(ctx, novel); err != nil {
		return model.Novel{}, err
	}
	logger.Info("novel created", "module", "service", "action", "create", "resource", "novel", "result", "ok", "novel_id", novel.NovelID)
	return s.novels.GetByID(ctx, novel.NovelID)
}

func (s *novelService) Update(ctx context.Context, novelID string, delta repository.NovelDelta) (model.Novel, error) {
	if delta.Empty() {
		return model.Novel{}, fmt.Errorf("%w: no valid fields to update", ErrInvalid)
	}

	if _, err := s.novels.GetByID(ctx, novelID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Novel{}, ErrNotFound
		}
		return model.Novel{}, err
	}

	if err := s.novels.Update(ctx, novelID, delta); err != nil {
		return model.Novel{}, err
	}

	// Stale translations only cost a future cache miss, so invalidation
	// failures do not fail the update.
	if delta.TouchesText() {
		if err := s.translations.DeleteByNovelID(ctx, novelID); err != nil {
			logger.Warn("translation cache invalidation failed", "module", "service", "action", "delete", "resource", "translation", "result", "failed", "novel_id", novelID, "error", err)
		}
	}

	return s.novels.GetByID(ctx, novelID)
}
