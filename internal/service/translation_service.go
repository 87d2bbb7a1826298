package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wqy7711/e-novel-api/internal/logger"
	"github.com/wqy7711/e-novel-api/internal/model"
	"github.com/wqy7711/e-novel-api/internal/repository"
	"github.com/wqy7711/e-novel-api/internal/service/translate"
)

// TranslationOutcome is the resolution of one requested field.
type TranslationOutcome struct {
	Field          string
	Text           string
	SourceLanguage string
	TargetLanguage string
	FromCache      bool
}

// TranslationResult is the assembled translation of a novel. Outcomes keep
// the request's field order; fields absent or empty on the novel produce no
// outcome. SourceLanguage/TargetLanguage come from the first outcome resolved
// by a fresh provider call, falling back to the configured source language
// and the requested target when every field was served from cache.
type TranslationResult struct {
	Novel            model.Novel
	Outcomes         []TranslationOutcome
	SourceLanguage   string
	TargetLanguage   string
	TranslatedFields []string
}

type TranslationService interface {
	// Translate resolves the requested fields of a novel into the target
	// language, via cache where possible and the provider otherwise.
	Translate(ctx context.Context, novelID, language, rawFields string) (TranslationResult, error)
}

type translationService struct {
	novels       repository.NovelRepository
	translations repository.TranslationRepository
	provider     translate.Provider
	limiter      *translate.RateLimiter
	sourceLang   string
	cacheTTL     time.Duration
}

// NewTranslationService creates the translation orchestrator. The provider
// and rate limiter are process-wide singletons shared by reference.
func NewTranslationService(
	novels repository.NovelRepository,
	translations repository.TranslationRepository,
	provider translate.Provider,
	limiter *translate.RateLimiter,
	sourceLang string,
	cacheTTL time.Duration,
) TranslationService {
	if sourceLang == "" {
		sourceLang = "en"
	}
	if cacheTTL <= 0 {
		cacheTTL = 30 * 24 * time.Hour
	}
	return &translationService{
		novels:       novels,
		translations: translations,
		provider:     provider,
		limiter:      limiter,
		sourceLang:   sourceLang,
		cacheTTL:     cacheTTL,
	}
}

func (s *translationService) Translate(ctx context.Context, novelID, language, rawFields string) (TranslationResult, error) {
	if novelID == "" {
		return TranslationResult{}, fmt.Errorf("%w: missing novel id", ErrInvalid)
	}
	if language == "" {
		return TranslationResult{}, fmt.Errorf("%w: missing language", ErrInvalid)
	}
	fields, err := SelectFields(rawFields)
	if err != nil {
		return TranslationResult{}, err
	}

	novel, err := s.novels.GetByID(ctx, novelID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TranslationResult{}, ErrNotFound
		}
		return TranslationResult{}, err
	}

	// One batched lookup across all requested fields, regardless of count.
	keys := make([]string, len(fields))
	for i, field := range fields {
		keys[i] = model.TranslationKey(field, language)
	}
	cached, err := s.translations.GetBatch(ctx, novelID, keys)
	if err != nil {
		return TranslationResult{}, err
	}

	// Resolve fields in request order. Cache misses go to the provider
	// concurrently; the outcomes slice keeps them in input order so the
	// metadata adoption below stays deterministic.
	outcomes := make([]*TranslationOutcome, len(fields))
	g, gctx := errgroup.WithContext(ctx)
	misses := 0

	for i, field := range fields {
		text, ok := novel.TextField(field)
		if !ok || text == "" {
			continue
		}

		if entry, hit := cached[keys[i]]; hit {
			outcomes[i] = &TranslationOutcome{
				Field:          field,
				Text:           entry.TranslatedText,
				SourceLanguage: entry.SourceLanguage,
				TargetLanguage: entry.TargetLanguage,
				FromCache:      true,
			}
			continue
		}

		misses++
		i, field := i, field
		key := keys[i]
		g.Go(func() error {
			if s.limiter != nil {
				if err := s.limiter.Wait(gctx); err != nil {
					return err
				}
			}

			res, err := s.provider.Translate(gctx, translate.Request{
				Text:           text,
				SourceLanguage: s.sourceLang,
				TargetLanguage: language,
			})
			if err != nil {
				return err
			}

			outcomes[i] = &TranslationOutcome{
				Field:          field,
				Text:           res.TranslatedText,
				SourceLanguage: res.SourceLanguage,
				TargetLanguage: res.TargetLanguage,
			}

			s.persist(ctx, novelID, key, text, res)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// One failed field aborts the whole request; partial translations
		// would be ambiguous to the caller.
		return TranslationResult{}, s.classify(err, language)
	}

	result := TranslationResult{
		Novel:          novel,
		SourceLanguage: s.sourceLang,
		TargetLanguage: language,
	}
	for _, outcome := range outcomes {
		if outcome == nil {
			continue
		}
		result.Outcomes = append(result.Outcomes, *outcome)
		if !slices.Contains(result.TranslatedFields, outcome.Field) {
			result.TranslatedFields = append(result.TranslatedFields, outcome.Field)
		}
	}
	// First fresh provider result wins the response metadata.
	for _, outcome := range result.Outcomes {
		if !outcome.FromCache {
			result.SourceLanguage = outcome.SourceLanguage
			result.TargetLanguage = outcome.TargetLanguage
			break
		}
	}

	logger.Info("translation resolved", "module", "service", "action", "translate", "resource", "novel", "result", "ok",
		"novel_id", novelID, "language", language, "fields", len(fields), "cache_hits", len(result.Outcomes)-misses, "provider_calls", misses)
	return result, nil
}

// persist writes a fresh translation to the cache. The translation has
// already succeeded, so a write failure only costs a future cache miss and
// must not fail the request.
func (s *translationService) persist(ctx context.Context, novelID, key, originalText string, res translate.Result) {
	now := time.Now()
	entry := model.Translation{
		NovelID:        novelID,
		TranslationKey: key,
		TranslatedText: res.TranslatedText,
		SourceLanguage: res.SourceLanguage,
		TargetLanguage: res.TargetLanguage,
		OriginalText:   originalText,
		CreatedAt:      now,
		ExpiresAt:      now.Add(s.cacheTTL),
	}
	if err := s.translations.Save(ctx, entry); err != nil {
		logger.Warn("translation cache write failed", "module", "service", "action", "save", "resource", "translation", "result", "failed",
			"novel_id", novelID, "translation_key", key, "error", err)
	}
}

// classify maps provider failures onto the service error taxonomy. Client
// mistakes (bad language, unsupported pair) surface as ErrInvalid; everything
// else is an upstream failure whose root cause is logged, not echoed.
func (s *translationService) classify(err error, language string) error {
	switch {
	case errors.Is(err, translate.ErrUnsupportedLanguagePair):
		return &UnsupportedLanguageError{Source: s.sourceLang, Target: language}
	case errors.Is(err, translate.ErrInvalidLanguageCode):
		return &InvalidLanguageError{Code: language}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		logger.Error("translation provider call failed", "module", "service", "action", "translate", "resource", "novel", "result", "failed",
			"provider", s.provider.Name(), "error", err)
		return fmt.Errorf("%w: %s provider", ErrTranslate, s.provider.Name())
	}
}
