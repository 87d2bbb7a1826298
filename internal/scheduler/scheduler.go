// Package scheduler runs the periodic translation cache sweep. Cache expiry
// is advisory on the read path; this is the reaper that actually removes
// expired entries.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/wqy7711/e-novel-api/internal/logger"
	"github.com/wqy7711/e-novel-api/internal/repository"
)

type Sweeper struct {
	translations repository.TranslationRepository
	interval     time.Duration
	stopCh       chan struct{}
	wg           sync.WaitGroup
}

func NewSweeper(translations repository.TranslationRepository, interval time.Duration) *Sweeper {
	return &Sweeper{
		translations: translations,
		interval:     interval,
		stopCh:       make(chan struct{}),
	}
}

func (s *Sweeper) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("sweeper started", "module", "scheduler", "action", "sweep", "resource", "translation", "result", "ok", "interval_ms", s.interval.Milliseconds())
}

func (s *Sweeper) Stop() {
	close(s.stopCh)
	s.wg.Wait()
	logger.Info("sweeper stopped", "module", "scheduler", "action", "sweep", "resource", "translation", "result", "ok")
}

func (s *Sweeper) run() {
	defer s.wg.Done()

	// Run immediately on start
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	deleted, err := s.translations.DeleteExpired(ctx, time.Now())
	if err != nil {
		logger.Error("translation sweep failed", "module", "scheduler", "action", "sweep", "resource", "translation", "result", "failed", "error", err)
		return
	}
	if deleted > 0 {
		logger.Info("expired translations removed", "module", "scheduler", "action", "sweep", "resource", "translation", "result", "ok", "deleted", deleted)
	}
}
