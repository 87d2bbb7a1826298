package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wqy7711/e-novel-api/internal/model"
	"github.com/wqy7711/e-novel-api/internal/scheduler"
)

type sweepCounter struct {
	calls atomic.Int64
}

func (s *sweepCounter) GetBatch(ctx context.Context, novelID string, keys []string) (map[string]model.Translation, error) {
	return nil, nil
}

func (s *sweepCounter) Save(ctx context.Context, t model.Translation) error { return nil }

func (s *sweepCounter) DeleteByNovelID(ctx context.Context, novelID string) error { return nil }

func (s *sweepCounter) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	s.calls.Add(1)
	return 0, nil
}

func TestSweeperSweepsImmediatelyOnStart(t *testing.T) {
	counter := &sweepCounter{}
	sweeper := scheduler.NewSweeper(counter, time.Hour)

	sweeper.Start()
	sweeper.Stop()

	require.GreaterOrEqual(t, counter.calls.Load(), int64(1))
}

func TestSweeperSweepsOnInterval(t *testing.T) {
	counter := &sweepCounter{}
	sweeper := scheduler.NewSweeper(counter, 10*time.Millisecond)

	sweeper.Start()
	require.Eventually(t, func() bool {
		return counter.calls.Load() >= 3
	}, time.Second, 5*time.Millisecond)
	sweeper.Stop()
}
