package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/riskibarqy/tennis-tracker/internal/platform/logging"
)

// CacheRefresher reloads cached feed data regardless of its remaining TTL.
type CacheRefresher interface {
	RefreshEventTypes(ctx context.Context) error
	RefreshStandings(ctx context.Context, eventType string) error
}

type WarmupResult struct {
	Succeeded  int
	Failed     int
	DurationMs int64
}

type WarmupService struct {
	refresher CacheRefresher
	workers   int
	logger    *logging.Logger
}

func NewWarmupService(refresher CacheRefresher, workers int, logger *logging.Logger) *WarmupService {
	if logger == nil {
		logger = logging.Default()
	}
	return &WarmupService{refresher: refresher, workers: workers, logger: logger}
}

// Warm refreshes event types and the standings of every ranking type.
// Individual failures are logged and counted, never returned.
func (s *WarmupService) Warm(ctx context.Context) (WarmupResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WarmupService.Warm")
	defer span.End()

	start := time.Now()
	tasks := make([]func(context.Context) error, 0, len(rankingTypes)+1)
	tasks = append(tasks, s.refresher.RefreshEventTypes)
	for _, kind := range rankingTypes {
		eventType := kind.EventType()
		tasks = append(tasks, func(ctx context.Context) error {
			return s.refresher.RefreshStandings(ctx, eventType)
		})
	}

	var succeeded, failed atomic.Int32
	if err := runOnPool(s.workers, len(tasks), func(i int) {
		if err := tasks[i](ctx); err != nil {
			failed.Add(1)
			s.logger.WarnContext(ctx, "cache warmup task failed", "task", i, "error", err)
			return
		}
		succeeded.Add(1)
	}); err != nil {
		return WarmupResult{}, err
	}

	result := WarmupResult{
		Succeeded:  int(succeeded.Load()),
		Failed:     int(failed.Load()),
		DurationMs: time.Since(start).Milliseconds(),
	}
	s.logger.InfoContext(ctx, "cache warmup finished",
		"succeeded", result.Succeeded,
		"failed", result.Failed,
		"duration_ms", result.DurationMs,
	)
	return result, nil
}
