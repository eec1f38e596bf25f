package app

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/riskibarqy/tennis-tracker/internal/platform/logging"
	"github.com/riskibarqy/tennis-tracker/internal/usecase"
	"github.com/robfig/cron/v3"
)

type warmer interface {
	Warm(ctx context.Context) (usecase.WarmupResult, error)
}

// Scheduler refreshes cached feed data on a cron schedule. Overlapping runs
// are skipped.
type Scheduler struct {
	cron   *cron.Cron
	warmer warmer
	logger *logging.Logger

	running atomic.Bool
	initial sync.WaitGroup

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

func NewScheduler(spec string, w warmer, logger *logging.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = logging.Default()
	}

	cl := cronLogger{logger: logger}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		warmer: w,
		logger: logger,
		ctx:    context.Background(),
	}

	if _, err := s.cron.AddFunc(spec, s.runOnce); err != nil {
		return nil, fmt.Errorf("schedule cache warmer %q: %w", spec, err)
	}
	return s, nil
}

// Start runs one warmup immediately and then follows the schedule. Jobs
// inherit ctx so cancelling it aborts in-flight upstream calls.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	s.initial.Add(1)
	go func() {
		defer s.initial.Done()
		s.runOnce()
	}()
	s.cron.Start()
}

// Stop waits for the startup warmup and any scheduled job to finish. When ctx
// expires first, the running warmup is cancelled and Stop waits for it to
// return.
func (s *Scheduler) Stop(ctx context.Context) {
	cronDone := s.cron.Stop()
	done := make(chan struct{})
	go func() {
		<-cronDone.Done()
		s.initial.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Warn("cache warmer did not stop in time, cancelling")
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
	<-done
}

func (s *Scheduler) runOnce() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	if ctx.Err() != nil {
		return
	}
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Debug("cache warmup already running, skipping")
		return
	}
	defer s.running.Store(false)

	if _, err := s.warmer.Warm(ctx); err != nil {
		s.logger.ErrorContext(ctx, "cache warmup failed", "error", err)
	}
}

// cronLogger routes robfig/cron's logr-style output into zap.
type cronLogger struct {
	logger *logging.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	args := append([]interface{}{"error", err}, keysAndValues...)
	l.logger.Error("cron: "+msg, args...)
}
