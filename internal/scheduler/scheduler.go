package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/driveahead/internal/platform/logging"
	"github.com/riskibarqy/driveahead/internal/usecase"
	"github.com/robfig/cron/v3"
)

// Warmer refreshes the upstream cache.
type Warmer interface {
	Warm(ctx context.Context) (usecase.WarmResult, error)
}

// Scheduler runs cache warm-ups on a cron schedule.
type Scheduler struct {
	cron       *cron.Cron
	warmer     Warmer
	logger     *logging.Logger
	jobTimeout time.Duration

	mu        sync.Mutex
	isRunning bool
	entryID   cron.EntryID
	scheduled bool
}

func New(warmer Warmer, logger *logging.Logger) *Scheduler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		warmer:     warmer,
		logger:     logger,
		jobTimeout: time.Minute,
	}
}

// ScheduleWarm registers the warm job. An empty spec leaves the scheduler idle.
func (s *Scheduler) ScheduleWarm(spec string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}
	if spec == "" {
		s.logger.Info("cache warm disabled", "reason", "CACHE_WARM_SCHEDULE empty")
		return nil
	}

	entryID, err := s.cron.AddFunc(spec, func() { s.RunOnce(context.Background()) })
	if err != nil {
		return fmt.Errorf("add cache warm job %q: %w", spec, err)
	}
	if s.scheduled {
		s.cron.Remove(s.entryID)
	}
	s.entryID = entryID
	s.scheduled = true
	s.logger.Info("cache warm scheduled", "spec", spec)
	return nil
}

// RunOnce performs a single warm-up bounded by the job timeout.
func (s *Scheduler) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.jobTimeout)
	defer cancel()

	result, err := s.warmer.Warm(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "cache warm failed", "error", err)
		return
	}
	if result.FailedCount > 0 {
		s.logger.WarnContext(ctx, "cache warm partially failed",
			"success", result.SuccessCount,
			"failed", result.FailedCount,
		)
	}
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning || !s.scheduled {
		return
	}
	s.cron.Start()
	s.isRunning = true
	s.logger.Info("scheduler started")
}

// Stop halts the cron loop and waits for a running job until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}
	s.isRunning = false

	select {
	case <-s.cron.Stop().Done():
		s.logger.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("stop scheduler: %w", ctx.Err())
	}
}

func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

// NextRun is zero when nothing is scheduled or the loop is stopped.
func (s *Scheduler) NextRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning || !s.scheduled {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Next
}
