package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/driveahead/internal/domain/race"
	"github.com/riskibarqy/driveahead/internal/domain/raceresult"
	"github.com/riskibarqy/driveahead/internal/domain/standing"
	"github.com/sourcegraph/conc"
)

// Overview is everything the dashboard renders on first load.
type Overview struct {
	NextRace             race.Race
	Schedule             []race.Race
	DriverStandings      []standing.Driver
	ConstructorStandings []standing.Constructor
	LatestResults        raceresult.ResultSet
	Season               string
}

// Overview reads the independent datasets in parallel.
func (s *StandingsService) Overview(ctx context.Context) Overview {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Overview")
	defer span.End()

	out := Overview{Season: s.CurrentSeason()}

	var wg conc.WaitGroup
	wg.Go(func() { out.Schedule = s.UpcomingSchedule(ctx) })
	wg.Go(func() { out.DriverStandings = s.DriverStandings(ctx) })
	wg.Go(func() { out.ConstructorStandings = s.ConstructorStandings(ctx) })
	wg.Go(func() { out.LatestResults = s.LatestRaceResults(ctx) })
	wg.Wait()

	if len(out.Schedule) > 0 {
		out.NextRace = out.Schedule[0]
	} else {
		out.NextRace = s.NextRace(ctx)
	}
	return out
}

type WarmTaskResult struct {
	Resource   string
	Status     string
	Message    string
	DurationMs int64
}

type WarmResult struct {
	Tasks        []WarmTaskResult
	SuccessCount int
	FailedCount  int
	DurationMs   int64
}

const (
	warmStatusSuccess = "success"
	warmStatusFailed  = "failed"
)

type warmTask struct {
	resource string
	run      func(ctx context.Context) error
}

// Warm prefetches every live resource so the first request of a cache bucket is a hit.
// Failures are reported per task; only worker pool errors are returned.
func (s *StandingsService) Warm(ctx context.Context) (WarmResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Warm")
	defer span.End()

	started := time.Now()
	tasks := s.warmTasks()

	results := make(chan WarmTaskResult, len(tasks))
	var failedCount atomic.Int32

	pool, err := ants.NewPool(s.cfg.WarmWorkers)
	if err != nil {
		return WarmResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := WarmTaskResult{Resource: task.resource, Status: warmStatusSuccess}
			if err := task.run(ctx); err != nil {
				failedCount.Add(1)
				row.Status = warmStatusFailed
				row.Message = err.Error()
			}
			row.DurationMs = time.Since(start).Milliseconds()
			results <- row
		}); err != nil {
			workers.Done()
			return WarmResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	out := WarmResult{Tasks: make([]WarmTaskResult, 0, len(tasks))}
	for row := range results {
		out.Tasks = append(out.Tasks, row)
	}
	sort.SliceStable(out.Tasks, func(i, j int) bool { return out.Tasks[i].Resource < out.Tasks[j].Resource })

	out.FailedCount = int(failedCount.Load())
	out.SuccessCount = len(out.Tasks) - out.FailedCount
	out.DurationMs = time.Since(started).Milliseconds()

	s.metrics.ObserveWarm(out.FailedCount)
	s.logger.InfoContext(ctx, "cache warm finished",
		"success", out.SuccessCount,
		"failed", out.FailedCount,
		"duration_ms", out.DurationMs,
	)
	return out, nil
}

func (s *StandingsService) warmTasks() []warmTask {
	season := s.CurrentSeason()
	tasks := []warmTask{
		{resource: season, run: func(ctx context.Context) error {
			_, err := s.provider.FetchSeasonRaces(ctx, season)
			return err
		}},
		{resource: SeasonCurrent + "/driverStandings", run: func(ctx context.Context) error {
			_, err := s.provider.FetchDriverStandings(ctx, SeasonCurrent)
			return err
		}},
		{resource: SeasonCurrent + "/constructorStandings", run: func(ctx context.Context) error {
			_, err := s.provider.FetchConstructorStandings(ctx, SeasonCurrent)
			return err
		}},
		{resource: SeasonCurrent + "/drivers", run: func(ctx context.Context) error {
			_, err := s.provider.FetchDrivers(ctx, SeasonCurrent)
			return err
		}},
	}
	if s.cfg.LiveResultsEnabled {
		tasks = append(tasks, warmTask{resource: SeasonCurrent + "/last/results", run: func(ctx context.Context) error {
			_, err := s.provider.FetchLatestRaceResults(ctx, SeasonCurrent)
			return err
		}})
	}
	return tasks
}
