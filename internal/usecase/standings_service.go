package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/driveahead/internal/domain/datasource"
	"github.com/riskibarqy/driveahead/internal/domain/driver"
	"github.com/riskibarqy/driveahead/internal/domain/race"
	"github.com/riskibarqy/driveahead/internal/domain/raceresult"
	"github.com/riskibarqy/driveahead/internal/domain/standing"
	"github.com/riskibarqy/driveahead/internal/platform/logging"
	"github.com/riskibarqy/driveahead/internal/platform/metrics"
)

const (
	datasetSchedule             = "schedule"
	datasetNextRace             = "next_race"
	datasetDriverStandings      = "driver_standings"
	datasetConstructorStandings = "constructor_standings"
	datasetLatestResults        = "latest_results"
	datasetDrivers              = "drivers"

	defaultSeasonStartMonth = 3
	defaultWarmWorkers      = 4
)

// FallbackSource serves the static dataset. Reads must return copies.
type FallbackSource interface {
	Schedule() []race.Race
	DriverStandings() []standing.Driver
	ConstructorStandings() []standing.Constructor
	LatestResults() raceresult.ResultSet
	Drivers() []driver.Driver
}

type StandingsServiceConfig struct {
	// LiveResultsEnabled switches LatestRaceResults from the static result set to the API.
	LiveResultsEnabled bool
	// SeasonStartMonth is the first month that belongs to the new season.
	SeasonStartMonth int
	WarmWorkers      int
	Now              func() time.Time
	Logger           *logging.Logger
	Metrics          *metrics.Registry
}

// StandingsService shapes schedule, standings and results for the API.
// Remote failures never reach the caller; every read has a fallback.
type StandingsService struct {
	provider F1DataProvider
	fallback FallbackSource
	cfg      StandingsServiceConfig
	now      func() time.Time
	logger   *logging.Logger
	metrics  *metrics.Registry
}

func NewStandingsService(provider F1DataProvider, fallback FallbackSource, cfg StandingsServiceConfig) *StandingsService {
	if cfg.SeasonStartMonth < 1 || cfg.SeasonStartMonth > 12 {
		cfg.SeasonStartMonth = defaultSeasonStartMonth
	}
	if cfg.WarmWorkers < 1 {
		cfg.WarmWorkers = defaultWarmWorkers
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &StandingsService{
		provider: provider,
		fallback: fallback,
		cfg:      cfg,
		now:      now,
		logger:   logger,
		metrics:  cfg.Metrics,
	}
}

// CurrentSeason is this year, or last year before the season start month.
func (s *StandingsService) CurrentSeason() string {
	now := s.now().UTC()
	year := now.Year()
	if int(now.Month()) < s.cfg.SeasonStartMonth {
		year--
	}
	return fmt.Sprintf("%d", year)
}

// SeasonRaces lists every race of season. When the season is unavailable it
// tries the current season once; if that fails too the result is empty.
func (s *StandingsService) SeasonRaces(ctx context.Context, season string) ([]race.Race, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.SeasonRaces")
	defer span.End()

	season, err := NormalizeSeason(season)
	if err != nil {
		return nil, err
	}

	items, err := s.fetchRaces(ctx, season)
	if err != nil && season != SeasonCurrent {
		s.logger.WarnContext(ctx, "season races unavailable, trying current season", "season", season, "error", err)
		items, err = s.fetchRaces(ctx, SeasonCurrent)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "season races unavailable", "season", season, "error", err)
		return []race.Race{}, nil
	}

	today := race.Today(s.now())
	out := make([]race.Race, 0, len(items))
	for _, item := range items {
		out = append(out, liveRace(item, today))
	}
	return out, nil
}

// UpcomingSchedule returns races dated today or later in the current season,
// or the fallback schedule with statuses recomputed.
func (s *StandingsService) UpcomingSchedule(ctx context.Context) []race.Race {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.UpcomingSchedule")
	defer span.End()

	today := race.Today(s.now())
	races, _ := s.SeasonRaces(ctx, s.CurrentSeason())

	upcoming := make([]race.Race, 0, len(races))
	for _, item := range races {
		if item.OnOrAfter(today) {
			upcoming = append(upcoming, item)
		}
	}
	if len(upcoming) > 0 {
		return upcoming
	}

	s.logger.InfoContext(ctx, "no upcoming races from api, serving fallback schedule")
	s.metrics.ObserveFallback(datasetSchedule)
	return s.fallbackSchedule(today)
}

// NextRace is the first upcoming race.
func (s *StandingsService) NextRace(ctx context.Context) race.Race {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.NextRace")
	defer span.End()

	if schedule := s.UpcomingSchedule(ctx); len(schedule) > 0 {
		return schedule[0]
	}

	s.metrics.ObserveFallback(datasetNextRace)
	if schedule := s.fallback.Schedule(); len(schedule) > 0 {
		return schedule[0]
	}
	return placeholderRace()
}

func (s *StandingsService) DriverStandings(ctx context.Context) []standing.Driver {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.DriverStandings")
	defer span.End()

	rows, err := s.provider.FetchDriverStandings(ctx, SeasonCurrent)
	var out []standing.Driver
	if err == nil {
		out, err = normalizeDriverStandings(rows)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "driver standings unavailable, serving fallback", "error", err)
		s.metrics.ObserveFallback(datasetDriverStandings)
		return s.fallback.DriverStandings()
	}
	return out
}

func (s *StandingsService) ConstructorStandings(ctx context.Context) []standing.Constructor {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.ConstructorStandings")
	defer span.End()

	rows, err := s.provider.FetchConstructorStandings(ctx, SeasonCurrent)
	var out []standing.Constructor
	if err == nil {
		out, err = normalizeConstructorStandings(rows)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "constructor standings unavailable, serving fallback", "error", err)
		s.metrics.ObserveFallback(datasetConstructorStandings)
		return s.fallback.ConstructorStandings()
	}
	return out
}

// LatestRaceResults serves the static result set unless live results are enabled.
func (s *StandingsService) LatestRaceResults(ctx context.Context) raceresult.ResultSet {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.LatestRaceResults")
	defer span.End()

	if !s.cfg.LiveResultsEnabled {
		s.metrics.ObserveFallback(datasetLatestResults)
		return s.fallback.LatestResults()
	}

	result, err := s.provider.FetchLatestRaceResults(ctx, SeasonCurrent)
	var out raceresult.ResultSet
	if err == nil {
		out, err = normalizeRaceResult(result)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "latest race results unavailable, serving fallback", "error", err)
		s.metrics.ObserveFallback(datasetLatestResults)
		return s.fallback.LatestResults()
	}
	return out
}

// Drivers is the current season roster. Teams are taken from the live
// driver standings when available, else from the fallback roster.
func (s *StandingsService) Drivers(ctx context.Context) []driver.Driver {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Drivers")
	defer span.End()

	items, err := s.provider.FetchDrivers(ctx, SeasonCurrent)
	if err == nil && len(items) == 0 {
		err = fmt.Errorf("%w: driver roster", ErrEmptyResult)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "driver roster unavailable, serving fallback", "error", err)
		s.metrics.ObserveFallback(datasetDrivers)
		return s.fallback.Drivers()
	}

	teams := s.teamsByDriver(ctx)
	out := make([]driver.Driver, 0, len(items))
	for _, item := range items {
		name := driver.FullName(item.GivenName, item.FamilyName)
		if name == "" {
			continue
		}
		team, ok := teams[name]
		if !ok {
			team = standing.UnknownTeam
		}
		out = append(out, driver.Driver{
			Name:        name,
			Team:        team,
			Number:      item.Number,
			Nationality: item.Nationality,
			Source:      datasource.Live,
		})
	}
	if len(out) == 0 {
		s.metrics.ObserveFallback(datasetDrivers)
		return s.fallback.Drivers()
	}
	return out
}

func (s *StandingsService) DriversByTeam(ctx context.Context, team string) ([]driver.Driver, error) {
	team = strings.TrimSpace(team)
	if team == "" {
		return nil, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}
	return driver.FilterByTeam(s.Drivers(ctx), team), nil
}

func (s *StandingsService) fetchRaces(ctx context.Context, season string) ([]ExternalRace, error) {
	items, err := s.provider.FetchSeasonRaces(ctx, season)
	if err != nil {
		return nil, crerr.Wrapf(err, "fetch races season=%s", season)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: season=%s has no races", ErrEmptyResult, season)
	}
	return items, nil
}

func (s *StandingsService) fallbackSchedule(today time.Time) []race.Race {
	schedule := s.fallback.Schedule()
	for i := range schedule {
		schedule[i] = schedule[i].WithStatusOn(today)
		if schedule[i].LocalizedTime == "" {
			schedule[i].LocalizedTime = race.DefaultLocalTime
		}
	}
	return schedule
}

func (s *StandingsService) teamsByDriver(ctx context.Context) map[string]string {
	out := make(map[string]string, 24)
	rows, err := s.provider.FetchDriverStandings(ctx, SeasonCurrent)
	if err == nil {
		if standings, normErr := normalizeDriverStandings(rows); normErr == nil {
			for _, row := range standings {
				out[row.Name] = row.Team
			}
			return out
		}
	}
	for _, item := range s.fallback.Drivers() {
		out[item.Name] = item.Team
	}
	return out
}

// NormalizeSeason accepts a four digit year or "current".
func NormalizeSeason(season string) (string, error) {
	season = strings.ToLower(strings.TrimSpace(season))
	if season == "" || season == SeasonCurrent {
		return SeasonCurrent, nil
	}
	if len(season) != 4 {
		return "", fmt.Errorf("%w: season must be a year or %q", ErrInvalidInput, SeasonCurrent)
	}
	for _, r := range season {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: season must be a year or %q", ErrInvalidInput, SeasonCurrent)
		}
	}
	return season, nil
}

func liveRace(item ExternalRace, today time.Time) race.Race {
	timeOfDay := strings.TrimSpace(item.Time)
	if timeOfDay == "" {
		timeOfDay = race.DefaultRaceTime
	}
	return race.Race{
		Round:         item.Round,
		Name:          item.Name,
		Circuit:       item.Circuit,
		Country:       item.Country,
		Date:          item.Date,
		TimeOfDay:     timeOfDay,
		LocalizedTime: race.ToLocalDisplayTime(timeOfDay),
		Status:        race.StatusOn(item.Date, today),
		Source:        datasource.Live,
	}
}

func placeholderRace() race.Race {
	return race.Race{
		Name:          "Next Race",
		Circuit:       "TBD",
		Country:       "TBD",
		Date:          "2025-12-31",
		TimeOfDay:     race.DefaultRaceTime,
		LocalizedTime: race.DefaultLocalTime,
		Status:        race.StatusUpcoming,
		Source:        datasource.Fallback,
	}
}

func normalizeDriverStandings(rows []ExternalDriverStanding) ([]standing.Driver, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: driver standings", ErrEmptyResult)
	}

	out := make([]standing.Driver, 0, len(rows))
	for _, row := range rows {
		name := driver.FullName(row.GivenName, row.FamilyName)
		if name == "" {
			return nil, fmt.Errorf("%w: driver at position %d has no name", ErrUpstreamSchema, row.Position)
		}
		if err := standing.ValidateRow(row.Position, row.Points, row.Wins); err != nil {
			return nil, fmt.Errorf("%w: driver %s: %v", ErrUpstreamSchema, name, err)
		}

		team := standing.UnknownTeam
		if len(row.Constructors) > 0 && strings.TrimSpace(row.Constructors[0]) != "" {
			team = strings.TrimSpace(row.Constructors[0])
		}
		out = append(out, standing.Driver{
			Position: row.Position,
			Name:     name,
			Team:     team,
			Points:   row.Points,
			Wins:     row.Wins,
			Source:   datasource.Live,
		})
	}
	if err := standing.SortDrivers(out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamSchema, err)
	}
	return out, nil
}

func normalizeConstructorStandings(rows []ExternalConstructorStanding) ([]standing.Constructor, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: constructor standings", ErrEmptyResult)
	}

	out := make([]standing.Constructor, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: constructor at position %d has no name", ErrUpstreamSchema, row.Position)
		}
		if err := standing.ValidateRow(row.Position, row.Points, row.Wins); err != nil {
			return nil, fmt.Errorf("%w: constructor %s: %v", ErrUpstreamSchema, name, err)
		}
		out = append(out, standing.Constructor{
			Position: row.Position,
			Name:     name,
			Points:   row.Points,
			Wins:     row.Wins,
			Source:   datasource.Live,
		})
	}
	if err := standing.SortConstructors(out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamSchema, err)
	}
	return out, nil
}

func normalizeRaceResult(result ExternalRaceResult) (raceresult.ResultSet, error) {
	if len(result.Results) == 0 {
		return raceresult.ResultSet{}, fmt.Errorf("%w: race results", ErrEmptyResult)
	}

	rows := make([]raceresult.Row, 0, len(result.Results))
	for _, item := range result.Results {
		if item.Position < 1 {
			return raceresult.ResultSet{}, fmt.Errorf("%w: result position %d", ErrUpstreamSchema, item.Position)
		}
		team := strings.TrimSpace(item.Constructor)
		if team == "" {
			team = standing.UnknownTeam
		}
		rows = append(rows, raceresult.Row{
			Position: item.Position,
			Driver:   driver.FullName(item.GivenName, item.FamilyName),
			Team:     team,
			Time:     item.Time,
		})
	}

	return raceresult.ResultSet{
		RaceName: result.RaceName,
		Circuit:  result.Circuit,
		Date:     result.Date,
		Results:  rows,
		Source:   datasource.Live,
	}, nil
}
