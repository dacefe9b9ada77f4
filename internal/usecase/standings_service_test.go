package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/driveahead/internal/domain/datasource"
	"github.com/riskibarqy/driveahead/internal/domain/race"
	"github.com/riskibarqy/driveahead/internal/infrastructure/repository/memory"
	usecasemock "github.com/riskibarqy/driveahead/internal/mocks/usecase"
	"github.com/riskibarqy/driveahead/internal/platform/logging"
	"github.com/riskibarqy/driveahead/internal/usecase"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2025, 10, 18, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, provider usecase.F1DataProvider, liveResults bool) *usecase.StandingsService {
	t.Helper()
	return usecase.NewStandingsService(provider, memory.NewFallbackRepository(memory.DefaultFallbackSeed()), usecase.StandingsServiceConfig{
		LiveResultsEnabled: liveResults,
		SeasonStartMonth:   3,
		WarmWorkers:        2,
		Now:                func() time.Time { return fixedNow },
		Logger:             logging.NewNop(),
	})
}

func failingProvider(t *testing.T, err error) *usecasemock.F1DataProvider {
	provider := usecasemock.NewF1DataProvider(t)
	provider.On("FetchSeasonRaces", mock.Anything, mock.Anything).Return(nil, err).Maybe()
	provider.On("FetchDriverStandings", mock.Anything, mock.Anything).Return(nil, err).Maybe()
	provider.On("FetchConstructorStandings", mock.Anything, mock.Anything).Return(nil, err).Maybe()
	provider.On("FetchLatestRaceResults", mock.Anything, mock.Anything).Return(usecase.ExternalRaceResult{}, err).Maybe()
	provider.On("FetchDrivers", mock.Anything, mock.Anything).Return(nil, err).Maybe()
	return provider
}

func TestStandingsService_UpcomingSchedule_YesterdayAndTomorrow(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewF1DataProvider(t)
	provider.
		On("FetchSeasonRaces", mock.Anything, "2025").
		Return([]usecase.ExternalRace{
			{Round: 18, Name: "Yesterday GP", Circuit: "A", Country: "X", Date: "2025-10-17", Time: "13:00:00Z"},
			{Round: 19, Name: "Tomorrow GP", Circuit: "B", Country: "Y", Date: "2025-10-19", Time: "19:00:00Z"},
		}, nil).
		Once()

	got := newTestService(t, provider, false).UpcomingSchedule(context.Background())
	if len(got) != 1 {
		t.Fatalf("expected exactly one upcoming race, got %d", len(got))
	}
	if got[0].Name != "Tomorrow GP" {
		t.Fatalf("unexpected race: %s", got[0].Name)
	}
	if got[0].Status != race.StatusUpcoming {
		t.Fatalf("status=%s want=%s", got[0].Status, race.StatusUpcoming)
	}
	if got[0].LocalizedTime != "00:30" {
		t.Fatalf("localized time=%s want=00:30", got[0].LocalizedTime)
	}
	if got[0].Source != datasource.Live {
		t.Fatalf("source=%s want=live", got[0].Source)
	}
}

func TestStandingsService_UpcomingSchedule_NeverReturnsPastRaces(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewF1DataProvider(t)
	provider.
		On("FetchSeasonRaces", mock.Anything, "2025").
		Return([]usecase.ExternalRace{
			{Round: 1, Name: "Opener", Date: "2025-03-16"},
			{Round: 18, Name: "Today GP", Date: "2025-10-18"},
			{Round: 19, Name: "Later GP", Date: "2025-10-26"},
			{Round: 20, Name: "Broken GP", Date: "26/10/2025"},
			{Round: 24, Name: "Finale", Date: "2025-12-07"},
		}, nil).
		Once()

	today := race.Today(fixedNow)
	got := newTestService(t, provider, false).UpcomingSchedule(context.Background())
	if len(got) != 3 {
		t.Fatalf("expected 3 races, got %d", len(got))
	}
	for _, item := range got {
		date, err := race.ParseDate(item.Date)
		if err != nil {
			t.Fatalf("race %s has bad date %q", item.Name, item.Date)
		}
		if date.Before(today) {
			t.Fatalf("race %s dated %s is before today", item.Name, item.Date)
		}
	}
	if got[0].Status != race.StatusLive {
		t.Fatalf("same-day race status=%s want=live", got[0].Status)
	}
	if got[0].TimeOfDay != race.DefaultRaceTime || got[0].LocalizedTime != "17:30" {
		t.Fatalf("missing time should default: time=%s local=%s", got[0].TimeOfDay, got[0].LocalizedTime)
	}
}

func TestStandingsService_UpcomingSchedule_FallbackRecomputesStatus(t *testing.T) {
	t.Parallel()

	got := newTestService(t, failingProvider(t, usecase.ErrUpstreamTransport), false).UpcomingSchedule(context.Background())
	if len(got) != 8 {
		t.Fatalf("expected fallback schedule of 8 races, got %d", len(got))
	}

	want := map[string]race.Status{
		"2025-10-05": race.StatusCompleted,
		"2025-10-19": race.StatusUpcoming,
	}
	for _, item := range got {
		if item.Source != datasource.Fallback {
			t.Fatalf("round %d source=%s want=fallback", item.Round, item.Source)
		}
		if status, ok := want[item.Date]; ok && item.Status != status {
			t.Fatalf("round %d status=%s want=%s", item.Round, item.Status, status)
		}
	}
}

func TestStandingsService_AlwaysFailingProviderStillServesData(t *testing.T) {
	t.Parallel()

	for _, upstreamErr := range []error{usecase.ErrUpstreamTransport, usecase.ErrUpstreamSchema, usecase.ErrDependencyUnavailable} {
		service := newTestService(t, failingProvider(t, upstreamErr), true)
		ctx := context.Background()

		if got := service.UpcomingSchedule(ctx); len(got) == 0 {
			t.Fatalf("%v: empty schedule", upstreamErr)
		}
		if got := service.NextRace(ctx); got.Name == "" || !got.Status.Valid() {
			t.Fatalf("%v: malformed next race %+v", upstreamErr, got)
		}
		if got := service.DriverStandings(ctx); len(got) == 0 || got[0].Position != 1 {
			t.Fatalf("%v: bad driver standings %+v", upstreamErr, got)
		}
		if got := service.ConstructorStandings(ctx); len(got) == 0 || got[0].Source != datasource.Fallback {
			t.Fatalf("%v: bad constructor standings %+v", upstreamErr, got)
		}
		if got := service.LatestRaceResults(ctx); len(got.Results) == 0 || got.RaceName == "" {
			t.Fatalf("%v: bad latest results %+v", upstreamErr, got)
		}
		if got := service.Drivers(ctx); len(got) == 0 {
			t.Fatalf("%v: empty roster", upstreamErr)
		}
		races, err := service.SeasonRaces(ctx, "2025")
		if err != nil || races == nil {
			t.Fatalf("%v: SeasonRaces races=%v err=%v", upstreamErr, races, err)
		}
	}
}

func TestStandingsService_SeasonRaces_RetriesCurrentOnce(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewF1DataProvider(t)
	provider.On("FetchSeasonRaces", mock.Anything, "2031").Return([]usecase.ExternalRace{}, nil).Once()
	provider.
		On("FetchSeasonRaces", mock.Anything, usecase.SeasonCurrent).
		Return([]usecase.ExternalRace{{Round: 1, Name: "Australian Grand Prix", Date: "2025-03-16", Time: "04:00:00Z"}}, nil).
		Once()

	got, err := newTestService(t, provider, false).SeasonRaces(context.Background(), "2031")
	if err != nil {
		t.Fatalf("SeasonRaces error: %v", err)
	}
	if len(got) != 1 || got[0].Status != race.StatusCompleted || got[0].LocalizedTime != "09:30" {
		t.Fatalf("unexpected races: %+v", got)
	}
}

func TestStandingsService_SeasonRaces_EmptyWhenBothFail(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewF1DataProvider(t)
	provider.On("FetchSeasonRaces", mock.Anything, "2024").Return(nil, usecase.ErrUpstreamTransport).Once()
	provider.On("FetchSeasonRaces", mock.Anything, usecase.SeasonCurrent).Return(nil, usecase.ErrUpstreamSchema).Once()

	got, err := newTestService(t, provider, false).SeasonRaces(context.Background(), "2024")
	if err != nil {
		t.Fatalf("SeasonRaces error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestStandingsService_SeasonRaces_InvalidSeason(t *testing.T) {
	t.Parallel()

	service := newTestService(t, usecasemock.NewF1DataProvider(t), false)
	for _, season := range []string{"20x5", "25", "next"} {
		if _, err := service.SeasonRaces(context.Background(), season); !errors.Is(err, usecase.ErrInvalidInput) {
			t.Fatalf("season %q: expected ErrInvalidInput, got %v", season, err)
		}
	}
}

func TestStandingsService_DriverStandings_NameNormalization(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewF1DataProvider(t)
	provider.
		On("FetchDriverStandings", mock.Anything, usecase.SeasonCurrent).
		Return([]usecase.ExternalDriverStanding{
			{Position: 2, Points: 190.5, Wins: 1, GivenName: "", FamilyName: "Hamilton", Constructors: []string{"Ferrari"}},
			{Position: 1, Points: 220, Wins: 3, GivenName: "Lewis", FamilyName: "Hamilton", Constructors: []string{"Mercedes", "Ferrari"}},
			{Position: 3, Points: 10, GivenName: " Zhou ", FamilyName: "Guanyu"},
		}, nil).
		Once()

	got := newTestService(t, provider, false).DriverStandings(context.Background())
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
	if got[0].Name != "Lewis Hamilton" || got[0].Team != "Mercedes" {
		t.Fatalf("row 1 = %+v", got[0])
	}
	if got[1].Name != "Hamilton" || got[1].Points != 190.5 {
		t.Fatalf("row 2 = %+v", got[1])
	}
	if got[2].Name != "Zhou Guanyu" || got[2].Team != "Unknown" {
		t.Fatalf("row 3 = %+v", got[2])
	}
	for _, row := range got {
		if row.Source != datasource.Live {
			t.Fatalf("source=%s want=live", row.Source)
		}
	}
}

func TestStandingsService_Standings_InvalidRowsFallBack(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewF1DataProvider(t)
	provider.
		On("FetchDriverStandings", mock.Anything, usecase.SeasonCurrent).
		Return([]usecase.ExternalDriverStanding{
			{Position: 1, GivenName: "Lando", FamilyName: "Norris"},
			{Position: 1, GivenName: "Oscar", FamilyName: "Piastri"},
		}, nil).
		Once()
	provider.
		On("FetchConstructorStandings", mock.Anything, usecase.SeasonCurrent).
		Return([]usecase.ExternalConstructorStanding{{Position: 1, Name: "McLaren", Points: -4}}, nil).
		Once()

	service := newTestService(t, provider, false)
	drivers := service.DriverStandings(context.Background())
	if len(drivers) != 10 || drivers[0].Source != datasource.Fallback {
		t.Fatalf("expected fallback driver standings, got %+v", drivers)
	}
	constructors := service.ConstructorStandings(context.Background())
	if len(constructors) != 10 || constructors[0].Name != "McLaren" || constructors[0].Source != datasource.Fallback {
		t.Fatalf("expected fallback constructor standings, got %+v", constructors)
	}
}

func TestStandingsService_LatestRaceResults_DisabledNeverCallsProvider(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewF1DataProvider(t)
	got := newTestService(t, provider, false).LatestRaceResults(context.Background())

	if got.RaceName != "Italian Grand Prix" || got.Source != datasource.Fallback {
		t.Fatalf("unexpected result set: %+v", got)
	}
	provider.AssertNotCalled(t, "FetchLatestRaceResults", mock.Anything, mock.Anything)
}

func TestStandingsService_LatestRaceResults_Live(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewF1DataProvider(t)
	provider.
		On("FetchLatestRaceResults", mock.Anything, usecase.SeasonCurrent).
		Return(usecase.ExternalRaceResult{
			RaceName: "United States Grand Prix",
			Circuit:  "Circuit of the Americas",
			Date:     "2025-10-19",
			Results: []usecase.ExternalResultRow{
				{Position: 1, GivenName: "Max", FamilyName: "Verstappen", Constructor: "Red Bull", Time: "1:34:00.161"},
				{Position: 2, GivenName: "Lando", FamilyName: "Norris", Constructor: "McLaren", Time: "+7.959"},
			},
		}, nil).
		Once()

	got := newTestService(t, provider, true).LatestRaceResults(context.Background())
	if got.Source != datasource.Live || len(got.Results) != 2 {
		t.Fatalf("unexpected result set: %+v", got)
	}
	if got.Results[0].Driver != "Max Verstappen" || got.Results[1].Time != "+7.959" {
		t.Fatalf("unexpected rows: %+v", got.Results)
	}
}

func TestStandingsService_NextRace(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewF1DataProvider(t)
	provider.
		On("FetchSeasonRaces", mock.Anything, "2025").
		Return([]usecase.ExternalRace{
			{Round: 19, Name: "United States Grand Prix", Date: "2025-10-19", Time: "19:00:00Z"},
			{Round: 20, Name: "Mexico City Grand Prix", Date: "2025-10-26", Time: "20:00:00Z"},
		}, nil).
		Once()

	got := newTestService(t, provider, false).NextRace(context.Background())
	if got.Round != 19 || got.Status != race.StatusUpcoming {
		t.Fatalf("unexpected next race: %+v", got)
	}
}

func TestStandingsService_DriversByTeam(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewF1DataProvider(t)
	provider.
		On("FetchDrivers", mock.Anything, usecase.SeasonCurrent).
		Return([]usecase.ExternalDriver{
			{GivenName: "Lando", FamilyName: "Norris", Number: 4, Nationality: "British"},
			{GivenName: "Oscar", FamilyName: "Piastri", Number: 81, Nationality: "Australian"},
			{GivenName: "Isack", FamilyName: "Hadjar", Number: 6, Nationality: "French"},
		}, nil).
		Once()
	provider.
		On("FetchDriverStandings", mock.Anything, usecase.SeasonCurrent).
		Return([]usecase.ExternalDriverStanding{
			{Position: 1, GivenName: "Oscar", FamilyName: "Piastri", Constructors: []string{"McLaren"}},
			{Position: 2, GivenName: "Lando", FamilyName: "Norris", Constructors: []string{"McLaren"}},
		}, nil).
		Once()

	service := newTestService(t, provider, false)
	got, err := service.DriversByTeam(context.Background(), "mclaren")
	if err != nil {
		t.Fatalf("DriversByTeam error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 McLaren drivers, got %+v", got)
	}
	for _, d := range got {
		if d.Source != datasource.Live {
			t.Fatalf("expected live roster entries, got %+v", d)
		}
	}

	if _, err := service.DriversByTeam(context.Background(), "  "); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStandingsService_DriversByTeam_FallbackRoster(t *testing.T) {
	t.Parallel()

	service := newTestService(t, failingProvider(t, usecase.ErrUpstreamTransport), false)
	got, err := service.DriversByTeam(context.Background(), "FERRARI")
	if err != nil {
		t.Fatalf("DriversByTeam error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Charles Leclerc" || got[1].Name != "Lewis Hamilton" {
		t.Fatalf("unexpected Ferrari drivers: %+v", got)
	}
	for _, d := range got {
		if d.Source != datasource.Fallback {
			t.Fatalf("expected fallback roster entries, got %+v", d)
		}
	}
}

func TestStandingsService_CurrentSeason(t *testing.T) {
	t.Parallel()

	cases := []struct {
		now  time.Time
		want string
	}{
		{now: time.Date(2026, 2, 28, 23, 0, 0, 0, time.UTC), want: "2025"},
		{now: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), want: "2026"},
		{now: time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), want: "2026"},
	}
	for _, tc := range cases {
		now := tc.now
		service := usecase.NewStandingsService(usecasemock.NewF1DataProvider(t), memory.NewFallbackRepository(memory.DefaultFallbackSeed()), usecase.StandingsServiceConfig{
			Now: func() time.Time { return now },
		})
		if got := service.CurrentSeason(); got != tc.want {
			t.Fatalf("CurrentSeason at %s = %s want %s", tc.now, got, tc.want)
		}
	}
}
