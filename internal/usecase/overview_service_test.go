package usecase_test

import (
	"context"
	"testing"

	"github.com/riskibarqy/driveahead/internal/domain/datasource"
	usecasemock "github.com/riskibarqy/driveahead/internal/mocks/usecase"
	"github.com/riskibarqy/driveahead/internal/usecase"
	"github.com/stretchr/testify/mock"
)

func TestStandingsService_Overview(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewF1DataProvider(t)
	provider.
		On("FetchSeasonRaces", mock.Anything, "2025").
		Return([]usecase.ExternalRace{{Round: 20, Name: "Mexico City Grand Prix", Date: "2025-10-26"}}, nil).
		Once()
	provider.
		On("FetchDriverStandings", mock.Anything, usecase.SeasonCurrent).
		Return(nil, usecase.ErrUpstreamTransport).
		Once()
	provider.
		On("FetchConstructorStandings", mock.Anything, usecase.SeasonCurrent).
		Return([]usecase.ExternalConstructorStanding{{Position: 1, Name: "McLaren", Points: 650, Wins: 12}}, nil).
		Once()

	got := newTestService(t, provider, false).Overview(context.Background())
	if got.Season != "2025" {
		t.Fatalf("season=%s", got.Season)
	}
	if got.NextRace.Round != 20 || len(got.Schedule) != 1 {
		t.Fatalf("unexpected schedule: next=%+v schedule=%d", got.NextRace, len(got.Schedule))
	}
	if got.DriverStandings[0].Source != datasource.Fallback {
		t.Fatalf("driver standings should come from fallback")
	}
	if got.ConstructorStandings[0].Source != datasource.Live {
		t.Fatalf("constructor standings should be live")
	}
	if got.LatestResults.Source != datasource.Fallback {
		t.Fatalf("latest results should be fallback when live results are disabled")
	}
}

func TestStandingsService_Warm(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewF1DataProvider(t)
	provider.On("FetchSeasonRaces", mock.Anything, "2025").Return([]usecase.ExternalRace{{Round: 1}}, nil).Once()
	provider.On("FetchDriverStandings", mock.Anything, usecase.SeasonCurrent).Return(nil, usecase.ErrUpstreamTransport).Once()
	provider.On("FetchConstructorStandings", mock.Anything, usecase.SeasonCurrent).Return([]usecase.ExternalConstructorStanding{}, nil).Once()
	provider.On("FetchDrivers", mock.Anything, usecase.SeasonCurrent).Return([]usecase.ExternalDriver{}, nil).Once()
	provider.On("FetchLatestRaceResults", mock.Anything, usecase.SeasonCurrent).Return(usecase.ExternalRaceResult{}, nil).Once()

	got, err := newTestService(t, provider, true).Warm(context.Background())
	if err != nil {
		t.Fatalf("Warm error: %v", err)
	}
	if len(got.Tasks) != 5 {
		t.Fatalf("expected 5 warm tasks, got %d", len(got.Tasks))
	}
	if got.FailedCount != 1 || got.SuccessCount != 4 {
		t.Fatalf("success=%d failed=%d, want 4/1", got.SuccessCount, got.FailedCount)
	}
}
