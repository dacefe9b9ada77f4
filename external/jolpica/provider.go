package jolpica

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/driveahead/internal/usecase"
)

var _ usecase.F1DataProvider = (*Client)(nil)

func (c *Client) FetchSeasonRaces(ctx context.Context, season string) ([]usecase.ExternalRace, error) {
	season = normalizeSeason(season)

	var envelope RaceEnvelope
	if err := c.fetchInto(ctx, season, &envelope); err != nil {
		return nil, fmt.Errorf("fetch season races season=%s: %w", season, err)
	}

	races := envelope.MRData.RaceTable.Races
	out := make([]usecase.ExternalRace, 0, len(races))
	for _, item := range races {
		round, err := strconv.Atoi(item.Round)
		if err != nil {
			return nil, fmt.Errorf("%w: race %q round=%q", usecase.ErrUpstreamSchema, item.RaceName, item.Round)
		}
		out = append(out, usecase.ExternalRace{
			Round:   round,
			Name:    item.RaceName,
			Circuit: item.Circuit.CircuitName,
			Country: item.Circuit.Location.Country,
			Date:    item.Date,
			Time:    item.Time,
		})
	}
	return out, nil
}

func (c *Client) FetchDriverStandings(ctx context.Context, season string) ([]usecase.ExternalDriverStanding, error) {
	season = normalizeSeason(season)

	var envelope StandingsEnvelope
	if err := c.fetchInto(ctx, season+"/driverStandings", &envelope); err != nil {
		return nil, fmt.Errorf("fetch driver standings season=%s: %w", season, err)
	}

	lists := envelope.MRData.StandingsTable.StandingsLists
	if len(lists) == 0 {
		return []usecase.ExternalDriverStanding{}, nil
	}

	rows := lists[0].DriverStandings
	out := make([]usecase.ExternalDriverStanding, 0, len(rows))
	for _, row := range rows {
		position, points, wins, err := parseStandingNumbers(row.Position, row.Points, row.Wins)
		if err != nil {
			return nil, fmt.Errorf("%w: driver %s: %v", usecase.ErrUpstreamSchema, row.Driver.DriverID, err)
		}

		constructors := make([]string, 0, len(row.Constructors))
		for _, constructor := range row.Constructors {
			constructors = append(constructors, constructor.Name)
		}
		out = append(out, usecase.ExternalDriverStanding{
			Position:     position,
			Points:       points,
			Wins:         wins,
			GivenName:    row.Driver.GivenName,
			FamilyName:   row.Driver.FamilyName,
			Constructors: constructors,
		})
	}
	return out, nil
}

func (c *Client) FetchConstructorStandings(ctx context.Context, season string) ([]usecase.ExternalConstructorStanding, error) {
	season = normalizeSeason(season)

	var envelope StandingsEnvelope
	if err := c.fetchInto(ctx, season+"/constructorStandings", &envelope); err != nil {
		return nil, fmt.Errorf("fetch constructor standings season=%s: %w", season, err)
	}

	lists := envelope.MRData.StandingsTable.StandingsLists
	if len(lists) == 0 {
		return []usecase.ExternalConstructorStanding{}, nil
	}

	rows := lists[0].ConstructorStandings
	out := make([]usecase.ExternalConstructorStanding, 0, len(rows))
	for _, row := range rows {
		position, points, wins, err := parseStandingNumbers(row.Position, row.Points, row.Wins)
		if err != nil {
			return nil, fmt.Errorf("%w: constructor %s: %v", usecase.ErrUpstreamSchema, row.Constructor.ConstructorID, err)
		}
		out = append(out, usecase.ExternalConstructorStanding{
			Position: position,
			Points:   points,
			Wins:     wins,
			Name:     row.Constructor.Name,
		})
	}
	return out, nil
}

// FetchLatestRaceResults reads the classification of the last completed round.
func (c *Client) FetchLatestRaceResults(ctx context.Context, season string) (usecase.ExternalRaceResult, error) {
	season = normalizeSeason(season)

	var envelope RaceEnvelope
	if err := c.fetchInto(ctx, season+"/last/results", &envelope); err != nil {
		return usecase.ExternalRaceResult{}, fmt.Errorf("fetch latest results season=%s: %w", season, err)
	}

	races := envelope.MRData.RaceTable.Races
	if len(races) == 0 {
		return usecase.ExternalRaceResult{}, nil
	}

	latest := races[len(races)-1]
	rows := make([]usecase.ExternalResultRow, 0, len(latest.Results))
	for _, item := range latest.Results {
		position, err := strconv.Atoi(item.Position)
		if err != nil {
			return usecase.ExternalRaceResult{}, fmt.Errorf("%w: result position=%q", usecase.ErrUpstreamSchema, item.Position)
		}
		finish := strings.TrimSpace(item.Status)
		if item.Time != nil && strings.TrimSpace(item.Time.Time) != "" {
			finish = strings.TrimSpace(item.Time.Time)
		}
		rows = append(rows, usecase.ExternalResultRow{
			Position:    position,
			GivenName:   item.Driver.GivenName,
			FamilyName:  item.Driver.FamilyName,
			Constructor: item.Constructor.Name,
			Time:        finish,
		})
	}

	return usecase.ExternalRaceResult{
		RaceName: latest.RaceName,
		Circuit:  latest.Circuit.CircuitName,
		Date:     latest.Date,
		Results:  rows,
	}, nil
}

func (c *Client) FetchDrivers(ctx context.Context, season string) ([]usecase.ExternalDriver, error) {
	season = normalizeSeason(season)

	var envelope DriverEnvelope
	if err := c.fetchInto(ctx, season+"/drivers", &envelope); err != nil {
		return nil, fmt.Errorf("fetch drivers season=%s: %w", season, err)
	}

	drivers := envelope.MRData.DriverTable.Drivers
	out := make([]usecase.ExternalDriver, 0, len(drivers))
	for _, item := range drivers {
		number := 0
		if item.PermanentNumber != "" {
			parsed, err := strconv.Atoi(item.PermanentNumber)
			if err != nil {
				return nil, fmt.Errorf("%w: driver %s number=%q", usecase.ErrUpstreamSchema, item.DriverID, item.PermanentNumber)
			}
			number = parsed
		}
		out = append(out, usecase.ExternalDriver{
			GivenName:   item.GivenName,
			FamilyName:  item.FamilyName,
			Number:      number,
			Nationality: item.Nationality,
		})
	}
	return out, nil
}

func normalizeSeason(season string) string {
	season = strings.TrimSpace(season)
	if season == "" {
		return usecase.SeasonCurrent
	}
	return season
}

func parseStandingNumbers(positionRaw, pointsRaw, winsRaw string) (int, float64, int, error) {
	position, err := strconv.Atoi(positionRaw)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("position=%q", positionRaw)
	}
	points, err := strconv.ParseFloat(pointsRaw, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("points=%q", pointsRaw)
	}
	wins, err := strconv.Atoi(winsRaw)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("wins=%q", winsRaw)
	}
	return position, points, wins, nil
}
