package httpapi

import (
	"github.com/riskibarqy/driveahead/internal/domain/driver"
	"github.com/riskibarqy/driveahead/internal/domain/race"
	"github.com/riskibarqy/driveahead/internal/domain/raceresult"
	"github.com/riskibarqy/driveahead/internal/domain/standing"
	"github.com/riskibarqy/driveahead/internal/usecase"
)

type healthDTO struct {
	Status   string             `json:"status"`
	Version  string             `json:"version,omitempty"`
	Upstream *upstreamHealthDTO `json:"upstream,omitempty"`
}

type upstreamHealthDTO struct {
	Circuit      string `json:"circuit"`
	CacheEntries int    `json:"cacheEntries"`
}

type raceDTO struct {
	Round         int    `json:"round"`
	Name          string `json:"name"`
	Circuit       string `json:"circuit"`
	Country       string `json:"country"`
	Location      string `json:"location"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	LocalizedTime string `json:"localizedTime"`
	Status        string `json:"status"`
	Source        string `json:"source"`
}

type driverStandingDTO struct {
	Position int     `json:"position"`
	Driver   string  `json:"driver"`
	Team     string  `json:"team"`
	Points   float64 `json:"points"`
	Wins     int     `json:"wins"`
	Source   string  `json:"source"`
}

type constructorStandingDTO struct {
	Position int     `json:"position"`
	Team     string  `json:"team"`
	Points   float64 `json:"points"`
	Wins     int     `json:"wins"`
	Source   string  `json:"source"`
}

type resultSetDTO struct {
	RaceName string         `json:"raceName"`
	Circuit  string         `json:"circuit"`
	Date     string         `json:"date"`
	Results  []resultRowDTO `json:"results"`
	Source   string         `json:"source"`
}

type resultRowDTO struct {
	Position int    `json:"position"`
	Driver   string `json:"driver"`
	Team     string `json:"team"`
	Time     string `json:"time"`
}

type driverDTO struct {
	Driver      string `json:"driver"`
	Team        string `json:"team"`
	Number      int    `json:"number,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Source      string `json:"source"`
}

type overviewDTO struct {
	Season               string                   `json:"season"`
	NextRace             raceDTO                  `json:"nextRace"`
	Schedule             []raceDTO                `json:"schedule"`
	DriverStandings      []driverStandingDTO      `json:"driverStandings"`
	ConstructorStandings []constructorStandingDTO `json:"constructorStandings"`
	LatestResults        resultSetDTO             `json:"latestResults"`
}

func raceToDTO(v race.Race) raceDTO {
	return raceDTO{
		Round:         v.Round,
		Name:          v.Name,
		Circuit:       v.Circuit,
		Country:       v.Country,
		Location:      v.Location(),
		Date:          v.Date,
		Time:          v.TimeOfDay,
		LocalizedTime: v.LocalizedTime,
		Status:        string(v.Status),
		Source:        string(v.Source),
	}
}

func racesToDTO(items []race.Race) []raceDTO {
	out := make([]raceDTO, 0, len(items))
	for _, item := range items {
		out = append(out, raceToDTO(item))
	}
	return out
}

func driverStandingsToDTO(items []standing.Driver) []driverStandingDTO {
	out := make([]driverStandingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, driverStandingDTO{
			Position: item.Position,
			Driver:   item.Name,
			Team:     item.Team,
			Points:   item.Points,
			Wins:     item.Wins,
			Source:   string(item.Source),
		})
	}
	return out
}

func constructorStandingsToDTO(items []standing.Constructor) []constructorStandingDTO {
	out := make([]constructorStandingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, constructorStandingDTO{
			Position: item.Position,
			Team:     item.Name,
			Points:   item.Points,
			Wins:     item.Wins,
			Source:   string(item.Source),
		})
	}
	return out
}

func resultSetToDTO(v raceresult.ResultSet) resultSetDTO {
	rows := make([]resultRowDTO, 0, len(v.Results))
	for _, row := range v.Results {
		rows = append(rows, resultRowDTO{
			Position: row.Position,
			Driver:   row.Driver,
			Team:     row.Team,
			Time:     row.Time,
		})
	}
	return resultSetDTO{
		RaceName: v.RaceName,
		Circuit:  v.Circuit,
		Date:     v.Date,
		Results:  rows,
		Source:   string(v.Source),
	}
}

func driversToDTO(items []driver.Driver) []driverDTO {
	out := make([]driverDTO, 0, len(items))
	for _, item := range items {
		out = append(out, driverDTO{
			Driver:      item.Name,
			Team:        item.Team,
			Number:      item.Number,
			Nationality: item.Nationality,
			Source:      string(item.Source),
		})
	}
	return out
}

func overviewToDTO(v usecase.Overview) overviewDTO {
	return overviewDTO{
		Season:               v.Season,
		NextRace:             raceToDTO(v.NextRace),
		Schedule:             racesToDTO(v.Schedule),
		DriverStandings:      driverStandingsToDTO(v.DriverStandings),
		ConstructorStandings: constructorStandingsToDTO(v.ConstructorStandings),
		LatestResults:        resultSetToDTO(v.LatestResults),
	}
}
