package usecase

import "context"

// SeasonCurrent is the API alias for the season in progress.
const SeasonCurrent = "current"

// F1DataProvider reads normalized-but-raw records from the motorsport API.
// Implementations return ErrUpstreamTransport, ErrUpstreamSchema or
// ErrDependencyUnavailable; they never retry.
type F1DataProvider interface {
	FetchSeasonRaces(ctx context.Context, season string) ([]ExternalRace, error)
	FetchDriverStandings(ctx context.Context, season string) ([]ExternalDriverStanding, error)
	FetchConstructorStandings(ctx context.Context, season string) ([]ExternalConstructorStanding, error)
	FetchLatestRaceResults(ctx context.Context, season string) (ExternalRaceResult, error)
	FetchDrivers(ctx context.Context, season string) ([]ExternalDriver, error)
}

type ExternalRace struct {
	Round   int
	Name    string
	Circuit string
	Country string
	Date    string
	// Time is the UTC start time as sent by the API, empty when unknown.
	Time string
}

type ExternalDriverStanding struct {
	Position     int
	Points       float64
	Wins         int
	GivenName    string
	FamilyName   string
	Constructors []string
}

type ExternalConstructorStanding struct {
	Position int
	Points   float64
	Wins     int
	Name     string
}

type ExternalRaceResult struct {
	RaceName string
	Circuit  string
	Date     string
	Results  []ExternalResultRow
}

type ExternalResultRow struct {
	Position    int
	GivenName   string
	FamilyName  string
	Constructor string
	// Time is the race time or gap; retired cars carry their status text.
	Time string
}

type ExternalDriver struct {
	GivenName   string
	FamilyName  string
	Number      int
	Nationality string
}
