package memory

import (
	"github.com/riskibarqy/driveahead/internal/domain/driver"
	"github.com/riskibarqy/driveahead/internal/domain/race"
	"github.com/riskibarqy/driveahead/internal/domain/raceresult"
	"github.com/riskibarqy/driveahead/internal/domain/standing"
)

// FallbackRepository serves the static dataset used when the live API is unavailable.
// It is built once and never mutated; every read returns a fresh copy.
type FallbackRepository struct {
	schedule     []race.Race
	drivers      []standing.Driver
	constructors []standing.Constructor
	results      raceresult.ResultSet
	roster       []driver.Driver
}

type FallbackSeed struct {
	Schedule             []race.Race
	DriverStandings      []standing.Driver
	ConstructorStandings []standing.Constructor
	LatestResults        raceresult.ResultSet
	Drivers              []driver.Driver
}

// DefaultFallbackSeed is the dataset shipped with the binary.
func DefaultFallbackSeed() FallbackSeed {
	return FallbackSeed{
		Schedule:             SeedSchedule(),
		DriverStandings:      SeedDriverStandings(),
		ConstructorStandings: SeedConstructorStandings(),
		LatestResults:        SeedLatestResults(),
		Drivers:              SeedDrivers(),
	}
}

func NewFallbackRepository(seed FallbackSeed) *FallbackRepository {
	return &FallbackRepository{
		schedule:     append([]race.Race(nil), seed.Schedule...),
		drivers:      append([]standing.Driver(nil), seed.DriverStandings...),
		constructors: append([]standing.Constructor(nil), seed.ConstructorStandings...),
		results:      seed.LatestResults.Clone(),
		roster:       append([]driver.Driver(nil), seed.Drivers...),
	}
}

func (r *FallbackRepository) Schedule() []race.Race {
	out := make([]race.Race, 0, len(r.schedule))
	return append(out, r.schedule...)
}

func (r *FallbackRepository) DriverStandings() []standing.Driver {
	out := make([]standing.Driver, 0, len(r.drivers))
	return append(out, r.drivers...)
}

func (r *FallbackRepository) ConstructorStandings() []standing.Constructor {
	out := make([]standing.Constructor, 0, len(r.constructors))
	return append(out, r.constructors...)
}

func (r *FallbackRepository) LatestResults() raceresult.ResultSet {
	return r.results.Clone()
}

func (r *FallbackRepository) Drivers() []driver.Driver {
	out := make([]driver.Driver, 0, len(r.roster))
	return append(out, r.roster...)
}
